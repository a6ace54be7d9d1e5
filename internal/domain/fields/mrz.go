package fields

import (
	"strings"
	"time"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/dates"
)

// MRZ layouts
const (
	MRZFormatTD1 = "TD1"
	MRZFormatTD3 = "TD3"
)

const (
	td1Length = 30
	td3Length = 44
)

// MRZ is the machine readable zone of a passport (TD3) or identity card (TD1).
type MRZ struct {
	Format         string       `json:"format"`
	DocumentCode   string       `json:"document_code"`
	IssuingState   string       `json:"issuing_state"`
	DocumentNumber string       `json:"document_number"`
	Nationality    string       `json:"nationality"`
	Surnames       string       `json:"surnames"`
	GivenNames     string       `json:"given_names"`
	BirthDate      dates.Result `json:"birth_date"`
	Sex            string       `json:"sex,omitempty"`
	ExpiryDate     dates.Result `json:"expiry_date"`
	Valid          bool         `json:"valid"`
}

// ParseMRZ finds and decodes a machine readable zone among lines. Spaces
// inside a line are ignored since OCR often inserts them. The second return
// value is false when no zone was found; a zone whose check digits do not
// match is returned with Valid set to false.
func ParseMRZ(lines []string) (*MRZ, bool) {
	var candidates []string
	for _, line := range lines {
		l := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(line), " ", ""))
		if len(l) == td1Length || len(l) == td3Length {
			if isMRZLine(l) {
				candidates = append(candidates, l)
				continue
			}
		}
		candidates = append(candidates, "")
	}

	for i := 0; i+1 < len(candidates); i++ {
		a, b := candidates[i], candidates[i+1]
		if len(a) == td3Length && len(b) == td3Length && a[0] == 'P' {
			return parseTD3(a, b), true
		}
		if i+2 < len(candidates) {
			c := candidates[i+2]
			if len(a) == td1Length && len(b) == td1Length && len(c) == td1Length {
				return parseTD1(a, b, c), true
			}
		}
	}
	return nil, false
}

func isMRZLine(l string) bool {
	if !strings.Contains(l, "<") {
		return false
	}
	for i := 0; i < len(l); i++ {
		c := l[i]
		if !(c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '<') {
			return false
		}
	}
	return true
}

func parseTD3(l1, l2 string) *MRZ {
	surnames, given := mrzNames(l1[5:])
	m := &MRZ{
		Format:         MRZFormatTD3,
		DocumentCode:   mrzField(l1[0:2]),
		IssuingState:   mrzField(l1[2:5]),
		DocumentNumber: mrzField(l2[0:9]),
		Nationality:    mrzField(l2[10:13]),
		Surnames:       surnames,
		GivenNames:     given,
		BirthDate:      dates.ParseBirthYYMMDD(l2[13:19], time.Now()),
		Sex:            mrzSex(l2[20]),
		ExpiryDate:     dates.ParseYYMMDD(l2[21:27]),
	}
	m.Valid = checkDigit(l2[0:9], l2[9]) &&
		checkDigit(l2[13:19], l2[19]) &&
		checkDigit(l2[21:27], l2[27]) &&
		(l2[42] == '<' && strings.Trim(l2[28:42], "<") == "" || checkDigit(l2[28:42], l2[42])) &&
		checkDigit(l2[0:10]+l2[13:20]+l2[21:43], l2[43])
	return m
}

func parseTD1(l1, l2, l3 string) *MRZ {
	surnames, given := mrzNames(l3)
	m := &MRZ{
		Format:         MRZFormatTD1,
		DocumentCode:   mrzField(l1[0:2]),
		IssuingState:   mrzField(l1[2:5]),
		DocumentNumber: mrzField(l1[5:14]),
		Nationality:    mrzField(l2[15:18]),
		Surnames:       surnames,
		GivenNames:     given,
		BirthDate:      dates.ParseBirthYYMMDD(l2[0:6], time.Now()),
		Sex:            mrzSex(l2[7]),
		ExpiryDate:     dates.ParseYYMMDD(l2[8:14]),
	}
	m.Valid = checkDigit(l1[5:14], l1[14]) &&
		checkDigit(l2[0:6], l2[6]) &&
		checkDigit(l2[8:14], l2[14]) &&
		checkDigit(l1[5:30]+l2[0:7]+l2[8:15]+l2[18:29], l2[29])
	return m
}

// mrzNames splits the name field: surnames and given names are separated by
// "<<" and words by "<".
func mrzNames(field string) (surnames, given string) {
	parts := strings.SplitN(strings.TrimRight(field, "<"), "<<", 2)
	surnames = mrzField(parts[0])
	if len(parts) == 2 {
		given = mrzField(parts[1])
	}
	return surnames, given
}

func mrzField(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "<", " ")), " ")
}

func mrzSex(c byte) string {
	switch c {
	case 'M', 'F':
		return string(c)
	}
	return ""
}

// checkDigit verifies an ICAO 9303 check digit: weights 7, 3, 1 over the
// character values, modulo 10.
func checkDigit(field string, digit byte) bool {
	if digit < '0' || digit > '9' {
		return false
	}
	weights := [3]int{7, 3, 1}
	sum := 0
	for i := 0; i < len(field); i++ {
		sum += mrzValue(field[i]) * weights[i%3]
	}
	return sum%10 == int(digit-'0')
}

func mrzValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return 0
}

// alpha3 maps the ICAO state codes of the supported countries to ISO 3166
// alpha-2.
var alpha3 = map[string]string{
	"MEX": "MX", "COL": "CO", "BRA": "BR", "GTM": "GT",
	"SLV": "SV", "HND": "HN", "PER": "PE", "USA": "US",
}

func stateCountry(code string) string {
	if c, ok := alpha3[code]; ok {
		return c
	}
	return code
}
