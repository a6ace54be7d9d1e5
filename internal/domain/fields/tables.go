package fields

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/strutil"
)

// IDPattern describes one kind of identity number printed by a country.
type IDPattern struct {
	// Kind names the identifier, e.g. CURP or CPF.
	Kind string
	// Keywords are the labels printed before the value.
	Keywords []string
	// Pattern matches the value as printed next to a keyword.
	Pattern *regexp.Regexp
	// Fallback matches the value anywhere in the text. Nil disables the
	// unlabelled search for this kind.
	Fallback *regexp.Regexp
	// Digits strips separators from the value and keeps only its digits.
	Digits bool
	// MinLength and MaxLength bound the normalized value.
	MinLength int
	MaxLength int

	keywords labelMatcher
}

// normalize cleans a raw match and reports whether it has a valid length.
func (p *IDPattern) normalize(raw string) (string, bool) {
	v := separators.Replace(raw)
	if p.Digits {
		v = strutil.OnlyDigits(v)
	}
	if len(v) < p.MinLength || len(v) > p.MaxLength {
		return "", false
	}
	return v, true
}

var separators = strings.NewReplacer(" ", "", ".", "", "-", "")

// token anchors a value expression so it cannot start or end inside a
// longer alphanumeric run.
func token(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^A-Z0-9])(` + expr + `)(?:[^A-Z0-9]|$)`)
}

const (
	curpExpr    = `[A-Z]{4}\d{6}[HM][A-Z]{5}[A-Z0-9]\d`
	electorExpr = `[A-Z]{6}\d{8}[HM]\d{3}`
	// dotted or dashed digit groups, e.g. 1.020.304.050 or 02345678-9
	groupedDigits = `\d[\d.\-]*\d`
)

func fixed(kind string, digits int, keywords ...string) *IDPattern {
	return &IDPattern{
		Kind:      kind,
		Keywords:  keywords,
		Pattern:   token(groupedDigits),
		Fallback:  token(`\d{` + strconv.Itoa(digits) + `}`),
		Digits:    true,
		MinLength: digits,
		MaxLength: digits,
	}
}

// idTables lists the identifiers of each supported country. Order matters:
// the first pattern that matches wins.
var idTables = map[string][]*IDPattern{
	"MX": {
		{
			Kind: "CURP", Keywords: []string{"CURP"},
			Pattern: token(curpExpr), Fallback: token(curpExpr),
			MinLength: 18, MaxLength: 18,
		},
		{
			Kind: "CLAVE_ELECTOR", Keywords: []string{"CLAVE DE ELECTOR", "CLAVE ELECTOR"},
			Pattern: token(electorExpr), Fallback: token(electorExpr),
			MinLength: 18, MaxLength: 18,
		},
	},
	"CO": {
		fixed("NUIP", 10, "NUIP"),
		{
			Kind: "CC", Keywords: []string{"CEDULA DE CIUDADANIA", "CEDULA", "C.C.", "CC", "NUMERO", "NO."},
			Pattern: token(groupedDigits), Digits: true,
			MinLength: 6, MaxLength: 10,
		},
	},
	"BR": {
		{
			Kind: "CPF", Keywords: []string{"CPF"},
			Pattern: token(groupedDigits), Fallback: token(`\d{3}\.\d{3}\.\d{3}-\d{2}`),
			Digits: true, MinLength: 11, MaxLength: 11,
		},
		{
			Kind: "RG", Keywords: []string{"REGISTRO GERAL", "RG"},
			Pattern: token(`\d[\d.\-]*[\dX]`),
			MinLength: 7, MaxLength: 12,
		},
	},
	"GT": {
		{
			Kind: "CUI", Keywords: []string{"CUI", "DPI"},
			Pattern: token(`\d{4} ?\d{5} ?\d{4}`), Fallback: token(`\d{13}`),
			Digits: true, MinLength: 13, MaxLength: 13,
		},
	},
	"SV": {
		{
			Kind: "DUI", Keywords: []string{"DUI"},
			Pattern: token(`\d{8}-?\d`), Fallback: token(`\d{8}-\d`),
			Digits: true, MinLength: 9, MaxLength: 9,
		},
	},
	"HN": {
		{
			Kind: "DNI", Keywords: []string{"DNI", "IDENTIDAD"},
			Pattern: token(`\d{4}-? ?\d{4}-? ?\d{5}`), Fallback: token(`\d{13}`),
			Digits: true, MinLength: 13, MaxLength: 13,
		},
	},
	"PE": {
		fixed("DNI", 8, "DNI"),
	},
	"US": {
		{
			Kind: "DL", Keywords: []string{"DLN", "DL", "LIC NO", "LICENSE NO", "LICENSE NUMBER"},
			Pattern: token(`[A-Z]{0,2}\d{5,12}`),
			MinLength: 7, MaxLength: 12,
		},
		{
			Kind: "SSN", Keywords: []string{"SSN", "SOCIAL SECURITY"},
			Pattern: token(`\d{3}-?\d{2}-?\d{4}`), Fallback: token(`\d{3}-\d{2}-\d{4}`),
			Digits: true, MinLength: 9, MaxLength: 9,
		},
	},
}

// countryOrder fixes the search order when the country is unknown.
var countryOrder = []string{"MX", "CO", "BR", "GT", "SV", "HN", "PE", "US"}

func init() {
	for _, table := range idTables {
		for _, p := range table {
			p.keywords = newLabelMatcher(p.Keywords...)
		}
	}
}

// Patterns returns the identifier table of an ISO 3166 alpha-2 country code.
func Patterns(country string) []*IDPattern {
	return idTables[country]
}

// SupportedCountries lists the countries with an identifier table.
func SupportedCountries() []string {
	return append([]string(nil), countryOrder...)
}
