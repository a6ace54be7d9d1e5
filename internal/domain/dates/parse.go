package dates

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/strutil"
)

var (
	yearFirstRe = regexp.MustCompile(`^(\d{4})[/\-. ]+(\d{1,2})[/\-. ]+(\d{1,2})$`)
	numericRe   = regexp.MustCompile(`^(\d{1,2})[/\-. ]+(\d{1,2})[/\-. ]+(\d{4}|\d{2})$`)
	compactRe   = regexp.MustCompile(`^\d{8}$`)
	dayMonthRe  = regexp.MustCompile(`^(\d{1,2})[/\-. ]*(?:DE )?([A-Z]{3,10})\.?[/\-. ]*(?:DE(?:L)? )?(\d{4}|\d{2})$`)
	monthDayRe  = regexp.MustCompile(`^([A-Z]{3,10})\.?[/\-. ]*(\d{1,2}),?[/\-. ]*(\d{4}|\d{2})$`)
)

// monthPrefixes maps the first three letters of month names in Spanish,
// Portuguese and English to their number.
var monthPrefixes = map[string]int{
	"ENE": 1, "JAN": 1,
	"FEB": 2, "FEV": 2,
	"MAR": 3,
	"ABR": 4, "APR": 4,
	"MAY": 5, "MAI": 5,
	"JUN": 6,
	"JUL": 7,
	"AGO": 8, "AUG": 8,
	"SEP": 9, "SET": 9,
	"OCT": 10, "OUT": 10,
	"NOV": 11,
	"DIC": 12, "DEC": 12, "DEZ": 12,
}

// ExpandYear turns a two-digit year into a four-digit one using YearPivot.
// Values that already have more than two digits are returned unchanged.
func ExpandYear(yy int) int {
	if yy < 0 || yy > 99 {
		return yy
	}
	if yy < YearPivot {
		return 2000 + yy
	}
	return 1900 + yy
}

// Parse classifies raw, optionally helped by a country hint.
//
// When one field exceeds 12 that field is the day and the result is certain.
// When both fields could be a month the hint decides (month first for US,
// day first elsewhere) at ConfidenceHinted. Without a hint the result is
// FormatAmbiguous and carries no date. Result.Original is always raw.
func Parse(raw, countryHint string) Result {
	hint := NormalizeCountry(countryHint)
	s := clean(raw)
	if s == "" {
		return invalid(raw, hint)
	}

	if m := yearFirstRe.FindStringSubmatch(s); m != nil {
		return resolved(raw, hint, FormatYMD, atoi(m[1]), atoi(m[2]), atoi(m[3]), ConfidenceCertain)
	}

	if m := numericRe.FindStringSubmatch(s); m != nil {
		return disambiguate(raw, hint, atoi(m[1]), atoi(m[2]), yearOf(m[3]))
	}

	if compactRe.MatchString(s) {
		a, b, year, yearFirst := splitCompact(s)
		if yearFirst {
			return resolved(raw, hint, FormatYMD, year, a, b, ConfidenceCertain)
		}
		return disambiguate(raw, hint, a, b, year)
	}

	if m := dayMonthRe.FindStringSubmatch(s); m != nil {
		if month, ok := monthNumber(m[2]); ok {
			return resolved(raw, hint, FormatDMY, yearOf(m[3]), month, atoi(m[1]), ConfidenceCertain)
		}
	}

	if m := monthDayRe.FindStringSubmatch(s); m != nil {
		if month, ok := monthNumber(m[1]); ok {
			return resolved(raw, hint, FormatMDY, yearOf(m[3]), month, atoi(m[2]), ConfidenceCertain)
		}
	}

	return invalid(raw, hint)
}

// ParseAs reads raw with a field order chosen by a reviewer. Textual dates
// are unambiguous and ignore f. Only FormatDMY, FormatMDY and FormatYMD can be
// forced; anything else yields FormatInvalid.
func ParseAs(raw string, f Format) Result {
	s := clean(raw)

	switch f {
	case FormatYMD:
		if m := yearFirstRe.FindStringSubmatch(s); m != nil {
			return resolved(raw, "", FormatYMD, atoi(m[1]), atoi(m[2]), atoi(m[3]), ConfidenceCertain)
		}
		if compactRe.MatchString(s) {
			return resolved(raw, "", FormatYMD, atoi(s[:4]), atoi(s[4:6]), atoi(s[6:]), ConfidenceCertain)
		}
		return invalid(raw, "")
	case FormatDMY, FormatMDY:
	default:
		return invalid(raw, "")
	}

	var a, b, year int
	if m := numericRe.FindStringSubmatch(s); m != nil {
		a, b, year = atoi(m[1]), atoi(m[2]), yearOf(m[3])
	} else if compactRe.MatchString(s) {
		a, b, year = atoi(s[:2]), atoi(s[2:4]), atoi(s[4:])
	} else {
		r := Parse(raw, "")
		if r.Resolved() && r.Format != FormatYMD {
			return r
		}
		return invalid(raw, "")
	}

	if f == FormatMDY {
		return resolved(raw, "", FormatMDY, year, a, b, ConfidenceCertain)
	}
	return resolved(raw, "", FormatDMY, year, b, a, ConfidenceCertain)
}

// splitCompact splits an eight digit date. DDMMYYYY and MMDDYYYY are
// assumed when the last four digits look like a year, YYYYMMDD otherwise.
func splitCompact(s string) (a, b, year int, yearFirst bool) {
	if tail := atoi(s[4:]); tail >= 1900 && tail <= 2099 {
		return atoi(s[:2]), atoi(s[2:4]), tail, false
	}
	return atoi(s[4:6]), atoi(s[6:]), atoi(s[:4]), true
}

// disambiguate applies the day/month rules to the first two numeric fields.
func disambiguate(raw, hint string, a, b, year int) Result {
	switch {
	case a > 12 && b > 12:
		return invalid(raw, hint)
	case a > 12:
		return resolved(raw, hint, FormatDMY, year, b, a, ConfidenceCertain)
	case b > 12:
		return resolved(raw, hint, FormatMDY, year, a, b, ConfidenceCertain)
	case a == b:
		// both readings name the same day
		f := FormatDMY
		if hint == CountryUS {
			f = FormatMDY
		}
		return resolved(raw, hint, f, year, a, a, ConfidenceCertain)
	case hint == CountryUS:
		return resolved(raw, hint, FormatMDY, year, a, b, ConfidenceHinted)
	case hint != "":
		return resolved(raw, hint, FormatDMY, year, b, a, ConfidenceHinted)
	}

	return ambiguous(raw, a, b, year)
}

func ambiguous(raw string, a, b, year int) Result {
	res := Result{
		Original:   raw,
		Format:     FormatAmbiguous,
		Year:       year,
		Confidence: ConfidenceNone,
		Ambiguous:  true,
	}

	dmy, dmyOK := calendarDate(year, b, a)
	mdy, mdyOK := calendarDate(year, a, b)
	switch {
	case dmyOK && mdyOK:
		res.Candidates = []Candidate{
			{Format: FormatDMY, Normalized: dmy.Format(normalizedLayout)},
			{Format: FormatMDY, Normalized: mdy.Format(normalizedLayout)},
		}
	case dmyOK:
		return resolved(raw, "", FormatDMY, year, b, a, ConfidenceCertain)
	case mdyOK:
		return resolved(raw, "", FormatMDY, year, a, b, ConfidenceCertain)
	default:
		return invalid(raw, "")
	}

	return res
}

// clean upper-cases, strips accents and collapses whitespace.
func clean(raw string) string {
	return strings.Join(strings.Fields(strutil.FoldUpper(raw)), " ")
}

// MonthNamePattern is a regexp alternation of the month prefixes Parse
// understands, e.g. ABR|AGO|APR.
func MonthNamePattern() string {
	prefixes := make([]string, 0, len(monthPrefixes))
	for p := range monthPrefixes {
		prefixes = append(prefixes, p)
	}
	slices.Sort(prefixes)
	return strings.Join(prefixes, "|")
}

func monthNumber(word string) (int, bool) {
	if len(word) < 3 {
		return 0, false
	}
	month, ok := monthPrefixes[word[:3]]
	return month, ok
}

func yearOf(s string) int {
	y := atoi(s)
	if len(s) == 2 {
		return ExpandYear(y)
	}
	return y
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}

// ParseYYMMDD reads the six digit year-first dates of machine readable zones.
// The century comes from ExpandYear.
func ParseYYMMDD(raw string) Result {
	s := strings.TrimSpace(raw)
	if len(s) != 6 || !strutil.IsDigits(s) {
		return invalid(raw, "")
	}
	return resolved(raw, "", FormatYMD, ExpandYear(atoi(s[:2])), atoi(s[2:4]), atoi(s[4:]), ConfidenceCertain)
}

// ParseBirthYYMMDD is ParseYYMMDD for birth dates, which cannot be later than
// now: a year the pivot puts in the future is moved back a century.
func ParseBirthYYMMDD(raw string, now time.Time) Result {
	res := ParseYYMMDD(raw)
	if res.Date == nil || !res.Date.After(now) {
		return res
	}
	return resolved(raw, "", FormatYMD, res.Year-100, res.Month, res.Day, ConfidenceCertain)
}
