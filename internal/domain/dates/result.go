package dates

import "time"

// Format names the field order a date was read with.
type Format string

// Supported formats
const (
	FormatMDY       Format = "MM/DD/YYYY"
	FormatDMY       Format = "DD/MM/YYYY"
	FormatYMD       Format = "YYYY-MM-DD"
	FormatAmbiguous Format = "AMBIGUOUS"
	FormatInvalid   Format = "INVALID"
)

// Confidence levels attached to a Result
const (
	ConfidenceCertain = 1.0
	ConfidenceHinted  = 0.7
	ConfidenceNone    = 0.0
)

// YearPivot splits two-digit years: values below it belong to the 2000s,
// the rest to the 1900s.
const YearPivot = 50

// normalizedLayout is the layout of Result.Normalized.
const normalizedLayout = "2006-01-02"

// Candidate is one possible reading of an ambiguous date.
type Candidate struct {
	Format     Format `json:"format"`
	Normalized string `json:"normalized"`
}

// Result is the outcome of classifying a date string.
type Result struct {
	Original    string      `json:"original"`
	Format      Format      `json:"format"`
	Day         int         `json:"day,omitempty"`
	Month       int         `json:"month,omitempty"`
	Year        int         `json:"year,omitempty"`
	Date        *time.Time  `json:"date,omitempty"`
	Normalized  string      `json:"normalized,omitempty"`
	Confidence  float64     `json:"confidence"`
	Ambiguous   bool        `json:"ambiguous"`
	CountryHint string      `json:"country_hint,omitempty"`
	Candidates  []Candidate `json:"candidates,omitempty"`
}

// Resolved reports whether the result carries a concrete calendar date.
func (r Result) Resolved() bool {
	return r.Date != nil
}

// Display returns the text to show to a user: always the original string.
func (r Result) Display() string {
	return r.Original
}

// String implements fmt.Stringer.
func (r Result) String() string {
	if r.Resolved() {
		return r.Normalized
	}
	return string(r.Format) + "(" + r.Original + ")"
}

func invalid(raw, hint string) Result {
	return Result{
		Original:    raw,
		Format:      FormatInvalid,
		Confidence:  ConfidenceNone,
		CountryHint: hint,
	}
}

func resolved(raw, hint string, f Format, year, month, day int, confidence float64) Result {
	date, ok := calendarDate(year, month, day)
	if !ok {
		return invalid(raw, hint)
	}
	return Result{
		Original:    raw,
		Format:      f,
		Day:         day,
		Month:       month,
		Year:        year,
		Date:        &date,
		Normalized:  date.Format(normalizedLayout),
		Confidence:  confidence,
		CountryHint: hint,
	}
}

// calendarDate rejects impossible dates such as 31/02 that time.Date would normalize.
func calendarDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
