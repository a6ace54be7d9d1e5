package fields

import (
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/dates"
)

// Extract reads every supported field from the transcription of a document.
//
// A non-empty countryHint wins over the country detected from the text and
// is used both to pick the identifier table and as the date hint. Without
// either, the country of a keyword-anchored identifier is used. A valid
// machine readable zone fills whatever the labelled search left empty or
// unresolved.
func Extract(text, countryHint string) Fields {
	doc := newDocument(text)
	norm := doc.text()

	country := dates.NormalizeCountry(countryHint)
	if country == "" {
		country = detectCountry(norm)
	}

	f := Fields{
		Country:      country,
		DocumentType: detectDocumentType(norm),
		ID:           findID(doc, country),
	}
	// a bare run of digits fits several tables, so only a labelled
	// identifier names the country
	if f.Country == "" && f.ID != nil && f.ID.Method == MethodKeyword {
		f.Country = f.ID.Country
	}

	f.GivenNames, f.Surnames = findNames(doc, f.Country)
	found := findDates(doc, f.Country)
	f.BirthDate, f.ExpiryDate, f.IssueDate = found.Birth, found.Expiry, found.Issue
	f.Sex = findSex(doc, f.Country)
	f.Nationality = findNationality(doc)

	if mrz, ok := ParseMRZ(doc.norm); ok {
		f.MRZ = mrz
		if mrz.Valid {
			mergeMRZ(&f, mrz)
		} else {
			f.Warnings = append(f.Warnings, WarningMRZChecksum)
		}
	}

	f.FullName = fullName(f.GivenNames, f.Surnames)
	f.Warnings = append(f.Warnings, warnings(f)...)
	return f
}

func mergeMRZ(f *Fields, mrz *MRZ) {
	if f.Country == "" {
		f.Country = stateCountry(mrz.IssuingState)
	}
	if f.DocumentType == DocumentTypeUnknown {
		if mrz.Format == MRZFormatTD3 {
			f.DocumentType = DocumentTypePassport
		} else {
			f.DocumentType = DocumentTypeNationalID
		}
	}
	if f.ID == nil || f.ID.Method == MethodFallback {
		kind := "DOCUMENT_NUMBER"
		if mrz.Format == MRZFormatTD3 {
			kind = "PASSPORT"
		}
		f.ID = &IDMatch{
			Kind:       kind,
			Value:      mrz.DocumentNumber,
			Method:     MethodMRZ,
			Confidence: ConfidenceMRZ,
			Country:    stateCountry(mrz.IssuingState),
		}
	}
	if f.GivenNames == "" && f.Surnames == "" {
		f.GivenNames, f.Surnames = mrz.GivenNames, mrz.Surnames
	}
	if f.BirthDate == nil || !f.BirthDate.Resolved() {
		birth := mrz.BirthDate
		f.BirthDate = &birth
	}
	if f.ExpiryDate == nil || !f.ExpiryDate.Resolved() {
		expiry := mrz.ExpiryDate
		f.ExpiryDate = &expiry
	}
	if f.Sex == "" {
		f.Sex = mrz.Sex
	}
	if f.Nationality == "" {
		f.Nationality = stateCountry(mrz.Nationality)
	}
}

func warnings(f Fields) []string {
	var out []string
	if f.Country == "" {
		out = append(out, WarningUnknownCountry)
	}
	switch {
	case f.ID == nil:
		out = append(out, WarningNoID)
	case f.ID.Method == MethodFallback:
		out = append(out, WarningFallbackID)
	}
	if f.FullName == "" {
		out = append(out, WarningNoNames)
	}
	out = appendDateWarning(out, f.BirthDate, WarningAmbiguousBirth, WarningInvalidBirth)
	out = appendDateWarning(out, f.ExpiryDate, WarningAmbiguousExp, WarningInvalidExp)
	out = appendDateWarning(out, f.IssueDate, WarningAmbiguousIssue, WarningInvalidIssue)
	return out
}

func appendDateWarning(out []string, d *dates.Result, ambiguous, invalid string) []string {
	switch {
	case d == nil:
		return out
	case d.Ambiguous:
		return append(out, ambiguous)
	case d.Format == dates.FormatInvalid:
		return append(out, invalid)
	}
	return out
}
