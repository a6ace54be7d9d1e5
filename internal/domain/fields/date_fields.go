package fields

import (
	"regexp"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/dates"
)

var (
	birthLabels = newLabelMatcher("FECHA DE NACIMIENTO", "FECHA NACIMIENTO", "FECHA NAC", "FEC NAC", "F. NAC",
		"NACIMIENTO", "DATA DE NASCIMENTO", "NASCIMENTO", "DATE OF BIRTH", "BIRTH DATE", "DOB")
	expiryLabels = newLabelMatcher("FECHA DE VENCIMIENTO", "VENCIMIENTO", "FECHA DE EXPIRACION", "EXPIRACION",
		"FECHA DE CADUCIDAD", "CADUCIDAD", "VALIDO HASTA", "VIGENCIA", "VALIDADE", "DATE OF EXPIRY",
		"EXPIRATION DATE", "EXPIRY", "EXPIRES", "EXP")
	issueLabels = newLabelMatcher("FECHA DE EXPEDICION", "EXPEDICION", "FECHA DE EMISION", "EMISION",
		"DATA DE EMISSAO", "EMISSAO", "DATA DE EXPEDICAO", "EXPEDICAO", "DATE OF ISSUE", "ISSUE DATE",
		"ISSUED", "ISS")

	// dateTokenRe finds date-like tokens in raw and normalized lines alike.
	// The month-first form only starts on a known month name so labels such
	// as EXP 08/31/2027 are not read as a month.
	dateTokenRe = regexp.MustCompile(`(?i)\d{4}[/\-. ]\d{1,2}[/\-. ]\d{1,2}` +
		`|\d{1,2}[/\-. ]\d{1,2}[/\-. ]\d{2,4}` +
		`|\b\d{1,2}[/\-. ]*(?:de )?\p{L}{3,10}\.?[/\-. ]*(?:del? )?\d{2}(?:\d{2})?\b` +
		`|\b(?:` + dates.MonthNamePattern() + `)\p{L}{0,7}\.?[/\-. ]*\d{1,2},?[/\-. ]*\d{2}(?:\d{2})?\b` +
		`|\b\d{8}\b`)
)

// FindDates returns the birth, expiry and issue dates printed after their
// labels. Each value is parsed with dates.Parse using country as the hint and
// keeps the token exactly as it appears in text.
func FindDates(text, country string) Dates {
	return findDates(newDocument(text), dates.NormalizeCountry(country))
}

func findDates(doc *document, country string) Dates {
	return Dates{
		Birth:  labelledDate(doc, birthLabels, country),
		Expiry: labelledDate(doc, expiryLabels, country),
		Issue:  labelledDate(doc, issueLabels, country),
	}
}

func labelledDate(doc *document, labels labelMatcher, country string) *dates.Result {
	for i, line := range doc.norm {
		_, end, ok := labels.find(line)
		if !ok {
			continue
		}
		if raw, ok := dateAfter(doc, i, end); ok {
			res := dates.Parse(raw, country)
			return &res
		}
		if j := doc.next(i); j >= 0 {
			if raw, ok := dateAfter(doc, j, 0); ok {
				res := dates.Parse(raw, country)
				return &res
			}
		}
	}
	return nil
}

// dateAfter returns the first date token at or after offset in normalized
// line i, as printed in the raw line. Folding accents does not change the
// order of tokens, so the n-th normalized token is the n-th raw one.
func dateAfter(doc *document, i, offset int) (string, bool) {
	normTokens := dateTokenRe.FindAllStringIndex(doc.norm[i], -1)
	for n, loc := range normTokens {
		if loc[0] < offset {
			continue
		}
		rawTokens := dateTokenRe.FindAllString(doc.raw[i], -1)
		if len(rawTokens) == len(normTokens) {
			return rawTokens[n], true
		}
		return doc.norm[i][loc[0]:loc[1]], true
	}
	return "", false
}
