package fields

import (
	"regexp"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/dates"
)

// FindID locates the identity number of a document issued by country. An
// empty country searches every table in a fixed order.
//
// Values printed after one of their keywords, on the same line or the next
// one, are returned with ConfidenceKeyword. Only when no pattern matches that
// way is a bare value of the right shape accepted, with ConfidenceFallback.
// FindID returns nil when nothing matches.
func FindID(text, country string) *IDMatch {
	return findID(newDocument(text), dates.NormalizeCountry(country))
}

func findID(doc *document, country string) *IDMatch {
	countries := countryOrder
	if country != "" {
		countries = []string{country}
	}

	for _, c := range countries {
		for _, p := range idTables[c] {
			if v, ok := keywordValue(doc, p); ok {
				return &IDMatch{Kind: p.Kind, Value: v, Method: MethodKeyword, Confidence: ConfidenceKeyword, Country: c}
			}
		}
	}

	for _, c := range countries {
		for _, p := range idTables[c] {
			if v, ok := fallbackValue(doc, p); ok {
				return &IDMatch{Kind: p.Kind, Value: v, Method: MethodFallback, Confidence: ConfidenceFallback, Country: c}
			}
		}
	}

	return nil
}

// keywordValue looks for the value after each occurrence of a keyword, then
// on the next non-empty line.
func keywordValue(doc *document, p *IDPattern) (string, bool) {
	for i, line := range doc.norm {
		_, end, ok := p.keywords.find(line)
		if !ok {
			continue
		}
		if v, ok := firstValid(p, p.Pattern, line[end:]); ok {
			return v, true
		}
		if j := doc.next(i); j >= 0 {
			if v, ok := firstValid(p, p.Pattern, doc.norm[j]); ok {
				return v, true
			}
		}
	}
	return "", false
}

func fallbackValue(doc *document, p *IDPattern) (string, bool) {
	if p.Fallback == nil {
		return "", false
	}
	for _, line := range doc.norm {
		for _, m := range tokens(p.Fallback, line) {
			// eight digit runs are often compact dates
			if len(m) == 8 && dates.Parse(m, "").Format != dates.FormatInvalid {
				continue
			}
			if v, ok := p.normalize(m); ok {
				return v, true
			}
		}
	}
	return "", false
}

func firstValid(p *IDPattern, re *regexp.Regexp, s string) (string, bool) {
	for _, m := range tokens(re, s) {
		if v, ok := p.normalize(m); ok {
			return v, true
		}
	}
	return "", false
}

// tokens returns the first group of every match of re in s. Unlike
// FindAllStringSubmatch it lets two values share the separator between them.
func tokens(re *regexp.Regexp, s string) []string {
	var out []string
	for pos := 0; pos < len(s); {
		loc := re.FindStringSubmatchIndex(s[pos:])
		if loc == nil {
			break
		}
		out = append(out, s[pos+loc[2]:pos+loc[3]])
		pos += loc[3]
	}
	return out
}
