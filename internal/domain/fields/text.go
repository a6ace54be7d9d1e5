package fields

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/strutil"
)

// document keeps the raw and the normalized lines of a transcription aligned
// by index, so values located in the normalized text can be reported as
// printed.
type document struct {
	raw  []string
	norm []string
}

func newDocument(text string) *document {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	doc := &document{raw: make([]string, len(raw)), norm: make([]string, len(raw))}
	for i, line := range raw {
		doc.raw[i] = strings.TrimSpace(line)
		doc.norm[i] = normalizeLine(line)
	}
	return doc
}

// next returns the index of the first non-empty line after i, or -1.
func (d *document) next(i int) int {
	for j := i + 1; j < len(d.norm); j++ {
		if d.norm[j] != "" {
			return j
		}
	}
	return -1
}

// prev returns the index of the last non-empty line before i, or -1.
func (d *document) prev(i int) int {
	for j := i - 1; j >= 0; j-- {
		if d.norm[j] != "" {
			return j
		}
	}
	return -1
}

func (d *document) text() string {
	return strings.Join(d.norm, "\n")
}

// NormalizeText upper-cases text, strips its accents and collapses runs of
// spaces. Line breaks are kept and blank lines dropped.
func NormalizeText(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if n := normalizeLine(line); n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, "\n")
}

func normalizeLine(line string) string {
	return strings.Join(strings.Fields(strutil.FoldUpper(line)), " ")
}

// labelMatcher finds any of a set of labels as whole words.
type labelMatcher struct {
	re *regexp.Regexp
}

// newLabelMatcher compiles the labels longest first so that "NOMBRES" wins
// over "NOMBRE".
func newLabelMatcher(labels ...string) labelMatcher {
	sorted := append([]string(nil), labels...)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	quoted := make([]string, len(sorted))
	for i, l := range sorted {
		quoted[i] = regexp.QuoteMeta(l)
	}
	return labelMatcher{re: regexp.MustCompile(`(?:^|[^A-Z0-9])(` + strings.Join(quoted, "|") + `)(?:[^A-Z0-9]|$)`)}
}

// find returns the start and end offsets of the first label in line.
func (m labelMatcher) find(line string) (start, end int, ok bool) {
	loc := m.re.FindStringSubmatchIndex(line)
	if loc == nil {
		return 0, 0, false
	}
	return loc[2], loc[3], true
}

func (m labelMatcher) match(line string) bool {
	return m.re.MatchString(line)
}

// all returns every label present in text.
func (m labelMatcher) all(text string) []string {
	var found []string
	for _, line := range strings.Split(text, "\n") {
		// labels may share a separator, so re-scan after each hit
		for rest := line; ; {
			start, end, ok := m.find(rest)
			if !ok {
				break
			}
			found = append(found, rest[start:end])
			rest = rest[end:]
		}
	}
	return found
}
