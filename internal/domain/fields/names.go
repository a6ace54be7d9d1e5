package fields

import (
	"regexp"
	"strings"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/dates"
)

var (
	givenLabels = newLabelMatcher("NOMBRES", "NOMBRE", "NOMBRE(S)", "NAMES", "NAME", "NOME",
		"GIVEN NAMES", "GIVEN NAME", "PRENOMS", "FIRST NAME", "FN")
	surnameLabels = newLabelMatcher("APELLIDOS", "APELLIDO", "PRIMER APELLIDO", "SEGUNDO APELLIDO",
		"SURNAMES", "SURNAME", "SOBRENOME", "LAST NAME", "NOM", "LN")
	sexLabels         = newLabelMatcher("SEXO", "SEX", "SEXE")
	nationalityLabels = newLabelMatcher("NACIONALIDAD", "NACIONALIDADE", "NATIONALITY")

	nameLineRe = regexp.MustCompile(`^[A-Z][A-Z' \-]*[A-Z]$`)
	// leading punctuation between a label and its value
	labelSepRe = regexp.MustCompile(`^[\s:/\-.,]+`)
)

// nameStopWords never occur in a person's name but often sit next to one.
var nameStopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`REPUBLICA COLOMBIA MEXICO BRASIL GUATEMALA SALVADOR HONDURAS PERU
		ESTADOS UNIDOS UNITED STATES MEXICANOS FEDERATIVA IDENTIFICACION IDENTIDAD IDENTIDADE PERSONAL
		DOCUMENTO CEDULA CIUDADANIA CREDENCIAL VOTAR INSTITUTO NACIONAL ELECTORAL FEDERAL CLAVE ELECTOR
		DOMICILIO DIRECCION ADDRESS FECHA DATE NACIMIENTO NASCIMENTO BIRTH SEXO SEX NACIONALIDAD
		NATIONALITY FIRMA SIGNATURE DRIVER LICENSE LICENCIA PASAPORTE PASSPORT PASSAPORTE REGISTRO
		REGISTRADURIA CARTEIRA VIGENCIA EXPIRACION VENCIMIENTO EXPEDICION SECCION ESTADO MUNICIPIO
		LOCALIDAD EMISION CURP RENAP RENIEC NUIP CPF DUI DPI DNI`) {
		nameStopWords[w] = struct{}{}
	}
}

// FindNames returns the given names and surnames printed after their
// labels, either on the label line or on the next line. When the next line
// is not a name the line above the label is tried, as on documents that
// print the label under the value.
func FindNames(text string) (given, surnames string) {
	doc := newDocument(text)
	return findNames(doc, detectCountry(doc.text()))
}

func findNames(doc *document, country string) (given, surnames string) {
	surnames = labelledName(doc, surnameLabels)
	given = labelledName(doc, givenLabels)

	// Mexican voter cards print a single NOMBRE label followed by the first
	// surname, the second surname and the given names on separate lines.
	if country == "MX" && surnames == "" {
		if g, s, ok := mexicanNameBlock(doc); ok {
			return g, s
		}
	}
	return given, surnames
}

func labelledName(doc *document, labels labelMatcher) string {
	for i, line := range doc.norm {
		start, end, ok := labels.find(line)
		// labels start the line; "NAME" in the middle of a sentence is not one
		if !ok || strings.TrimSpace(line[:start]) != "" {
			continue
		}
		if v := cleanName(stripLabels(line[end:])); v != "" {
			return v
		}
		next, prev := doc.next(i), doc.prev(i)
		nextOK := next >= 0 && isNameLine(doc.norm[next])
		prevOK := prev >= 0 && isNameLine(doc.norm[prev])
		// a value followed by its own label means values sit above labels
		if prevOK && (!nextOK || isLabelOnly(doc, doc.next(next))) {
			return doc.norm[prev]
		}
		if nextOK {
			return doc.norm[next]
		}
	}
	return ""
}

func isLabelOnly(doc *document, i int) bool {
	if i < 0 {
		return false
	}
	line := doc.norm[i]
	return (givenLabels.match(line) || surnameLabels.match(line)) && stripLabels(line) == ""
}

func mexicanNameBlock(doc *document) (given, surnames string, ok bool) {
	for i, line := range doc.norm {
		if line != "NOMBRE" {
			continue
		}
		var block []string
		for j := doc.next(i); j >= 0 && len(block) < 3 && isNameLine(doc.norm[j]); j = doc.next(j) {
			block = append(block, doc.norm[j])
		}
		switch len(block) {
		case 3:
			return block[2], block[0] + " " + block[1], true
		case 2:
			return block[1], block[0], true
		}
	}
	return "", "", false
}

// stripLabels drops separators and any further labels after a label, as in
// "APELLIDOS / SURNAME".
func stripLabels(rest string) string {
	for {
		rest = labelSepRe.ReplaceAllString(rest, "")
		start, end, ok := givenLabels.find(rest)
		if !ok || start != 0 {
			start, end, ok = surnameLabels.find(rest)
		}
		if !ok || start != 0 {
			return rest
		}
		rest = rest[end:]
	}
}

func cleanName(s string) string {
	s = strings.TrimSpace(s)
	if !isNameLine(s) {
		return ""
	}
	return s
}

func isNameLine(line string) bool {
	if len(line) < 2 || !nameLineRe.MatchString(line) {
		return false
	}
	if givenLabels.match(line) || surnameLabels.match(line) {
		return false
	}
	for _, w := range strings.Fields(line) {
		if _, stop := nameStopWords[w]; stop {
			return false
		}
	}
	return true
}

// fullName joins given names and surnames in reading order.
func fullName(given, surnames string) string {
	return strings.TrimSpace(given + " " + surnames)
}

// findSex returns M or F. Mexican documents use H (hombre) and M (mujer).
func findSex(doc *document, country string) string {
	v := labelledWord(doc, sexLabels)
	switch v {
	case "MASCULINO", "HOMBRE", "MALE":
		return "M"
	case "FEMENINO", "FEMININO", "MUJER", "FEMALE":
		return "F"
	case "H":
		return "M"
	case "F":
		return "F"
	case "M":
		if country == "MX" {
			return "F"
		}
		return "M"
	}
	return ""
}

func findNationality(doc *document) string {
	v := labelledWord(doc, nationalityLabels)
	if v == "" {
		return ""
	}
	if code := dates.NormalizeCountry(v); len(code) == 2 {
		return code
	}
	return v
}

// labelledWord returns the first word after a label, on the same line or the
// next one.
func labelledWord(doc *document, labels labelMatcher) string {
	for i, line := range doc.norm {
		_, end, ok := labels.find(line)
		if !ok {
			continue
		}
		if w := firstWord(line[end:]); w != "" {
			return w
		}
		if j := doc.next(i); j >= 0 {
			if w := firstWord(doc.norm[j]); w != "" {
				return w
			}
		}
	}
	return ""
}

func firstWord(s string) string {
	fields := strings.Fields(labelSepRe.ReplaceAllString(s, ""))
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], ":/.,")
}
