package fields

// countryKeywords are phrases that give away the issuing country. Longer
// phrases weigh more.
var countryKeywords = map[string]labelMatcher{
	"MX": newLabelMatcher("ESTADOS UNIDOS MEXICANOS", "INSTITUTO NACIONAL ELECTORAL",
		"INSTITUTO FEDERAL ELECTORAL", "CREDENCIAL PARA VOTAR", "MEXICO", "MEXICANA", "CURP"),
	"CO": newLabelMatcher("REPUBLICA DE COLOMBIA", "REGISTRADURIA NACIONAL", "COLOMBIA", "NUIP"),
	"BR": newLabelMatcher("REPUBLICA FEDERATIVA DO BRASIL", "CARTEIRA DE IDENTIDADE",
		"REGISTRO GERAL", "BRASIL", "CPF"),
	"GT": newLabelMatcher("REPUBLICA DE GUATEMALA", "GUATEMALA", "RENAP", "CUI"),
	"SV": newLabelMatcher("REPUBLICA DE EL SALVADOR", "EL SALVADOR", "DOCUMENTO UNICO DE IDENTIDAD", "DUI"),
	"HN": newLabelMatcher("REPUBLICA DE HONDURAS", "HONDURAS", "REGISTRO NACIONAL DE LAS PERSONAS"),
	"PE": newLabelMatcher("REPUBLICA DEL PERU", "PERU", "RENIEC"),
	"US": newLabelMatcher("UNITED STATES OF AMERICA", "UNITED STATES", "USA",
		"DRIVER LICENSE", "DRIVER'S LICENSE", "SOCIAL SECURITY"),
}

// DetectCountry guesses the issuing country of a transcription from the
// phrases printed on it. It returns an empty string when nothing matches.
func DetectCountry(text string) string {
	return detectCountry(NormalizeText(text))
}

func detectCountry(norm string) string {
	best, bestScore := "", 0
	for _, country := range countryOrder {
		score := 0
		for _, kw := range countryKeywords[country].all(norm) {
			score += len(kw)
		}
		if score > bestScore {
			best, bestScore = country, score
		}
	}
	return best
}

// documentTypeKeywords is checked in order. Residence permits come before
// national IDs because their titles contain the same words.
var documentTypeKeywords = []struct {
	docType DocumentType
	labels  labelMatcher
}{
	{DocumentTypePassport, newLabelMatcher("PASAPORTE", "PASSPORT", "PASSAPORTE")},
	{DocumentTypeDriverLicense, newLabelMatcher("LICENCIA DE CONDUCIR", "LICENCIA DE CONDUCCION",
		"LICENCIA DE MANEJO", "DRIVER LICENSE", "DRIVER'S LICENSE", "DRIVERS LICENSE",
		"CARTEIRA NACIONAL DE HABILITACAO", "CNH")},
	{DocumentTypeResidencePermit, newLabelMatcher("PERMANENT RESIDENT", "RESIDENT CARD",
		"CEDULA DE EXTRANJERIA", "CARNE DE EXTRANJERIA", "RESIDENTE PERMANENTE", "RESIDENTE TEMPORAL")},
	{DocumentTypeNationalID, newLabelMatcher("CREDENCIAL PARA VOTAR", "CEDULA DE CIUDADANIA",
		"DOCUMENTO NACIONAL DE IDENTIDAD", "DOCUMENTO UNICO DE IDENTIDAD",
		"DOCUMENTO PERSONAL DE IDENTIFICACION", "CARTEIRA DE IDENTIDADE", "REGISTRO GERAL",
		"TARJETA DE IDENTIDAD", "IDENTIFICATION CARD", "DNI", "DUI", "DPI", "INE")},
}

// DetectDocumentType classifies a transcription by its title.
func DetectDocumentType(text string) DocumentType {
	return detectDocumentType(NormalizeText(text))
}

func detectDocumentType(norm string) DocumentType {
	for _, dt := range documentTypeKeywords {
		if len(dt.labels.all(norm)) > 0 {
			return dt.docType
		}
	}
	return DocumentTypeUnknown
}
