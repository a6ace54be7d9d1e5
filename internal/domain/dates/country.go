package dates

import (
	"strings"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/strutil"
)

// CountryUS is the only country whose documents print the month first.
const CountryUS = "US"

var countryAliases = map[string]string{
	"US":                       CountryUS,
	"USA":                      CountryUS,
	"EEUU":                     CountryUS,
	"EE UU":                    CountryUS,
	"EUA":                      CountryUS,
	"UNITED STATES":            CountryUS,
	"UNITED STATES OF AMERICA": CountryUS,
	"ESTADOS UNIDOS":           CountryUS,
	"MX":                       "MX",
	"MEX":                      "MX",
	"MEXICO":                   "MX",
	"CO":                       "CO",
	"COL":                      "CO",
	"COLOMBIA":                 "CO",
	"BR":                       "BR",
	"BRA":                      "BR",
	"BRASIL":                   "BR",
	"BRAZIL":                   "BR",
	"GT":                       "GT",
	"GTM":                      "GT",
	"GUATEMALA":                "GT",
	"SV":                       "SV",
	"SLV":                      "SV",
	"EL SALVADOR":              "SV",
	"HN":                       "HN",
	"HND":                      "HN",
	"HONDURAS":                 "HN",
	"PE":                       "PE",
	"PER":                      "PE",
	"PERU":                     "PE",
}

// NormalizeCountry maps a free-form country hint to its ISO 3166 alpha-2
// code. Unknown non-empty hints are returned upper-cased so they still count
// as a (non-US) hint.
func NormalizeCountry(hint string) string {
	key := strings.Join(strings.Fields(strings.ReplaceAll(strutil.FoldUpper(hint), ".", "")), " ")
	if key == "" {
		return ""
	}
	if code, ok := countryAliases[key]; ok {
		return code
	}
	return key
}
