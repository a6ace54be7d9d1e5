//go:build unit
// +build unit

package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindID(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		country string
		kind    string
		value   string
		method  Method
	}{
		{"curp on keyword line", "CURP GOVM800705MJCMLR05", "MX", "CURP", "GOVM800705MJCMLR05", MethodKeyword},
		{"clave de elector", "Clave de Elector: GMVLMR80070501M100", "MX", "CLAVE_ELECTOR", "GMVLMR80070501M100", MethodKeyword},
		{"curp without label", "GOVM800705MJCMLR05", "MX", "CURP", "GOVM800705MJCMLR05", MethodFallback},
		{"nuip keyword", "NUIP 1020304050", "CO", "NUIP", "1020304050", MethodKeyword},
		{"cedula dotted", "C.C. 79.123.456", "CO", "CC", "79123456", MethodKeyword},
		{"nuip fallback", "REPUBLICA DE COLOMBIA\n1020304050", "CO", "NUIP", "1020304050", MethodFallback},
		{"cpf on next line", "CPF\n123.456.789-09", "BR", "CPF", "12345678909", MethodKeyword},
		{"cpf formatted fallback", "123.456.789-09", "BR", "CPF", "12345678909", MethodFallback},
		{"rg", "RG 12.345.678-X", "BR", "RG", "12345678X", MethodKeyword},
		{"cui grouped", "CUI 1234 56789 0101", "GT", "CUI", "1234567890101", MethodKeyword},
		{"dui", "DUI 02345678-9", "SV", "DUI", "023456789", MethodKeyword},
		{"honduran dni", "DNI 0801-1990-01234", "HN", "DNI", "0801199001234", MethodKeyword},
		{"peruvian dni", "DNI 45678912", "PE", "DNI", "45678912", MethodKeyword},
		{"driver licence", "DL D1234567", "US", "DL", "D1234567", MethodKeyword},
		{"ssn", "SSN 123-45-6789", "US", "SSN", "123456789", MethodKeyword},
		{"country alias", "SSN 123-45-6789", "Estados Unidos", "SSN", "123456789", MethodKeyword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindID(tt.text, tt.country)
			require.NotNil(t, got)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.value, got.Value)
			assert.Equal(t, tt.method, got.Method)
		})
	}
}

func TestFindID_KeywordBeatsFallback(t *testing.T) {
	got := FindID("1111111111\nNUIP 1020304050", "CO")

	require.NotNil(t, got)
	assert.Equal(t, "1020304050", got.Value)
	assert.Equal(t, MethodKeyword, got.Method)
	assert.Equal(t, ConfidenceKeyword, got.Confidence)
}

func TestFindID_FallbackSkipsCompactDates(t *testing.T) {
	got := FindID("NACIMIENTO 25031990\n45678912", "PE")

	require.NotNil(t, got)
	assert.Equal(t, "45678912", got.Value)
	assert.Equal(t, MethodFallback, got.Method)
	assert.Equal(t, ConfidenceFallback, got.Confidence)
}

func TestFindID_WrongLengthIsRejected(t *testing.T) {
	assert.Nil(t, FindID("DUI 1234", "SV"))
	assert.Nil(t, FindID("NUIP 12345", "CO"))
}

func TestFindID_UnknownCountrySearchesAllTables(t *testing.T) {
	got := FindID("CPF 123.456.789-09", "")

	require.NotNil(t, got)
	assert.Equal(t, "CPF", got.Kind)
	assert.Equal(t, "BR", got.Country)
}

func TestFindID_NoMatch(t *testing.T) {
	assert.Nil(t, FindID("HELLO WORLD", "MX"))
	assert.Nil(t, FindID("", ""))
}

func TestPatterns(t *testing.T) {
	for _, c := range SupportedCountries() {
		assert.NotEmpty(t, Patterns(c), c)
	}
	assert.Empty(t, Patterns("FR"))
}
