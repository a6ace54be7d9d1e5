//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Country string `validate:"omitempty,countryCode"`
	Format  string `validate:"required,dateFormat"`
	Field   string `validate:"required,dateField"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   sample
		wantErr string
	}{
		{"valid", sample{Country: "MX", Format: "DD/MM/YYYY", Field: "birth_date"}, ""},
		{"empty country", sample{Format: "MM/DD/YYYY", Field: "expiry_date"}, ""},
		{"year first", sample{Format: "YYYY-MM-DD", Field: "issue_date"}, ""},
		{"lower case country", sample{Country: "mx", Format: "DD/MM/YYYY", Field: "birth_date"}, "Tag: countryCode"},
		{"long country", sample{Country: "MEX", Format: "DD/MM/YYYY", Field: "birth_date"}, "Tag: countryCode"},
		{"ambiguous is not a choice", sample{Format: "AMBIGUOUS", Field: "birth_date"}, "Tag: dateFormat"},
		{"unknown field", sample{Format: "DD/MM/YYYY", Field: "death_date"}, "Tag: dateField"},
		{"missing format", sample{Field: "birth_date"}, "Tag: required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNew(t *testing.T) {
	validate, err := New()
	require.NoError(t, err)

	assert.NoError(t, validate.Var("BR", CountryCodeTag))
	assert.Error(t, validate.Var("BRA", CountryCodeTag))
}

func TestStruct_ReusesValidator(t *testing.T) {
	first, err := shared()
	require.NoError(t, err)

	require.NoError(t, Struct(&sample{Format: "DD/MM/YYYY", Field: "birth_date"}))

	second, err := shared()
	require.NoError(t, err)
	assert.Same(t, first, second)
}
