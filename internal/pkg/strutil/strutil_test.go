//go:build unit
// +build unit

package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToInt(t *testing.T) {
	assert.Equal(t, 25, ConvertToInt("25"))
	assert.Equal(t, 7, ConvertToInt(" 7 "))
	assert.Equal(t, 0, ConvertToInt("ten"))
	assert.Equal(t, 0, ConvertToInt(""))
}

func TestFoldUpper(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Cédula de Ciudadanía", "CEDULA DE CIUDADANIA"},
		{"NÚMERO", "NUMERO"},
		{"Peña", "PENA"},
		{"Março", "MARCO"},
		{"emissão", "EMISSAO"},
		{"plain", "PLAIN"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FoldUpper(tt.in))
		})
	}
}

func TestDigits(t *testing.T) {
	assert.True(t, IsDigits("0123"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("12a"))
	assert.Equal(t, "12345678909", OnlyDigits("123.456.789-09"))
	assert.Equal(t, "", OnlyDigits("abc"))
}
