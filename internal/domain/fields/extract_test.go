//go:build unit
// +build unit

package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/dates"
)

const mexicanVoterCard = `INSTITUTO NACIONAL ELECTORAL
MÉXICO
CREDENCIAL PARA VOTAR
NOMBRE
GÓMEZ
VELÁZQUEZ
MARGARITA
DOMICILIO
C GALEANA 214
CLAVE DE ELECTOR GMVLMR80070501M100
CURP GOVM800705MJCMLR05
FECHA DE NACIMIENTO 05/07/1980
SEXO M
VIGENCIA 2030`

const colombianIDCard = `REPUBLICA DE COLOMBIA
IDENTIFICACION PERSONAL
CEDULA DE CIUDADANIA
NUMERO 1.020.304.050
PEREZ GOMEZ
APELLIDOS
JUAN CARLOS
NOMBRES
FECHA DE NACIMIENTO 03/04/1990
SEXO M`

const usDriverLicense = `CALIFORNIA
DRIVER LICENSE
USA
DL D1234567
EXP 08/31/2027
LN DOE
FN JOHN
DOB 03/04/1985
ISS 09/01/2019
SEX M`

const mexicanPassport = `PASAPORTE
ESTADOS UNIDOS MEXICANOS
P<MEXGOMEZ<VELAZQUEZ<<MARGARITA<<<<<<<<<<<<<
G123456786MEX8007050F3001019<<<<<<<<<<<<<<04`

func TestExtract_MexicanVoterCard(t *testing.T) {
	f := Extract(mexicanVoterCard, "")

	assert.Equal(t, "MX", f.Country)
	assert.Equal(t, DocumentTypeNationalID, f.DocumentType)
	require.NotNil(t, f.ID)
	assert.Equal(t, "CURP", f.ID.Kind)
	assert.Equal(t, "GOVM800705MJCMLR05", f.ID.Value)
	assert.Equal(t, MethodKeyword, f.ID.Method)
	assert.Equal(t, ConfidenceKeyword, f.ID.Confidence)
	assert.Equal(t, "MARGARITA", f.GivenNames)
	assert.Equal(t, "GOMEZ VELAZQUEZ", f.Surnames)
	assert.Equal(t, "MARGARITA GOMEZ VELAZQUEZ", f.FullName)
	require.NotNil(t, f.BirthDate)
	assert.Equal(t, "05/07/1980", f.BirthDate.Original)
	assert.Equal(t, "1980-07-05", f.BirthDate.Normalized)
	assert.Equal(t, dates.ConfidenceHinted, f.BirthDate.Confidence)
	assert.Nil(t, f.ExpiryDate)
	assert.Equal(t, "F", f.Sex)
	assert.Empty(t, f.Warnings)
	assert.False(t, f.NeedsReview())
}

func TestExtract_ColombianIDCard(t *testing.T) {
	f := Extract(colombianIDCard, "")

	assert.Equal(t, "CO", f.Country)
	assert.Equal(t, DocumentTypeNationalID, f.DocumentType)
	require.NotNil(t, f.ID)
	assert.Equal(t, "CC", f.ID.Kind)
	assert.Equal(t, "1020304050", f.ID.Value)
	assert.Equal(t, "PEREZ GOMEZ", f.Surnames)
	assert.Equal(t, "JUAN CARLOS", f.GivenNames)
	require.NotNil(t, f.BirthDate)
	assert.Equal(t, dates.FormatDMY, f.BirthDate.Format)
	assert.Equal(t, "1990-04-03", f.BirthDate.Normalized)
	assert.Equal(t, "M", f.Sex)
	assert.Empty(t, f.Warnings)
}

func TestExtract_USDriverLicense(t *testing.T) {
	f := Extract(usDriverLicense, "")

	assert.Equal(t, "US", f.Country)
	assert.Equal(t, DocumentTypeDriverLicense, f.DocumentType)
	require.NotNil(t, f.ID)
	assert.Equal(t, "DL", f.ID.Kind)
	assert.Equal(t, "D1234567", f.ID.Value)
	assert.Equal(t, "JOHN", f.GivenNames)
	assert.Equal(t, "DOE", f.Surnames)
	require.NotNil(t, f.BirthDate)
	assert.Equal(t, dates.FormatMDY, f.BirthDate.Format)
	assert.Equal(t, "1985-03-04", f.BirthDate.Normalized)
	require.NotNil(t, f.ExpiryDate)
	assert.Equal(t, "2027-08-31", f.ExpiryDate.Normalized)
	assert.Equal(t, dates.ConfidenceCertain, f.ExpiryDate.Confidence)
	require.NotNil(t, f.IssueDate)
	assert.Equal(t, "2019-09-01", f.IssueDate.Normalized)
	assert.Equal(t, "M", f.Sex)
}

func TestExtract_PassportFilledFromMRZ(t *testing.T) {
	f := Extract(mexicanPassport, "")

	assert.Equal(t, "MX", f.Country)
	assert.Equal(t, DocumentTypePassport, f.DocumentType)
	require.NotNil(t, f.MRZ)
	assert.True(t, f.MRZ.Valid)
	require.NotNil(t, f.ID)
	assert.Equal(t, "PASSPORT", f.ID.Kind)
	assert.Equal(t, "G12345678", f.ID.Value)
	assert.Equal(t, MethodMRZ, f.ID.Method)
	assert.Equal(t, ConfidenceMRZ, f.ID.Confidence)
	assert.Equal(t, "MARGARITA", f.GivenNames)
	assert.Equal(t, "GOMEZ VELAZQUEZ", f.Surnames)
	require.NotNil(t, f.BirthDate)
	assert.Equal(t, "1980-07-05", f.BirthDate.Normalized)
	require.NotNil(t, f.ExpiryDate)
	assert.Equal(t, "2030-01-01", f.ExpiryDate.Normalized)
	assert.Equal(t, "F", f.Sex)
	assert.Equal(t, "MX", f.Nationality)
	assert.Empty(t, f.Warnings)
}

func TestExtract_AmbiguousWithoutCountry(t *testing.T) {
	f := Extract("FECHA DE NACIMIENTO 03/04/1990", "")

	assert.Empty(t, f.Country)
	assert.Nil(t, f.ID)
	require.NotNil(t, f.BirthDate)
	assert.True(t, f.BirthDate.Ambiguous)
	assert.Nil(t, f.BirthDate.Date)
	assert.Equal(t, "03/04/1990", f.BirthDate.Original)
	assert.Contains(t, f.Warnings, WarningAmbiguousBirth)
	assert.Contains(t, f.Warnings, WarningNoID)
	assert.Contains(t, f.Warnings, WarningUnknownCountry)
	assert.True(t, f.NeedsReview())
}

func TestExtract_CountryHintWins(t *testing.T) {
	text := "ESTADOS UNIDOS MEXICANOS\nFECHA DE NACIMIENTO 03/04/1990"

	f := Extract(text, "usa")

	assert.Equal(t, "US", f.Country)
	require.NotNil(t, f.BirthDate)
	assert.Equal(t, dates.FormatMDY, f.BirthDate.Format)
	assert.Equal(t, "1990-03-04", f.BirthDate.Normalized)
}

func TestExtract_InvalidMRZIsReported(t *testing.T) {
	text := "PASSPORT\n" +
		"P<UTOERIKSSON<<ANNA<MARIA<<<<<<<<<<<<<<<<<<<\n" +
		"L898902C37UTO7408122F1204159ZE184226B<<<<<10"

	f := Extract(text, "")

	require.NotNil(t, f.MRZ)
	assert.False(t, f.MRZ.Valid)
	assert.Nil(t, f.ID)
	assert.Contains(t, f.Warnings, WarningMRZChecksum)
}

func TestExtract_FallbackIDIsNotACountryHint(t *testing.T) {
	f := Extract("DOB 03/04/1990\nREF 45871236", "")

	require.NotNil(t, f.ID)
	assert.Equal(t, MethodFallback, f.ID.Method)
	assert.Empty(t, f.Country)
	require.NotNil(t, f.BirthDate)
	assert.Equal(t, dates.FormatAmbiguous, f.BirthDate.Format)
	assert.True(t, f.BirthDate.Ambiguous)
	assert.Zero(t, f.BirthDate.Confidence)
	assert.Contains(t, f.Warnings, WarningUnknownCountry)
	assert.True(t, f.NeedsReview())
}

func TestExtract_KeywordIDNamesTheCountry(t *testing.T) {
	f := Extract("CURP GOVM800705MJCMLR05\nFECHA DE NACIMIENTO 03/04/1990", "")

	assert.Equal(t, "MX", f.Country)
	require.NotNil(t, f.BirthDate)
	assert.Equal(t, dates.FormatDMY, f.BirthDate.Format)
	assert.Equal(t, "1990-04-03", f.BirthDate.Normalized)
}
