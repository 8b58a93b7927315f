package forms

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCPF(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"":               "",
		"123":            "123",
		"1234":           "123.4",
		"1234567":        "123.456.7",
		"1234567890":     "123.456.789-0",
		"12345678900":    "123.456.789-00",
		"123.456.789-00": "123.456.789-00",
		"123456789001":   "123456789001",
	} {
		assert.Equal(t, want, FormatCPF(in), in)
	}
}

func TestFormatPhone(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"11":              "11",
		"119":             "(11) 9",
		"1198765":         "(11) 98765",
		"11987654":        "(11) 98765-4",
		"11987654321":     "(11) 98765-4321",
		"(11) 98765-4321": "(11) 98765-4321",
	} {
		assert.Equal(t, want, FormatPhone(in), in)
	}
}

func TestFormatCEP(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "01310", FormatCEP("01310"))
	assert.Equal(t, "01310-0", FormatCEP("013100"))
	assert.Equal(t, "01310-000", FormatCEP("01310000"))
	assert.Equal(t, "01310-000", FormatCEP("01310-0009"))
}

func TestPatterns(t *testing.T) {
	t.Parallel()

	assert.True(t, CPFRX.MatchString("123.456.789-00"))
	assert.False(t, CPFRX.MatchString("12345678900"))
	assert.True(t, PhoneRX.MatchString("(11) 98765-4321"))
	assert.False(t, PhoneRX.MatchString("11 98765-4321"))
	assert.True(t, EmailRX.MatchString("maria@example.com"))
	assert.False(t, EmailRX.MatchString("maria@"))
}

func TestFormValidation(t *testing.T) {
	t.Parallel()

	f := New(url.Values{
		"name":  {"Maria"},
		"email": {""},
		"cpf":   {"12345678900"},
		"phone": {"(11) 98765-4321"},
	})
	f.Required("name", "email", "cpf", "phone")
	f.MatchesPattern("cpf", CPFRX, "CPF inválido")
	f.MatchesPattern("phone", PhoneRX, "Telefone inválido")
	f.MatchesPattern("email", EmailRX, "Email inválido")

	assert.False(t, f.Valid())
	assert.Equal(t, "Campo obrigatório", f.Errors.Get("email"))
	assert.Equal(t, "CPF inválido", f.Errors.Get("cpf"))
	assert.Empty(t, f.Errors.Get("phone"))
	assert.Equal(t, "CPF inválido", f.FirstError("name", "cpf", "email"))
}
