package formato

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatarMoeda(t *testing.T) {
	casos := map[string]string{
		"0":          "0,00",
		"1234.56":    "1.234,56",
		"1234.5":     "1.234,50",
		"9999999.99": "9.999.999,99",
		"0.07":       "0,07",
	}
	for entrada, esperado := range casos {
		assert.Equal(t, esperado, FormatarMoeda(decimal.RequireFromString(entrada)), entrada)
	}
	assert.Equal(t, "R$ 10,00", FormatarMoedaComSimbolo(decimal.NewFromInt(10)))
}

func TestReformatarMoedaEhIdempotente(t *testing.T) {
	for _, s := range []string{"1.234,56", "0,00", "9.999.999,99", "15,30"} {
		v, err := ParseMoeda(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatarMoeda(v))
	}
}

func TestParseMoedaInvalida(t *testing.T) {
	_, err := ParseMoeda("abc")
	assert.ErrorIs(t, err, ErrValorInvalido)
	_, err = ParseMoeda("  ")
	assert.ErrorIs(t, err, ErrValorInvalido)
}

func TestValorDigitado(t *testing.T) {
	assert.True(t, ValorDigitado("123456").Equal(decimal.RequireFromString("1234.56")))
	assert.True(t, ValorDigitado("R$ 1.234,56").Equal(decimal.RequireFromString("1234.56")))
	assert.True(t, ValorDigitado("").IsZero())
	assert.True(t, ValorDigitado("abc").IsZero())
	assert.True(t, ValorDigitado("0005").Equal(decimal.RequireFromString("0.05")))
	assert.True(t, ValorDigitado("99999999").Equal(decimal.RequireFromString("999999.99")))
}

func TestValorDigitadoLimitaNoMaximo(t *testing.T) {
	assert.True(t, ValorDigitado("999999999").Equal(ValorMaximo))
	assert.True(t, ValorDigitado("9999999999").Equal(ValorMaximo))
	assert.True(t, ValorDigitado("123456789012345678").Equal(ValorMaximo))
}

func TestNormalizarData(t *testing.T) {
	s, err := NormalizarData("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", s)

	s, err = NormalizarData("2024-03-09T23:30:00-03:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", s)

	s, err = NormalizarData("09/03/2024")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", s)

	for _, inexistente := range []string{"2024-02-30", "2023-02-29", "2024-13-01", "2024-04-31T10:00:00Z"} {
		_, err = NormalizarData(inexistente)
		assert.ErrorIs(t, err, ErrDataInvalida, inexistente)
	}
	s, err = NormalizarData("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", s)

	_, err = NormalizarData("março")
	assert.ErrorIs(t, err, ErrDataInvalida)
}

func TestNormalizarDataEhIdempotente(t *testing.T) {
	primeira, err := NormalizarData("31/12/2023")
	require.NoError(t, err)
	segunda, err := NormalizarData(primeira)
	require.NoError(t, err)
	assert.Equal(t, primeira, segunda)
}

func TestDataJSON(t *testing.T) {
	var v struct {
		Inicio Data  `json:"inicio"`
		Fim    *Data `json:"fim,omitempty"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"inicio":"2024-02-29"}`), &v))
	assert.Equal(t, NovaData(2024, time.February, 29), v.Inicio)
	assert.Nil(t, v.Fim)

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"inicio":"2024-02-29"}`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`{"inicio":"2024-13-40"}`), &v))
}

func TestDataDeIgnoraHorario(t *testing.T) {
	sp := time.FixedZone("BRT", -3*3600)
	d := DataDe(time.Date(2024, time.May, 10, 23, 59, 0, 0, sp))
	assert.Equal(t, "2024-05-10", d.String())
	assert.Equal(t, "10/05/2024", FormatarData(d))
}

func TestDiasEntre(t *testing.T) {
	a := NovaData(2024, time.January, 30)
	assert.Equal(t, 2, DiasEntre(a, NovaData(2024, time.February, 1)))
	assert.Equal(t, -1, DiasEntre(a, NovaData(2024, time.January, 29)))
	assert.Equal(t, 0, DiasEntre(a, a))
}
