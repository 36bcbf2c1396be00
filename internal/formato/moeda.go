package formato

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	ErrValorInvalido = errors.New("valor monetário inválido")

	// ValorMaximo é o teto aceito nos campos de valor dos itens. Como os
	// dígitos digitados são centavos, "99999999" ainda vale 999999,99 e só
	// a partir de nove noves o valor fica preso em 9.999.999,99.
	ValorMaximo = decimal.RequireFromString("9999999.99")
)

// FormatarMoeda exibe o valor no padrão brasileiro, ex.: 1.234,56.
func FormatarMoeda(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	p := message.NewPrinter(language.BrazilianPortuguese)
	return p.Sprint(number.Decimal(f, number.Scale(2)))
}

// FormatarMoedaComSimbolo é FormatarMoeda com o prefixo "R$ ".
func FormatarMoedaComSimbolo(v decimal.Decimal) string {
	return "R$ " + FormatarMoeda(v)
}

// ParseMoeda lê um valor no padrão brasileiro ("1.234,56", "R$ 10,00", "1234,5").
func ParseMoeda(s string) (decimal.Decimal, error) {
	limpo := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	limpo = strings.ReplaceAll(limpo, ".", "")
	limpo = strings.ReplaceAll(limpo, ",", ".")
	if limpo == "" {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrValorInvalido, s)
	}
	v, err := decimal.NewFromString(limpo)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrValorInvalido, s)
	}
	return v, nil
}

// ValorDigitado interpreta o texto bruto de um campo de valor como centavos:
// só os dígitos contam, o resultado é dígitos/100 limitado a [0, ValorMaximo].
// Assim qualquer sequência de teclas produz um valor válido.
func ValorDigitado(bruto string) decimal.Decimal {
	var b strings.Builder
	for _, r := range bruto {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digitos := strings.TrimLeft(b.String(), "0")
	if digitos == "" {
		return decimal.Zero
	}
	v := decimal.RequireFromString(digitos).Shift(-2)
	if v.GreaterThan(ValorMaximo) {
		return ValorMaximo
	}
	return v
}
