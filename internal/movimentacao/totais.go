package movimentacao

import "github.com/shopspring/decimal"

// Totais agrega o conjunto filtrado exibido no rodapé da listagem.
type Totais struct {
	ValorTotal     decimal.Decimal `json:"valorTotal"`
	ValorQuitado   decimal.Decimal `json:"valorQuitado"`
	ValorEmAberto  decimal.Decimal `json:"valorEmAberto"`
	TotalJuros     decimal.Decimal `json:"totalJuros"`
	TotalMulta     decimal.Decimal `json:"totalMulta"`
	TotalCorrigido decimal.Decimal `json:"totalCorrigido"`
}

// CalcularTotais soma valores de face, juros, multa e corrigido. Quitado usa o
// valor efetivo quando houver; em aberto soma o corrigido do que não foi pago.
func CalcularTotais(ms []Movimentacao) Totais {
	t := Totais{
		ValorTotal:     decimal.Zero,
		ValorQuitado:   decimal.Zero,
		ValorEmAberto:  decimal.Zero,
		TotalJuros:     decimal.Zero,
		TotalMulta:     decimal.Zero,
		TotalCorrigido: decimal.Zero,
	}
	for _, m := range ms {
		corrigido := m.Corrigido()
		t.ValorTotal = t.ValorTotal.Add(m.Valor)
		t.TotalJuros = t.TotalJuros.Add(m.ValorJuros)
		t.TotalMulta = t.TotalMulta.Add(m.ValorMulta)
		t.TotalCorrigido = t.TotalCorrigido.Add(corrigido)
		if !m.Pago {
			t.ValorEmAberto = t.ValorEmAberto.Add(corrigido)
			continue
		}
		if m.ValorEfetivo != nil {
			t.ValorQuitado = t.ValorQuitado.Add(*m.ValorEfetivo)
		} else {
			t.ValorQuitado = t.ValorQuitado.Add(corrigido)
		}
	}
	return t
}
