package movimentacao

import (
	"errors"

	"github.com/KromaEnergia/api-contratos/internal/formato"
	"github.com/shopspring/decimal"
)

var (
	ErrBaixaInvalida        = errors.New("a baixa exige pago=true")
	ErrEstornoNaoSuportado  = errors.New("não é permitido estornar uma movimentação já quitada")
	ErrValorEfetivoNegativo = errors.New("valor efetivo não pode ser negativo")
)

// BaixaMovimentacao é o corpo de PATCH /movimentacoes/{id}/baixa.
type BaixaMovimentacao struct {
	Pago          bool             `json:"pago"`
	DataPagamento *formato.Data    `json:"dataPagamento,omitempty"`
	ValorEfetivo  *decimal.Decimal `json:"valorEfetivo,omitempty"`
}

// Baixar quita a movimentação. Sem data de pagamento vale hoje; sem valor
// efetivo vale o total corrigido. Uma nova baixa sobre uma movimentação já
// quitada apenas atualiza data e valor.
func (m *Movimentacao) Baixar(b BaixaMovimentacao, hoje formato.Data) error {
	if !b.Pago {
		if m.Pago {
			return ErrEstornoNaoSuportado
		}
		return ErrBaixaInvalida
	}
	if b.ValorEfetivo != nil && b.ValorEfetivo.IsNegative() {
		return ErrValorEfetivoNegativo
	}

	data := hoje
	if b.DataPagamento != nil && !b.DataPagamento.IsZero() {
		data = *b.DataPagamento
	}
	valor := m.Corrigido()
	if b.ValorEfetivo != nil {
		valor = *b.ValorEfetivo
	}

	m.Pago = true
	m.DataPagamento = &data
	m.ValorEfetivo = &valor
	m.Derivar(hoje)
	return nil
}
