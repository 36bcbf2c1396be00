package movimentacao

import (
	"github.com/KromaEnergia/api-contratos/internal/formato"
	"github.com/shopspring/decimal"
)

// Situacao é o estado da movimentação. Quitada é terminal.
type Situacao int

const (
	EmAberto Situacao = iota
	EmAtraso
	Quitada
)

// Rótulos exibidos e aceitos no filtro de status.
const (
	RotuloEmAberto = "EM ABERTO"
	RotuloEmAtraso = "EM ATRASO"
	RotuloPago     = "PAGO"
	RotuloRecebido = "RECEBIDO"
)

// Classificar: quitada se Pago; senão em aberto até o dia do vencimento
// (inclusive) e em atraso a partir do dia seguinte.
func Classificar(m Movimentacao, hoje formato.Data) Situacao {
	switch {
	case m.Pago:
		return Quitada
	case hoje.After(m.DataVencimento):
		return EmAtraso
	default:
		return EmAberto
	}
}

// Rotulo traduz a situação para o texto exibido; a quitação de um
// recebível aparece como RECEBIDO e a de uma conta a pagar como PAGO.
func Rotulo(s Situacao, tipo TipoMovimentacao) string {
	switch s {
	case Quitada:
		if tipo == TipoReceber {
			return RotuloRecebido
		}
		return RotuloPago
	case EmAtraso:
		return RotuloEmAtraso
	default:
		return RotuloEmAberto
	}
}

// CalcularDiasAtraso conta os dias inteiros após o vencimento: até hoje se em
// aberto, até o pagamento se quitada. Nunca negativo.
func CalcularDiasAtraso(m Movimentacao, hoje formato.Data) int {
	fim := hoje
	if m.Pago {
		if m.DataPagamento == nil || m.DataPagamento.IsZero() {
			return 0
		}
		fim = *m.DataPagamento
	}
	if d := formato.DiasEntre(m.DataVencimento, fim); d > 0 {
		return d
	}
	return 0
}

// Corrigido é valor de face + juros + multa.
func (m Movimentacao) Corrigido() decimal.Decimal {
	return m.Valor.Add(m.ValorJuros).Add(m.ValorMulta)
}

// Derivar preenche os campos calculados para exibição.
func (m *Movimentacao) Derivar(hoje formato.Data) {
	m.DiasAtraso = CalcularDiasAtraso(*m, hoje)
	m.ValorCorrigido = m.Corrigido()
	m.Status = Rotulo(Classificar(*m, hoje), m.Tipo)
}

// Estilos de exibição por status.
const (
	CorSucesso = "success"
	CorInfo    = "info"
	CorPerigo  = "danger"
	CorPadrao  = "default"
)

var coresStatus = map[string]string{
	RotuloPago:     CorSucesso,
	RotuloRecebido: CorSucesso,
	RotuloEmAberto: CorInfo,
	RotuloEmAtraso: CorPerigo,
}

// CorStatus é uma tabela fixa; rótulo desconhecido recebe o estilo padrão.
func CorStatus(rotulo string) string {
	if c, ok := coresStatus[rotulo]; ok {
		return c
	}
	return CorPadrao
}
