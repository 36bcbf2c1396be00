package contrato

import (
	"errors"
	"fmt"

	"github.com/KromaEnergia/api-contratos/internal/formato"
	"github.com/shopspring/decimal"
)

var ErrItemInexistente = errors.New("item de contrato inexistente")

// NovoItem monta um item com os padrões do editor: início hoje, vencimento no dia 1
// e mês/ano de vencimento preenchidos apenas para tipos recorrentes.
func NovoItem(tipo *TipoContrato, hoje formato.Data) ItemContrato {
	item := ItemContrato{
		DataInicio:    hoje,
		DiaVencimento: 1,
		Ativo:         true,
		Valor:         decimal.Zero,
		TaxaJuros:     decimal.Zero,
		TaxaMulta:     decimal.Zero,
	}
	if tipo != nil {
		item.Operacao = OperacaoPara(tipo.Natureza)
		if tipo.Recorrente {
			item.MesVencimento = int(hoje.Mes())
			item.AnoVencimento = hoje.Ano()
		}
	}
	return item
}

// RecalcularValor mantém Valor == soma dos itens.
func (c *Contrato) RecalcularValor() {
	total := decimal.Zero
	for _, it := range c.Itens {
		total = total.Add(it.Valor)
	}
	c.Valor = total
}

// AdicionarItem insere o novo item no início da lista.
func (c *Contrato) AdicionarItem(tipo *TipoContrato, hoje formato.Data) {
	c.Itens = append([]ItemContrato{NovoItem(tipo, hoje)}, c.Itens...)
	c.RecalcularValor()
}

// RemoverItem retira o item da posição i.
func (c *Contrato) RemoverItem(i int) error {
	if i < 0 || i >= len(c.Itens) {
		return fmt.Errorf("%w: posição %d", ErrItemInexistente, i)
	}
	c.Itens = append(c.Itens[:i:i], c.Itens[i+1:]...)
	c.RecalcularValor()
	return nil
}

// AtualizarItem substitui o item da posição i.
func (c *Contrato) AtualizarItem(i int, item ItemContrato) error {
	if i < 0 || i >= len(c.Itens) {
		return fmt.Errorf("%w: posição %d", ErrItemInexistente, i)
	}
	c.Itens[i] = item
	c.RecalcularValor()
	return nil
}

// AplicarTipo troca o tipo do contrato e recalcula a operação de todos os itens.
func (c *Contrato) AplicarTipo(tipo TipoContrato) {
	c.TipoContratoID = tipo.ID
	op := OperacaoPara(tipo.Natureza)
	for i := range c.Itens {
		c.Itens[i].Operacao = op
	}
}

// Clonar copia o contrato sem compartilhar itens nem ponteiros com o original.
func (c Contrato) Clonar() Contrato {
	copia := c
	copia.Itens = make([]ItemContrato, len(c.Itens))
	for i, it := range c.Itens {
		if it.DataFim != nil {
			d := *it.DataFim
			it.DataFim = &d
		}
		if it.ContaBancariaID != nil {
			id := *it.ContaBancariaID
			it.ContaBancariaID = &id
		}
		copia.Itens[i] = it
	}
	return copia
}
