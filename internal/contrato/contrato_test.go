package contrato

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/KromaEnergia/api-contratos/internal/formato"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	agoraFixo = func() time.Time { return time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC) }

	tipoReceitaMensal = TipoContrato{ID: 1, Descricao: "Mensalidade", Natureza: NaturezaReceita, Recorrente: true}
	tipoDespesaAvulsa = TipoContrato{ID: 2, Descricao: "Serviço avulso", Natureza: NaturezaDespesa}
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func somaItens(c Contrato) decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Itens {
		total = total.Add(it.Valor)
	}
	return total
}

func TestValorSempreIgualASomaDosItens(t *testing.T) {
	var c Contrato
	hoje := formato.Hoje(agoraFixo())

	c.AdicionarItem(&tipoReceitaMensal, hoje)
	c.AdicionarItem(&tipoReceitaMensal, hoje)
	c.AdicionarItem(&tipoReceitaMensal, hoje)
	assert.True(t, c.Valor.Equal(somaItens(c)))

	for i, v := range []string{"100.10", "200.20", "0.70"} {
		it := c.Itens[i]
		it.Valor = dec(v)
		require.NoError(t, c.AtualizarItem(i, it))
		assert.True(t, c.Valor.Equal(somaItens(c)))
	}
	assert.Equal(t, "301.00", c.Valor.StringFixed(2))

	require.NoError(t, c.RemoverItem(1))
	assert.True(t, c.Valor.Equal(somaItens(c)))
	assert.Equal(t, "100.80", c.Valor.StringFixed(2))

	assert.ErrorIs(t, c.RemoverItem(5), ErrItemInexistente)
}

func TestAdicionarItemInsereNoInicioComPadroes(t *testing.T) {
	var c Contrato
	hoje := formato.Hoje(agoraFixo())
	c.Itens = []ItemContrato{{Descricao: "antigo"}}

	c.AdicionarItem(&tipoReceitaMensal, hoje)

	require.Len(t, c.Itens, 2)
	novo := c.Itens[0]
	assert.Equal(t, "antigo", c.Itens[1].Descricao)
	assert.Equal(t, hoje, novo.DataInicio)
	assert.Equal(t, 1, novo.DiaVencimento)
	assert.Equal(t, 6, novo.MesVencimento)
	assert.Equal(t, 2024, novo.AnoVencimento)
	assert.Equal(t, OperacaoCredito, novo.Operacao)
	assert.True(t, novo.Ativo)
}

func TestAdicionarItemTipoNaoRecorrenteZeraMesEAno(t *testing.T) {
	var c Contrato
	c.AdicionarItem(&tipoDespesaAvulsa, formato.Hoje(agoraFixo()))
	assert.Zero(t, c.Itens[0].MesVencimento)
	assert.Zero(t, c.Itens[0].AnoVencimento)
	assert.Equal(t, OperacaoDebito, c.Itens[0].Operacao)
}

func TestAplicarTipoRecalculaOperacaoDeTodosOsItens(t *testing.T) {
	c := Contrato{Itens: []ItemContrato{{Operacao: OperacaoCredito}, {Operacao: OperacaoCredito}, {}}}
	c.AplicarTipo(tipoDespesaAvulsa)
	assert.Equal(t, uint(2), c.TipoContratoID)
	for _, it := range c.Itens {
		assert.Equal(t, OperacaoDebito, it.Operacao)
	}
	c.AplicarTipo(tipoReceitaMensal)
	for _, it := range c.Itens {
		assert.Equal(t, OperacaoCredito, it.Operacao)
	}
}

func TestClonarNaoCompartilhaItens(t *testing.T) {
	fim := formato.NovaData(2025, time.January, 1)
	conta := uint(9)
	c := Contrato{Itens: []ItemContrato{{Descricao: "a", DataFim: &fim, ContaBancariaID: &conta}}}
	copia := c.Clonar()
	copia.Itens[0].Descricao = "b"
	*copia.Itens[0].ContaBancariaID = 10
	assert.Equal(t, "a", c.Itens[0].Descricao)
	assert.Equal(t, uint(9), *c.Itens[0].ContaBancariaID)
}

func TestContratoJSONUsaChavesDaParte(t *testing.T) {
	c := Contrato{ID: 7, Descricao: "x", Parte: Parceiro(42), Valor: dec("10")}
	b, err := json.Marshal(c)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &m))
	assert.EqualValues(t, 42, m["parceiroInfoId"])
	assert.NotContains(t, m, "clienteInfoId")
	assert.NotContains(t, m, "socioInfoId")
	assert.NotContains(t, m, "Parte")

	var volta Contrato
	require.NoError(t, json.Unmarshal(b, &volta))
	assert.Equal(t, Parceiro(42), volta.Parte)
	assert.Equal(t, uint(7), volta.ID)
}

func TestContratoJSONRejeitaDuasPartes(t *testing.T) {
	var c Contrato
	err := json.Unmarshal([]byte(`{"descricao":"x","clienteInfoId":1,"socioInfoId":2}`), &c)
	assert.ErrorIs(t, err, ErrParteAmbigua)
}

func TestParsePapel(t *testing.T) {
	p, err := ParsePapel("socio")
	require.NoError(t, err)
	assert.Equal(t, PapelSocio, p)
	_, err = ParsePapel("fornecedor")
	assert.ErrorIs(t, err, ErrPapelInvalido)
}
