package contrato

import (
	"errors"
	"testing"

	"github.com/KromaEnergia/api-contratos/internal/formato"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReindexar(t *testing.T) {
	m := map[int]string{0: "a", 1: "b", 2: "c", 3: "d"}
	assert.Equal(t, map[int]string{0: "a", 1: "c", 2: "d"}, Reindexar(m, 1))
	assert.Equal(t, map[int]string{0: "b", 1: "c", 2: "d"}, Reindexar(m, 0))
	assert.Equal(t, map[int]string{0: "a", 1: "b", 2: "c"}, Reindexar(m, 3))
}

func formularioComItens(t *testing.T, n int) *Formulario {
	t.Helper()
	f := NovoFormulario(agoraFixo)
	f.DefinirTipoContrato(tipoReceitaMensal)
	for i := 0; i < n; i++ {
		f.AdicionarItem()
	}
	return f
}

func TestRemoverItemReindexaTextosDigitados(t *testing.T) {
	f := formularioComItens(t, 4)
	for i, s := range []string{"1", "22", "333", "4444"} {
		require.NoError(t, f.DigitarValor(i, s))
	}

	require.NoError(t, f.RemoverItem(1))

	assert.Equal(t, "1", f.TextoValor(0))
	assert.Equal(t, "333", f.TextoValor(1))
	assert.Equal(t, "4444", f.TextoValor(2))
	assert.Len(t, f.Contrato.Itens, 3)
	assert.Equal(t, "47.78", f.Contrato.Valor.StringFixed(2))
}

func TestAdicionarItemDeslocaTextosDigitados(t *testing.T) {
	f := formularioComItens(t, 1)
	require.NoError(t, f.DigitarValor(0, "500"))
	f.AdicionarItem()
	assert.Equal(t, "500", f.TextoValor(1))
	assert.Equal(t, "0,00", f.TextoValor(0))
}

func TestDefinirTipoContratoAjustaMesAno(t *testing.T) {
	f := NovoFormulario(agoraFixo)
	f.DefinirTipoContrato(tipoDespesaAvulsa)
	f.AdicionarItem()
	require.Zero(t, f.Contrato.Itens[0].MesVencimento)
	require.Zero(t, f.Contrato.Itens[0].AnoVencimento)

	f.DefinirTipoContrato(tipoReceitaMensal)
	assert.Equal(t, 6, f.Contrato.Itens[0].MesVencimento)
	assert.Equal(t, 2024, f.Contrato.Itens[0].AnoVencimento)
	assert.Equal(t, OperacaoCredito, f.Contrato.Itens[0].Operacao)

	it := f.Contrato.Itens[0]
	it.MesVencimento, it.AnoVencimento = 11, 2025
	require.NoError(t, f.AtualizarItem(0, it))
	f.DefinirTipoContrato(tipoReceitaMensal)
	assert.Equal(t, 11, f.Contrato.Itens[0].MesVencimento)
	assert.Equal(t, 2025, f.Contrato.Itens[0].AnoVencimento)

	f.DefinirTipoContrato(tipoDespesaAvulsa)
	assert.Zero(t, f.Contrato.Itens[0].MesVencimento)
	assert.Zero(t, f.Contrato.Itens[0].AnoVencimento)
}

func TestDigitarEConfirmarValor(t *testing.T) {
	f := formularioComItens(t, 1)

	require.NoError(t, f.DigitarValor(0, "123456"))
	assert.Equal(t, "1234.56", f.Contrato.Itens[0].Valor.StringFixed(2))
	assert.Equal(t, "123456", f.TextoValor(0))
	assert.Equal(t, "1234.56", f.Contrato.Valor.StringFixed(2))

	require.NoError(t, f.ConfirmarValor(0))
	assert.Equal(t, "1.234,56", f.TextoValor(0))

	assert.ErrorIs(t, f.DigitarValor(3, "1"), ErrItemInexistente)
}

func TestSelecionarPapelLimpaPessoaAnterior(t *testing.T) {
	f := NovoFormulario(agoraFixo)
	require.NoError(t, f.SelecionarPapel(PapelCliente))
	require.NoError(t, f.SelecionarPessoa(10))
	require.NotNil(t, f.Contrato.Parte.ClienteInfoID())

	require.NoError(t, f.SelecionarPapel(PapelParceiro))
	assert.Nil(t, f.Contrato.Parte.ClienteInfoID())
	assert.Nil(t, f.Contrato.Parte.ParceiroInfoID())
	assert.Nil(t, f.Contrato.Parte.SocioInfoID())

	require.NoError(t, f.SelecionarPessoa(20))
	assert.Equal(t, uint(20), *f.Contrato.Parte.ParceiroInfoID())
	assert.Nil(t, f.Contrato.Parte.ClienteInfoID())
}

func TestSelecionarPessoaSemPapel(t *testing.T) {
	f := NovoFormulario(agoraFixo)
	assert.ErrorIs(t, f.SelecionarPessoa(1), ErrPapelNaoSelecionado)
	assert.ErrorIs(t, f.SelecionarPapel("fornecedor"), ErrPapelInvalido)
}

func campoDaFalha(t *testing.T, err error) string {
	t.Helper()
	var v *ValidacaoErro
	require.True(t, errors.As(err, &v), "esperava ValidacaoErro, veio %v", err)
	assert.ErrorIs(t, err, ErrValidacao)
	return v.Campo
}

func TestValidarPrimeiraFalhaVence(t *testing.T) {
	f := NovoFormulario(agoraFixo)
	assert.Equal(t, "parte", campoDaFalha(t, f.Validar()))

	require.NoError(t, f.SelecionarPapel(PapelSocio))
	assert.Equal(t, "parte", campoDaFalha(t, f.Validar()))
	require.NoError(t, f.SelecionarPessoa(3))
	assert.Equal(t, "tipoContratoId", campoDaFalha(t, f.Validar()))

	f.DefinirTipoContrato(tipoReceitaMensal)
	assert.Equal(t, "descricao", campoDaFalha(t, f.Validar()))

	f.Contrato.Descricao = "  Contrato de gestão "
	assert.Equal(t, "itens", campoDaFalha(t, f.Validar()))

	f.AdicionarItem()
	f.AdicionarItem()
	assert.Equal(t, "itens[0].descricao", campoDaFalha(t, f.Validar()))

	f.Contrato.Itens[0].Descricao = "Mensalidade"
	assert.Equal(t, "itens[0].valor", campoDaFalha(t, f.Validar()))

	require.NoError(t, f.DigitarValor(0, "1000"))
	assert.Equal(t, "itens[1].descricao", campoDaFalha(t, f.Validar()))

	f.Contrato.Itens[1].Descricao = "Taxa"
	require.NoError(t, f.DigitarValor(1, "250"))
	require.NoError(t, f.Validar())

	it := f.Contrato.Itens[1]
	it.DataInicio = formato.Data{}
	require.NoError(t, f.AtualizarItem(1, it))
	assert.Equal(t, "itens[1].dataInicio", campoDaFalha(t, f.Validar()))
}
