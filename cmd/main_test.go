package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KromaEnergia/api-contratos/internal/auth"
	"github.com/KromaEnergia/api-contratos/internal/cliente"
	"github.com/KromaEnergia/api-contratos/internal/console"
	"github.com/KromaEnergia/api-contratos/internal/contrato"
	"github.com/KromaEnergia/api-contratos/internal/formato"
	"github.com/KromaEnergia/api-contratos/internal/movimentacao"
	"github.com/KromaEnergia/api-contratos/internal/notificacao"
	"github.com/KromaEnergia/api-contratos/internal/referencia"
	"github.com/KromaEnergia/api-contratos/internal/sessao"
	"github.com/KromaEnergia/api-contratos/internal/utils/dbteste"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var pdfMinimo = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

type ambiente struct {
	srv     *httptest.Server
	db      *gorm.DB
	emissor *auth.Emissor
	tipo    contrato.TipoContrato
}

func subir(t *testing.T) *ambiente {
	t.Helper()
	database := dbteste.Abrir(t,
		&contrato.TipoContrato{}, &contrato.Contrato{}, &contrato.ItemContrato{},
		&movimentacao.Movimentacao{}, &referencia.Pessoa{}, &referencia.ContaBancaria{})

	tipo := contrato.TipoContrato{Descricao: "Mensalidade", Natureza: contrato.NaturezaReceita, Recorrente: true}
	require.NoError(t, contrato.NewRepository(database).CriarTipo(context.Background(), &tipo))
	require.NoError(t, referencia.NewRepository().Salvar(database, &referencia.Pessoa{Nome: "Ana Souza", Papel: contrato.PapelCliente}))

	disco, err := movimentacao.NovoDisco(t.TempDir())
	require.NoError(t, err)
	emissor, err := auth.NovoEmissor("segredo-de-teste", "api-contratos", time.Hour)
	require.NoError(t, err)

	srv := httptest.NewServer(novoRouter(database, disco, emissor, zap.NewNop()))
	t.Cleanup(srv.Close)
	return &ambiente{srv: srv, db: database, emissor: emissor, tipo: tipo}
}

func (a *ambiente) cliente(t *testing.T) *cliente.Cliente {
	t.Helper()
	tok, err := a.emissor.GerarToken(1, false)
	require.NoError(t, err)
	return cliente.Novo(a.srv.URL, sessao.Nova(tok))
}

func TestHealthPublicoERestoProtegido(t *testing.T) {
	a := subir(t)

	resp, err := http.Get(a.srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	for _, rota := range []string{"/contratos", "/tipos-contrato", "/movimentacoes/receber", "/comprovantes/x.pdf"} {
		resp, err := http.Get(a.srv.URL + rota)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, rota)
	}
}

func TestTokenInvalidoEncerraSessao(t *testing.T) {
	a := subir(t)
	s := sessao.Nova("token-forjado")
	encerrada := false
	s.AoNaoAutorizado(func() { encerrada = true })

	_, err := cliente.Novo(a.srv.URL, s).ListarTiposContrato(context.Background())
	assert.ErrorIs(t, err, cliente.ErrNaoAutorizado)
	assert.True(t, encerrada)
	assert.False(t, s.Ativa())
}

func TestCicloDoContrato(t *testing.T) {
	a := subir(t)
	cli := a.cliente(t)
	ctx := context.Background()
	n := notificacao.Log{L: zap.NewNop()}

	tipos, err := cli.ListarTiposContrato(ctx)
	require.NoError(t, err)
	require.Len(t, tipos, 1)

	pessoas, err := cli.BuscarPessoas(ctx, contrato.PapelCliente, "ana")
	require.NoError(t, err)
	require.Len(t, pessoas, 1)

	novo := console.NovoEditor(cli, n, nil, nil, nil)
	novo.Form.DefinirTipoContrato(tipos[0])
	require.NoError(t, novo.Form.SelecionarPapel(contrato.PapelCliente))
	require.NoError(t, novo.Form.SelecionarPessoa(pessoas[0].ID))
	novo.Form.Contrato.Descricao = "Energia"
	novo.Form.AdicionarItem()
	novo.Form.Contrato.Itens[0].Descricao = "Mensalidade"
	require.NoError(t, novo.Form.DigitarValor(0, "150000"))

	salvo, err := novo.Salvar(ctx)
	require.NoError(t, err)
	require.NotZero(t, salvo.ID)

	lido, err := cli.BuscarContrato(ctx, salvo.ID)
	require.NoError(t, err)
	assert.Equal(t, "1500.00", lido.Valor.StringFixed(2))
	require.Len(t, lido.Itens, 1)
	assert.Equal(t, contrato.OperacaoCredito, lido.Itens[0].Operacao)
	require.NotNil(t, lido.Parte.ClienteInfoID())
	vinculada, err := cli.BuscarPessoa(ctx, *lido.Parte.ClienteInfoID())
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", vinculada.Nome)

	editor := console.NovoEditor(cli, n, nil, lido, &tipos[0])
	editor.Form.Contrato.Descricao = "Energia solar"
	atualizado, err := editor.Salvar(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Energia solar", atualizado.Descricao)
	assert.Equal(t, lido.Itens[0].ID, atualizado.Itens[0].ID)

	pg, err := cli.ListarContratos(ctx, contrato.FiltroContratos{Busca: "solar"}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, pg.Total)

	require.NoError(t, cli.RemoverContrato(ctx, salvo.ID))
	_, err = cli.BuscarContrato(ctx, salvo.ID)
	var apiErr *cliente.ErroAPI
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestBaixaComComprovante(t *testing.T) {
	a := subir(t)
	cli := a.cliente(t)
	ctx := context.Background()

	m := &movimentacao.Movimentacao{
		ItemContratoID: 1,
		ContratoID:     1,
		Tipo:           movimentacao.TipoReceber,
		Descricao:      "Mensalidade 06/2024",
		DataVencimento: formato.NovaData(2024, time.June, 10),
		Valor:          decimal.RequireFromString("1000.00"),
		ValorJuros:     decimal.RequireFromString("10.00"),
		ValorMulta:     decimal.RequireFromString("20.00"),
	}
	require.NoError(t, movimentacao.NewRepository(a.db).CriarEmLote(ctx, []*movimentacao.Movimentacao{m}))

	painel := console.NovoPainel(movimentacao.TipoReceber, cli, notificacao.Log{L: zap.NewNop()}, nil)
	res, err := painel.Baixar(ctx, m.ID, movimentacao.BaixaMovimentacao{Pago: true},
		&console.Arquivo{Nome: "recibo.pdf", Tipo: "application/pdf", Conteudo: pdfMinimo})
	require.NoError(t, err)
	require.NoError(t, res.ErroComprovante)
	assert.True(t, res.Movimentacao.Pago)
	assert.Equal(t, "1030.00", res.Movimentacao.ValorEfetivo.StringFixed(2))
	assert.True(t, strings.HasPrefix(res.ComprovanteURL, movimentacao.PrefixoComprovantes))

	conteudo, mime, err := cli.BaixarComprovante(ctx, res.ComprovanteURL)
	require.NoError(t, err)
	assert.Equal(t, pdfMinimo, conteudo)
	assert.Equal(t, "application/pdf", mime)

	lista, err := painel.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, lista.Data, 1)
	assert.Equal(t, movimentacao.RotuloRecebido, lista.Data[0].Status)
	assert.Equal(t, "1030.00", lista.Totais.ValorQuitado.StringFixed(2))
}
