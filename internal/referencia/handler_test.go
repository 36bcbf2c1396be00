package referencia

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KromaEnergia/api-contratos/internal/contrato"
	"github.com/KromaEnergia/api-contratos/internal/utils/dbteste"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoRouter(t *testing.T) (*mux.Router, *Handler) {
	t.Helper()
	db := dbteste.Abrir(t, &Pessoa{}, &ContaBancaria{})
	h := NewHandler(db, nil)
	r := mux.NewRouter()
	r.HandleFunc("/pessoas", h.BuscarPessoas).Methods(http.MethodGet)
	r.HandleFunc("/pessoas/{id}", h.BuscarPessoa).Methods(http.MethodGet)
	r.HandleFunc("/contas-bancarias", h.ListarContas).Methods(http.MethodGet)
	return r, h
}

func get(r http.Handler, url string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestBuscarPessoasPorPapelENome(t *testing.T) {
	r, h := novoRouter(t)
	for _, p := range []Pessoa{
		{Nome: "Energia Solar Ltda", Documento: "11222333000181", Papel: contrato.PapelCliente},
		{Nome: "Ana Souza", Documento: "12345678901", Papel: contrato.PapelSocio},
		{Nome: "Comercializadora Sul", Documento: "99888777000166", Papel: contrato.PapelParceiro},
		{Nome: "Mercado Central", Documento: "44555666000199", Papel: contrato.PapelCliente},
	} {
		p := p
		require.NoError(t, h.Repository.Salvar(h.DB, &p))
	}

	rec := get(r, "/pessoas?papel=cliente&busca=ENERGIA")
	require.Equal(t, http.StatusOK, rec.Code)
	var pessoas []Pessoa
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pessoas))
	require.Len(t, pessoas, 1)
	assert.Equal(t, "Energia Solar Ltda", pessoas[0].Nome)

	rec = get(r, "/pessoas?papel=cliente&busca=44555")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pessoas))
	require.Len(t, pessoas, 1)
	assert.Equal(t, "Mercado Central", pessoas[0].Nome)

	rec = get(r, "/pessoas?papel=cliente")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pessoas))
	assert.Len(t, pessoas, 2)

	assert.Equal(t, http.StatusBadRequest, get(r, "/pessoas?busca=ana").Code)
}

func TestBuscarPessoasLimitaResultado(t *testing.T) {
	r, h := novoRouter(t)
	for i := 0; i < LimiteBusca+5; i++ {
		require.NoError(t, h.Repository.Salvar(h.DB, &Pessoa{Nome: fmt.Sprintf("Sócio %02d", i), Papel: contrato.PapelSocio}))
	}
	var pessoas []Pessoa
	require.NoError(t, json.Unmarshal(get(r, "/pessoas?papel=socio").Body.Bytes(), &pessoas))
	assert.Len(t, pessoas, LimiteBusca)
	assert.Equal(t, "Sócio 00", pessoas[0].Nome)
}

func TestListarContas(t *testing.T) {
	r, h := novoRouter(t)
	require.NoError(t, h.Repository.Salvar(h.DB, &ContaBancaria{Banco: "Itaú", Agencia: "0001", Conta: "12345-6"}))
	require.NoError(t, h.Repository.Salvar(h.DB, &ContaBancaria{Banco: "Banco do Brasil", Agencia: "1234", Conta: "9-9"}))

	rec := get(r, "/contas-bancarias")
	require.Equal(t, http.StatusOK, rec.Code)
	var contas []ContaBancaria
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contas))
	require.Len(t, contas, 2)
	assert.Equal(t, "Banco do Brasil", contas[0].Banco)
}

func TestBuscarPessoaPorID(t *testing.T) {
	r, h := novoRouter(t)
	p := Pessoa{Nome: "Ana Souza", Papel: contrato.PapelSocio}
	require.NoError(t, h.Repository.Salvar(h.DB, &p))

	rec := get(r, fmt.Sprintf("/pessoas/%d", p.ID))
	require.Equal(t, http.StatusOK, rec.Code)
	var lida Pessoa
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lida))
	assert.Equal(t, contrato.PapelSocio, lida.Papel)

	assert.Equal(t, http.StatusNotFound, get(r, "/pessoas/999").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/pessoas/abc").Code)
}
