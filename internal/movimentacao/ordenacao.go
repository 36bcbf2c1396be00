package movimentacao

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/KromaEnergia/api-contratos/internal/formato"
)

// StatusTodos desativa o filtro de status.
const StatusTodos = "all"

// Filtro são os filtros da listagem de movimentações. Datas vazias são
// intervalos abertos.
type Filtro struct {
	Status           string
	ContratoID       uint
	VencimentoInicio string
	VencimentoFim    string
	PagamentoInicio  string
	PagamentoFim     string
	LancamentoInicio string
	LancamentoFim    string
}

// Ordenacao é a coluna usada no ORDER BY, sempre decrescente.
type Ordenacao string

const (
	PorVencimento Ordenacao = "data_vencimento"
	PorPagamento  Ordenacao = "data_pagamento"
	PorLancamento Ordenacao = "created_at"
)

func (o Ordenacao) SQL() string { return string(o) + " DESC" }

func intervalo(inicio, fim string) bool {
	return strings.TrimSpace(inicio) != "" || strings.TrimSpace(fim) != ""
}

// OrdenacaoPara escolhe a coluna de ordenação pelo primeiro intervalo de
// datas preenchido, na prioridade vencimento, pagamento, lançamento.
// Sem intervalo (inclusive quando só há filtro de status) ordena por vencimento.
func OrdenacaoPara(f Filtro) Ordenacao {
	switch {
	case intervalo(f.VencimentoInicio, f.VencimentoFim):
		return PorVencimento
	case intervalo(f.PagamentoInicio, f.PagamentoFim):
		return PorPagamento
	case intervalo(f.LancamentoInicio, f.LancamentoFim):
		return PorLancamento
	default:
		return PorVencimento
	}
}

// StatusAtivo indica se o filtro de status restringe o resultado.
func (f Filtro) StatusAtivo() bool {
	s := strings.TrimSpace(f.Status)
	return s != "" && !strings.EqualFold(s, StatusTodos)
}

var chavesFiltro = []struct {
	nome  string
	campo func(*Filtro) *string
}{
	{"status", func(f *Filtro) *string { return &f.Status }},
	{"vencimentoInicio", func(f *Filtro) *string { return &f.VencimentoInicio }},
	{"vencimentoFim", func(f *Filtro) *string { return &f.VencimentoFim }},
	{"pagamentoInicio", func(f *Filtro) *string { return &f.PagamentoInicio }},
	{"pagamentoFim", func(f *Filtro) *string { return &f.PagamentoFim }},
	{"lancamentoInicio", func(f *Filtro) *string { return &f.LancamentoInicio }},
	{"lancamentoFim", func(f *Filtro) *string { return &f.LancamentoFim }},
}

// Query serializa o filtro para a query string.
func (f Filtro) Query() url.Values {
	q := url.Values{}
	for _, c := range chavesFiltro {
		if v := *c.campo(&f); v != "" {
			q.Set(c.nome, v)
		}
	}
	if f.ContratoID != 0 {
		q.Set("contratoId", strconv.FormatUint(uint64(f.ContratoID), 10))
	}
	return q
}

// FiltroDeQuery lê o filtro da query string, normalizando as datas para
// YYYY-MM-DD. Data ilegível é devolvida como erro.
func FiltroDeQuery(q url.Values) (Filtro, error) {
	var f Filtro
	for _, c := range chavesFiltro {
		*c.campo(&f) = strings.TrimSpace(q.Get(c.nome))
	}
	if id, err := strconv.ParseUint(q.Get("contratoId"), 10, 64); err == nil {
		f.ContratoID = uint(id)
	}
	for _, d := range []*string{
		&f.VencimentoInicio, &f.VencimentoFim,
		&f.PagamentoInicio, &f.PagamentoFim,
		&f.LancamentoInicio, &f.LancamentoFim,
	} {
		if *d == "" {
			continue
		}
		n, err := formato.NormalizarData(*d)
		if err != nil {
			return Filtro{}, err
		}
		*d = n
	}
	return f, nil
}
