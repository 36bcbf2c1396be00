package cliente

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/KromaEnergia/api-contratos/internal/contrato"
	"github.com/KromaEnergia/api-contratos/internal/referencia"
)

func caminhoContrato(id uint) string {
	return fmt.Sprintf("/contratos/%d", id)
}

func (c *Cliente) CriarContrato(ctx context.Context, s contrato.Submissao) (*contrato.Contrato, error) {
	var out contrato.Contrato
	if err := c.chamar(ctx, http.MethodPost, "/contratos", nil, s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Cliente) AtualizarContrato(ctx context.Context, id uint, s contrato.Submissao) (*contrato.Contrato, error) {
	var out contrato.Contrato
	if err := c.chamar(ctx, http.MethodPut, caminhoContrato(id), nil, s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Cliente) RemoverContrato(ctx context.Context, id uint) error {
	return c.chamar(ctx, http.MethodDelete, caminhoContrato(id), nil, nil, nil)
}

func (c *Cliente) BuscarContrato(ctx context.Context, id uint) (*contrato.Contrato, error) {
	var out contrato.Contrato
	if err := c.chamar(ctx, http.MethodGet, caminhoContrato(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Cliente) ListarContratos(ctx context.Context, f contrato.FiltroContratos, page, perPage int) (*contrato.PaginaContratos, error) {
	q := f.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("perPage", strconv.Itoa(perPage))
	var out contrato.PaginaContratos
	if err := c.chamar(ctx, http.MethodGet, "/contratos", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Cliente) ListarTiposContrato(ctx context.Context) ([]contrato.TipoContrato, error) {
	var out []contrato.TipoContrato
	err := c.chamar(ctx, http.MethodGet, "/tipos-contrato", nil, nil, &out)
	return out, err
}

func (c *Cliente) BuscarPessoas(ctx context.Context, papel contrato.Papel, termo string) ([]referencia.Pessoa, error) {
	q := url.Values{"papel": {string(papel)}}
	if termo != "" {
		q.Set("busca", termo)
	}
	var out []referencia.Pessoa
	err := c.chamar(ctx, http.MethodGet, "/pessoas", q, nil, &out)
	return out, err
}

// BuscarPessoa carrega a pessoa já vinculada ao abrir um contrato existente.
func (c *Cliente) BuscarPessoa(ctx context.Context, id uint) (*referencia.Pessoa, error) {
	var out referencia.Pessoa
	if err := c.chamar(ctx, http.MethodGet, fmt.Sprintf("/pessoas/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Cliente) ListarContas(ctx context.Context) ([]referencia.ContaBancaria, error) {
	var out []referencia.ContaBancaria
	err := c.chamar(ctx, http.MethodGet, "/contas-bancarias", nil, nil, &out)
	return out, err
}
