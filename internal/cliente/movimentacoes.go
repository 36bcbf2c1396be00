package cliente

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	"github.com/KromaEnergia/api-contratos/internal/movimentacao"
)

func (c *Cliente) ListarReceber(ctx context.Context, f movimentacao.Filtro) (*movimentacao.ListaMovimentacoes, error) {
	return c.listarMovimentacoes(ctx, "/movimentacoes/receber", f)
}

func (c *Cliente) ListarPagar(ctx context.Context, f movimentacao.Filtro) (*movimentacao.ListaMovimentacoes, error) {
	return c.listarMovimentacoes(ctx, "/movimentacoes/pagar", f)
}

func (c *Cliente) listarMovimentacoes(ctx context.Context, caminho string, f movimentacao.Filtro) (*movimentacao.ListaMovimentacoes, error) {
	var out movimentacao.ListaMovimentacoes
	if err := c.chamar(ctx, http.MethodGet, caminho, f.Query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Cliente) Baixar(ctx context.Context, id uint, b movimentacao.BaixaMovimentacao) (*movimentacao.Movimentacao, error) {
	var out movimentacao.Movimentacao
	if err := c.chamar(ctx, http.MethodPatch, fmt.Sprintf("/movimentacoes/%d/baixa", id), nil, b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnexarComprovante valida o arquivo localmente; arquivo recusado não gera
// chamada de rede.
func (c *Cliente) AnexarComprovante(ctx context.Context, id uint, nome, tipo string, conteudo []byte) (string, error) {
	comp, err := movimentacao.ValidarComprovante(nome, tipo, conteudo)
	if err != nil {
		return "", err
	}
	in := movimentacao.ComprovanteDTO{
		ArquivoBase64: base64.StdEncoding.EncodeToString(comp.Conteudo),
		NomeArquivo:   nome,
		TipoArquivo:   comp.Extensao,
	}
	var out struct {
		ComprovanteURL string `json:"comprovanteUrl"`
	}
	if err := c.chamar(ctx, http.MethodPost, fmt.Sprintf("/movimentacoes/%d/comprovante", id), nil, in, &out); err != nil {
		return "", err
	}
	return out.ComprovanteURL, nil
}

// BaixarComprovante busca o arquivo pelo caminho devolvido em comprovanteUrl.
func (c *Cliente) BaixarComprovante(ctx context.Context, caminho string) ([]byte, string, error) {
	req, err := c.requisicao(ctx, http.MethodGet, caminho, nil, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Del("Accept")
	resp, err := c.executar(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(io.LimitReader(resp.Body, movimentacao.TamanhoMaximoComprovante+1))
	if err != nil {
		return nil, "", err
	}
	return b, resp.Header.Get("Content-Type"), nil
}
