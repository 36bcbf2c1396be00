// Package cliente fala com a API de contratos em nome do console.
// Não há novas tentativas: toda falha volta para quem chamou.
package cliente

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/KromaEnergia/api-contratos/internal/sessao"
)

var ErrNaoAutorizado = errors.New("sessão expirada ou não autorizada")

// ErroAPI é qualquer resposta fora da faixa 2xx, exceto 401.
type ErroAPI struct {
	Status   int
	Mensagem string
}

func (e *ErroAPI) Error() string {
	return fmt.Sprintf("API respondeu %d: %s", e.Status, e.Mensagem)
}

type Cliente struct {
	BaseURL string
	HTTP    *http.Client
	Sessao  *sessao.Sessao
}

func Novo(baseURL string, s *sessao.Sessao) *Cliente {
	return &Cliente{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: http.DefaultClient, Sessao: s}
}

func (c *Cliente) requisicao(ctx context.Context, metodo, caminho string, query url.Values, corpo interface{}) (*http.Request, error) {
	var body io.Reader
	if corpo != nil {
		b, err := json.Marshal(corpo)
		if err != nil {
			return nil, fmt.Errorf("serializar corpo: %w", err)
		}
		body = bytes.NewReader(b)
	}
	u := c.BaseURL + caminho
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, metodo, u, body)
	if err != nil {
		return nil, err
	}
	if corpo != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if tok := c.Sessao.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return req, nil
}

// executar trata 401 de forma central: encerra a sessão antes de devolver o erro.
func (c *Cliente) executar(req *http.Request) (*http.Response, error) {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		c.Sessao.Encerrar()
		return nil, ErrNaoAutorizado
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, lerErro(resp)
	}
	return resp, nil
}

func lerErro(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var corpo struct {
		Erro string `json:"erro"`
	}
	msg := strings.TrimSpace(string(b))
	if json.Unmarshal(b, &corpo) == nil && corpo.Erro != "" {
		msg = corpo.Erro
	}
	return &ErroAPI{Status: resp.StatusCode, Mensagem: msg}
}

// chamar envia corpo como JSON e decodifica a resposta em saida (se não nil).
func (c *Cliente) chamar(ctx context.Context, metodo, caminho string, query url.Values, corpo, saida interface{}) error {
	req, err := c.requisicao(ctx, metodo, caminho, query, corpo)
	if err != nil {
		return err
	}
	resp, err := c.executar(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if saida == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(saida); err != nil {
		return fmt.Errorf("resposta inválida de %s %s: %w", metodo, caminho, err)
	}
	return nil
}
