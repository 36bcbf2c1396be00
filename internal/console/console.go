// Package console liga o editor de contratos e o painel financeiro à API,
// avisando o operador do resultado de cada ação.
package console

import (
	"context"
	"errors"

	"github.com/KromaEnergia/api-contratos/internal/cliente"
	"github.com/KromaEnergia/api-contratos/internal/contrato"
	"github.com/KromaEnergia/api-contratos/internal/movimentacao"
	"github.com/KromaEnergia/api-contratos/internal/referencia"
)

// APIContratos é a parte do cliente HTTP usada pelo editor.
type APIContratos interface {
	CriarContrato(ctx context.Context, s contrato.Submissao) (*contrato.Contrato, error)
	AtualizarContrato(ctx context.Context, id uint, s contrato.Submissao) (*contrato.Contrato, error)
}

// APIMovimentacoes é a parte do cliente HTTP usada pelo painel.
type APIMovimentacoes interface {
	ListarReceber(ctx context.Context, f movimentacao.Filtro) (*movimentacao.ListaMovimentacoes, error)
	ListarPagar(ctx context.Context, f movimentacao.Filtro) (*movimentacao.ListaMovimentacoes, error)
	Baixar(ctx context.Context, id uint, b movimentacao.BaixaMovimentacao) (*movimentacao.Movimentacao, error)
	AnexarComprovante(ctx context.Context, id uint, nome, tipo string, conteudo []byte) (string, error)
}

type APIReferencia interface {
	BuscarPessoas(ctx context.Context, papel contrato.Papel, termo string) ([]referencia.Pessoa, error)
}

var (
	_ APIContratos     = (*cliente.Cliente)(nil)
	_ APIMovimentacoes = (*cliente.Cliente)(nil)
	_ APIReferencia    = (*cliente.Cliente)(nil)
)

const msgSessaoExpirada = "Sessão expirada. Entre novamente."

// mensagemFalha esconde o detalhe técnico; só a sessão expirada tem texto próprio.
func mensagemFalha(err error, generica string) string {
	if errors.Is(err, cliente.ErrNaoAutorizado) {
		return msgSessaoExpirada
	}
	return generica
}
