package console

import (
	"context"
	"errors"

	"github.com/KromaEnergia/api-contratos/internal/movimentacao"
	"github.com/KromaEnergia/api-contratos/internal/notificacao"
	"go.uber.org/zap"
)

// Arquivo é o comprovante escolhido pelo operador.
type Arquivo struct {
	Nome     string
	Tipo     string
	Conteudo []byte
}

// ResultadoBaixa separa a baixa do envio do comprovante: a baixa pode ter
// sido gravada mesmo com ErroComprovante preenchido.
type ResultadoBaixa struct {
	Movimentacao    *movimentacao.Movimentacao
	ComprovanteURL  string
	ErroComprovante error
}

type PainelMovimentacoes struct {
	Tipo        movimentacao.TipoMovimentacao
	Filtro      movimentacao.Filtro
	API         APIMovimentacoes
	Notificador notificacao.Notificador
	Log         *zap.Logger
}

func NovoPainel(tipo movimentacao.TipoMovimentacao, api APIMovimentacoes, n notificacao.Notificador, log *zap.Logger) *PainelMovimentacoes {
	if log == nil {
		log = zap.NewNop()
	}
	return &PainelMovimentacoes{Tipo: tipo, API: api, Notificador: n, Log: log}
}

func (p *PainelMovimentacoes) Listar(ctx context.Context) (*movimentacao.ListaMovimentacoes, error) {
	listar := p.API.ListarReceber
	if p.Tipo == movimentacao.TipoPagar {
		listar = p.API.ListarPagar
	}
	l, err := listar(ctx, p.Filtro)
	if err != nil {
		p.Log.Error("erro ao listar movimentações", zap.String("tipo", string(p.Tipo)), zap.Error(err))
		notificacao.Erro(ctx, p.Notificador, mensagemFalha(err, "Erro ao carregar movimentações"))
		return nil, err
	}
	return l, nil
}

// Baixar registra a baixa e depois, em chamada separada, envia o comprovante.
// Falha no comprovante não desfaz a baixa; é avisada à parte.
func (p *PainelMovimentacoes) Baixar(ctx context.Context, id uint, b movimentacao.BaixaMovimentacao, arquivo *Arquivo) (*ResultadoBaixa, error) {
	m, err := p.API.Baixar(ctx, id, b)
	if err != nil {
		p.Log.Error("erro ao registrar baixa", zap.Uint("movimentacaoId", id), zap.Error(err))
		notificacao.Erro(ctx, p.Notificador, mensagemFalha(err, "Erro ao registrar baixa"))
		return nil, err
	}
	notificacao.Sucesso(ctx, p.Notificador, "Baixa registrada com sucesso")
	res := &ResultadoBaixa{Movimentacao: m}
	if arquivo == nil {
		return res, nil
	}

	url, err := p.API.AnexarComprovante(ctx, id, arquivo.Nome, arquivo.Tipo, arquivo.Conteudo)
	if err != nil {
		res.ErroComprovante = err
		p.Log.Warn("baixa registrada sem comprovante", zap.Uint("movimentacaoId", id), zap.Error(err))
		if comprovanteRecusado(err) {
			notificacao.Aviso(ctx, p.Notificador, "Comprovante não enviado: "+err.Error())
		} else {
			notificacao.Erro(ctx, p.Notificador, mensagemFalha(err, "Baixa registrada, mas o comprovante não foi enviado"))
		}
		return res, nil
	}
	res.ComprovanteURL = url
	m.ComprovanteURL = url
	return res, nil
}

func comprovanteRecusado(err error) bool {
	for _, alvo := range []error{
		movimentacao.ErrComprovanteVazio,
		movimentacao.ErrComprovanteGrande,
		movimentacao.ErrTipoComprovante,
		movimentacao.ErrConteudoNaoConfere,
	} {
		if errors.Is(err, alvo) {
			return true
		}
	}
	return false
}
