package console

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/KromaEnergia/api-contratos/internal/contrato"
	"github.com/KromaEnergia/api-contratos/internal/notificacao"
	"go.uber.org/zap"
)

var ErrSalvamentoEmAndamento = errors.New("salvamento já em andamento")

// EditorContrato mantém o formulário e a versão salva que serve de base
// para o envio parcial.
type EditorContrato struct {
	Form        *contrato.Formulario
	Original    *contrato.Contrato
	API         APIContratos
	Notificador notificacao.Notificador
	Log         *zap.Logger
	Agora       func() time.Time

	salvando atomic.Bool
}

// NovoEditor abre o editor para um contrato novo (original nil) ou existente.
func NovoEditor(api APIContratos, n notificacao.Notificador, log *zap.Logger, original *contrato.Contrato, tipo *contrato.TipoContrato) *EditorContrato {
	if log == nil {
		log = zap.NewNop()
	}
	e := &EditorContrato{API: api, Notificador: n, Log: log, Agora: time.Now}
	if original == nil {
		e.Form = contrato.NovoFormulario(e.Agora)
	} else {
		c := original.Clonar()
		e.Original = &c
		e.Form = contrato.EditarFormulario(c, tipo, e.Agora)
	}
	return e
}

// Salvar valida, envia e, no sucesso, passa a editar a versão devolvida
// pela API. Um segundo Salvar enquanto o primeiro está em voo é recusado.
func (e *EditorContrato) Salvar(ctx context.Context) (*contrato.Contrato, error) {
	if !e.salvando.CompareAndSwap(false, true) {
		return nil, ErrSalvamentoEmAndamento
	}
	defer e.salvando.Store(false)

	if err := e.Form.Validar(); err != nil {
		notificacao.Aviso(ctx, e.Notificador, err.Error())
		return nil, err
	}

	sub := e.Form.Submissao(e.Original)
	var (
		salvo *contrato.Contrato
		err   error
		novo  = e.Original == nil || e.Original.ID == 0
	)
	if novo {
		salvo, err = e.API.CriarContrato(ctx, sub)
	} else {
		salvo, err = e.API.AtualizarContrato(ctx, e.Original.ID, sub)
	}
	if err != nil {
		e.Log.Error("erro ao salvar contrato", zap.Bool("novo", novo), zap.Error(err))
		notificacao.Erro(ctx, e.Notificador, mensagemFalha(err, "Erro ao salvar contrato. Tente novamente."))
		return nil, err
	}

	if novo {
		notificacao.Sucesso(ctx, e.Notificador, "Contrato criado com sucesso")
	} else {
		notificacao.Sucesso(ctx, e.Notificador, "Contrato atualizado com sucesso")
	}
	c := salvo.Clonar()
	e.Original = &c
	e.Form = contrato.EditarFormulario(c, e.Form.Tipo, e.Agora)
	return salvo, nil
}
