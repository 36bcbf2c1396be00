// Package notificacao entrega ao operador as mensagens do console.
package notificacao

import (
	"context"

	"go.uber.org/zap"
)

// Nivel da notificação; define o estilo com que o operador a vê.
type Nivel string

const (
	NivelSucesso Nivel = "sucesso"
	NivelAviso   Nivel = "aviso"
	NivelErro    Nivel = "erro"
)

// Notificador exibe avisos não bloqueantes ao operador.
type Notificador interface {
	Notificar(ctx context.Context, nivel Nivel, mensagem string)
}

func Sucesso(ctx context.Context, n Notificador, msg string) { n.Notificar(ctx, NivelSucesso, msg) }
func Aviso(ctx context.Context, n Notificador, msg string)   { n.Notificar(ctx, NivelAviso, msg) }
func Erro(ctx context.Context, n Notificador, msg string)    { n.Notificar(ctx, NivelErro, msg) }

// Log escreve as notificações no zap.
type Log struct {
	L *zap.Logger
}

func (l Log) Notificar(_ context.Context, nivel Nivel, mensagem string) {
	switch nivel {
	case NivelErro:
		l.L.Error(mensagem, zap.String("nivel", string(nivel)))
	case NivelAviso:
		l.L.Warn(mensagem, zap.String("nivel", string(nivel)))
	default:
		l.L.Info(mensagem, zap.String("nivel", string(nivel)))
	}
}

// Varios repassa a mesma notificação a todos os destinos.
type Varios []Notificador

func (v Varios) Notificar(ctx context.Context, nivel Nivel, mensagem string) {
	for _, n := range v {
		n.Notificar(ctx, nivel, mensagem)
	}
}
