// Package busca faz a pesquisa incremental dos seletores do console:
// espera o operador parar de digitar e descarta respostas atrasadas.
package busca

import (
	"context"
	"errors"
	"sync"
	"time"
)

const EsperaPadrao = 400 * time.Millisecond

// ErrObsoleta indica que outra busca foi disparada depois desta.
var ErrObsoleta = errors.New("resultado de busca obsoleto")

type Consulta[T any] func(ctx context.Context, termo string) (T, error)

// Buscador numera cada busca disparada; só a de número mais alto é entregue.
type Buscador[T any] struct {
	Espera time.Duration

	consulta Consulta[T]
	entregar func(T, error)

	mu    sync.Mutex
	seq   uint64
	timer *time.Timer
}

// Novo cria o buscador. entregar recebe os resultados de Digitar e é
// chamado com o buscador travado, então não deve chamar Digitar de volta.
func Novo[T any](consulta func(ctx context.Context, termo string) (T, error), entregar func(T, error)) *Buscador[T] {
	return &Buscador[T]{Espera: EsperaPadrao, consulta: consulta, entregar: entregar}
}

func (b *Buscador[T]) proximo() uint64 {
	b.seq++
	return b.seq
}

// Digitar reinicia a janela de espera; a consulta só sai quando o termo
// fica parado por Espera.
func (b *Buscador[T]) Digitar(ctx context.Context, termo string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	n := b.proximo()
	b.timer = time.AfterFunc(b.Espera, func() {
		res, err := b.consulta(ctx, termo)
		b.mu.Lock()
		defer b.mu.Unlock()
		if n != b.seq {
			return
		}
		b.entregar(res, err)
	})
}

// Agora consulta sem espera. Se outra busca foi disparada enquanto esta
// estava em voo, o resultado é descartado e volta ErrObsoleta.
func (b *Buscador[T]) Agora(ctx context.Context, termo string) (T, error) {
	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
	}
	n := b.proximo()
	b.mu.Unlock()

	res, err := b.consulta(ctx, termo)

	b.mu.Lock()
	defer b.mu.Unlock()
	if n != b.seq {
		var zero T
		return zero, ErrObsoleta
	}
	return res, err
}

// Cancelar descarta a busca pendente e qualquer resposta ainda em voo.
func (b *Buscador[T]) Cancelar() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.proximo()
}
