package sessao

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncerrarLimpaTokenEAvisa(t *testing.T) {
	s := Nova("abc")
	assert.True(t, s.Ativa())

	chamadas := 0
	s.AoNaoAutorizado(func() { chamadas++ })
	s.AoNaoAutorizado(func() { chamadas += 10 })

	s.Encerrar()
	assert.False(t, s.Ativa())
	assert.Equal(t, "", s.Token())
	assert.Equal(t, 11, chamadas)

	s.Iniciar("novo")
	assert.Equal(t, "novo", s.Token())
}

func TestObservadorPodeReiniciarSessao(t *testing.T) {
	s := Nova("abc")
	s.AoNaoAutorizado(func() { s.Iniciar("renovado") })
	s.Encerrar()
	assert.Equal(t, "renovado", s.Token())
}

func TestSessaoConcorrente(t *testing.T) {
	s := Nova("abc")
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); _ = s.Token() }()
		go func() { defer wg.Done(); s.Iniciar("x") }()
	}
	wg.Wait()
	assert.Equal(t, "x", s.Token())
}
