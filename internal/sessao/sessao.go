// Package sessao guarda o token do operador e avisa quem precisa saber
// quando a sessão termina.
package sessao

import "sync"

// Sessao é criada explicitamente e injetada em quem faz chamadas HTTP.
type Sessao struct {
	mu        sync.RWMutex
	token     string
	observers []func()
}

func Nova(token string) *Sessao {
	return &Sessao{token: token}
}

func (s *Sessao) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Sessao) Ativa() bool {
	return s.Token() != ""
}

// Iniciar troca o token, por exemplo após um novo login.
func (s *Sessao) Iniciar(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// AoNaoAutorizado registra um callback chamado a cada Encerrar, tipicamente
// para levar o operador de volta ao login.
func (s *Sessao) AoNaoAutorizado(fn func()) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

// Encerrar apaga o token e avisa os observadores, fora do lock.
func (s *Sessao) Encerrar() {
	s.mu.Lock()
	s.token = ""
	obs := append([]func(){}, s.observers...)
	s.mu.Unlock()
	for _, fn := range obs {
		fn()
	}
}
