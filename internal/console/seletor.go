package console

import (
	"context"
	"sync"

	"github.com/KromaEnergia/api-contratos/internal/busca"
	"github.com/KromaEnergia/api-contratos/internal/contrato"
	"github.com/KromaEnergia/api-contratos/internal/referencia"
)

// SeletorPessoas é a busca incremental da aba de vínculo do editor.
type SeletorPessoas struct {
	mu       sync.Mutex
	papel    contrato.Papel
	buscador *busca.Buscador[[]referencia.Pessoa]
}

// NovoSeletorPessoas entrega em exibir só o resultado da última digitação.
func NovoSeletorPessoas(api APIReferencia, papel contrato.Papel, exibir func([]referencia.Pessoa, error)) *SeletorPessoas {
	s := &SeletorPessoas{papel: papel}
	s.buscador = busca.Novo(func(ctx context.Context, termo string) ([]referencia.Pessoa, error) {
		return api.BuscarPessoas(ctx, s.Papel(), termo)
	}, exibir)
	return s
}

func (s *SeletorPessoas) Papel() contrato.Papel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.papel
}

func (s *SeletorPessoas) Digitar(ctx context.Context, termo string) {
	s.buscador.Digitar(ctx, termo)
}

// TrocarPapel descarta a busca pendente; respostas do papel anterior não
// chegam mais. O papel muda antes do cancelamento para que nenhuma busca
// iniciada depois dele consulte o papel antigo.
func (s *SeletorPessoas) TrocarPapel(p contrato.Papel) {
	s.mu.Lock()
	s.papel = p
	s.mu.Unlock()
	s.buscador.Cancelar()
}
