package movimentacao

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Armazenamento guarda os comprovantes sob um nome opaco.
type Armazenamento interface {
	Salvar(ctx context.Context, c Comprovante) (nome string, err error)
	Abrir(ctx context.Context, nome string) (conteudo []byte, mime string, err error)
}

// Disco grava os comprovantes num diretório local.
type Disco struct {
	Dir string
}

func NovoDisco(dir string) (*Disco, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("criar diretório de comprovantes: %w", err)
	}
	return &Disco{Dir: dir}, nil
}

var nomeComprovante = regexp.MustCompile(`^[0-9a-f-]{36}\.(pdf|jpg|jpeg|png)$`)

func (d *Disco) Salvar(ctx context.Context, c Comprovante) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	nome := uuid.NewString() + "." + c.Extensao
	if err := os.WriteFile(filepath.Join(d.Dir, nome), c.Conteudo, 0o640); err != nil {
		return "", fmt.Errorf("gravar comprovante: %w", err)
	}
	return nome, nil
}

// Abrir só aceita nomes gerados por Salvar.
func (d *Disco) Abrir(ctx context.Context, nome string) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	if !nomeComprovante.MatchString(nome) {
		return nil, "", ErrComprovanteInexistente
	}
	b, err := os.ReadFile(filepath.Join(d.Dir, nome))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", ErrComprovanteInexistente
	}
	if err != nil {
		return nil, "", fmt.Errorf("ler comprovante: %w", err)
	}
	return b, mimetype.Detect(b).String(), nil
}
