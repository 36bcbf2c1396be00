package movimentacao

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// TamanhoMaximoComprovante é o limite de 5 MB para anexos.
const TamanhoMaximoComprovante = 5 << 20

var (
	ErrComprovanteVazio       = errors.New("arquivo de comprovante vazio")
	ErrComprovanteGrande      = errors.New("o comprovante deve ter no máximo 5MB")
	ErrTipoComprovante        = errors.New("tipo de arquivo não permitido: use pdf, jpg, jpeg ou png")
	ErrConteudoNaoConfere     = errors.New("o conteúdo do arquivo não corresponde ao tipo informado")
	ErrComprovanteInexistente = errors.New("comprovante não encontrado")
)

// mimes aceitos por extensão normalizada.
var tiposComprovante = map[string]string{
	"pdf":  "application/pdf",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
}

// Comprovante é o arquivo já validado, pronto para gravação.
type Comprovante struct {
	Extensao string
	Mime     string
	Conteudo []byte
}

// NormalizarTipo aceita tanto a extensão ("PDF", ".jpg") quanto o MIME
// ("image/png") e devolve a extensão canônica.
func NormalizarTipo(tipo string) (string, error) {
	t := strings.ToLower(strings.TrimSpace(tipo))
	t = strings.TrimPrefix(t, ".")
	if _, ok := tiposComprovante[t]; ok {
		return t, nil
	}
	for ext, mime := range tiposComprovante {
		if t == mime && ext != "jpeg" {
			return ext, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrTipoComprovante, tipo)
}

// TipoPorNome deduz o tipo pela extensão do nome do arquivo.
func TipoPorNome(nome string) (string, error) {
	return NormalizarTipo(filepath.Ext(nome))
}

// ValidarComprovante confere tamanho, tipo declarado e o conteúdo real do
// arquivo. Quando tipo vem vazio, usa a extensão de nome.
func ValidarComprovante(nome, tipo string, conteudo []byte) (Comprovante, error) {
	if len(conteudo) == 0 {
		return Comprovante{}, ErrComprovanteVazio
	}
	if len(conteudo) > TamanhoMaximoComprovante {
		return Comprovante{}, ErrComprovanteGrande
	}

	var (
		ext string
		err error
	)
	if strings.TrimSpace(tipo) != "" {
		ext, err = NormalizarTipo(tipo)
	} else {
		ext, err = TipoPorNome(nome)
	}
	if err != nil {
		return Comprovante{}, err
	}

	esperado := tiposComprovante[ext]
	detectado := mimetype.Detect(conteudo)
	if !detectado.Is(esperado) {
		return Comprovante{}, fmt.Errorf("%w: declarado %s, detectado %s", ErrConteudoNaoConfere, esperado, detectado.String())
	}
	return Comprovante{Extensao: ext, Mime: esperado, Conteudo: conteudo}, nil
}
