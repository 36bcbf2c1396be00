package contrato

import (
	"net/url"
	"strconv"
)

const (
	porPaginaPadrao = 10
	porPaginaMaximo = 100
)

// FiltroContratos são os filtros aceitos em GET /contratos.
type FiltroContratos struct {
	Busca          string
	TipoContratoID uint
	Ativo          *bool
	Papel          Papel
}

// PaginaContratos é a resposta paginada de GET /contratos.
type PaginaContratos struct {
	Data       []Contrato `json:"data"`
	Page       int        `json:"page"`
	PerPage    int        `json:"perPage"`
	Total      int64      `json:"total"`
	TotalPages int        `json:"totalPages"`
}

// Query serializa o filtro para a query string.
func (f FiltroContratos) Query() url.Values {
	q := url.Values{}
	if f.Busca != "" {
		q.Set("busca", f.Busca)
	}
	if f.TipoContratoID != 0 {
		q.Set("tipoContratoId", strconv.FormatUint(uint64(f.TipoContratoID), 10))
	}
	if f.Ativo != nil {
		q.Set("ativo", strconv.FormatBool(*f.Ativo))
	}
	if f.Papel != "" {
		q.Set("papel", string(f.Papel))
	}
	return q
}

// FiltroDeQuery lê o filtro da query string; valores ilegíveis são ignorados.
func FiltroDeQuery(q url.Values) FiltroContratos {
	f := FiltroContratos{Busca: q.Get("busca")}
	if id, err := strconv.ParseUint(q.Get("tipoContratoId"), 10, 64); err == nil {
		f.TipoContratoID = uint(id)
	}
	if ativo, err := strconv.ParseBool(q.Get("ativo")); err == nil {
		f.Ativo = &ativo
	}
	if p, err := ParsePapel(q.Get("papel")); err == nil {
		f.Papel = p
	}
	return f
}

func normalizarPaginacao(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = porPaginaPadrao
	}
	if perPage > porPaginaMaximo {
		perPage = porPaginaMaximo
	}
	return page, perPage
}

func totalPaginas(total int64, perPage int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
