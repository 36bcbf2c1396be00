package referencia

import (
	"errors"
	"net/http"

	"github.com/KromaEnergia/api-contratos/internal/contrato"
	"github.com/KromaEnergia/api-contratos/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Log        *zap.Logger
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{DB: db, Repository: NewRepository(), Log: log}
}

// GET /pessoas?papel=cliente&busca=...
func (h *Handler) BuscarPessoas(w http.ResponseWriter, r *http.Request) {
	papel, err := contrato.ParsePapel(r.URL.Query().Get("papel"))
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Informe o papel: cliente, parceiro ou socio")
		return
	}
	pessoas, err := h.Repository.BuscarPessoas(h.DB.WithContext(r.Context()), papel, r.URL.Query().Get("busca"))
	if err != nil {
		h.Log.Error("erro ao buscar pessoas", zap.String("papel", string(papel)), zap.Error(err))
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao buscar pessoas")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, pessoas)
}

// GET /pessoas/{id}
func (h *Handler) BuscarPessoa(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID da pessoa inválido")
		return
	}
	p, err := h.Repository.BuscarPessoa(h.DB.WithContext(r.Context()), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.ResponderErro(w, http.StatusNotFound, "Pessoa não encontrada")
		return
	}
	if err != nil {
		h.Log.Error("erro ao buscar pessoa", zap.Uint("pessoaId", id), zap.Error(err))
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao buscar pessoa")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, p)
}

// GET /contas-bancarias
func (h *Handler) ListarContas(w http.ResponseWriter, r *http.Request) {
	contas, err := h.Repository.ListarContas(h.DB.WithContext(r.Context()))
	if err != nil {
		h.Log.Error("erro ao listar contas bancárias", zap.Error(err))
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao listar contas bancárias")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, contas)
}
