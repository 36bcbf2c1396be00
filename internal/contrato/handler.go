package contrato

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KromaEnergia/api-contratos/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
	Log  *zap.Logger
}

func NewHandler(repo *Repository, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Repo: repo, Log: log}
}

// POST /contratos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var sub Submissao
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if sub.TipoContratoID == nil {
		utils.ResponderErro(w, http.StatusUnprocessableEntity, "Informe o tipo de contrato")
		return
	}
	tipo, err := h.Repo.BuscarTipo(r.Context(), *sub.TipoContratoID)
	if err != nil {
		h.responderFalhaBusca(w, err, "Tipo de contrato não encontrado")
		return
	}

	c := Contrato{Ativo: true}
	if _, err := c.Aplicar(sub, *tipo); err != nil {
		utils.ResponderErro(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := ValidarEstrutura(c, *tipo); err != nil {
		utils.ResponderErro(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.Repo.Salvar(r.Context(), &c, nil); err != nil {
		h.Log.Error("erro ao salvar contrato", zap.Error(err))
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao salvar contrato")
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, c)
}

// GET /contratos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	filtro := FiltroDeQuery(r.URL.Query())
	pagina, err := h.Repo.Listar(r.Context(), filtro,
		utils.Inteiro(r, "page", 1), utils.Inteiro(r, "perPage", porPaginaPadrao))
	if err != nil {
		h.Log.Error("erro ao listar contratos", zap.Error(err))
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao listar contratos")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, pagina)
}

// GET /contratos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID do contrato inválido")
		return
	}
	c, err := h.Repo.BuscarPorID(r.Context(), id)
	if err != nil {
		h.responderFalhaBusca(w, err, "Contrato não encontrado")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, c)
}

// PUT /contratos/{id}
// Aceita envio parcial: só os campos presentes no JSON são alterados.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID do contrato inválido")
		return
	}
	var sub Submissao
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}

	c, err := h.Repo.BuscarPorID(r.Context(), id)
	if err != nil {
		h.responderFalhaBusca(w, err, "Contrato não encontrado")
		return
	}
	tipoID := c.TipoContratoID
	if sub.TipoContratoID != nil {
		tipoID = *sub.TipoContratoID
	}
	tipo, err := h.Repo.BuscarTipo(r.Context(), tipoID)
	if err != nil {
		h.responderFalhaBusca(w, err, "Tipo de contrato não encontrado")
		return
	}

	removidos, err := c.Aplicar(sub, *tipo)
	if err != nil {
		utils.ResponderErro(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := ValidarEstrutura(*c, *tipo); err != nil {
		utils.ResponderErro(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.Repo.Salvar(r.Context(), c, removidos); err != nil {
		h.Log.Error("erro ao atualizar contrato", zap.Uint("contratoId", id), zap.Error(err))
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao atualizar contrato")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, c)
}

// DELETE /contratos/{id}
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID do contrato inválido")
		return
	}
	if err := h.Repo.Remover(r.Context(), id); err != nil {
		h.responderFalhaBusca(w, err, "Contrato não encontrado")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /tipos-contrato
func (h *Handler) ListarTipos(w http.ResponseWriter, r *http.Request) {
	tipos, err := h.Repo.ListarTipos(r.Context())
	if err != nil {
		h.Log.Error("erro ao listar tipos de contrato", zap.Error(err))
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao listar tipos de contrato")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, tipos)
}

func (h *Handler) responderFalhaBusca(w http.ResponseWriter, err error, naoEncontrado string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.ResponderErro(w, http.StatusNotFound, naoEncontrado)
		return
	}
	h.Log.Error("erro de banco", zap.Error(err))
	utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao consultar o banco de dados")
}
