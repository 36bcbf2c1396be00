package movimentacao

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/KromaEnergia/api-contratos/internal/formato"
	"github.com/KromaEnergia/api-contratos/internal/utils"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PrefixoComprovantes é a rota pública de download dos comprovantes.
const PrefixoComprovantes = "/comprovantes/"

// base64 cresce 4/3; a folga cobre o prefixo data: e os outros campos.
const limiteCorpoComprovante = TamanhoMaximoComprovante/3*4 + 64<<10

type Handler struct {
	Repo          *Repository
	Armazenamento Armazenamento
	Log           *zap.Logger
	Agora         func() time.Time
}

func NewHandler(repo *Repository, arm Armazenamento, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Repo: repo, Armazenamento: arm, Log: log, Agora: time.Now}
}

func (h *Handler) hoje() formato.Data {
	return formato.Hoje(h.Agora())
}

// ListaMovimentacoes é a resposta das listagens.
type ListaMovimentacoes struct {
	Data   []Movimentacao `json:"data"`
	Totais Totais         `json:"totais"`
}

// ComprovanteDTO é o corpo de POST /movimentacoes/{id}/comprovante.
type ComprovanteDTO struct {
	ArquivoBase64 string `json:"arquivoBase64"`
	NomeArquivo   string `json:"nomeArquivo"`
	TipoArquivo   string `json:"tipoArquivo"`
}

// GET /movimentacoes/receber
func (h *Handler) ListarReceber(w http.ResponseWriter, r *http.Request) {
	h.listar(w, r, TipoReceber)
}

// GET /movimentacoes/pagar
func (h *Handler) ListarPagar(w http.ResponseWriter, r *http.Request) {
	h.listar(w, r, TipoPagar)
}

func (h *Handler) listar(w http.ResponseWriter, r *http.Request, tipo TipoMovimentacao) {
	filtro, err := FiltroDeQuery(r.URL.Query())
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Data inválida nos filtros")
		return
	}
	ms, err := h.Repo.Listar(r.Context(), tipo, filtro, h.hoje())
	if errors.Is(err, ErrStatusInvalido) {
		utils.ResponderErro(w, http.StatusBadRequest, ErrStatusInvalido.Error())
		return
	}
	if errors.Is(err, formato.ErrDataInvalida) {
		utils.ResponderErro(w, http.StatusBadRequest, "Data inválida nos filtros")
		return
	}
	if err != nil {
		h.Log.Error("erro ao listar movimentações", zap.String("tipo", string(tipo)), zap.Error(err))
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao buscar movimentações")
		return
	}
	if ms == nil {
		ms = []Movimentacao{}
	}
	utils.ResponderJSON(w, http.StatusOK, ListaMovimentacoes{Data: ms, Totais: CalcularTotais(ms)})
}

// PATCH /movimentacoes/{id}/baixa
// Só aceita pago=true; estorno de movimentação quitada é recusado.
func (h *Handler) Baixar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID da movimentação inválido")
		return
	}
	var in BaixaMovimentacao
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}

	m, err := h.Repo.BuscarPorID(r.Context(), id)
	if err != nil {
		h.responderFalhaBusca(w, err)
		return
	}
	if err := m.Baixar(in, h.hoje()); err != nil {
		utils.ResponderErro(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.Repo.RegistrarBaixa(r.Context(), m); err != nil {
		h.Log.Error("erro ao registrar baixa", zap.Uint("movimentacaoId", id), zap.Error(err))
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao registrar baixa")
		return
	}
	h.Log.Info("baixa registrada", zap.Uint("movimentacaoId", id), zap.String("valorEfetivo", m.ValorEfetivo.StringFixed(2)))
	utils.ResponderJSON(w, http.StatusOK, m)
}

// POST /movimentacoes/{id}/comprovante
func (h *Handler) AnexarComprovante(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID da movimentação inválido")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, limiteCorpoComprovante)
	var in ComprovanteDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		var grande *http.MaxBytesError
		if errors.As(err, &grande) {
			utils.ResponderErro(w, http.StatusRequestEntityTooLarge, ErrComprovanteGrande.Error())
			return
		}
		utils.ResponderErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}

	conteudo, err := decodificarArquivo(in.ArquivoBase64)
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Arquivo em base64 inválido")
		return
	}
	comp, err := ValidarComprovante(in.NomeArquivo, in.TipoArquivo, conteudo)
	if err != nil {
		utils.ResponderErro(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if _, err := h.Repo.BuscarPorID(r.Context(), id); err != nil {
		h.responderFalhaBusca(w, err)
		return
	}
	nome, err := h.Armazenamento.Salvar(r.Context(), comp)
	if err != nil {
		h.Log.Error("erro ao gravar comprovante", zap.Uint("movimentacaoId", id), zap.Error(err))
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao gravar comprovante")
		return
	}
	url := PrefixoComprovantes + nome
	if err := h.Repo.AtualizarComprovante(r.Context(), id, url); err != nil {
		h.responderFalhaBusca(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]string{"comprovanteUrl": url})
}

// GET /comprovantes/{arquivo}
func (h *Handler) BaixarComprovante(w http.ResponseWriter, r *http.Request) {
	conteudo, mime, err := h.Armazenamento.Abrir(r.Context(), mux.Vars(r)["arquivo"])
	if errors.Is(err, ErrComprovanteInexistente) {
		utils.ResponderErro(w, http.StatusNotFound, "Comprovante não encontrado")
		return
	}
	if err != nil {
		h.Log.Error("erro ao ler comprovante", zap.Error(err))
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao ler comprovante")
		return
	}
	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(conteudo)
}

// decodificarArquivo aceita base64 puro ou no formato data:<mime>;base64,<dados>.
func decodificarArquivo(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			s = s[i+1:]
		}
	}
	return base64.StdEncoding.DecodeString(s)
}

func (h *Handler) responderFalhaBusca(w http.ResponseWriter, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.ResponderErro(w, http.StatusNotFound, "Movimentação não encontrada")
		return
	}
	h.Log.Error("erro de banco", zap.Error(err))
	utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao consultar o banco de dados")
}
