package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

var ErrIDInvalido = errors.New("ID inválido")

// ResponderJSON escreve v como JSON com o status informado.
func ResponderJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ResponderErro responde {"erro": msg}; o console só exibe a mensagem.
func ResponderErro(w http.ResponseWriter, status int, msg string) {
	ResponderJSON(w, status, map[string]string{"erro": msg})
}

// IDDaRota lê um ID numérico positivo da variável de rota.
func IDDaRota(r *http.Request, nome string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[nome], 10, 64)
	if err != nil || id == 0 {
		return 0, ErrIDInvalido
	}
	return uint(id), nil
}

// Inteiro lê um inteiro da query string, com padrão quando ausente ou ilegível.
func Inteiro(r *http.Request, nome string, padrao int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(nome))
	if err != nil {
		return padrao
	}
	return v
}
