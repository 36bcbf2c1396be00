package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNovoLogger(t *testing.T) {
	for _, modo := range []string{"debug", "release"} {
		l, err := NovoLogger(modo)
		require.NoError(t, err)
		assert.NotNil(t, l)
	}
}

func TestRequisicoesRegistraRotaEStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := mux.NewRouter()
	r.Use(Requisicoes(zap.New(core)))
	r.HandleFunc("/contratos/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/contratos/12", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	entradas := logs.All()
	require.Len(t, entradas, 2)
	assert.Equal(t, zapcore.WarnLevel, entradas[0].Level)
	ctx := entradas[0].ContextMap()
	assert.Equal(t, "/contratos/{id}", ctx["rota"])
	assert.EqualValues(t, 404, ctx["status"])

	assert.Equal(t, zapcore.InfoLevel, entradas[1].Level)
	assert.EqualValues(t, 2, entradas[1].ContextMap()["bytes"])
}
