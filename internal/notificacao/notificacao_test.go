package notificacao

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWebhookEnviaJSON(t *testing.T) {
	recebido := make(chan payloadWebhook, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var p payloadWebhook
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		recebido <- p
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	Aviso(context.Background(), NovoWebhook(srv.URL, nil), "Informe a descrição do contrato")

	p := <-recebido
	assert.Equal(t, NivelAviso, p.Nivel)
	assert.Equal(t, "Informe a descrição do contrato", p.Mensagem)
}

func TestWebhookRegistraFalha(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	core, logs := observer.New(zapcore.DebugLevel)
	Erro(context.Background(), NovoWebhook(srv.URL, zap.New(core)), "falhou")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestLogEVarios(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	n := Varios{Log{L: zap.New(core)}, Log{L: zap.New(core)}}

	Sucesso(context.Background(), n, "Contrato salvo")
	Erro(context.Background(), n, "Erro ao salvar")

	require.Equal(t, 4, logs.Len())
	assert.Equal(t, zapcore.InfoLevel, logs.All()[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[3].Level)
	assert.Equal(t, "Contrato salvo", logs.All()[1].Message)
}
