package notificacao

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Webhook publica cada notificação como JSON num endpoint externo.
// Falhas de envio só são registradas; não há nova tentativa.
type Webhook struct {
	URL    string
	Client *http.Client
	Log    *zap.Logger
}

func NovoWebhook(url string, log *zap.Logger) *Webhook {
	if log == nil {
		log = zap.NewNop()
	}
	return &Webhook{URL: url, Client: &http.Client{Timeout: 10 * time.Second}, Log: log}
}

type payloadWebhook struct {
	Nivel    Nivel     `json:"nivel"`
	Mensagem string    `json:"mensagem"`
	Enviada  time.Time `json:"enviadaEm"`
}

func (w *Webhook) Notificar(ctx context.Context, nivel Nivel, mensagem string) {
	body, _ := json.Marshal(payloadWebhook{Nivel: nivel, Mensagem: mensagem, Enviada: time.Now().UTC()})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		w.Log.Error("erro ao montar webhook", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.Client.Do(req)
	if err != nil {
		w.Log.Error("erro ao enviar webhook", zap.Error(err))
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		w.Log.Warn("webhook recusou a notificação", zap.Int("status", resp.StatusCode))
	}
}
