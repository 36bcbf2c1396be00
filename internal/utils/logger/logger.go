// Package logger configura o zap e o log de requisições HTTP.
package logger

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NovoLogger: modo "debug" escreve no console de forma legível; qualquer
// outro modo gera JSON com timestamp ISO8601.
func NovoLogger(modo string) (*zap.Logger, error) {
	var cfg zap.Config
	if modo == "debug" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	return cfg.Build()
}

type respostaComStatus struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *respostaComStatus) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *respostaComStatus) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// Requisicoes registra método, rota, status e duração de cada chamada.
// Respostas 5xx saem como erro, 4xx como aviso.
func Requisicoes(log *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inicio := time.Now()
			rw := &respostaComStatus{ResponseWriter: w}
			next.ServeHTTP(rw, r)
			if rw.status == 0 {
				rw.status = http.StatusOK
			}

			rota := r.URL.Path
			if rt := mux.CurrentRoute(r); rt != nil {
				if tpl, err := rt.GetPathTemplate(); err == nil {
					rota = tpl
				}
			}
			campos := []zap.Field{
				zap.String("metodo", r.Method),
				zap.String("rota", rota),
				zap.Int("status", rw.status),
				zap.Int("bytes", rw.bytes),
				zap.Duration("duracao", time.Since(inicio)),
			}
			switch {
			case rw.status >= 500:
				log.Error("requisição", campos...)
			case rw.status >= 400:
				log.Warn("requisição", campos...)
			default:
				log.Info("requisição", campos...)
			}
		})
	}
}
