package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KromaEnergia/api-contratos/internal/auth"
	"github.com/KromaEnergia/api-contratos/internal/config"
	"github.com/KromaEnergia/api-contratos/internal/contrato"
	"github.com/KromaEnergia/api-contratos/internal/movimentacao"
	"github.com/KromaEnergia/api-contratos/internal/referencia"
	"github.com/KromaEnergia/api-contratos/internal/utils"
	"github.com/KromaEnergia/api-contratos/internal/utils/db"
	"github.com/KromaEnergia/api-contratos/internal/utils/logger"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Carregar()
	if err != nil {
		log.Fatal("Erro ao carregar configuração:", err)
	}
	zl, err := logger.NovoLogger(cfg.Modo)
	if err != nil {
		log.Fatal("Erro ao iniciar logger:", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Conectar(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("erro ao conectar no banco", zap.Error(err))
	}

	// AutoMigrate para todos os modelos
	for _, migrar := range []func(*gorm.DB) error{contrato.Migrate, movimentacao.Migrate, referencia.Migrate} {
		if err := migrar(database); err != nil {
			zl.Fatal("erro no AutoMigrate", zap.Error(err))
		}
	}

	disco, err := movimentacao.NovoDisco(cfg.ComprovantesDir)
	if err != nil {
		zl.Fatal("erro no armazenamento de comprovantes", zap.Error(err))
	}
	emissor, err := auth.NovoEmissor(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	if err != nil {
		zl.Fatal("erro na configuração do JWT", zap.Error(err))
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CorsOrigens,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	srv := &http.Server{
		Addr:              ":" + cfg.Porta,
		Handler:           c.Handler(novoRouter(database, disco, emissor, zl)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("servidor rodando", zap.String("porta", cfg.Porta))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("erro no servidor", zap.Error(err))
		}
	}()

	<-ctx.Done()
	desligar, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(desligar); err != nil {
		zl.Error("erro ao desligar servidor", zap.Error(err))
	}
	zl.Info("servidor encerrado")
}

func novoRouter(database *gorm.DB, arm movimentacao.Armazenamento, emissor *auth.Emissor, zl *zap.Logger) *mux.Router {
	contratoHandler := contrato.NewHandler(contrato.NewRepository(database), zl)
	movimentacaoHandler := movimentacao.NewHandler(movimentacao.NewRepository(database), arm, zl)
	referenciaHandler := referencia.NewHandler(database, zl)

	r := mux.NewRouter()
	r.Use(logger.Requisicoes(zl))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponderJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := r.NewRoute().Subrouter()
	api.Use(emissor.Middleware)

	// Rotas de contratos
	api.HandleFunc("/contratos", contratoHandler.Criar).Methods("POST")
	api.HandleFunc("/contratos", contratoHandler.Listar).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/contratos/{id}", contratoHandler.Remover).Methods("DELETE")
	api.HandleFunc("/tipos-contrato", contratoHandler.ListarTipos).Methods("GET")

	// Dados de referência
	api.HandleFunc("/pessoas", referenciaHandler.BuscarPessoas).Methods("GET")
	api.HandleFunc("/pessoas/{id}", referenciaHandler.BuscarPessoa).Methods("GET")
	api.HandleFunc("/contas-bancarias", referenciaHandler.ListarContas).Methods("GET")

	// Rotas de movimentações
	api.HandleFunc("/movimentacoes/receber", movimentacaoHandler.ListarReceber).Methods("GET")
	api.HandleFunc("/movimentacoes/pagar", movimentacaoHandler.ListarPagar).Methods("GET")
	api.HandleFunc("/movimentacoes/{id}/baixa", movimentacaoHandler.Baixar).Methods("PATCH")
	api.HandleFunc("/movimentacoes/{id}/comprovante", movimentacaoHandler.AnexarComprovante).Methods("POST")
	api.HandleFunc(movimentacao.PrefixoComprovantes+"{arquivo}", movimentacaoHandler.BaixarComprovante).Methods("GET")

	return r
}
