package db

import (
	"context"
	"fmt"
	"time"

	"github.com/KromaEnergia/api-contratos/internal/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN monta a string de conexão do Postgres.
func DSN(cfg *config.Config, username, password string) string {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d TimeZone=UTC",
		cfg.DBHost, username, password, cfg.DBName, cfg.DBPort)
	if cfg.DBSSLDisable {
		dsn += " sslmode=disable"
	}
	return dsn
}

// Conectar abre o Postgres com as credenciais do ambiente ou do Secrets
// Manager e aplica os limites do pool.
func Conectar(ctx context.Context, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	username, password, err := Credenciais(ctx, cfg, nil)
	if err != nil {
		return nil, err
	}
	database, err := gorm.Open(postgres.Open(DSN(cfg, username, password)), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Error),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("conectar ao banco: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("obter sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdle)
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpen)
	sqlDB.SetConnMaxLifetime(cfg.DBMaxLifetime)
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping no banco: %w", err)
	}

	log.Info("conexão com o banco estabelecida",
		zap.String("host", cfg.DBHost), zap.Uint("porta", cfg.DBPort), zap.String("banco", cfg.DBName))
	return database, nil
}
