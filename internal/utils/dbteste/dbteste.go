// Package dbteste abre bancos SQLite em memória para os testes dos repositórios.
package dbteste

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Abrir cria um banco em memória já migrado com os modelos informados.
// A conexão é única para que todas as consultas vejam o mesmo banco.
func Abrir(t testing.TB, modelos ...interface{}) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		t.Fatalf("erro ao abrir sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("erro ao obter sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(modelos...); err != nil {
		t.Fatalf("erro no AutoMigrate: %v", err)
	}
	return db
}
