package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadroes(t *testing.T) {
	for _, k := range []string{"PORTA", "CORS_ORIGENS", "DB_PORT", "JWT_ISSUER", "JWT_TTL", "DB_CONN_MAX_LIFETIME", "API_URL"} {
		t.Setenv(k, "")
	}
	cfg, err := de(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Porta)
	assert.Equal(t, []string{"*"}, cfg.CorsOrigens)
	assert.Equal(t, uint(5432), cfg.DBPort)
	assert.Equal(t, "api-contratos", cfg.JWTIssuer)
	assert.Equal(t, 8*time.Hour, cfg.JWTTTL)
	assert.Equal(t, time.Hour, cfg.DBMaxLifetime)
	assert.Equal(t, "http://localhost:8080", cfg.APIURL)
}

func TestAmbientePrevalece(t *testing.T) {
	t.Setenv("PORTA", "9090")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_SSL_MODE_DISABLE", "true")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("CORS_ORIGENS", "https://a.example, https://b.example,")

	cfg, err := de(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Porta)
	assert.Equal(t, uint(6543), cfg.DBPort)
	assert.True(t, cfg.DBSSLDisable)
	assert.Equal(t, 30*time.Minute, cfg.JWTTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CorsOrigens)
}
