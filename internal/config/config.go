// Package config carrega as variáveis de ambiente da API e do console.
package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Porta string
	Modo  string

	DBHost        string
	DBPort        uint
	DBName        string
	DBUsername    string
	DBPassword    string
	DBSecretID    string
	DBSSLDisable  bool
	DBMaxIdle     int
	DBMaxOpen     int
	DBMaxLifetime time.Duration

	JWTSecret string
	JWTIssuer string
	JWTTTL    time.Duration

	ComprovantesDir string
	CorsOrigens     []string
	WebhookURL      string

	// Usados só pelo console de linha de comando.
	APIURL   string
	APIToken string
}

// Carregar lê o .env (se existir) e depois o ambiente; o ambiente prevalece.
func Carregar() (*Config, error) {
	_ = godotenv.Load()
	return de(viper.New())
}

func de(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetDefault("PORTA", "8080")
	v.SetDefault("MODO", "release")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_NAME", "contratos")
	v.SetDefault("DB_SSL_MODE_DISABLE", false)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_CONN_MAX_LIFETIME", time.Hour)
	v.SetDefault("JWT_ISSUER", "api-contratos")
	v.SetDefault("JWT_TTL", 8*time.Hour)
	v.SetDefault("COMPROVANTES_DIR", "./comprovantes")
	v.SetDefault("CORS_ORIGENS", "*")
	v.SetDefault("API_URL", "http://localhost:8080")

	return &Config{
		Porta:           v.GetString("PORTA"),
		Modo:            v.GetString("MODO"),
		DBHost:          v.GetString("DB_HOST"),
		DBPort:          v.GetUint("DB_PORT"),
		DBName:          v.GetString("DB_NAME"),
		DBUsername:      v.GetString("DB_USERNAME"),
		DBPassword:      v.GetString("DB_PASSWORD"),
		DBSecretID:      v.GetString("DB_SECRET_ID"),
		DBSSLDisable:    v.GetBool("DB_SSL_MODE_DISABLE"),
		DBMaxIdle:       v.GetInt("DB_MAX_IDLE_CONNS"),
		DBMaxOpen:       v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxLifetime:   v.GetDuration("DB_CONN_MAX_LIFETIME"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		JWTTTL:          v.GetDuration("JWT_TTL"),
		ComprovantesDir: v.GetString("COMPROVANTES_DIR"),
		CorsOrigens:     separar(v.GetString("CORS_ORIGENS")),
		WebhookURL:      v.GetString("WEBHOOK_URL"),
		APIURL:          v.GetString("API_URL"),
		APIToken:        v.GetString("API_TOKEN"),
	}, nil
}

func separar(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
