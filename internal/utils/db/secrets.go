package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KromaEnergia/api-contratos/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

var ErrSemCredenciais = errors.New("defina DB_USERNAME/DB_PASSWORD ou DB_SECRET_ID")

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LeitorSegredos é o subconjunto do cliente do Secrets Manager usado aqui.
type LeitorSegredos interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

func novoLeitor(ctx context.Context) (LeitorSegredos, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("carregar configuração AWS: %w", err)
	}
	return secretsmanager.NewFromConfig(awsCfg), nil
}

// Credenciais usa DB_USERNAME/DB_PASSWORD quando ambos estão definidos; senão
// lê o segredo DB_SECRET_ID. Com leitor nil o cliente AWS é criado aqui.
func Credenciais(ctx context.Context, cfg *config.Config, leitor LeitorSegredos) (string, string, error) {
	if cfg.DBUsername != "" && cfg.DBPassword != "" {
		return cfg.DBUsername, cfg.DBPassword, nil
	}
	if cfg.DBSecretID == "" {
		return "", "", ErrSemCredenciais
	}
	if leitor == nil {
		var err error
		if leitor, err = novoLeitor(ctx); err != nil {
			return "", "", err
		}
	}

	result, err := leitor.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(cfg.DBSecretID),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return "", "", fmt.Errorf("ler segredo %s: %w", cfg.DBSecretID, err)
	}
	if result.SecretString == nil {
		return "", "", fmt.Errorf("segredo %s sem SecretString", cfg.DBSecretID)
	}

	var secret Credentials
	if err := json.Unmarshal([]byte(*result.SecretString), &secret); err != nil {
		return "", "", fmt.Errorf("segredo %s mal formado: %w", cfg.DBSecretID, err)
	}
	return secret.Username, secret.Password, nil
}
