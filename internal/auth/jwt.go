package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrSegredoAusente = errors.New("JWT_SECRET não definida")
	ErrTokenInvalido  = errors.New("token inválido ou expirado")
)

// Tempo de vida padrão do access token
const TTLPadrao = 8 * time.Hour

type Claims struct {
	UsuarioID uint `json:"userId"`
	IsAdmin   bool `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Emissor assina e valida tokens HS256 com um segredo compartilhado.
type Emissor struct {
	segredo []byte
	issuer  string
	ttl     time.Duration
	agora   func() time.Time
}

func NovoEmissor(segredo, issuer string, ttl time.Duration) (*Emissor, error) {
	if segredo == "" {
		return nil, ErrSegredoAusente
	}
	if ttl <= 0 {
		ttl = TTLPadrao
	}
	return &Emissor{segredo: []byte(segredo), issuer: issuer, ttl: ttl, agora: time.Now}, nil
}

// GerarToken gera um JWT para o usuário com iss, sub, iat e exp.
func (e *Emissor) GerarToken(usuarioID uint, isAdmin bool) (string, error) {
	now := e.agora()
	claims := &Claims{
		UsuarioID: usuarioID,
		IsAdmin:   isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    e.issuer,
			Subject:   strconv.FormatUint(uint64(usuarioID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(e.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(e.segredo)
}

// ValidarToken valida assinatura, issuer e expiração e retorna as claims.
func (e *Emissor) ValidarToken(tokenStr string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(e.agora),
	}
	if e.issuer != "" {
		opts = append(opts, jwt.WithIssuer(e.issuer))
	}
	tok, err := jwt.NewParser(opts...).ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return e.segredo, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalido, err)
	}
	c, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrTokenInvalido
	}
	return c, nil
}
