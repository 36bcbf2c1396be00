package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/KromaEnergia/api-contratos/internal/utils"
)

type ctxKey string

const (
	CtxUsuarioID ctxKey = "usuarioID"
	CtxIsAdmin   ctxKey = "isAdmin"
)

// Middleware exige "Authorization: Bearer <token>" válido e responde 401 caso
// contrário. Requisições OPTIONS (preflight de CORS) passam direto.
func (e *Emissor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			utils.ResponderErro(w, http.StatusUnauthorized, "Token ausente")
			return
		}
		claims, err := e.ValidarToken(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			utils.ResponderErro(w, http.StatusUnauthorized, "Token inválido")
			return
		}
		ctx := context.WithValue(r.Context(), CtxUsuarioID, claims.UsuarioID)
		ctx = context.WithValue(ctx, CtxIsAdmin, claims.IsAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UsuarioID devolve o usuário autenticado da requisição, se houver.
func UsuarioID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(CtxUsuarioID).(uint)
	return id, ok
}
