package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-WorkplaceService/internal/api/handlers"
)

// HeaderUserID заголовок с идентификатором пользователя.
// Аутентификацию выполняет вышестоящий gateway, сервис доверяет заголовку.
const HeaderUserID = "X-User-ID"

type userIDContextKey struct{}

const msgMissingUserID = "отсутствует заголовок X-User-ID"

// Auth проверяет наличие X-User-ID и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID достает идентификатор пользователя из контекста запроса
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDContextKey{}).(string)
	return id, ok
}
