package middleware

import (
	"ModelCatalog/internal/auth"
	"context"
	"net/http"
	"strings"
)

type contextKey string

const subjectKey contextKey = "subject"

// WithAuth разбирает заголовок Authorization: Bearer <token> и кладёт субъекта
// в контекст запроса. Запрос без токена или с невалидным токеном проходит дальше
// анонимно — решение принимают хендлеры (чтение публично, мутации требуют субъекта).
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == header { // префикса не было
				next.ServeHTTP(w, r)
				return
			}

			if sub, ok := auth.ParseSubject(tokenString, secret); ok {
				r = r.WithContext(context.WithValue(r.Context(), subjectKey, sub))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetSubjectFromContext возвращает субъекта запроса, если он аутентифицирован.
func GetSubjectFromContext(ctx context.Context) (auth.Subject, bool) {
	sub, ok := ctx.Value(subjectKey).(auth.Subject)
	return sub, ok
}
