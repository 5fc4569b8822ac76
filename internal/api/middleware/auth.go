package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/urinakcleaning/booking-service/internal/api/handlers"
)

type ctxKey int

const (
	adminIDKey ctxKey = iota
	requestIDKey
)

const (
	msgMissingToken = "missing bearer token"
	msgInvalidToken = "invalid or expired token"
)

// AdminAuth пропускает запрос только с валидным Bearer токеном администратора
// и кладет ID администратора в контекст
func AdminAuth(parser TokenParser, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := parser.Parse(raw)
			if err != nil {
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdminID(r.Context(), claims.AdminID)))
		})
	}
}

// OptionalAdminAuth как AdminAuth, но запрос без токена проходит без ID в контексте.
// Неверный токен всё равно отклоняется.
func OptionalAdminAuth(parser TokenParser, logger Logger) mux.MiddlewareFunc {
	strict := AdminAuth(parser, logger)
	return func(next http.Handler) http.Handler {
		guarded := strict(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := bearerToken(r); !ok {
				next.ServeHTTP(w, r)
				return
			}
			guarded.ServeHTTP(w, r)
		})
	}
}

// WithAdminID кладет ID администратора в контекст
func WithAdminID(ctx context.Context, adminID int64) context.Context {
	return context.WithValue(ctx, adminIDKey, adminID)
}

// GetAdminID достает ID администратора, установленный AdminAuth
func GetAdminID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(adminIDKey).(int64)
	return id, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
