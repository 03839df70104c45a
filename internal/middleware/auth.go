package middleware

import (
	"JewelryStore/internal/auth"
	"JewelryStore/internal/model"
	"JewelryStore/internal/policy"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// CookieName — имя cookie с токеном.
const CookieName = "auth_token"

type ctxKey struct{}

// WithAuth проверяет токен из заголовка Authorization: Bearer или из cookie
// и кладёт claims в контекст. Без токена или с невалидным токеном запрос
// проходит дальше анонимно: доступ решает RequireAuth.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := auth.ValidateToken(secret, token)
			if err != nil {
				log.Debugw("invalid token", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), ctxKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth отвечает 401, если WithAuth не нашёл валидный токен.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetClaims(r.Context()); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "authentication required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetClaims(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(ctxKey{}).(*auth.Claims)
	return c, ok && c != nil
}

// GetUserIDFromContext возвращает id учётной записи из токена.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	c, ok := GetClaims(ctx)
	if !ok {
		return "", false
	}
	return c.AccountID, true
}

// GetActor собирает policy.Actor из claims запроса.
func GetActor(ctx context.Context) (policy.Actor, bool) {
	c, ok := GetClaims(ctx)
	if !ok {
		return policy.Actor{}, false
	}
	return policy.Actor{AccountID: c.AccountID, Role: c.Role, BranchID: c.BranchID}, true
}

// SetLoginCookie выпускает токен для учётной записи, ставит его в cookie и возвращает.
func SetLoginCookie(w http.ResponseWriter, a *model.Account, secret string, ttl time.Duration) (string, error) {
	token, err := auth.GenerateToken(secret, ttl, a)
	if err != nil {
		return "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(ttl),
	})
	return token, nil
}

func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value
	}
	return ""
}
