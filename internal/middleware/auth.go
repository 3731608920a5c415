package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName — имя cookie с JWT.
const CookieName = "auth_token"

// DefaultTokenTTL is used when no explicit lifetime is configured.
const DefaultTokenTTL = 24 * time.Hour

type ctxKey string

const userIDKey ctxKey = "user_id"

// Claims — полезная нагрузка токена.
type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// IssueToken signs a token for userID valid for ttl.
func IssueToken(userID, secret string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken checks the signature and expiry and returns the user id.
func ParseToken(token, secret string) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !parsed.Valid || claims.UserID == "" {
		return "", errors.New("invalid token")
	}
	return claims.UserID, nil
}

// SetLoginCookie выписывает токен и кладёт его в cookie ответа.
func SetLoginCookie(w http.ResponseWriter, userID, secret string) error {
	return SetLoginCookieTTL(w, userID, secret, DefaultTokenTTL)
}

// SetLoginCookieTTL is SetLoginCookie with an explicit lifetime.
func SetLoginCookieTTL(w http.ResponseWriter, userID, secret string, ttl time.Duration) error {
	token, err := IssueToken(userID, secret, ttl)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(ttl),
	})
	return nil
}

// WithAuth читает токен из cookie или заголовка Authorization: Bearer и,
// если он валиден, кладёт user_id в контекст. Анонимные запросы пропускаются.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			userID, err := ParseToken(token, secret)
			if err != nil {
				if logger != nil {
					logger.Debugw("auth: rejected token", "error", err)
				}
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth отвечает 401, если WithAuth не нашёл пользователя.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserIDFromContext returns the authenticated user id.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	h := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(h, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
