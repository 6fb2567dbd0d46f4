package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/product-catalog/internal/http/response"
	"github.com/magabrotheeeer/product-catalog/internal/lib/jwt"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
)

// JWTMiddleware проверяет заголовок Authorization, парсит Bearer-токен
// и кладет имя и UID пользователя в контекст запроса.
// Именно этот UID используется как владелец создаваемых товаров.
func JWTMiddleware(maker jwt.Maker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Error("missing authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error(http.StatusUnauthorized, "unauthorized"))
				return
			}

			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				log.Error("invalid authorization header format")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error(http.StatusUnauthorized, "unauthorized"))
				return
			}

			claims, err := maker.ParseToken(tokenStr)
			if err != nil {
				log.Error("failed to parse token", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error(http.StatusUnauthorized, "unauthorized"))
				return
			}

			ctx := context.WithValue(r.Context(), User, claims.Username)
			ctx = context.WithValue(ctx, UserUID, claims.UserUID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
