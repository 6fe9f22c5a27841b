package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"hifz_keep/internal/config"
	"hifz_keep/internal/model"
	"hifz_keep/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTAuthMiddleware validates the Bearer token and puts the subject user ID
// into the request context. When auth is disabled in config (local
// development), the X-User-ID header is accepted instead.
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			if !cfg.Auth.Enabled {
				userID, err := uuid.Parse(r.Header.Get("X-User-ID"))
				if err != nil {
					appErr := model.NewAppError("UNAUTHORIZED", "X-User-ID header required when auth is disabled.", "", model.ErrUnauthorized)
					webutil.HandleError(w, logger, appErr)
					return
				}
				next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorization header is required.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorization header must be of the form 'Bearer {token}'.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			token, err := jwt.Parse(headerParts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWT.SecretKey), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "The access token is invalid or expired.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			subject, err := token.Claims.GetSubject()
			if err != nil {
				appErr := model.NewAppError("INVALID_TOKEN", "The access token has no subject.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}
			userID, err := uuid.Parse(subject)
			if err != nil {
				appErr := model.NewAppError("INVALID_TOKEN", "The access token subject is not a valid user ID.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID stores the authenticated user ID in the context.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, model.UserIDKey, userID)
}

// GetUserIDFromContext returns the authenticated user ID set by
// JWTAuthMiddleware.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, model.ErrUnauthorized
	}
	return userID, nil
}
