package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"classboard/internal/config"
	"classboard/internal/model"
	"classboard/internal/repository"
	"classboard/internal/webutil"
)

// SessionMiddleware validates the Bearer session token and resolves the
// current user into the request context. Handlers behind it can rely on
// GetUserFromContext succeeding.
func SessionMiddleware(cfg *config.Config, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Session auth failed: Authorization header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorization header is required.", "", model.ErrInvalidCredentials)
				webutil.HandleError(w, logger, appErr)
				return
			}
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("Session auth failed: invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorization header must be a Bearer token.", "", model.ErrInvalidCredentials)
				webutil.HandleError(w, logger, appErr)
				return
			}

			token, err := jwt.Parse(headerParts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.Session.Secret), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("Session auth failed: invalid token", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "The session token is invalid or expired.", "", model.ErrInvalidCredentials)
				webutil.HandleError(w, logger, appErr)
				return
			}

			userID, err := token.Claims.GetSubject()
			if err != nil || userID == "" {
				logger.Warn("Session auth failed: missing subject claim", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "The session token is malformed.", "", model.ErrInvalidCredentials)
				webutil.HandleError(w, logger, appErr)
				return
			}

			user, err := users.FindByID(r.Context(), userID)
			if err != nil {
				logger.Warn("Session auth failed: unknown user", "user_id", userID, "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "The session user no longer exists.", "", model.ErrInvalidCredentials)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), model.UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireInstructor gates the authoring operations: course CRUD, content
// creation and grading.
func RequireInstructor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		user, err := GetUserFromContext(r.Context())
		if err != nil || user.Role != model.RoleInstructor {
			logger.Warn("Instructor-only operation rejected")
			appErr := model.NewAppError("FORBIDDEN", "This operation requires the instructor role.", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext returns the user resolved by SessionMiddleware.
func GetUserFromContext(ctx context.Context) (*model.User, error) {
	user, ok := ctx.Value(model.UserKey).(*model.User)
	if !ok || user == nil {
		return nil, model.ErrInvalidCredentials
	}
	return user, nil
}
