package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"delivery-api/internal/model"
)

const bearerPrefix = "Bearer "

const (
	detailMissingHeader = "Missing authorization header"
	detailInvalidToken  = "Invalid or expired token"
)

type tokenVerifier interface {
	Verify(tokenString string) (model.TokenPayload, error)
}

type userResolver interface {
	GetUser(ctx context.Context, username string) (model.User, bool, error)
}

type contextKey string

const userContextKey contextKey = "auth_user"

// AuthGate authenticates every request except those whose path is in the
// allow-list. It keeps no state besides its immutable configuration.
type AuthGate struct {
	tokens    tokenVerifier
	users     userResolver
	allowlist map[string]struct{}
}

// NewAuthGate builds a gate exempting exactly the given paths. Matching is on
// the full URL path with no prefix or pattern semantics.
func NewAuthGate(tokens tokenVerifier, users userResolver, allowlist []string) *AuthGate {
	allowed := make(map[string]struct{}, len(allowlist))
	for _, path := range allowlist {
		allowed[path] = struct{}{}
	}

	return &AuthGate{tokens: tokens, users: users, allowlist: allowed}
}

func (g *AuthGate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := g.allowlist[r.URL.Path]; ok {
			next.ServeHTTP(w, r)
			return
		}

		user, detail, err := g.authenticate(r)
		if err != nil {
			slog.Log(r.Context(), rejectionLevel(err), "request rejected by auth gate",
				"path", r.URL.Path,
				"request_id", w.Header().Get(requestIDHeader),
				"reason", err.Error(),
			)
			writeUnauthorized(w, detail)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

var errMissingBearer = errors.New("missing or malformed bearer authorization header")

// authenticate returns the resolved user, or the client-facing detail and the
// internal cause of the rejection.
func (g *AuthGate) authenticate(r *http.Request) (user model.User, detail string, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			user, detail, err = model.User{}, detailInvalidToken, errors.New("panic during authentication")
		}
	}()

	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return model.User{}, detailMissingHeader, errMissingBearer
	}

	payload, err := g.tokens.Verify(header[len(bearerPrefix):])
	if err != nil {
		return model.User{}, detailInvalidToken, err
	}
	if payload.Subject == "" {
		return model.User{}, detailInvalidToken, model.ErrInvalidToken
	}

	resolved, found, err := g.users.GetUser(r.Context(), payload.Subject)
	if err != nil {
		return model.User{}, detailInvalidToken, err
	}
	if !found {
		return model.User{}, detailInvalidToken, model.ErrUserNotFound
	}

	return resolved, "", nil
}

// Expected rejections log at warn; anything else points at a fault behind the
// gate and logs at error.
func rejectionLevel(err error) slog.Level {
	switch {
	case errors.Is(err, errMissingBearer),
		errors.Is(err, model.ErrInvalidToken),
		errors.Is(err, model.ErrExpiredToken),
		errors.Is(err, model.ErrUserNotFound):
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// UserFromContext returns the identity attached by AuthGate.
func UserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userContextKey).(model.User)
	return user, ok
}

func writeUnauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", problemContentType)
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)

	_ = jsonEncode(w, model.APIResponse{
		Success: false,
		Data: model.Problem{
			Error:  "Invalid request",
			Detail: detail,
		},
	})
}
