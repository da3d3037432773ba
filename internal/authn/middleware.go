package authn

import (
	"context"
	"net/http"
	"strings"

	apierrors "goap-planner/internal/errors"
)

type contextKey string

const claimsKey contextKey = "authn_claims"

// Middleware validates the Authorization: Bearer <token> header on every
// request and stores the resulting Claims in the request context.
// Requests without a valid token are rejected before reaching the
// wrapped handler.
func Middleware(tm *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				apierrors.RespondWithError(w, apierrors.ErrAuthMissingToken)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				apierrors.RespondWithError(w, apierrors.ErrAuthMissingToken)
				return
			}

			claims, err := tm.ValidateToken(parts[1])
			if err != nil {
				apierrors.RespondWithError(w, apierrors.ErrAuthTokenInvalid)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext returns the validated Claims stored by Middleware, or nil
// if the request wasn't authenticated (e.g. in a test calling a handler
// directly).
func FromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey).(*Claims)
	return claims
}
