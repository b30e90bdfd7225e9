package graph

import (
	"context"
	"errors"

	"github.com/graphql-go/graphql"
	"github.com/kinoteka/kinoteka/internal/logger"
	"github.com/kinoteka/kinoteka/internal/service"
	"github.com/kinoteka/kinoteka/internal/utils"
)

// requireAuth gates a field resolver behind bearer-token authentication.
//
// Public and protected operations share the single /query endpoint, so the
// gate sits per field rather than on the HTTP route. The HTTP layer stores
// the raw Authorization header in the request context; this wrapper extracts
// the bearer token, verifies it, and puts the authenticated user ID into the
// context the wrapped resolver runs with.
//
// Failure mapping:
//   - No Authorization header → NOT_AUTHENTICATED.
//   - Expired token → SESSION_EXPIRED.
//   - Malformed header or token, bad signature, wrong issuer → INVALID_TOKEN.
//   - Anything unexpected → logged, NOT_AUTHENTICATED.
func (r *Resolver) requireAuth(next graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		header, ok := utils.GetAuthHeaderFromContext(p.Context)
		if !ok || header == "" {
			return nil, errNotAuthenticated
		}

		// A header without a scheme+token shape yields an empty token and
		// fails verification as malformed.
		tokenString, err := utils.ParseBearerToken(header)
		if err != nil {
			tokenString = ""
		}

		token, err := r.services.AuthService.ParseToken(p.Context, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				return nil, errSessionExpired
			case errors.Is(err, service.ErrTokenIsMalformed):
				return nil, errInvalidToken
			default:
				logger.FromContext(p.Context).Err(err).Msg("unexpected token verification failure")
				return nil, errNotAuthenticated
			}
		}

		p.Context = context.WithValue(p.Context, utils.UserIDCtxKey, token.UserID)

		return next(p)
	}
}
