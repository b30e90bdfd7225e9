package graph

import (
	"context"
	"errors"

	"github.com/kinoteka/kinoteka/internal/logger"
	"github.com/kinoteka/kinoteka/internal/service"
	"github.com/kinoteka/kinoteka/internal/store"
)

// Machine-readable error codes surfaced in the "extensions" object of every
// GraphQL error. Clients branch on the code, not on the message text.
const (
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeNotAuthenticated   = "NOT_AUTHENTICATED"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeSessionExpired     = "SESSION_EXPIRED"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeMovieNotFound      = "MOVIE_NOT_FOUND"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidDate        = "INVALID_DATE"
	CodeStoreError         = "STORE_ERROR"
)

// apiError is the only error type resolvers return. It satisfies
// gqlerrors.ExtendedError so the code lands in the response extensions.
type apiError struct {
	message string
	code    string
}

func (e *apiError) Error() string {
	return e.message
}

func (e *apiError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

var (
	errNotAuthenticated = &apiError{message: "not authenticated", code: CodeNotAuthenticated}
	errSessionExpired   = &apiError{message: "session expired, please log in again", code: CodeSessionExpired}
	errInvalidToken     = &apiError{message: "invalid token", code: CodeInvalidToken}
)

// mapError translates service and store errors into API errors.
//
// Validation and date-parse failures keep their message so the client sees
// which constraint was violated; everything unrecognised is logged and
// collapsed into a generic internal error.
func mapError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidationFailed):
		return &apiError{message: err.Error(), code: CodeValidationFailed}
	case errors.Is(err, store.ErrInvalidOrderField):
		return &apiError{message: store.ErrInvalidOrderField.Error(), code: CodeValidationFailed}
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return &apiError{message: "email already registered", code: CodeDuplicateEmail}
	case errors.Is(err, store.ErrNoUserWasFound):
		return &apiError{message: "user not found", code: CodeUserNotFound}
	case errors.Is(err, service.ErrWrongPassword):
		return &apiError{message: "invalid credentials", code: CodeInvalidCredentials}
	case errors.Is(err, store.ErrMovieNotFound):
		return &apiError{message: "movie not found", code: CodeMovieNotFound}
	case errors.Is(err, service.ErrNotMovieOwner):
		return &apiError{message: "not authorized to modify this movie", code: CodeUnauthorized}
	case errors.Is(err, service.ErrInvalidReleaseDate):
		return &apiError{message: err.Error(), code: CodeInvalidDate}
	default:
		logger.FromContext(ctx).Err(err).Msg("unexpected resolver error")
		return &apiError{message: "internal error", code: CodeStoreError}
	}
}
