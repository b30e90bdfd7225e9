// Package validators checks GraphQL input payloads against the field
// constraints of the data model before any hashing or persistence happens.
//
// Each validator collects every violated constraint into a single joined
// error instead of stopping at the first one, so a caller can surface the
// complete list to the client. Individual violations are sentinel errors
// matchable with errors.Is.
package validators

import "github.com/kinoteka/kinoteka/models"

// UserValidator validates the authentication-related input payloads.
type UserValidator interface {
	// ValidateSignup checks the signup mutation arguments.
	ValidateSignup(input models.SignupInput) error

	// ValidateChangePassword checks the changePassword mutation arguments.
	// Only the new password's strength is constrained; the old password is
	// verified against the stored hash, not validated for shape.
	ValidateChangePassword(input models.ChangePasswordInput) error
}

// MovieValidator validates the movie mutation input payloads.
type MovieValidator interface {
	// ValidateNewMovie checks the createMovie mutation arguments.
	ValidateNewMovie(input models.CreateMovieInput) error

	// ValidateMovieUpdate checks the updateMovie mutation arguments.
	// Nil fields are absent and therefore skipped.
	ValidateMovieUpdate(input models.UpdateMovieInput) error
}
