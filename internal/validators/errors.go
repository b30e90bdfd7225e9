package validators

import "errors"

// Constraint violations reported by the validators. A validation call may
// return several of them joined together; callers match individual
// violations with [errors.Is].
var (
	// ErrUserNameLength is reported when the display name is empty or
	// longer than 30 characters.
	ErrUserNameLength = errors.New("user name must be between 1 and 30 characters")

	// ErrEmailInvalid is reported when the email does not parse as an
	// RFC 5322 address.
	ErrEmailInvalid = errors.New("email address is not valid")

	// ErrPasswordLength is reported when the password is shorter than 8 or
	// longer than 50 characters.
	ErrPasswordLength = errors.New("password must be between 8 and 50 characters")

	// ErrPasswordWeak is reported when the password lacks an uppercase
	// letter, a lowercase letter, or a digit-or-symbol character.
	ErrPasswordWeak = errors.New("password too weak")

	// ErrMovieNameLength is reported when the movie name is empty or
	// longer than 100 characters.
	ErrMovieNameLength = errors.New("movie name must be between 1 and 100 characters")

	// ErrDescriptionTooLong is reported when the description exceeds
	// 500 characters.
	ErrDescriptionTooLong = errors.New("description must be at most 500 characters")

	// ErrDirectorNameTooLong is reported when the director name exceeds
	// 100 characters.
	ErrDirectorNameTooLong = errors.New("director name must be at most 100 characters")
)
