package validators

import (
	"errors"
	"unicode/utf8"

	"github.com/kinoteka/kinoteka/models"
)

const (
	movieNameMaxLength    = 100
	descriptionMaxLength  = 500
	directorNameMaxLength = 100
)

type movieValidator struct{}

// NewMovieValidator constructs a [MovieValidator].
func NewMovieValidator() MovieValidator {
	return &movieValidator{}
}

// ValidateNewMovie checks the length bounds of all createMovie fields.
// The release date string is not validated here: parsing it is the
// service's job so that a bad date surfaces as its own error kind.
func (v *movieValidator) ValidateNewMovie(input models.CreateMovieInput) error {
	var errs []error

	if n := utf8.RuneCountInString(input.Name); n < 1 || n > movieNameMaxLength {
		errs = append(errs, ErrMovieNameLength)
	}
	if utf8.RuneCountInString(input.Description) > descriptionMaxLength {
		errs = append(errs, ErrDescriptionTooLong)
	}
	if utf8.RuneCountInString(input.DirectorName) > directorNameMaxLength {
		errs = append(errs, ErrDirectorNameTooLong)
	}

	return errors.Join(errs...)
}

// ValidateMovieUpdate checks the upper length bounds of the fields present
// in a partial update. Absent fields keep their stored values and are not
// validated; an empty value counts as absent, so no minimum applies.
func (v *movieValidator) ValidateMovieUpdate(input models.UpdateMovieInput) error {
	var errs []error

	if input.Name != nil && utf8.RuneCountInString(*input.Name) > movieNameMaxLength {
		errs = append(errs, ErrMovieNameLength)
	}
	if input.Description != nil && utf8.RuneCountInString(*input.Description) > descriptionMaxLength {
		errs = append(errs, ErrDescriptionTooLong)
	}
	if input.DirectorName != nil && utf8.RuneCountInString(*input.DirectorName) > directorNameMaxLength {
		errs = append(errs, ErrDirectorNameTooLong)
	}

	return errors.Join(errs...)
}
