package validators

import (
	"errors"
	"net/mail"
	"unicode"
	"unicode/utf8"

	"github.com/kinoteka/kinoteka/models"
)

const (
	userNameMaxLength = 30
	passwordMinLength = 8
	passwordMaxLength = 50
)

type userValidator struct{}

// NewUserValidator constructs a [UserValidator].
func NewUserValidator() UserValidator {
	return &userValidator{}
}

// ValidateSignup checks userName length, email shape and password strength.
// Every violated constraint is included in the returned joined error.
func (v *userValidator) ValidateSignup(input models.SignupInput) error {
	var errs []error

	if n := utf8.RuneCountInString(input.UserName); n < 1 || n > userNameMaxLength {
		errs = append(errs, ErrUserNameLength)
	}

	if err := validateEmail(input.Email); err != nil {
		errs = append(errs, err)
	}

	errs = append(errs, validatePassword(input.Password)...)

	return errors.Join(errs...)
}

// ValidateChangePassword checks the new password's strength.
func (v *userValidator) ValidateChangePassword(input models.ChangePasswordInput) error {
	var errs []error

	if err := validateEmail(input.Email); err != nil {
		errs = append(errs, err)
	}

	errs = append(errs, validatePassword(input.NewPassword)...)

	return errors.Join(errs...)
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrEmailInvalid
	}
	return nil
}

// validatePassword enforces length 8-50 and the presence of an uppercase
// letter, a lowercase letter, and a digit or symbol.
func validatePassword(password string) []error {
	var errs []error

	if n := utf8.RuneCountInString(password); n < passwordMinLength || n > passwordMaxLength {
		errs = append(errs, ErrPasswordLength)
	}

	var hasUpper, hasLower, hasDigitOrSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r), unicode.IsPunct(r), unicode.IsSymbol(r):
			hasDigitOrSymbol = true
		}
	}

	if !hasUpper || !hasLower || !hasDigitOrSymbol {
		errs = append(errs, ErrPasswordWeak)
	}

	return errs
}
