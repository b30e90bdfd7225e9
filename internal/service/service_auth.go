package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kinoteka/kinoteka/internal/config"
	"github.com/kinoteka/kinoteka/internal/crypto"
	"github.com/kinoteka/kinoteka/internal/logger"
	"github.com/kinoteka/kinoteka/internal/store"
	"github.com/kinoteka/kinoteka/internal/utils"
	"github.com/kinoteka/kinoteka/internal/validators"
	"github.com/kinoteka/kinoteka/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, password change
// and JWT token lifecycle using a UserRepository for persistence and bcrypt
// for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks signup and password-change arguments before any
	// hashing or persistence happens.
	validator validators.UserValidator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.UserValidator, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Signup creates a new user account.
//
// The password is bcrypt-hashed before it reaches the repository; the plain
// text is never stored or logged.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - A wrapped ErrValidationFailed if the input fails validation.
//   - A wrapped storage error if the repository call fails (e.g. the email is
//     already taken, see store.ErrEmailAlreadyExists).
func (a *authService) Signup(ctx context.Context, input models.SignupInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.ValidateSignup(input); err != nil {
		log.Err(err).Str("email", input.Email).Msg("invalid signup data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		UserName:     input.UserName,
		Email:        input.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", input.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues an access token.
//
// Returns the signed token or:
//   - A wrapped storage error if the lookup fails (e.g. the account does not
//     exist, see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match the stored hash.
//   - A wrapped ErrTokenCreationFailed if signing fails.
func (a *authService) Login(ctx context.Context, email string, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !crypto.CheckPassword(password, foundUser.PasswordHash) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.Token{}, ErrWrongPassword
	}

	return a.CreateToken(ctx, foundUser)
}

// ChangePassword re-authenticates the account with the old password and
// replaces the stored hash with a hash of the new one.
//
// Returns the updated user record or:
//   - A wrapped ErrValidationFailed if the new password fails validation.
//   - A wrapped storage error if the account lookup or update fails.
//   - ErrWrongPassword if the old password does not match.
func (a *authService) ChangePassword(ctx context.Context, input models.ChangePasswordInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.ValidateChangePassword(input); err != nil {
		log.Err(err).Str("email", input.Email).Msg("invalid change-password data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, input.Email)
	if err != nil {
		log.Err(err).Str("email", input.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !crypto.CheckPassword(input.OldPassword, foundUser.PasswordHash) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong old password")
		return models.User{}, ErrWrongPassword
	}

	newHash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	updatedUser, err := a.userRepository.UpdatePassword(ctx, input.Email, newHash)
	if err != nil {
		log.Err(err).Str("email", input.Email).Msg("password update ended with error")
		return models.User{}, fmt.Errorf("password update ended with error: %w", err)
	}

	return updatedUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim and the expiry. Failures are normalised to exactly two
// sentinels so that callers can answer "expired or invalid?" without
// inspecting low-level JWT errors:
//   - ErrTokenIsExpired when the token was once valid but has expired.
//   - ErrTokenIsMalformed for every other validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsMalformed
	}

	return token, nil
}
