package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kinoteka/kinoteka/internal/config"
	"github.com/kinoteka/kinoteka/internal/crypto"
	"github.com/kinoteka/kinoteka/internal/logger"
	"github.com/kinoteka/kinoteka/internal/mock"
	"github.com/kinoteka/kinoteka/internal/store"
	"github.com/kinoteka/kinoteka/internal/validators"
	"github.com/kinoteka/kinoteka/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mock.NewMockUserRepository(ctrl)

	cfg := config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "kinoteka",
		TokenDuration: time.Hour,
	}

	svc := NewAuthService(userRepo, validators.NewUserValidator(), cfg, logger.Nop())
	return svc, userRepo
}

func validSignupInput() models.SignupInput {
	return models.SignupInput{
		UserName: "alice",
		Email:    "alice@example.com",
		Password: "Str0ngPassw0rd",
	}
}

func TestSignup_Success(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()
	input := validSignupInput()

	userRepo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, input.UserName, user.UserName)
			assert.Equal(t, input.Email, user.Email)
			assert.NotEqual(t, input.Password, user.PasswordHash, "plain password must never reach the repository")
			assert.True(t, crypto.CheckPassword(input.Password, user.PasswordHash))

			user.UserID = 1
			return user, nil
		})

	created, err := svc.Signup(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
}

func TestSignup_ValidationFailure(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	input := validSignupInput()
	input.Password = "short"

	_, err := svc.Signup(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Signup(ctx, validSignupInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	hash, err := crypto.HashPassword("Str0ngPassw0rd")
	require.NoError(t, err)

	userRepo.EXPECT().
		FindUserByEmail(ctx, "alice@example.com").
		Return(models.User{UserID: 7, Email: "alice@example.com", PasswordHash: hash}, nil)

	token, err := svc.Login(ctx, "alice@example.com", "Str0ngPassw0rd")
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(7), token.UserID)
}

func TestLogin_UserNotFound(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().
		FindUserByEmail(ctx, "nobody@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, "nobody@example.com", "whatever1A")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	hash, err := crypto.HashPassword("Str0ngPassw0rd")
	require.NoError(t, err)

	userRepo.EXPECT().
		FindUserByEmail(ctx, "alice@example.com").
		Return(models.User{UserID: 7, PasswordHash: hash}, nil)

	_, err = svc.Login(ctx, "alice@example.com", "WrongPassw0rd")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestChangePassword_Success(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	oldHash, err := crypto.HashPassword("OldPassw0rd!")
	require.NoError(t, err)

	userRepo.EXPECT().
		FindUserByEmail(ctx, "alice@example.com").
		Return(models.User{UserID: 7, Email: "alice@example.com", PasswordHash: oldHash}, nil)

	userRepo.EXPECT().
		UpdatePassword(ctx, "alice@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, email, newHash string) (models.User, error) {
			assert.True(t, crypto.CheckPassword("NewPassw0rd!", newHash))
			return models.User{UserID: 7, Email: email, PasswordHash: newHash}, nil
		})

	updated, err := svc.ChangePassword(ctx, models.ChangePasswordInput{
		Email:       "alice@example.com",
		OldPassword: "OldPassw0rd!",
		NewPassword: "NewPassw0rd!",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.UserID)
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	oldHash, err := crypto.HashPassword("OldPassw0rd!")
	require.NoError(t, err)

	userRepo.EXPECT().
		FindUserByEmail(ctx, "alice@example.com").
		Return(models.User{UserID: 7, PasswordHash: oldHash}, nil)

	_, err = svc.ChangePassword(ctx, models.ChangePasswordInput{
		Email:       "alice@example.com",
		OldPassword: "NotTheR1ghtOne",
		NewPassword: "NewPassw0rd!",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestChangePassword_WeakNewPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.ChangePassword(ctx, models.ChangePasswordInput{
		Email:       "alice@example.com",
		OldPassword: "OldPassw0rd!",
		NewPassword: "weak",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestParseToken_RoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestParseToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mock.NewMockUserRepository(ctrl)

	cfg := config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "kinoteka",
		TokenDuration: -time.Minute,
	}
	svc := NewAuthService(userRepo, validators.NewUserValidator(), cfg, logger.Nop())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
	assert.False(t, errors.Is(err, ErrTokenIsMalformed))
}

func TestParseToken_Malformed(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.ParseToken(ctx, tokenString)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTokenIsMalformed)
	}
}

func TestParseToken_WrongKey(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	otherCfg := config.Auth{
		TokenSignKey:  "a-different-key",
		TokenIssuer:   "kinoteka",
		TokenDuration: time.Hour,
	}
	ctrl := gomock.NewController(t)
	otherSvc := NewAuthService(mock.NewMockUserRepository(ctrl), validators.NewUserValidator(), otherCfg, logger.Nop())

	token, err := otherSvc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenIsMalformed)
}
