package service

import (
	"context"

	"github.com/kinoteka/kinoteka/models"
)

type AuthService interface {
	// Signup registers a new account with a bcrypt-hashed password.
	Signup(ctx context.Context, input models.SignupInput) (models.User, error)

	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, email string, password string) (models.Token, error)

	// ChangePassword re-authenticates with the old password and stores a
	// hash of the new one.
	ChangePassword(ctx context.Context, input models.ChangePasswordInput) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type MovieService interface {
	// ListMovies returns a page of movies; zero Take falls back to the
	// default page size.
	ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)

	GetMovie(ctx context.Context, movieID int64) (models.Movie, error)

	// CreateMovie persists a new movie owned by userID.
	CreateMovie(ctx context.Context, userID int64, input models.CreateMovieInput) (models.Movie, error)

	// UpdateMovie applies a partial update after verifying that userID owns
	// the movie.
	UpdateMovie(ctx context.Context, userID int64, input models.UpdateMovieInput) (models.Movie, error)

	// DeleteMovie removes a movie after verifying that userID owns it.
	DeleteMovie(ctx context.Context, userID int64, movieID int64) error
}
