package store

import (
	"context"

	"github.com/kinoteka/kinoteka/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. Returns [ErrEmailAlreadyExists] when the email
	// uniqueness constraint is violated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account with the given email, or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// UpdatePassword replaces the password hash of the account with the
	// given email and returns the updated record. Returns
	// [ErrNoUserWasFound] when no such account exists.
	UpdatePassword(ctx context.Context, email string, passwordHash string) (models.User, error)
}

// MovieRepository is the persistence contract for the movie catalogue.
type MovieRepository interface {
	// CreateMovie inserts a new movie owned by movie.UserID and returns it
	// with server-assigned fields populated.
	CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)

	// GetMovieByID returns the movie with the given identifier, or
	// [ErrMovieNotFound].
	GetMovieByID(ctx context.Context, movieID int64) (models.Movie, error)

	// ListMovies returns a page of movies per the filter. Returns
	// [ErrInvalidOrderField] when filter.OrderBy names an unknown column.
	ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)

	// UpdateMovie applies the non-nil fields of update to the stored record
	// and returns the result. The owning user ID is never written. Returns
	// [ErrMovieNotFound] when the movie does not exist.
	UpdateMovie(ctx context.Context, update models.MovieUpdate) (models.Movie, error)

	// DeleteMovie removes the movie with the given identifier. Returns
	// [ErrMovieNotFound] when nothing was deleted.
	DeleteMovie(ctx context.Context, movieID int64) error
}
