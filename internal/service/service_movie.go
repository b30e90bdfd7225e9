package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kinoteka/kinoteka/internal/logger"
	"github.com/kinoteka/kinoteka/internal/store"
	"github.com/kinoteka/kinoteka/internal/validators"
	"github.com/kinoteka/kinoteka/models"
)

const (
	// defaultPageSize is used when a movies query omits the take argument.
	defaultPageSize = 10

	// releaseDateLayout is the wire format of release dates.
	releaseDateLayout = "2006-01-02"
)

// movieService is the concrete implementation of MovieService.
// Ownership checks happen here: the repository itself deletes and updates by
// movie_id only, so every mutating call first fetches the record and compares
// its owner against the calling user.
type movieService struct {
	movieRepository store.MovieRepository
	validator       validators.MovieValidator
	logger          *logger.Logger
}

// NewMovieService constructs a MovieService over the given repository.
func NewMovieService(movieRepository store.MovieRepository, validator validators.MovieValidator, logger *logger.Logger) MovieService {
	return &movieService{
		movieRepository: movieRepository,
		validator:       validator,
		logger:          logger,
	}
}

// ListMovies returns a page of movies matching the filter.
// A zero Take falls back to defaultPageSize; an empty page is not an error.
func (m *movieService) ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	if filter.Take == 0 {
		filter.Take = defaultPageSize
	}

	movies, err := m.movieRepository.ListMovies(ctx, filter)
	if err != nil {
		log.Err(err).
			Str("order_by", filter.OrderBy).
			Str("search", filter.Search).
			Msg("movie listing ended with error")
		return nil, fmt.Errorf("movie listing ended with error: %w", err)
	}

	return movies, nil
}

// GetMovie retrieves a single movie by its identifier.
func (m *movieService) GetMovie(ctx context.Context, movieID int64) (models.Movie, error) {
	log := logger.FromContext(ctx)

	movie, err := m.movieRepository.GetMovieByID(ctx, movieID)
	if err != nil {
		log.Err(err).Int64("movie_id", movieID).Msg("movie lookup ended with error")
		return models.Movie{}, fmt.Errorf("movie lookup ended with error: %w", err)
	}

	return movie, nil
}

// CreateMovie persists a new movie owned by userID.
//
// Returns the created movie or:
//   - A wrapped ErrValidationFailed if the input fails validation.
//   - ErrInvalidReleaseDate if the release date is not a YYYY-MM-DD date.
//   - A wrapped storage error if persistence fails.
func (m *movieService) CreateMovie(ctx context.Context, userID int64, input models.CreateMovieInput) (models.Movie, error) {
	log := logger.FromContext(ctx)

	if err := m.validator.ValidateNewMovie(input); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("invalid movie data provided")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	releaseDate, err := time.Parse(releaseDateLayout, input.ReleaseDate)
	if err != nil {
		log.Err(err).Str("release_date", input.ReleaseDate).Msg("release date parsing failed")
		return models.Movie{}, fmt.Errorf("%w: %q", ErrInvalidReleaseDate, input.ReleaseDate)
	}

	createdMovie, err := m.movieRepository.CreateMovie(ctx, models.Movie{
		Name:         input.Name,
		Description:  input.Description,
		DirectorName: input.DirectorName,
		ReleaseDate:  releaseDate,
		UserID:       userID,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("movie creation ended with error")
		return models.Movie{}, fmt.Errorf("movie creation ended with error: %w", err)
	}

	return createdMovie, nil
}

// UpdateMovie applies a partial update after verifying ownership.
//
// Returns the updated movie or:
//   - A wrapped ErrValidationFailed if any supplied field fails validation.
//   - ErrInvalidReleaseDate if the supplied release date does not parse.
//   - A wrapped store.ErrMovieNotFound if the movie does not exist.
//   - ErrNotMovieOwner if the movie belongs to a different user.
func (m *movieService) UpdateMovie(ctx context.Context, userID int64, input models.UpdateMovieInput) (models.Movie, error) {
	log := logger.FromContext(ctx)

	if err := m.validator.ValidateMovieUpdate(input); err != nil {
		log.Err(err).Int64("movie_id", input.MovieID).Msg("invalid movie update data provided")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	update := models.MovieUpdate{
		MovieID:      input.MovieID,
		UserID:       userID,
		Name:         suppliedField(input.Name),
		Description:  suppliedField(input.Description),
		DirectorName: suppliedField(input.DirectorName),
	}

	if releaseDateStr := suppliedField(input.ReleaseDate); releaseDateStr != nil {
		releaseDate, err := time.Parse(releaseDateLayout, *releaseDateStr)
		if err != nil {
			log.Err(err).Str("release_date", *releaseDateStr).Msg("release date parsing failed")
			return models.Movie{}, fmt.Errorf("%w: %q", ErrInvalidReleaseDate, *releaseDateStr)
		}
		update.ReleaseDate = &releaseDate
	}

	if err := m.checkOwnership(ctx, userID, input.MovieID); err != nil {
		return models.Movie{}, err
	}

	updatedMovie, err := m.movieRepository.UpdateMovie(ctx, update)
	if err != nil {
		log.Err(err).Int64("movie_id", input.MovieID).Msg("movie update ended with error")
		return models.Movie{}, fmt.Errorf("movie update ended with error: %w", err)
	}

	return updatedMovie, nil
}

// DeleteMovie removes a movie after verifying ownership.
//
// Returns nil on success or:
//   - A wrapped store.ErrMovieNotFound if the movie does not exist.
//   - ErrNotMovieOwner if the movie belongs to a different user.
func (m *movieService) DeleteMovie(ctx context.Context, userID int64, movieID int64) error {
	log := logger.FromContext(ctx)

	if err := m.checkOwnership(ctx, userID, movieID); err != nil {
		return err
	}

	if err := m.movieRepository.DeleteMovie(ctx, movieID); err != nil {
		log.Err(err).Int64("movie_id", movieID).Msg("movie deletion ended with error")
		return fmt.Errorf("movie deletion ended with error: %w", err)
	}

	return nil
}

// suppliedField treats an empty string like an absent field. In a partial
// update both keep the stored value.
func suppliedField(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// checkOwnership fetches the movie and verifies that userID is its owner.
// A missing movie surfaces as the repository's not-found error, so callers
// cannot distinguish "absent" from "never existed".
func (m *movieService) checkOwnership(ctx context.Context, userID int64, movieID int64) error {
	log := logger.FromContext(ctx)

	movie, err := m.movieRepository.GetMovieByID(ctx, movieID)
	if err != nil {
		log.Err(err).Int64("movie_id", movieID).Msg("ownership check lookup failed")
		return fmt.Errorf("movie lookup ended with error: %w", err)
	}

	if movie.UserID != userID {
		log.Error().
			Int64("movie_id", movieID).
			Int64("owner_id", movie.UserID).
			Int64("user_id", userID).
			Msg("movie belongs to another user")
		return ErrNotMovieOwner
	}

	return nil
}
