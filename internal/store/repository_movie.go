package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kinoteka/kinoteka/internal/config"
	"github.com/kinoteka/kinoteka/internal/logger"
	"github.com/kinoteka/kinoteka/models"
)

// movieRepository is the PostgreSQL-backed implementation of
// [MovieRepository]. It executes all movie CRUD operations against the
// "movies" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (movie_id, user_id, filter parameters).
type movieRepository struct {
	*DB
	logger *logger.Logger

	// searchCaseInsensitive selects ILIKE over LIKE for the list query's
	// substring search.
	searchCaseInsensitive bool
}

// NewMovieRepository constructs a [MovieRepository] backed by the provided
// database connection and logger.
func NewMovieRepository(db *DB, cfg config.DB, logger *logger.Logger) MovieRepository {
	logger.Debug().Msg("creating movie repository")
	return &movieRepository{
		DB:                    db,
		logger:                logger,
		searchCaseInsensitive: cfg.SearchCaseInsensitive,
	}
}

// CreateMovie persists a new movie record and returns the fully populated
// [models.Movie] with server-assigned fields (MovieID, CreatedAt, UpdatedAt).
// The owning user ID is written exactly once here and never updated again.
func (m *movieRepository) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	log := logger.FromContext(ctx)

	row := m.DB.QueryRowContext(ctx, createMovie,
		movie.Name, movie.Description, movie.DirectorName, movie.ReleaseDate, movie.UserID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*movieRepository.CreateMovie").
			Int64("user_id", movie.UserID).
			Msg("failed to execute insert")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := scanMovie(row, &movie); err != nil {
		log.Err(err).
			Str("func", "*movieRepository.CreateMovie").
			Int64("user_id", movie.UserID).
			Msg("failed to scan inserted movie")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return movie, nil
}

// GetMovieByID retrieves a single movie record by its identifier.
//
// Returns [ErrMovieNotFound] when no row matches.
func (m *movieRepository) GetMovieByID(ctx context.Context, movieID int64) (models.Movie, error) {
	log := logger.FromContext(ctx)

	var movie models.Movie
	row := m.DB.QueryRowContext(ctx, getMovieByID, movieID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*movieRepository.GetMovieByID").
			Int64("movie_id", movieID).
			Msg("failed to execute query")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := scanMovie(row, &movie); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, ErrMovieNotFound
		}
		log.Err(err).
			Str("func", "*movieRepository.GetMovieByID").
			Int64("movie_id", movieID).
			Msg("failed to scan movie row")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return movie, nil
}

// ListMovies returns a page of movies matching the filter.
//
// The SQL is assembled by [buildListMoviesQuery]; an unknown OrderBy field
// is rejected with [ErrInvalidOrderField] before touching the database.
// An empty result page is a valid outcome, not an error.
func (m *movieRepository) ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMoviesQuery(filter, m.searchCaseInsensitive)
	if err != nil {
		if errors.Is(err, ErrInvalidOrderField) {
			return nil, err
		}
		log.Err(err).
			Str("func", "*movieRepository.ListMovies").
			Msg("failed to build list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := m.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*movieRepository.ListMovies").
			Str("order_by", filter.OrderBy).
			Str("search", filter.Search).
			Msg("failed to execute list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	movies := make([]models.Movie, 0, filter.Take)

	for rows.Next() {
		var movie models.Movie
		if scanErr := scanMovie(rows, &movie); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*movieRepository.ListMovies").
				Msg("failed to scan movie row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		movies = append(movies, movie)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*movieRepository.ListMovies").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return movies, nil
}

// UpdateMovie applies a partial update and returns the resulting record.
//
// Only non-nil fields of update reach the SET clause (see
// [buildUpdateMovieQuery]); the owning user ID is never written.
// Returns [ErrMovieNotFound] when the movie does not exist.
func (m *movieRepository) UpdateMovie(ctx context.Context, update models.MovieUpdate) (models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateMovieQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "*movieRepository.UpdateMovie").
			Int64("movie_id", update.MovieID).
			Msg("failed to build update query")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var movie models.Movie
	row := m.DB.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*movieRepository.UpdateMovie").
			Int64("movie_id", update.MovieID).
			Msg("failed to execute update")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := scanMovie(row, &movie); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, ErrMovieNotFound
		}
		log.Err(err).
			Str("func", "*movieRepository.UpdateMovie").
			Int64("movie_id", update.MovieID).
			Msg("failed to scan updated movie")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return movie, nil
}

// DeleteMovie removes a movie record unconditionally.
//
// Returns [ErrMovieNotFound] when zero rows were affected, so deleting a
// non-existent movie always fails the same way and never partially succeeds.
func (m *movieRepository) DeleteMovie(ctx context.Context, movieID int64) error {
	log := logger.FromContext(ctx)

	result, err := m.DB.ExecContext(ctx, deleteMovie, movieID)
	if err != nil {
		log.Err(err).
			Str("func", "*movieRepository.DeleteMovie").
			Int64("movie_id", movieID).
			Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "*movieRepository.DeleteMovie").
			Int64("movie_id", movieID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrMovieNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(row rowScanner, movie *models.Movie) error {
	return row.Scan(
		&movie.MovieID,
		&movie.Name,
		&movie.Description,
		&movie.DirectorName,
		&movie.ReleaseDate,
		&movie.UserID,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
}
