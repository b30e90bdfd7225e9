package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/kinoteka/kinoteka/models"
)

const (
	createUser = `INSERT INTO users (user_name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, user_name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, user_name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	updateUserPassword = `UPDATE users
    SET password_hash = $2
    WHERE email = $1
    RETURNING user_id, user_name, email, password_hash, created_at;`

	createMovie = `INSERT INTO movies (name, description, director_name, release_date, user_id)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING movie_id, name, description, director_name, release_date, user_id, created_at, updated_at;`

	getMovieByID = `SELECT movie_id, name, description, director_name, release_date, user_id, created_at, updated_at
    FROM movies
    WHERE movie_id = $1;`

	deleteMovie = `DELETE FROM movies
    WHERE movie_id = $1;`
)

// movieColumns is the canonical column list scanned into a models.Movie.
var movieColumns = []string{
	"movie_id", "name", "description", "director_name",
	"release_date", "user_id", "created_at", "updated_at",
}

// orderableColumns maps the externally visible sort field names to the
// columns they are allowed to order by. Anything outside this map is
// rejected before reaching the database.
var orderableColumns = map[string]string{
	"name":         "name",
	"description":  "description",
	"directorName": "director_name",
	"releaseDate":  "release_date",
	"id":           "movie_id",
}

// buildListMoviesQuery assembles the paginated movie listing query.
//
// The search term, when present, matches the name OR the description as a
// substring; caseInsensitive switches between ILIKE and LIKE. Ordering is
// ascending by the whitelisted column, else the store-default order.
func buildListMoviesQuery(filter models.MovieFilter, caseInsensitive bool) (string, []any, error) {
	builder := sq.Select(movieColumns...).
		From("movies").
		PlaceholderFormat(sq.Dollar)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		if caseInsensitive {
			builder = builder.Where(sq.Or{
				sq.ILike{"name": pattern},
				sq.ILike{"description": pattern},
			})
		} else {
			builder = builder.Where(sq.Or{
				sq.Like{"name": pattern},
				sq.Like{"description": pattern},
			})
		}
	}

	if filter.OrderBy != "" {
		column, ok := orderableColumns[filter.OrderBy]
		if !ok {
			return "", nil, ErrInvalidOrderField
		}
		builder = builder.OrderBy(column + " ASC")
	}

	builder = builder.Offset(filter.Skip).Limit(filter.Take)

	return builder.ToSql()
}

// buildUpdateMovieQuery assembles a partial UPDATE: only non-nil fields of
// update appear in the SET clause. The owning user_id column is never
// written; ownership is fixed at creation.
func buildUpdateMovieQuery(update models.MovieUpdate) (string, []any, error) {
	builder := sq.Update("movies").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("NOW()"))

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.DirectorName != nil {
		builder = builder.Set("director_name", *update.DirectorName)
	}
	if update.ReleaseDate != nil {
		builder = builder.Set("release_date", *update.ReleaseDate)
	}

	builder = builder.
		Where(sq.Eq{"movie_id": update.MovieID}).
		Suffix("RETURNING movie_id, name, description, director_name, release_date, user_id, created_at, updated_at")

	return builder.ToSql()
}
