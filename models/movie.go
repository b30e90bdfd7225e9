package models

import "time"

// Movie represents a single catalogue entry owned by the user who created it.
type Movie struct {
	// MovieID is the internal unique identifier of the movie,
	// assigned by the database on insert.
	MovieID int64 `json:"id"`

	// Name is the movie title. At most 100 characters.
	Name string `json:"name"`

	// Description is a free-form synopsis. At most 500 characters.
	Description string `json:"description"`

	// DirectorName is the name of the movie's director. At most 100 characters.
	DirectorName string `json:"directorName"`

	// ReleaseDate is the date the movie was released.
	ReleaseDate time.Time `json:"releaseDate"`

	// UserID identifies the user who created the movie.
	// It is set once at creation and is immutable afterwards: every
	// mutation of the movie must be performed by this user.
	UserID int64 `json:"userId"`

	// CreatedAt is the timestamp when the record was inserted.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Movie model.
func (m Movie) TableName() string {
	return "movies"
}

// MovieUpdate describes a partial update of a movie record.
// Nil fields are left unchanged; only non-nil fields are written.
type MovieUpdate struct {
	MovieID      int64
	UserID       int64
	Name         *string
	Description  *string
	DirectorName *string
	ReleaseDate  *time.Time
}

// MovieFilter describes pagination, ordering and search criteria
// for listing movies.
type MovieFilter struct {
	// Skip is the number of leading records to omit.
	Skip uint64

	// Take is the maximum number of records to return.
	Take uint64

	// OrderBy is an optional field name to sort by, ascending.
	// Only a fixed set of column names is accepted by the repository.
	OrderBy string

	// Search is an optional substring matched against the movie
	// name and description.
	Search string
}
