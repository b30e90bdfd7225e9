package service

import "errors"

var (
	ErrValidationFailed = errors.New("validation failed")
	ErrWrongPassword    = errors.New("wrong password")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsMalformed    = errors.New("token is malformed")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrNotMovieOwner      = errors.New("movie belongs to another user")
	ErrInvalidReleaseDate = errors.New("invalid release date")
)
