package models

// SignupInput carries the arguments of the signup mutation.
type SignupInput struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordInput carries the arguments of the changePassword mutation.
type ChangePasswordInput struct {
	Email       string `json:"email"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// CreateMovieInput carries the arguments of the createMovie mutation.
// ReleaseDate is the raw date string as received; parsing happens at the
// service layer so that a malformed date surfaces as a domain error.
type CreateMovieInput struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	DirectorName string `json:"directorName"`
	ReleaseDate  string `json:"releaseDate"`
}

// UpdateMovieInput carries the arguments of the updateMovie mutation.
// Nil fields were not supplied by the client and keep their stored value.
type UpdateMovieInput struct {
	MovieID      int64
	Name         *string
	Description  *string
	DirectorName *string
	ReleaseDate  *string
}
