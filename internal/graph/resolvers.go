package graph

import (
	"github.com/graphql-go/graphql"
	"github.com/kinoteka/kinoteka/internal/logger"
	"github.com/kinoteka/kinoteka/internal/service"
	"github.com/kinoteka/kinoteka/internal/utils"
	"github.com/kinoteka/kinoteka/models"
)

// Resolver holds the field resolvers of the schema. All state is read-only
// after construction, so a single instance serves concurrent requests.
type Resolver struct {
	services *service.Services
	logger   *logger.Logger
}

func NewResolver(services *service.Services, logger *logger.Logger) *Resolver {
	return &Resolver{
		services: services,
		logger:   logger,
	}
}

// resolveMovies handles the public movies query.
func (r *Resolver) resolveMovies(p graphql.ResolveParams) (interface{}, error) {
	var filter models.MovieFilter

	if skip, ok := p.Args["skip"].(int); ok && skip > 0 {
		filter.Skip = uint64(skip)
	}
	if take, ok := p.Args["take"].(int); ok && take > 0 {
		filter.Take = uint64(take)
	}
	if orderBy, ok := p.Args["orderBy"].(string); ok {
		filter.OrderBy = orderBy
	}
	if search, ok := p.Args["search"].(string); ok {
		filter.Search = search
	}

	movies, err := r.services.MovieService.ListMovies(p.Context, filter)
	if err != nil {
		return nil, mapError(p.Context, err)
	}

	return movies, nil
}

// resolveMovie handles the public movie(id) query.
func (r *Resolver) resolveMovie(p graphql.ResolveParams) (interface{}, error) {
	movieID, ok := p.Args["id"].(int)
	if !ok {
		return nil, &apiError{message: "id is required", code: CodeValidationFailed}
	}

	movie, err := r.services.MovieService.GetMovie(p.Context, int64(movieID))
	if err != nil {
		return nil, mapError(p.Context, err)
	}

	return movie, nil
}

func (r *Resolver) resolveSignup(p graphql.ResolveParams) (interface{}, error) {
	data, ok := p.Args["data"].(map[string]interface{})
	if !ok {
		return nil, &apiError{message: "data is required", code: CodeValidationFailed}
	}

	input := models.SignupInput{
		UserName: stringField(data, "userName"),
		Email:    stringField(data, "email"),
		Password: stringField(data, "password"),
	}

	user, err := r.services.AuthService.Signup(p.Context, input)
	if err != nil {
		return nil, mapError(p.Context, err)
	}

	return user, nil
}

// resolveLogin returns the signed access token as a plain string.
func (r *Resolver) resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	email, _ := p.Args["email"].(string)
	password, _ := p.Args["password"].(string)

	token, err := r.services.AuthService.Login(p.Context, email, password)
	if err != nil {
		return nil, mapError(p.Context, err)
	}

	return token.SignedString, nil
}

func (r *Resolver) resolveChangePassword(p graphql.ResolveParams) (interface{}, error) {
	data, ok := p.Args["data"].(map[string]interface{})
	if !ok {
		return nil, &apiError{message: "data is required", code: CodeValidationFailed}
	}

	input := models.ChangePasswordInput{
		Email:       stringField(data, "email"),
		OldPassword: stringField(data, "oldPassword"),
		NewPassword: stringField(data, "newPassword"),
	}

	user, err := r.services.AuthService.ChangePassword(p.Context, input)
	if err != nil {
		return nil, mapError(p.Context, err)
	}

	return user, nil
}

func (r *Resolver) resolveCreateMovie(p graphql.ResolveParams) (interface{}, error) {
	userID, ok := utils.GetUserIDFromContext(p.Context)
	if !ok {
		return nil, errNotAuthenticated
	}

	data, ok := p.Args["data"].(map[string]interface{})
	if !ok {
		return nil, &apiError{message: "data is required", code: CodeValidationFailed}
	}

	input := models.CreateMovieInput{
		Name:         stringField(data, "name"),
		Description:  stringField(data, "description"),
		DirectorName: stringField(data, "directorName"),
		ReleaseDate:  stringField(data, "releaseDate"),
	}

	movie, err := r.services.MovieService.CreateMovie(p.Context, userID, input)
	if err != nil {
		return nil, mapError(p.Context, err)
	}

	return movie, nil
}

// resolveUpdateMovie applies a partial update: only the fields present in
// the input object are touched.
func (r *Resolver) resolveUpdateMovie(p graphql.ResolveParams) (interface{}, error) {
	userID, ok := utils.GetUserIDFromContext(p.Context)
	if !ok {
		return nil, errNotAuthenticated
	}

	movieID, ok := p.Args["id"].(int)
	if !ok {
		return nil, &apiError{message: "id is required", code: CodeValidationFailed}
	}

	data, ok := p.Args["data"].(map[string]interface{})
	if !ok {
		return nil, &apiError{message: "data is required", code: CodeValidationFailed}
	}

	input := models.UpdateMovieInput{
		MovieID:      int64(movieID),
		Name:         optionalStringField(data, "name"),
		Description:  optionalStringField(data, "description"),
		DirectorName: optionalStringField(data, "directorName"),
		ReleaseDate:  optionalStringField(data, "releaseDate"),
	}

	movie, err := r.services.MovieService.UpdateMovie(p.Context, userID, input)
	if err != nil {
		return nil, mapError(p.Context, err)
	}

	return movie, nil
}

func (r *Resolver) resolveDeleteMovie(p graphql.ResolveParams) (interface{}, error) {
	userID, ok := utils.GetUserIDFromContext(p.Context)
	if !ok {
		return nil, errNotAuthenticated
	}

	movieID, ok := p.Args["id"].(int)
	if !ok {
		return nil, &apiError{message: "id is required", code: CodeValidationFailed}
	}

	if err := r.services.MovieService.DeleteMovie(p.Context, userID, int64(movieID)); err != nil {
		return nil, mapError(p.Context, err)
	}

	return true, nil
}

func stringField(data map[string]interface{}, key string) string {
	value, _ := data[key].(string)
	return value
}

// optionalStringField returns nil when the client omitted the field or sent
// an empty string. Both mean the same thing in a partial update: keep the
// stored value.
func optionalStringField(data map[string]interface{}, key string) *string {
	value, ok := data[key].(string)
	if !ok || value == "" {
		return nil
	}
	return &value
}
