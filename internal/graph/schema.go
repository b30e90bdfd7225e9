// Package graph defines the GraphQL schema: queries and mutations over the
// movie catalogue plus the account mutations (signup, login, changePassword).
//
// Reads on the catalogue are public; every mutation that touches a movie and
// the password change run behind the bearer-token guard (see requireAuth).
package graph

import (
	"github.com/graphql-go/graphql"
)

// NewSchema assembles the executable schema around the given resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	userType := newUserType()
	movieType := newMovieType()

	signupInput := newSignupInputType()
	changePasswordInput := newChangePasswordInputType()
	createMovieInput := newCreateMovieInputType()
	updateMovieInput := newUpdateMovieInputType()

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"movies": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(movieType))),
				Args: graphql.FieldConfigArgument{
					"skip":    &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
					"take":    &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
					"orderBy": &graphql.ArgumentConfig{Type: graphql.String},
					"search":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveMovies,
			},
			"movie": &graphql.Field{
				Type: movieType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.resolveMovie,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(signupInput)},
				},
				Resolve: r.resolveSignup,
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveLogin,
			},
			"changePassword": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(changePasswordInput)},
				},
				Resolve: r.requireAuth(r.resolveChangePassword),
			},
			"createMovie": &graphql.Field{
				Type: graphql.NewNonNull(movieType),
				Args: graphql.FieldConfigArgument{
					"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createMovieInput)},
				},
				Resolve: r.requireAuth(r.resolveCreateMovie),
			},
			"updateMovie": &graphql.Field{
				Type: graphql.NewNonNull(movieType),
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateMovieInput)},
				},
				Resolve: r.requireAuth(r.resolveUpdateMovie),
			},
			"deleteMovie": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.requireAuth(r.resolveDeleteMovie),
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
