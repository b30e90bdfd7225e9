package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/kinoteka/kinoteka/internal/logger"
	"github.com/kinoteka/kinoteka/internal/utils"
)

// graphQLRequest is the standard POST body of a GraphQL HTTP request.
type graphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// graphQL executes a GraphQL request against the schema.
//
// The raw Authorization header, when present, is stored in the request
// context so that per-field guards can enforce authentication. Execution
// errors are part of the GraphQL response body; the HTTP status stays 200
// for everything except an unreadable request body.
func (h *Handler) graphQL(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request graphQLRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("malformed graphql request body")

		response := graphql.Result{
			Errors: []gqlerrors.FormattedError{
				{Message: "malformed request body"},
			},
		}
		if _, writeErr := utils.WriteJSON(w, response, http.StatusBadRequest); writeErr != nil {
			log.Err(writeErr).Msg("error writing response")
		}
		return
	}

	ctx := r.Context()
	if header := r.Header.Get("Authorization"); header != "" {
		ctx = context.WithValue(ctx, utils.AuthHeaderCtxKey, header)
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  request.Query,
		OperationName:  request.OperationName,
		VariableValues: request.Variables,
		Context:        ctx,
	})

	if _, err := utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

// health reports process liveness.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}
