package http

import (
	"github.com/graphql-go/graphql"
	"github.com/kinoteka/kinoteka/internal/logger"
)

type Handler struct {
	schema graphql.Schema

	logger *logger.Logger
}

func NewHandler(schema graphql.Schema, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		schema: schema,
		logger: logger,
	}
}
