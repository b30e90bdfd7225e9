package service

import (
	"github.com/kinoteka/kinoteka/internal/config"
	"github.com/kinoteka/kinoteka/internal/logger"
	"github.com/kinoteka/kinoteka/internal/store"
	"github.com/kinoteka/kinoteka/internal/validators"
)

type Services struct {
	AuthService  AuthService
	MovieService MovieService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, validators.NewUserValidator(), cfg.Auth, logger),
		MovieService: NewMovieService(storages.MovieRepository, validators.NewMovieValidator(), logger),
	}
}
