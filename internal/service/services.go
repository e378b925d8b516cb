package service

import (
	"github.com/medlink-app/medlink-api/internal/config"
	"github.com/medlink-app/medlink-api/internal/logger"
	"github.com/medlink-app/medlink-api/internal/store"
)

// Services bundles every business-logic service the HTTP layer depends on.
type Services struct {
	AuthService
	ProfileService
}

// NewServices wires the service layer on top of the given storages.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.Auth, cfg.Admin, logger),
		ProfileService: NewProfileService(storages.ProfileRepository, logger),
	}
}
