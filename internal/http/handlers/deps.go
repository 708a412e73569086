package handlers

import (
	"lifelink/internal/config"
	"lifelink/internal/repos"
	"lifelink/internal/services"
)

type Deps struct {
	Auth             *services.AuthService
	AuthHandler      *AuthHandler
	RequestHandler   *RequestHandler
	LifecycleHandler *LifecycleHandler
	InventoryHandler *InventoryHandler
	DirectoryHandler *DirectoryHandler
}

func NewDeps(store *repos.Store, cfg config.Config, auth *services.AuthService) *Deps {
	return &Deps{
		Auth:           auth,
		AuthHandler:    &AuthHandler{Auth: auth, CookieSecure: cfg.CookieSecure},
		RequestHandler: &RequestHandler{Requests: services.NewRequestService(store)},
		LifecycleHandler: &LifecycleHandler{
			Responses:   services.NewResponseService(store),
			Fulfillment: services.NewFulfillmentService(store),
		},
		InventoryHandler: &InventoryHandler{Inv: services.NewInventoryService(store)},
		DirectoryHandler: &DirectoryHandler{
			Dir:      services.NewDirectoryService(store),
			StatsSvc: services.NewStatsService(store),
		},
	}
}
