// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It parses requests, handles input validation using the
// validation package, and calls the appropriate service layer.
// It acts as the interface between the HTTP request and the core
// business logic.
package handler

import (
	"github.com/ductran2702/code-challenge-backend/internal/server"
	"github.com/ductran2702/code-challenge-backend/internal/service"
)

// Handlers groups all HTTP handlers so router setup receives one object.
type Handlers struct {
	Health  *HealthHandler
	Item    *ItemHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		Item:    NewItemHandler(s, services.Item),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
