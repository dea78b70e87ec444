package handler

import (
	"github.com/deppfellow/customer-api/internal/server"
	"github.com/deppfellow/customer-api/internal/service"
)

// Handlers groups every HTTP handler so the router receives one object.
type Handlers struct {
	Customer *CustomerHandler
	Index    *IndexHandler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
}

// NewHandlers builds every handler. The health check pings the server's
// database pool when there is one.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	var db Pinger
	if s.DB != nil {
		db = s.DB.Pool
	}

	return &Handlers{
		Customer: NewCustomerHandler(s, services.Customer),
		Index:    NewIndexHandler(s, services.Probe),
		Health:   NewHealthHandler(s, db),
		OpenAPI:  NewOpenAPIHandler(s),
	}
}
