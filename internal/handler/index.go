package handler

import (
	"encoding/json"

	"github.com/deppfellow/customer-api/internal/server"
	"github.com/deppfellow/customer-api/internal/service"
	"github.com/labstack/echo/v4"
)

// IndexMessage is the greeting served on GET /.
const IndexMessage = "Customer API top page!"

// NoPayload is the request of endpoints that take no input.
type NoPayload struct{}

func (p *NoPayload) Validate() error {
	return nil
}

type IndexResponse struct {
	Message string `json:"message"`
}

// IndexHandler serves the greeting and the outbound connectivity probe.
type IndexHandler struct {
	Handler
	probeService *service.ProbeService
}

func NewIndexHandler(s *server.Server, probeService *service.ProbeService) *IndexHandler {
	return &IndexHandler{
		Handler:      NewHandler(s),
		probeService: probeService,
	}
}

func (h *IndexHandler) Index(c echo.Context, _ *NoPayload) (IndexResponse, error) {
	return IndexResponse{Message: IndexMessage}, nil
}

// FetchTest relays the probe target's JSON body.
func (h *IndexHandler) FetchTest(c echo.Context, _ *NoPayload) (json.RawMessage, error) {
	return h.probeService.Fetch(c.Request().Context())
}
