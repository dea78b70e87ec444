package router

import (
	"net/http"

	"github.com/deppfellow/customer-api/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerCustomerRoutes(r *echo.Echo, h *handler.Handlers) {
	ch := h.Customer

	r.POST("/customers", handler.Handle(ch.Handler, ch.CreateCustomer, http.StatusOK))
	r.GET("/customers", handler.Handle(ch.Handler, ch.GetCustomer, http.StatusOK))
	r.PUT("/customers", handler.Handle(ch.Handler, ch.UpdateCustomer, http.StatusOK))
	r.DELETE("/customers", handler.Handle(ch.Handler, ch.DeleteCustomer, http.StatusOK))

	r.GET("/allcustomers", handler.Handle(ch.Handler, ch.ListCustomers, http.StatusOK))
}
