package handler

import (
	"github.com/deppfellow/customer-api/internal/model/customer"
	"github.com/deppfellow/customer-api/internal/server"
	"github.com/deppfellow/customer-api/internal/service"
	"github.com/labstack/echo/v4"
)

type CustomerHandler struct {
	Handler
	customerService *service.CustomerService
}

func NewCustomerHandler(s *server.Server, customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		Handler:         NewHandler(s),
		customerService: customerService,
	}
}

func (h *CustomerHandler) CreateCustomer(c echo.Context, payload *customer.CreateCustomerPayload) (*customer.Customer, error) {
	return h.customerService.Create(c.Request().Context(), payload)
}

func (h *CustomerHandler) GetCustomer(c echo.Context, payload *customer.GetCustomerPayload) (*customer.Customer, error) {
	return h.customerService.Get(c.Request().Context(), payload.CustomerID)
}

func (h *CustomerHandler) ListCustomers(c echo.Context, payload *customer.ListCustomersPayload) ([]customer.Customer, error) {
	return h.customerService.List(c.Request().Context())
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context, payload *customer.UpdateCustomerPayload) (*customer.Customer, error) {
	return h.customerService.Update(c.Request().Context(), payload)
}

func (h *CustomerHandler) DeleteCustomer(c echo.Context, payload *customer.DeleteCustomerPayload) (*customer.Deleted, error) {
	return h.customerService.Delete(c.Request().Context(), payload.CustomerID)
}
