package customer

import (
	"github.com/deppfellow/customer-api/internal/validation"
)

// Payload is the full customer body accepted by create and update.
//
// Every field is a pointer so that a missing field can be told apart from a
// zero value. All four are required.
type Payload struct {
	CustomerID   *string `json:"customer_id" validate:"required"`
	CustomerName *string `json:"customer_name" validate:"required"`
	Age          *Age    `json:"age" validate:"required"`
	Gender       *string `json:"gender" validate:"required"`
}

// Customer converts a validated payload into a record.
func (p *Payload) Customer() Customer {
	var c Customer
	if p.CustomerID != nil {
		c.CustomerID = *p.CustomerID
	}
	if p.CustomerName != nil {
		c.CustomerName = *p.CustomerName
	}
	if p.Age != nil {
		c.Age = *p.Age
	}
	if p.Gender != nil {
		c.Gender = *p.Gender
	}
	return c
}

// ------------------------------------------------------------

type CreateCustomerPayload struct {
	Payload
}

func (p *CreateCustomerPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}

	if *p.CustomerID == "" {
		return validation.CustomValidationErrors{
			{Field: "customer_id", Message: "is required"},
		}
	}

	return nil
}

// ------------------------------------------------------------

type UpdateCustomerPayload struct {
	Payload
}

func (p *UpdateCustomerPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type GetCustomerPayload struct {
	CustomerID string `query:"customer_id" validate:"required"`
}

func (p *GetCustomerPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type DeleteCustomerPayload struct {
	CustomerID string `query:"customer_id" validate:"required"`
}

func (p *DeleteCustomerPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type ListCustomersPayload struct{}

func (p *ListCustomersPayload) Validate() error {
	return nil
}
