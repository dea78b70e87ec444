package service

import (
	"context"

	"github.com/deppfellow/customer-api/internal/model/customer"
	"github.com/deppfellow/customer-api/internal/repository"
	"github.com/deppfellow/customer-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// CustomerStore is the persistence the customer operations need.
type CustomerStore interface {
	Create(ctx context.Context, c customer.Customer) error
	GetByID(ctx context.Context, customerID string) (*customer.Customer, error)
	List(ctx context.Context) ([]customer.Customer, error)
	Update(ctx context.Context, c customer.Customer) (int64, error)
	Delete(ctx context.Context, customerID string) (int64, error)
}

// CustomerService runs each customer operation as at most two store calls.
//
// Write-then-read pairs are not wrapped in a transaction.
type CustomerService struct {
	store CustomerStore
}

func NewCustomerService(store CustomerStore) *CustomerService {
	return &CustomerService{store: store}
}

// Create inserts the customer and returns the stored row. It returns
// (nil, nil) when the row can't be read back.
func (s *CustomerService) Create(ctx context.Context, payload *customer.CreateCustomerPayload) (*customer.Customer, error) {
	logger := zerolog.Ctx(ctx)
	record := payload.Customer()

	if err := s.store.Create(ctx, record); err != nil {
		return nil, errors.WithMessagef(err, "create customer %q", record.CustomerID)
	}

	created, err := s.store.GetByID(ctx, record.CustomerID)
	if errors.Is(err, pgx.ErrNoRows) {
		logger.Warn().Str("customer_id", record.CustomerID).Msg("created customer could not be read back")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	logger.Info().Str("customer_id", created.CustomerID).Msg("customer created")

	return created, nil
}

// Get returns the customer or a not-found error for the customers table.
func (s *CustomerService) Get(ctx context.Context, customerID string) (*customer.Customer, error) {
	return s.store.GetByID(ctx, customerID)
}

// List never returns a nil slice.
func (s *CustomerService) List(ctx context.Context) ([]customer.Customer, error) {
	customers, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []customer.Customer{}
	}
	return customers, nil
}

// Update overwrites every field of the customer and returns the refreshed row.
func (s *CustomerService) Update(ctx context.Context, payload *customer.UpdateCustomerPayload) (*customer.Customer, error) {
	record := payload.Customer()

	if _, err := s.store.Update(ctx, record); err != nil {
		return nil, errors.WithMessagef(err, "update customer %q", record.CustomerID)
	}

	updated, err := s.store.GetByID(ctx, record.CustomerID)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("customer_id", updated.CustomerID).Msg("customer updated")

	return updated, nil
}

// Delete removes the customer. Nothing deleted is a not-found error.
func (s *CustomerService) Delete(ctx context.Context, customerID string) (*customer.Deleted, error) {
	deleted, err := s.store.Delete(ctx, customerID)
	if err != nil {
		return nil, errors.WithMessagef(err, "delete customer %q", customerID)
	}

	if deleted == 0 {
		return nil, sqlerr.NoRows(repository.CustomerSchema.Table)
	}

	zerolog.Ctx(ctx).Info().Str("customer_id", customerID).Msg("customer deleted")

	return &customer.Deleted{CustomerID: customerID, Status: customer.StatusDeleted}, nil
}
