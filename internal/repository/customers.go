package repository

import (
	"context"
	"encoding/json"

	"github.com/deppfellow/customer-api/internal/model/customer"
	"github.com/deppfellow/customer-api/internal/sqlerr"
	"github.com/pkg/errors"
)

// CustomerSchema describes customers(customer_id PK, customer_name, age, gender).
var CustomerSchema = Schema{
	Table:   "customers",
	Key:     "customer_id",
	Columns: []string{"customer_id", "customer_name", "age", "gender"},
}

type CustomerRepository struct {
	adapter *Adapter
}

func NewCustomerRepository(db DBTX) *CustomerRepository {
	return &CustomerRepository{adapter: NewAdapter(db)}
}

func (r *CustomerRepository) Create(ctx context.Context, c customer.Customer) error {
	return r.adapter.Insert(ctx, CustomerSchema, c.Fields())
}

// GetByID returns a sqlerr.NoRowsError for the customers table when nothing matches.
func (r *CustomerRepository) GetByID(ctx context.Context, customerID string) (*customer.Customer, error) {
	raw, err := r.adapter.SelectByKey(ctx, CustomerSchema, customerID)
	if err != nil {
		return nil, err
	}

	customers, err := decodeCustomers(raw)
	if err != nil {
		return nil, err
	}

	if len(customers) == 0 {
		return nil, sqlerr.NoRows(CustomerSchema.Table)
	}

	return &customers[0], nil
}

// List never returns a nil slice.
func (r *CustomerRepository) List(ctx context.Context) ([]customer.Customer, error) {
	raw, err := r.adapter.SelectAll(ctx, CustomerSchema)
	if err != nil {
		return nil, err
	}

	return decodeCustomers(raw)
}

func (r *CustomerRepository) Update(ctx context.Context, c customer.Customer) (int64, error) {
	return r.adapter.Update(ctx, CustomerSchema, c.Fields())
}

func (r *CustomerRepository) Delete(ctx context.Context, customerID string) (int64, error) {
	return r.adapter.Delete(ctx, CustomerSchema, customerID)
}

func decodeCustomers(raw json.RawMessage) ([]customer.Customer, error) {
	customers := []customer.Customer{}
	if err := json.Unmarshal(raw, &customers); err != nil {
		return nil, errors.Wrap(err, "decode customers")
	}
	if customers == nil {
		customers = []customer.Customer{}
	}
	return customers, nil
}
