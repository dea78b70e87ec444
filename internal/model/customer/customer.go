// Package customer holds the customer record and the payloads the API accepts for it.
package customer

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/deppfellow/customer-api/internal/validation"
	"github.com/spf13/cast"
)

// Customer is a row of the customers table.
type Customer struct {
	CustomerID   string `json:"customer_id" db:"customer_id"`
	CustomerName string `json:"customer_name" db:"customer_name"`
	Age          Age    `json:"age" db:"age"`
	Gender       string `json:"gender" db:"gender"`
}

// Fields returns the record keyed by column name.
func (c Customer) Fields() map[string]any {
	return map[string]any{
		"customer_id":   c.CustomerID,
		"customer_name": c.CustomerName,
		"age":           int(c.Age),
		"gender":        c.Gender,
	}
}

// Deleted is the confirmation returned after a customer is removed.
type Deleted struct {
	CustomerID string `json:"customer_id"`
	Status     string `json:"status"`
}

// StatusDeleted is the only Deleted.Status value.
const StatusDeleted = "deleted"

// Age is an integer that also accepts integral floats, numeric strings and
// booleans from JSON. Anything else fails to decode.
type Age int

var errInvalidAge = validation.CustomValidationErrors{
	{Field: "age", Message: "must be a valid integer"},
}

func (a *Age) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return errInvalidAge
	}

	switch v := raw.(type) {
	case nil:
		// null leaves the value untouched, like encoding/json does.
		return nil

	case json.Number:
		if i, err := v.Int64(); err == nil {
			*a = Age(i)
			return nil
		}
		f, err := v.Float64()
		if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return errInvalidAge
		}
		i, err := cast.ToIntE(f)
		if err != nil {
			return errInvalidAge
		}
		*a = Age(i)

	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errInvalidAge
		}
		*a = Age(i)

	case bool:
		i, err := cast.ToIntE(v)
		if err != nil {
			return errInvalidAge
		}
		*a = Age(i)

	default:
		return errInvalidAge
	}

	return nil
}
