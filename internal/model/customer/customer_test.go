package customer

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/deppfellow/customer-api/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAge_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Age
		wantErr bool
	}{
		{name: "integer", input: `30`, want: 30},
		{name: "negative integer", input: `-4`, want: -4},
		{name: "integral float", input: `30.0`, want: 30},
		{name: "exponent", input: `1e2`, want: 100},
		{name: "numeric string", input: `"30"`, want: 30},
		{name: "padded numeric string", input: `" 42 "`, want: 42},
		{name: "bool", input: `true`, want: 1},
		{name: "fractional float", input: `30.5`, wantErr: true},
		{name: "word", input: `"abc"`, wantErr: true},
		{name: "float string", input: `"30.5"`, wantErr: true},
		{name: "empty string", input: `""`, wantErr: true},
		{name: "object", input: `{"years":30}`, wantErr: true},
		{name: "list", input: `[30]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var age Age
			err := json.Unmarshal([]byte(tt.input), &age)

			if tt.wantErr {
				var custom validation.CustomValidationErrors
				require.True(t, errors.As(err, &custom), "expected CustomValidationErrors, got %v", err)
				assert.Equal(t, "age", custom[0].Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, age)
		})
	}
}

func TestAge_NullKeepsValue(t *testing.T) {
	age := Age(7)
	require.NoError(t, json.Unmarshal([]byte(`null`), &age))
	assert.Equal(t, Age(7), age)
}

func TestCustomer_JSONShape(t *testing.T) {
	c := Customer{CustomerID: "C1", CustomerName: "Alice", Age: 30, Gender: "F"}

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"customer_id":"C1","customer_name":"Alice","age":30,"gender":"F"}`, string(out))

	assert.Equal(t, map[string]any{
		"customer_id":   "C1",
		"customer_name": "Alice",
		"age":           30,
		"gender":        "F",
	}, c.Fields())
}

func decodeCreate(t *testing.T, body string) *CreateCustomerPayload {
	t.Helper()
	p := &CreateCustomerPayload{}
	require.NoError(t, json.Unmarshal([]byte(body), p))
	return p
}

func TestCreateCustomerPayload_Validate(t *testing.T) {
	t.Run("valid with coerced age", func(t *testing.T) {
		p := decodeCreate(t, `{"customer_id":"C1","customer_name":"Alice","age":"30","gender":"F"}`)
		require.NoError(t, p.Validate())
		assert.Equal(t, Customer{CustomerID: "C1", CustomerName: "Alice", Age: 30, Gender: "F"}, p.Customer())
	})

	t.Run("empty customer id", func(t *testing.T) {
		p := decodeCreate(t, `{"customer_id":"","customer_name":"Alice","age":30,"gender":"F"}`)

		var custom validation.CustomValidationErrors
		require.True(t, errors.As(p.Validate(), &custom))
		assert.Equal(t, validation.CustomValidationErrors{{Field: "customer_id", Message: "is required"}}, custom)
	})

	t.Run("missing age", func(t *testing.T) {
		p := decodeCreate(t, `{"customer_id":"C1","customer_name":"Alice","gender":"F"}`)

		var verrs validator.ValidationErrors
		require.True(t, errors.As(p.Validate(), &verrs))
		require.Len(t, verrs, 1)
		assert.Equal(t, "age", verrs[0].Field())
		assert.Equal(t, "required", verrs[0].Tag())
	})

	t.Run("empty strings are present values", func(t *testing.T) {
		p := decodeCreate(t, `{"customer_id":"C1","customer_name":"","age":0,"gender":""}`)
		assert.NoError(t, p.Validate())
	})
}

func TestUpdateCustomerPayload_Validate(t *testing.T) {
	p := &UpdateCustomerPayload{}
	require.NoError(t, json.Unmarshal([]byte(`{"customer_id":"C1","customer_name":"Bob","age":41}`), p))

	var verrs validator.ValidationErrors
	require.True(t, errors.As(p.Validate(), &verrs))
	assert.Equal(t, "gender", verrs[0].Field())
}

func TestQueryPayloads_Validate(t *testing.T) {
	assert.NoError(t, (&GetCustomerPayload{CustomerID: "C1"}).Validate())
	assert.Error(t, (&GetCustomerPayload{}).Validate())
	assert.NoError(t, (&DeleteCustomerPayload{CustomerID: "C1"}).Validate())
	assert.Error(t, (&DeleteCustomerPayload{}).Validate())
	assert.NoError(t, (&ListCustomersPayload{}).Validate())
}
