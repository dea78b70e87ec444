package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/deppfellow/customer-api/internal/config"
	"github.com/deppfellow/customer-api/internal/errs"
	"github.com/deppfellow/customer-api/internal/handler"
	"github.com/deppfellow/customer-api/internal/logger"
	"github.com/deppfellow/customer-api/internal/model/customer"
	"github.com/deppfellow/customer-api/internal/router"
	"github.com/deppfellow/customer-api/internal/server"
	"github.com/deppfellow/customer-api/internal/service"
	"github.com/deppfellow/customer-api/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const probeDoc = `[{"id":1,"name":"Leanne Graham"}]`

// store is an in-memory service.CustomerStore.
type store struct {
	mu   sync.Mutex
	rows map[string]customer.Customer
}

func (s *store) Create(_ context.Context, c customer.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[c.CustomerID]; ok {
		return &pgconn.PgError{Code: "23505", TableName: "customers", ConstraintName: "customers_pkey"}
	}
	s.rows[c.CustomerID] = c
	return nil
}

func (s *store) GetByID(_ context.Context, customerID string) (*customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.rows[customerID]
	if !ok {
		return nil, sqlerr.NoRows("customers")
	}
	return &c, nil
}

func (s *store) List(context.Context) ([]customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []customer.Customer
	for _, c := range s.rows {
		out = append(out, c)
	}
	return out, nil
}

func (s *store) Update(_ context.Context, c customer.Customer) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[c.CustomerID]; !ok {
		return 0, nil
	}
	s.rows[c.CustomerID] = c
	return 1, nil
}

func (s *store) Delete(_ context.Context, customerID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[customerID]; !ok {
		return 0, nil
	}
	delete(s.rows, customerID)
	return 1, nil
}

type testApp struct {
	router *echo.Echo
	store  *store
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(probeDoc))
	}))
	t.Cleanup(upstream.Close)

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "8000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Probe:         config.ProbeConfig{URL: upstream.URL, Timeout: time.Second},
		Observability: config.DefaultObservabilityConfig(),
	}

	nop := zerolog.Nop()
	s := &server.Server{
		Config:        cfg,
		Logger:        &nop,
		LoggerService: &logger.LoggerService{},
	}

	probe, err := service.NewProbeService(cfg.Probe, nil)
	require.NoError(t, err)

	st := &store{rows: map[string]customer.Customer{}}
	services := &service.Services{
		Customer: service.NewCustomerService(st),
		Probe:    probe,
	}

	return &testApp{
		router: router.NewRouter(s, handler.NewHandlers(s, services)),
		store:  st,
	}
}

func (a *testApp) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const alice = `{"customer_id":"C1","customer_name":"Alice","age":30,"gender":"F"}`

func TestCustomers_RoundTrip(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/customers", alice)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, alice, rec.Body.String())

	rec = app.do(t, http.MethodGet, "/customers?customer_id=C1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, alice, rec.Body.String())

	rec = app.do(t, http.MethodGet, "/allcustomers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "["+alice+"]", rec.Body.String())
}

func TestCustomers_CreateRejectsEmptyID(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/customers",
		`{"customer_id":"","customer_name":"Alice","age":30,"gender":"F"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "customer_id", body.Errors[0].Field)
	assert.Empty(t, app.store.rows)
}

func TestCustomers_CreateMissingField(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/customers", `{"customer_id":"C1","customer_name":"Alice","age":30}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, errs.FieldError{Field: "gender", Error: "is required"}, body.Errors[0])
}

func TestCustomers_AgeCoercion(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/customers",
		`{"customer_id":"C2","customer_name":"Bob","age":"41","gender":"M"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"customer_id":"C2","customer_name":"Bob","age":41,"gender":"M"}`, rec.Body.String())

	rec = app.do(t, http.MethodPost, "/customers",
		`{"customer_id":"C3","customer_name":"Eve","age":"abc","gender":"F"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "age", body.Errors[0].Field)
	assert.NotContains(t, app.store.rows, "C3")
}

func TestCustomers_MalformedBody(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/customers", `{"customer_id":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomers_CreateDuplicate(t *testing.T) {
	app := newTestApp(t)

	require.Equal(t, http.StatusOK, app.do(t, http.MethodPost, "/customers", alice).Code)

	rec := app.do(t, http.MethodPost, "/customers",
		`{"customer_id":"C1","customer_name":"Bob","age":41,"gender":"M"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", decodeError(t, rec).Code)

	rec = app.do(t, http.MethodGet, "/customers?customer_id=C1", "")
	assert.JSONEq(t, alice, rec.Body.String())
}

func TestCustomers_GetUnknown(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/customers?customer_id=C9", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Customer not found", decodeError(t, rec).Message)
}

func TestCustomers_MissingQuery(t *testing.T) {
	app := newTestApp(t)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		rec := app.do(t, method, "/customers", "")

		require.Equal(t, http.StatusBadRequest, rec.Code, method)
		body := decodeError(t, rec)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "customer_id", body.Errors[0].Field)
	}
}

func TestCustomers_ListEmpty(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/allcustomers", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCustomers_Update(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusOK, app.do(t, http.MethodPost, "/customers", alice).Code)

	updated := `{"customer_id":"C1","customer_name":"Alicia","age":31,"gender":"F"}`
	rec := app.do(t, http.MethodPut, "/customers", updated)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, updated, rec.Body.String())

	rec = app.do(t, http.MethodPut, "/customers",
		`{"customer_id":"C9","customer_name":"Nobody","age":1,"gender":"M"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Customer not found", decodeError(t, rec).Message)
	assert.NotContains(t, app.store.rows, "C9")
}

func TestCustomers_Delete(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusOK, app.do(t, http.MethodPost, "/customers", alice).Code)

	rec := app.do(t, http.MethodDelete, "/customers?customer_id=C1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"customer_id":"C1","status":"deleted"}`, rec.Body.String())

	rec = app.do(t, http.MethodGet, "/customers?customer_id=C1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodDelete, "/customers?customer_id=C1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Customer not found", decodeError(t, rec).Message)
}

func TestCORS(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/allcustomers", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))

	req = httptest.NewRequest(http.MethodOptions, "/customers", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPut)
	req.Header.Set(echo.HeaderAccessControlRequestHeaders, "Content-Type")
	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPut)
	assert.Equal(t, "Content-Type", rec.Header().Get(echo.HeaderAccessControlAllowHeaders))
}

func TestCORS_ErrorResponses(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/customers?customer_id=C9", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestIndex(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Customer API top page!"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestFetchTest(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/fetchtest", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, probeDoc, rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

func TestDocs(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/openapi.json", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		OpenAPI string                    `json:"openapi"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Contains(t, doc.Paths, "/customers")
	assert.Contains(t, doc.Paths, "/allcustomers")

	rec = app.do(t, http.MethodGet, "/docs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/openapi.json")
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/nope", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeError(t, rec).Message)
}

func TestStatus_WithoutDatabase(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/status", "")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body handler.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unhealthy", body.Status)
	assert.Equal(t, "unhealthy", body.Checks["database"].Status)
}
