package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deppfellow/customer-api/internal/config"
	"github.com/deppfellow/customer-api/internal/errs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProbe(t *testing.T, handler http.HandlerFunc) (*ProbeService, *httptest.Server) {
	t.Helper()

	upstream := httptest.NewServer(handler)
	t.Cleanup(upstream.Close)

	probe, err := NewProbeService(config.ProbeConfig{URL: upstream.URL, Timeout: time.Second}, nil)
	require.NoError(t, err)

	return probe, upstream
}

func TestProbeService_RelaysJSON(t *testing.T) {
	const doc = `[{"id":1,"title":"delectus aut autem","completed":false}]`

	probe, _ := newProbe(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	})

	got, err := probe.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, doc, string(got))
}

func TestProbeService_IgnoresUpstreamStatus(t *testing.T) {
	probe, _ := newProbe(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{}`))
	})

	got, err := probe.Fetch(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(got))
}

func TestProbeService_NonJSONBody(t *testing.T) {
	probe, _ := newProbe(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	})

	_, err := probe.Fetch(context.Background())
	assert.True(t, errors.Is(err, errs.ErrUpstream))
}

func TestProbeService_Unreachable(t *testing.T) {
	probe, upstream := newProbe(t, func(http.ResponseWriter, *http.Request) {})
	upstream.Close()

	_, err := probe.Fetch(context.Background())
	assert.True(t, errors.Is(err, errs.ErrUpstream))
}

func TestNewProbeService_RequiresURL(t *testing.T) {
	_, err := NewProbeService(config.ProbeConfig{}, nil)
	assert.Error(t, err)
}
