package feedsync

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func newTestServer(t *testing.T, store *fakeStore) (*Syncer, *prometheus.Registry, func()) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<cars/>"))
	}))

	s := New(testConfig(srv.URL), srv.Client(), store, nil)

	reg := prometheus.NewRegistry()
	if err := s.EnableMetrics(reg); err != nil {
		t.Fatal(err)
	}

	return s, reg, srv.Close
}

func TestServer_SyncSuccess(t *testing.T) {
	store := &fakeStore{}
	s, reg, done := newTestServer(t, store)
	defer done()

	app := NewServer(s, reg)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/sync", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var res Result
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Body, "autocaris-data")

	assert.Len(t, store.calls, 1)
}

func TestServer_SyncFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("access denied")}
	s, reg, done := newTestServer(t, store)
	defer done()

	app := NewServer(s, reg)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/sync", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestServer_Healthz(t *testing.T) {
	s, reg, done := newTestServer(t, &fakeStore{})
	defer done()

	app := NewServer(s, reg)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_MetricsAfterSync(t *testing.T) {
	s, reg, done := newTestServer(t, &fakeStore{})
	defer done()

	app := NewServer(s, reg)

	_, err := app.Test(httptest.NewRequest(http.MethodPost, "/sync", nil))
	assert.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "feedsync_runs_total")
}
