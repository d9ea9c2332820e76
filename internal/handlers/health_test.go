package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjmerc/wifi-dashboard/internal/models"
	"github.com/fjmerc/wifi-dashboard/internal/testutil"
)

func TestHealthHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	HealthHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	testutil.AssertStatusCode(t, rr, http.StatusOK)
	assert.Contains(t, rr.Header().Get("Cache-Control"), "no-store")

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)

	ts, err := time.Parse(time.RFC3339, resp.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestReadinessHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	ReadinessHandler(&testutil.StubHealth{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	testutil.AssertStatusCode(t, rr, http.StatusOK)

	var resp readinessResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.Status)
	require.NotNil(t, resp.Database)
	assert.Equal(t, "healthy", string(resp.Database.Status))
}

func TestReadinessHandler_Unavailable(t *testing.T) {
	rr := httptest.NewRecorder()
	ReadinessHandler(&testutil.StubHealth{Err: errors.New("no such table: login_attempts")}).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	testutil.AssertStatusCode(t, rr, http.StatusServiceUnavailable)

	var resp readinessResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "unavailable", resp.Status)
	testutil.AssertNotContains(t, rr.Body.String(), "no such table")
}
