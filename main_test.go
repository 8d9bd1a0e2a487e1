package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogly/internal/config"
	"blogly/internal/database"
	"blogly/internal/metrics"
	"blogly/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(event rabbitmq.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func newTestApp(t *testing.T, publisher *MockPublisher) *fiber.App {
	t.Helper()
	cfg, err := config.LoadFrom(viper.New())
	require.NoError(t, err)
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	if publisher == nil {
		return NewApp(cfg, db, nil, metrics.New())
	}
	return NewApp(cfg, db, publisher, metrics.New())
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "connected", body["database"])
	assert.Equal(t, false, body["events"])
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/users", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "blogly_entity_operations_total")
	assert.Contains(t, string(raw), "blogly_request_duration_seconds")
}

func TestCreateUserPublishesEvent(t *testing.T) {
	publisher := new(MockPublisher)
	publisher.On("Publish", mock.MatchedBy(func(e rabbitmq.Event) bool {
		return e.Type == "user.created" && e.EntityID == 1 && e.ID != ""
	})).Return(nil).Once()
	app := newTestApp(t, publisher)

	body, _ := json.Marshal(map[string]string{"first_name": "Alan", "last_name": "Alda"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	publisher.AssertExpectations(t)
}

func TestFailedCreatePublishesNothing(t *testing.T) {
	publisher := new(MockPublisher)
	app := newTestApp(t, publisher)

	body, _ := json.Marshal(map[string]string{"first_name": "", "last_name": "Alda"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}
