package worklog_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"collector-stats/core/rowstore"
	"collector-stats/core/rowstore/mocks"
	"collector-stats/feature/worklog"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApp(t *testing.T, client rowstore.Client) *fiber.App {
	t.Helper()
	feat := worklog.NewFeature(client, zap.NewNop())

	app := fiber.New()
	require.NoError(t, feat.Load(app))
	return app
}

func TestHandleAppend(t *testing.T) {
	client := new(mocks.Client)
	client.On("Fetch", mock.Anything, mock.Anything).
		Return(&rowstore.Result{Message: "row appended"}, nil)

	app := newApp(t, client)

	req := httptest.NewRequest("POST", "/worklogs", strings.NewReader(`{"collector":"Ana","hours":2.5}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestHandleAppendInvalidBody(t *testing.T) {
	app := newApp(t, new(mocks.Client))

	req := httptest.NewRequest("POST", "/worklogs", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleAppendStoreRejection(t *testing.T) {
	client := new(mocks.Client)
	client.On("Fetch", mock.Anything, mock.Anything).
		Return(nil, &rowstore.APIError{Message: "sheet is locked"})

	app := newApp(t, client)

	req := httptest.NewRequest("POST", "/worklogs", strings.NewReader(`{"collector":"Ana","hours":1}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandleAppendUpstreamFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("Fetch", mock.Anything, mock.Anything).
		Return(nil, &rowstore.TimeoutError{Attempts: 3})

	app := newApp(t, client)

	req := httptest.NewRequest("POST", "/worklogs", strings.NewReader(`{"collector":"Ana","hours":1}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}
