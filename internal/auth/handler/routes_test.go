package handler_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutesRegistered(t *testing.T) {
	app, _, _ := newTestApp(t)

	routes := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/register"},
		{"POST", "/api/v1/login"},
		{"POST", "/api/v1/refresh"},
		{"DELETE", "/api/v1/session"},
		{"POST", "/api/v1/change-password"},
		{"GET", "/api/v1/profile"},
	}

	for _, r := range routes {
		resp, err := app.Test(httptest.NewRequest(r.method, r.path, nil))
		require.NoError(t, err)
		assert.NotEqual(t, fiber.StatusNotFound, resp.StatusCode, "%s %s", r.method, r.path)
		assert.NotEqual(t, fiber.StatusMethodNotAllowed, resp.StatusCode, "%s %s", r.method, r.path)
	}
}
