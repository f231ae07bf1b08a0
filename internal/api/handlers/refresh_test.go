package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcloud242/resale-radar/internal/api/handlers"
)

type stubRefresher struct {
	refreshed int
	err       error
}

func (s *stubRefresher) RunRefresh(context.Context) (int, error) {
	return s.refreshed, s.err
}

func TestRefreshHandler_Refresh(t *testing.T) {
	t.Parallel()

	h := handlers.NewRefreshHandler(&stubRefresher{refreshed: 42})

	_, api := humatest.New(t)
	handlers.RegisterRefreshRoutes(api, h)

	resp := api.Post("/api/v1/refresh")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"items_refreshed":42`)
	assert.Contains(t, resp.Body.String(), "refresh completed")
}

func TestRefreshHandler_Error(t *testing.T) {
	t.Parallel()

	h := handlers.NewRefreshHandler(&stubRefresher{err: errors.New("market unavailable")})

	_, api := humatest.New(t)
	handlers.RegisterRefreshRoutes(api, h)

	resp := api.Post("/api/v1/refresh")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "refresh failed")
}
