package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcloud242/resale-radar/internal/api/handlers"
)

func newIdentifyAPI(t *testing.T) humatest.TestAPI {
	t.Helper()

	h := handlers.NewIdentifyHandler(nil)

	_, api := humatest.New(t)
	handlers.RegisterIdentifyRoutes(api, h)
	return api
}

func TestIdentifyHandler_Identify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
		wantBody   []string
	}{
		{
			name: "gemini payload",
			body: map[string]any{
				"payload": map[string]any{
					"candidates": []map[string]any{
						{
							"content": map[string]any{
								"parts": []map[string]any{
									{"text": `{"title":"Metroid Prime","platform":"GameCube","category":"video_game"}`},
								},
							},
						},
					},
				},
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"Metroid Prime"`, `"GameCube"`, `"gemini"`},
		},
		{
			name: "direct identification object",
			body: map[string]any{
				"payload": map[string]any{
					"title":    "Pokemon Emerald",
					"platform": "GBA",
				},
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"Pokemon Emerald"`, `"direct"`},
		},
		{
			name: "plain text payload",
			body: map[string]any{
				"payload": "Super Mario Sunshine\nNintendo GameCube",
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"Super Mario Sunshine"`, `"plaintext"`},
		},
		{
			name: "unrecognized payload returns 422",
			body: map[string]any{
				"payload": map[string]any{"unexpected": "shape"},
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{"did not match any known provider shape"},
		},
		{
			name:       "missing payload returns 422",
			body:       map[string]any{},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{"payload is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := newIdentifyAPI(t)

			resp := api.Post("/api/v1/identify", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}
