package handler

import (
	"net/http/httptest"
	"testing"

	"matchmaker-be/internal/pkg/logger"
	"matchmaker-be/internal/pkg/serverutils"
	internalWS "matchmaker-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeWsHandshake(t *testing.T) {
	const secret = "ws-secret"
	log := logger.NewNopLogger()
	hub := internalWS.NewHub(nil, "", log)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(log))
	NewRealtimeHandler(hub, secret, 16, log).RegisterRoutes(app.Group("/api"))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": uuid.NewString()}).SignedString([]byte(secret))
	require.NoError(t, err)

	tests := []struct {
		name     string
		path     string
		header   string
		wantCode int
	}{
		{name: "no token", path: "/api/ws", wantCode: 401},
		{name: "bad token", path: "/api/ws?token=garbage", wantCode: 401},
		{name: "query token without upgrade", path: "/api/ws?token=" + token, wantCode: 426},
		{name: "header token without upgrade", path: "/api/ws", header: "Bearer " + token, wantCode: 426},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)
		})
	}
}
