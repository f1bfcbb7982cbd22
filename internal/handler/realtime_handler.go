package handler

import (
	"matchmaker-be/internal/pkg/logger"
	"matchmaker-be/internal/pkg/serverutils"
	internalWS "matchmaker-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type RealtimeHandler struct {
	hub        *internalWS.Hub
	jwtSecret  string
	sendBuffer int
	logger     logger.ILogger
}

func NewRealtimeHandler(hub *internalWS.Hub, jwtSecret string, sendBuffer int, log logger.ILogger) *RealtimeHandler {
	return &RealtimeHandler{
		hub:        hub,
		jwtSecret:  jwtSecret,
		sendBuffer: sendBuffer,
		logger:     log,
	}
}

// ServeWs authenticates the handshake and upgrades it. Browsers cannot set
// headers on a websocket handshake, so the token is read from ?token= first.
func (h *RealtimeHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		tokenStr = serverutils.BearerToken(c)
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, "Missing token (Query 'token' or Header 'Authorization')"))
	}

	userID, err := serverutils.ParseUserID(tokenStr, h.jwtSecret)
	if err != nil {
		h.logger.Warn("RealtimeHandler", "Invalid token in websocket handshake", map[string]interface{}{"error": err.Error()})
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("RealtimeHandler", "Starting WebSocket session", map[string]interface{}{"user_id": userID})
			internalWS.ServeWs(h.hub, conn, userID, h.sendBuffer)
			h.logger.Info("RealtimeHandler", "WebSocket session ended", map[string]interface{}{"user_id": userID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

func (h *RealtimeHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws", h.ServeWs)
}
