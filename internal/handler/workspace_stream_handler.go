package handler

import (
	"context"
	"os"

	"project-composer-be/internal/pkg/logger"
	"project-composer-be/internal/service"
	internalWS "project-composer-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// WorkspaceStreamHandler upgrades authenticated connections and keeps them
// fed with workspace snapshots. Connecting subscribes the session; every
// later cloud save (from any device) is pushed down the socket.
type WorkspaceStreamHandler struct {
	syncService service.ISyncService
	hub         *internalWS.Hub
	logger      logger.ILogger
}

func NewWorkspaceStreamHandler(syncService service.ISyncService, hub *internalWS.Hub, log logger.ILogger) *WorkspaceStreamHandler {
	return &WorkspaceStreamHandler{
		syncService: syncService,
		hub:         hub,
		logger:      log,
	}
}

// ServeWs handles websocket requests from the peer.
func (h *WorkspaceStreamHandler) ServeWs(c *fiber.Ctx) error {
	// Browsers cannot set headers on websocket handshakes, so the token may
	// arrive as a query param instead.
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("WorkspaceStream", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing user_id"})
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user ID format in token"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("WorkspaceStream", "Starting session", map[string]interface{}{"user_id": userID})

			snapshot, err := h.syncService.BeginSession(context.Background(), userID)
			if err != nil {
				h.logger.Error("WorkspaceStream", "Failed to hydrate workspace", map[string]interface{}{
					"user_id": userID,
					"error":   err.Error(),
				})
				conn.Close()
				return
			}

			// Initial snapshot, then the pumps take over.
			internalWS.ServeWs(h.hub, conn, userID, internalWS.WorkspaceFrame(snapshot))

			h.logger.Info("WorkspaceStream", "Session ended", map[string]interface{}{"user_id": userID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the stream endpoint.
func (h *WorkspaceStreamHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws", h.ServeWs)
}
