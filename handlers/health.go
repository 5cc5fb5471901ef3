package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/obarcalifa/studentdash-api/database"
	"github.com/obarcalifa/studentdash-api/utils/response"
)

// HealthHandler reports liveness of the service and its storage.
type HealthHandler struct {
	store database.Storage
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store database.Storage) *HealthHandler {
	return &HealthHandler{store: store}
}

// HandleCheckHealth responds to GET /ping
func (h *HealthHandler) HandleCheckHealth(c *fiber.Ctx) error {
	if err := h.store.HealthCheck(); err != nil {
		return response.Error(c, fiber.StatusServiceUnavailable,
			"Storage unavailable", response.CodeStorageUnavailable)
	}
	return response.SuccessWithMessage(c, "pong", nil)
}
