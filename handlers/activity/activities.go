package activity

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/obarcalifa/studentdash-api/services"
	"github.com/obarcalifa/studentdash-api/utils/middleware"
	"github.com/obarcalifa/studentdash-api/utils/response"
)

// Handler implements the personal activity endpoints.
type Handler struct {
	activities *services.ActivityService
	dashboard  *services.DashboardService
}

// NewHandler creates a new activity handler
func NewHandler(activities *services.ActivityService, dashboard *services.DashboardService) *Handler {
	return &Handler{
		activities: activities,
		dashboard:  dashboard,
	}
}

// HandleCreateActivity responds to POST /activities. The body carries textual
// form fields; validation failures come back as 422, never 500.
func (h *Handler) HandleCreateActivity(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	var input services.CreateActivityInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	taskID, err := h.activities.Create(userID, input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			return response.ValidationError(c, err)
		}
		return response.InternalServerError(c, "Failed to create activity")
	}

	h.dashboard.InvalidateUser(c.Context(), userID)

	// The SPA reads task_id at the top level of the create response.
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"task_id": taskID,
	})
}

// HandleDeleteActivity responds to DELETE /activities/:id. Deletion is scoped
// to the caller and idempotent: a missing or foreign id still succeeds.
func (h *Handler) HandleDeleteActivity(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return response.BadRequest(c, "Activity id must be a positive integer")
	}

	if err := h.activities.Delete(uint(id), userID); err != nil {
		return response.InternalServerError(c, "Failed to delete activity")
	}

	h.dashboard.InvalidateUser(c.Context(), userID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}
