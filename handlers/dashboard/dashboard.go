package dashboard

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/obarcalifa/studentdash-api/services"
	"github.com/obarcalifa/studentdash-api/utils/middleware"
	"github.com/obarcalifa/studentdash-api/utils/response"
)

// Handler serves the aggregated dashboard document.
type Handler struct {
	dashboard *services.DashboardService
}

// NewHandler creates a new dashboard handler
func NewHandler(dashboard *services.DashboardService) *Handler {
	return &Handler{dashboard: dashboard}
}

// HandleGetDashboard responds to GET /dashboard. The optional courseId query
// parameter narrows the course list to a single course.
func (h *Handler) HandleGetDashboard(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	var courseID uint
	if raw := c.Query("courseId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 {
			return response.BadRequest(c, "courseId must be a positive integer")
		}
		courseID = uint(parsed)
	}

	payload, err := h.dashboard.Compose(c.Context(), user, courseID)
	if err != nil {
		return response.InternalServerError(c, "Failed to compose dashboard")
	}

	// The dashboard document is the whole body; the SPA predates the
	// response envelope and reads these keys at the top level.
	return c.Status(fiber.StatusOK).JSON(payload)
}
