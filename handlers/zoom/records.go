package zoom

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/obarcalifa/studentdash-api/model"
	"github.com/obarcalifa/studentdash-api/services"
	"github.com/obarcalifa/studentdash-api/utils/middleware"
	"github.com/obarcalifa/studentdash-api/utils/response"
	"github.com/obarcalifa/studentdash-api/utils/validation"
)

// CreateRecordRequest is the body of POST /zoom-records.
type CreateRecordRequest struct {
	CourseID   uint   `json:"courseId" validate:"required"`
	RecordType string `json:"recordType" validate:"required,max=50"`
	Name       string `json:"name" validate:"required,max=255"`
	RecordedAt string `json:"recordedAt" validate:"required"`
	URL        string `json:"url" validate:"omitempty,url,max=512"`
}

// UpdateStatusRequest is the body of PATCH /zoom-records/:id.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled recorded published"`
}

// Handler implements the recording entry endpoints.
type Handler struct {
	zoom      *services.ZoomService
	dashboard *services.DashboardService
	validator *validation.Validator
}

// NewHandler creates a new zoom handler
func NewHandler(zoomService *services.ZoomService, dashboard *services.DashboardService) *Handler {
	return &Handler{
		zoom:      zoomService,
		dashboard: dashboard,
		validator: validation.NewValidator(),
	}
}

// HandleCreateRecord responds to POST /zoom-records. The authenticated caller
// becomes the hosting user of the new entry.
func (h *Handler) HandleCreateRecord(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	var req CreateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	recordedAt, err := time.Parse(time.RFC3339, req.RecordedAt)
	if err != nil {
		return response.ValidationError(c, errors.New("recordedAt must be an RFC3339 timestamp"))
	}

	record := model.ZoomRecord{
		CourseID:   req.CourseID,
		HostUserID: user.ID,
		RecordType: validation.SanitizeString(req.RecordType),
		Name:       validation.SanitizeString(req.Name),
		RecordedAt: recordedAt.UTC(),
		Status:     model.ZoomStatusScheduled,
		URL:        req.URL,
	}

	if err := h.zoom.Create(c.Context(), &record); err != nil {
		return response.InternalServerError(c, "Failed to create zoom record")
	}

	h.dashboard.InvalidateUser(c.Context(), user.ID)

	return response.Created(c, fiber.Map{
		"id":   record.ID,
		"uuid": record.UUID.String(),
	})
}

// HandleUpdateStatus responds to PATCH /zoom-records/:id. Only the hosting
// user or an admin may change a record's status.
func (h *Handler) HandleUpdateStatus(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return response.BadRequest(c, "Record id must be a positive integer")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.zoom.UpdateStatus(c.Context(), uint(id), req.Status, user); err != nil {
		switch {
		case errors.Is(err, services.ErrRecordNotFound):
			return response.NotFound(c, "Zoom record not found")
		case errors.Is(err, services.ErrNotOwner):
			return response.Forbidden(c, "Only the hosting user may update this record")
		default:
			return response.InternalServerError(c, "Failed to update zoom record")
		}
	}

	h.dashboard.InvalidateUser(c.Context(), user.ID)

	return response.SuccessWithMessage(c, "Status updated", fiber.Map{
		"id":     id,
		"status": req.Status,
	})
}
