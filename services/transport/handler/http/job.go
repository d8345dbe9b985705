package http

import (
	"errors"
	"net/http"

	"github.com/agrilink/agrilink/internal/pkg/logger"
	"github.com/agrilink/agrilink/internal/pkg/models"
	"github.com/agrilink/agrilink/internal/utils"
	"github.com/agrilink/agrilink/services/transport"
	"github.com/agrilink/agrilink/services/transport/usecase"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// JobHandler handles HTTP requests for transport job operations
type JobHandler struct {
	jobUC transport.JobUC
}

// NewJobHandler creates a new job HTTP handler
func NewJobHandler(jobUC transport.JobUC) *JobHandler {
	return &JobHandler{jobUC: jobUC}
}

// positionRequest is the device-reported position attached to
// geofence-gated actions. An absent position means the device could not
// produce a fix (permission denied or no GPS).
type positionRequest struct {
	OrderID  string             `json:"order_id"`
	Position *models.Coordinate `json:"position"`
}

func (r positionRequest) provider() transport.PositionProvider {
	return usecase.NewReportedPosition(r.Position)
}

// GetJobs returns the authenticated transporter's job list
func (h *JobHandler) GetJobs(c echo.Context) error {
	driverID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	jobs, err := h.jobUC.GetJobs(c.Request().Context(), driverID.String())
	if err != nil {
		logger.Error("Failed to fetch jobs", logger.ErrorField(err))
		return utils.BadGatewayResponse(c, "failed to fetch jobs, pull to retry")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Jobs retrieved", jobs)
}

// GetJob returns a job detail view including its route manifest
func (h *JobHandler) GetJob(c echo.Context) error {
	jobID := c.Param("id")
	if jobID == "" {
		return utils.BadRequestResponse(c, "job id is required")
	}

	view, err := h.jobUC.GetJob(c.Request().Context(), jobID)
	if err != nil {
		logger.Error("Failed to fetch job detail",
			logger.String("job_id", jobID),
			logger.ErrorField(err))
		return utils.BadGatewayResponse(c, "failed to fetch job, pull to retry")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Job retrieved", view)
}

// VerifyPickup runs geofence verification for an order's pickup stop.
// A failed verification is a recoverable state, not an HTTP error: the
// result carries the distance readout for the "how far off" explanation.
func (h *JobHandler) VerifyPickup(c echo.Context) error {
	jobID := c.Param("id")
	var req positionRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.OrderID == "" {
		return utils.BadRequestResponse(c, "order_id is required")
	}

	result, err := h.jobUC.VerifyPickup(c.Request().Context(), jobID, req.OrderID, req.provider())
	if err != nil {
		return h.mapJobError(c, jobID, err)
	}

	return c.JSON(http.StatusOK, utils.Response{
		Success: result.Success,
		Error:   result.Error,
		Data:    result,
	})
}

// MarkPickedUp confirms pickup for an order, gated by geofence verification
func (h *JobHandler) MarkPickedUp(c echo.Context) error {
	jobID := c.Param("id")
	orderID := c.Param("orderId")

	var req positionRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	job, verification, err := h.jobUC.MarkPickedUp(c.Request().Context(), jobID, orderID, req.provider())
	if errors.Is(err, usecase.ErrGeofenceFailed) && verification != nil {
		return c.JSON(http.StatusOK, utils.Response{
			Success: false,
			Error:   verification.Error,
			Data:    verification,
		})
	}
	if err != nil {
		return h.mapJobError(c, jobID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Order picked up", job)
}

// MarkDelivered confirms delivery for an order
func (h *JobHandler) MarkDelivered(c echo.Context) error {
	jobID := c.Param("id")
	orderID := c.Param("orderId")

	job, err := h.jobUC.MarkDelivered(c.Request().Context(), jobID, orderID)
	if err != nil {
		return h.mapJobError(c, jobID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Order delivered", job)
}

// MarkJobCompleted confirms completion of a fully delivered job
func (h *JobHandler) MarkJobCompleted(c echo.Context) error {
	jobID := c.Param("id")

	job, err := h.jobUC.MarkJobCompleted(c.Request().Context(), jobID)
	if err != nil {
		return h.mapJobError(c, jobID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Job completed", job)
}

// mapJobError maps domain rejections to explanatory conflict responses and
// everything else to upstream failures
func (h *JobHandler) mapJobError(c echo.Context, jobID string, err error) error {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, usecase.ErrAlreadyPickedUp),
		errors.Is(err, usecase.ErrAlreadyDelivered),
		errors.Is(err, usecase.ErrNotPickedUp),
		errors.Is(err, usecase.ErrJobNotComplete):
		return utils.ConflictResponse(c, err.Error())
	default:
		logger.Error("Job operation failed",
			logger.String("job_id", jobID),
			logger.ErrorField(err))
		return utils.BadGatewayResponse(c, "operation failed, please retry")
	}
}
