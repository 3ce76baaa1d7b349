package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yaparim/marketplace/internal/api/metrics"
	"github.com/yaparim/marketplace/internal/core/ports"
)

// ApplicationHandler handles bids on tasks and the per-user activity view.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// Apply handles POST /api/tasks/:id/apply.
//
// @Summary      Apply to a task
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Task id"
// @Param        body  body      applyRequest  true  "Proposal and offered price"
// @Success      201   {object}  applyResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/tasks/{id}/apply [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req applyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	taskID := c.Param("id")
	if req.TaskID != "" && req.TaskID != taskID {
		return echo.NewHTTPError(http.StatusBadRequest, "task_id does not match the task in the path")
	}

	app, err := h.service.Apply(c.Request().Context(), user, ports.ApplyInput{
		TaskID:       taskID,
		Proposal:     req.Proposal,
		OfferedPrice: req.OfferedPrice,
	})
	metrics.ApplicationsTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, applyResponse{
		Message:       "Başvuru başarıyla gönderildi",
		ApplicationID: app.ID,
	})
}

// ListForTask handles GET /api/tasks/:id/applications. Only the poster may
// see the bids on a task.
//
// @Summary      List applications for a task
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  listApplicationsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/tasks/{id}/applications [get]
func (h *ApplicationHandler) ListForTask(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	apps, err := h.service.ListApplications(c.Request().Context(), user, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listApplicationsResponse{Applications: apps, Total: len(apps)})
}

// ListForUser handles GET /api/user/tasks.
//
// @Summary      Caller's tasks and applications
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userTasksResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/user/tasks [get]
func (h *ApplicationHandler) ListForUser(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	activity, err := h.service.ListForUser(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userTasksResponse{
		CreatedTasks: activity.CreatedTasks,
		Applications: activity.Applications,
	})
}
