package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yaparim/marketplace/internal/api/metrics"
	"github.com/yaparim/marketplace/internal/core/ports"
)

const (
	defaultLimit = 20
	defaultSkip  = 0
)

// TaskHandler handles HTTP requests for the task catalog.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create handles POST /api/tasks.
//
// @Summary      Post a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  createTaskResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Deadline.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "deadline is required")
	}

	task, err := h.service.CreateTask(c.Request().Context(), user, ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		City:        req.City,
		District:    req.District,
		Budget:      req.Budget,
		Deadline:    req.Deadline.Time,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		return err
	}
	metrics.TasksCreatedTotal.WithLabelValues(task.Category).Inc()

	return c.JSON(http.StatusCreated, createTaskResponse{
		Message: "Görev başarıyla oluşturuldu",
		TaskID:  task.ID,
		Task:    task,
	})
}

// List handles GET /api/tasks.
//
// @Summary      Browse active tasks
// @Tags         tasks
// @Produce      json
// @Param        city      query     string  false  "City filter"
// @Param        category  query     string  false  "Category filter"
// @Param        limit     query     int     false  "Page size (0 = unbounded)"  default(20)
// @Param        skip      query     int     false  "Offset"                    default(0)
// @Success      200       {object}  listTasksResponse
// @Failure      400       {object}  errorResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	q := listTasksQuery{Limit: defaultLimit, Skip: defaultSkip}
	err := echo.QueryParamsBinder(c).
		String("city", &q.City).
		String("category", &q.Category).
		Int("limit", &q.Limit).
		Int("skip", &q.Skip).
		BindError()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "limit and skip must be integers").SetInternal(err)
	}

	page, err := h.service.ListTasks(c.Request().Context(), ports.ListTasksInput{
		City:     q.City,
		Category: q.Category,
		Limit:    q.Limit,
		Skip:     q.Skip,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listTasksResponse{Tasks: page.Tasks, Total: page.Total})
}

// Get handles GET /api/tasks/:id.
//
// @Summary      Get a task
// @Tags         tasks
// @Produce      json
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  domain.Task
// @Failure      404  {object}  errorResponse
// @Router       /api/tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	task, err := h.service.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}
