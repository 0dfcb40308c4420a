package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"eventease/internal/delivery/http/helpers"
	"eventease/internal/domain"
)

type TaskController struct {
	Logger  *slog.Logger
	Service domain.TaskService
}

func NewTaskController(logger *slog.Logger, svc domain.TaskService) *TaskController {
	return &TaskController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateTaskRequest is the request body for POST /api/events/{eventID}/tasks.
type CreateTaskRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	AssigneeID  string  `json:"assignee_id"`
	DueDate     *string `json:"due_date"`
}

// Validate implements helpers.Validator.
func (req *CreateTaskRequest) Validate() []string {
	var errs []string
	if req.Name == "" {
		errs = append(errs, "name is required")
	}
	if req.AssigneeID != "" && !uuidRegex.MatchString(req.AssigneeID) {
		errs = append(errs, "assignee_id must be a UUID")
	}
	if req.DueDate != nil {
		if _, err := time.Parse(time.RFC3339, *req.DueDate); err != nil {
			errs = append(errs, "due_date must be RFC 3339")
		}
	}
	return errs
}

// CreateTask godoc
// @Summary Create a task for an event
// @Tags tasks
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param body body controllers.CreateTaskRequest true "Task fields"
// @Success 201 {object} helpers.APIResponse "data is a one-element task list"
// @Failure 400 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "event or assignee not found"
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events/{eventID}/tasks [post]
func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req CreateTaskRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	task := &domain.Task{
		Name:        req.Name,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		AssigneeID:  req.AssigneeID,
	}
	if req.DueDate != nil {
		due, _ := time.Parse(time.RFC3339, *req.DueDate)
		task.DueDate = &due
	}
	created, err := c.Service.CreateTask(r.Context(), eventID, task)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, []*domain.Task{created})
}

// ListTasks godoc
// @Summary List an event's tasks
// @Tags tasks
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is a task list"
// @Failure 404 {object} helpers.APIResponse "event not found"
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events/{eventID}/tasks [get]
func (c *TaskController) ListTasks(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	tasks, err := c.Service.ListTasksByEvent(r.Context(), eventID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tasks)
}

// GetTask godoc
// @Summary Get a task by ID
// @Tags tasks
// @Produce json
// @Param taskID path string true "Task ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is a one-element task list"
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/tasks/{taskID} [get]
func (c *TaskController) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(w, r, "taskID")
	if !ok {
		return
	}
	task, err := c.Service.GetTask(r.Context(), taskID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, []*domain.Task{task})
}

// UpdateTaskRequest is the request body for PATCH /api/tasks/{taskID}.
type UpdateTaskRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	AssigneeID  *string `json:"assignee_id"`
	DueDate     *string `json:"due_date"`
}

// Validate implements helpers.Validator.
func (req *UpdateTaskRequest) Validate() []string {
	var errs []string
	if req.AssigneeID != nil && *req.AssigneeID != "" && !uuidRegex.MatchString(*req.AssigneeID) {
		errs = append(errs, "assignee_id must be a UUID")
	}
	if req.DueDate != nil {
		if _, err := time.Parse(time.RFC3339, *req.DueDate); err != nil {
			errs = append(errs, "due_date must be RFC 3339")
		}
	}
	return errs
}

// UpdateTask godoc
// @Summary Partially update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param taskID path string true "Task ID (UUID)"
// @Param body body controllers.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data is a one-element task list"
// @Failure 400 {object} helpers.APIResponse "invalid status"
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/tasks/{taskID} [patch]
func (c *TaskController) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(w, r, "taskID")
	if !ok {
		return
	}
	var req UpdateTaskRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	upd := domain.TaskUpdate{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		AssigneeID:  req.AssigneeID,
	}
	if req.DueDate != nil {
		due, _ := time.Parse(time.RFC3339, *req.DueDate)
		upd.DueDate = &due
	}
	task, err := c.Service.UpdateTask(r.Context(), taskID, upd)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, []*domain.Task{task})
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param taskID path string true "Task ID (UUID)"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/tasks/{taskID} [delete]
func (c *TaskController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(w, r, "taskID")
	if !ok {
		return
	}
	if err := c.Service.DeleteTask(r.Context(), taskID); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, "Task successfully deleted")
}
