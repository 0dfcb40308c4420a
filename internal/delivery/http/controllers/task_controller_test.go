package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventease/internal/delivery/http/helpers"
	"eventease/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTaskService implements domain.TaskService for handler tests.
type fakeTaskService struct {
	task  *domain.Task
	tasks []*domain.Task
	err   error
}

func (f *fakeTaskService) CreateTask(ctx context.Context, eventID string, task *domain.Task) (*domain.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	task.ID = testTaskID
	task.EventID = eventID
	return task, nil
}

func (f *fakeTaskService) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.task, nil
}

func (f *fakeTaskService) ListTasksByEvent(ctx context.Context, eventID string) ([]*domain.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tasks, nil
}

func (f *fakeTaskService) UpdateTask(ctx context.Context, taskID string, upd domain.TaskUpdate) (*domain.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.task, nil
}

func (f *fakeTaskService) DeleteTask(ctx context.Context, taskID string) error {
	return f.err
}

func TestTaskController_CreateTask(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fake       *fakeTaskService
		wantStatus int
	}{
		{
			name:       "created",
			body:       `{"name":"Book caterer","due_date":"2026-03-25T17:00:00Z"}`,
			fake:       &fakeTaskService{},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing name",
			body:       `{"description":"no name"}`,
			fake:       &fakeTaskService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad due date",
			body:       `{"name":"Book caterer","due_date":"tomorrow"}`,
			fake:       &fakeTaskService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "assignee not a uuid",
			body:       `{"name":"Book caterer","assignee_id":"bob"}`,
			fake:       &fakeTaskService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "event not found",
			body:       `{"name":"Book caterer"}`,
			fake:       &fakeTaskService{err: domain.ErrEventNotFound},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid status",
			body:       `{"name":"Book caterer","status":"SOMEDAY"}`,
			fake:       &fakeTaskService{err: domain.ErrInvalidStatus},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewTaskController(testLogger(), tt.fake)
			req := httptest.NewRequest(http.MethodPost, "http://test/api/events/x/tasks", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("eventID", testEventID)
			rr := httptest.NewRecorder()

			ctrl.CreateTask(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestTaskController_ListTasks(t *testing.T) {
	fake := &fakeTaskService{tasks: []*domain.Task{
		{ID: testTaskID, EventID: testEventID, Name: "Book caterer"},
	}}
	ctrl := NewTaskController(testLogger(), fake)
	req := httptest.NewRequest(http.MethodGet, "http://test/api/events/x/tasks", nil)
	req.SetPathValue("eventID", testEventID)
	rr := httptest.NewRecorder()

	ctrl.ListTasks(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	data, ok := envelope.Data.([]any)
	require.True(t, ok)
	assert.Len(t, data, 1)
}

func TestTaskController_GetTask(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fake := &fakeTaskService{task: &domain.Task{ID: testTaskID, EventID: testEventID, Name: "Book caterer"}}
		ctrl := NewTaskController(testLogger(), fake)
		req := httptest.NewRequest(http.MethodGet, "http://test/api/tasks/x", nil)
		req.SetPathValue("taskID", testTaskID)
		rr := httptest.NewRecorder()

		ctrl.GetTask(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		data, ok := envelope.Data.([]any)
		require.True(t, ok)
		require.Len(t, data, 1)
		task, ok := data[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Book caterer", task["name"])
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := NewTaskController(testLogger(), &fakeTaskService{err: domain.ErrTaskNotFound})
		req := httptest.NewRequest(http.MethodGet, "http://test/api/tasks/x", nil)
		req.SetPathValue("taskID", testTaskID)
		rr := httptest.NewRecorder()

		ctrl.GetTask(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestTaskController_UpdateTask(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fake       *fakeTaskService
		wantStatus int
	}{
		{
			name:       "updates status",
			body:       `{"status":"COMPLETED"}`,
			fake:       &fakeTaskService{task: &domain.Task{ID: testTaskID, Status: domain.TaskStatusCompleted}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid status",
			body:       `{"status":"SOMEDAY"}`,
			fake:       &fakeTaskService{err: domain.ErrInvalidStatus},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found",
			body:       `{"status":"COMPLETED"}`,
			fake:       &fakeTaskService{err: domain.ErrTaskNotFound},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewTaskController(testLogger(), tt.fake)
			req := httptest.NewRequest(http.MethodPatch, "http://test/api/tasks/x", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("taskID", testTaskID)
			rr := httptest.NewRecorder()

			ctrl.UpdateTask(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestTaskController_DeleteTask(t *testing.T) {
	ctrl := NewTaskController(testLogger(), &fakeTaskService{})
	req := httptest.NewRequest(http.MethodDelete, "http://test/api/tasks/x", nil)
	req.SetPathValue("taskID", testTaskID)
	rr := httptest.NewRecorder()

	ctrl.DeleteTask(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	assert.Equal(t, "Task successfully deleted", envelope.Message)
}
