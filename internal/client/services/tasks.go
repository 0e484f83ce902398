package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/goaltracker/internal/client/models"
)

const (
	MsgTasksLoadFailed  = "Failed to fetch tasks"
	MsgTaskLoadFailed   = "Failed to fetch task"
	MsgTaskCreateFailed = "Failed to create task"
	MsgTaskUpdateFailed = "Failed to update task"
	MsgTaskDeleteFailed = "Failed to delete task"
	MsgTaskToggleFailed = "Failed to update task status"
)

type TaskService interface {
	ListByGoal(ctx context.Context, goalID string) models.Result[[]models.Task]
	Get(ctx context.Context, id string) models.Result[*models.Task]
	Create(ctx context.Context, goalID string, in models.TaskInput) models.Result[*models.Task]
	Update(ctx context.Context, id string, in models.TaskInput) models.Result[*models.Task]
	ToggleComplete(ctx context.Context, id string) models.Result[*models.Task]
	Delete(ctx context.Context, id string) models.Result[struct{}]
}

type taskService struct {
	api Requester
}

func NewTaskService(api Requester) TaskService {
	return &taskService{api: api}
}

func (s *taskService) ListByGoal(ctx context.Context, goalID string) models.Result[[]models.Task] {
	return callList[models.Task](ctx, s.api, http.MethodGet, "/goals/"+seg(goalID)+"/tasks", MsgTasksLoadFailed)
}

func (s *taskService) Get(ctx context.Context, id string) models.Result[*models.Task] {
	return call[*models.Task](ctx, s.api, http.MethodGet, "/tasks/"+seg(id), nil, MsgTaskLoadFailed)
}

func (s *taskService) Create(ctx context.Context, goalID string, in models.TaskInput) models.Result[*models.Task] {
	return call[*models.Task](ctx, s.api, http.MethodPost, "/goals/"+seg(goalID)+"/tasks", in, MsgTaskCreateFailed)
}

func (s *taskService) Update(ctx context.Context, id string, in models.TaskInput) models.Result[*models.Task] {
	return call[*models.Task](ctx, s.api, http.MethodPut, "/tasks/"+seg(id), in, MsgTaskUpdateFailed)
}

func (s *taskService) ToggleComplete(ctx context.Context, id string) models.Result[*models.Task] {
	return call[*models.Task](ctx, s.api, http.MethodPatch, "/tasks/"+seg(id)+"/toggle", nil, MsgTaskToggleFailed)
}

func (s *taskService) Delete(ctx context.Context, id string) models.Result[struct{}] {
	return callNoContent(ctx, s.api, http.MethodDelete, "/tasks/"+seg(id), nil, MsgTaskDeleteFailed)
}
