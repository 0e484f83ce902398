package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/goaltracker/internal/client/models"
)

const (
	MsgGoalsLoadFailed    = "Failed to fetch goals"
	MsgGoalLoadFailed     = "Failed to fetch goal"
	MsgGoalCreateFailed   = "Failed to create goal"
	MsgGoalUpdateFailed   = "Failed to update goal"
	MsgGoalDeleteFailed   = "Failed to delete goal"
	MsgGoalProgressFailed = "Failed to update goal progress"
)

type GoalService interface {
	List(ctx context.Context) models.Result[[]models.Goal]
	Get(ctx context.Context, id string) models.Result[*models.Goal]
	Create(ctx context.Context, in models.GoalInput) models.Result[*models.Goal]
	Update(ctx context.Context, id string, in models.GoalInput) models.Result[*models.Goal]
	// UpdateProgress sets the completion percentage (0..100) of a goal.
	UpdateProgress(ctx context.Context, id string, progress int) models.Result[*models.Goal]
	Delete(ctx context.Context, id string) models.Result[struct{}]
}

type goalService struct {
	api Requester
}

func NewGoalService(api Requester) GoalService {
	return &goalService{api: api}
}

func (s *goalService) List(ctx context.Context) models.Result[[]models.Goal] {
	return callList[models.Goal](ctx, s.api, http.MethodGet, "/goals", MsgGoalsLoadFailed)
}

func (s *goalService) Get(ctx context.Context, id string) models.Result[*models.Goal] {
	return call[*models.Goal](ctx, s.api, http.MethodGet, "/goals/"+seg(id), nil, MsgGoalLoadFailed)
}

func (s *goalService) Create(ctx context.Context, in models.GoalInput) models.Result[*models.Goal] {
	return call[*models.Goal](ctx, s.api, http.MethodPost, "/goals", in, MsgGoalCreateFailed)
}

func (s *goalService) Update(ctx context.Context, id string, in models.GoalInput) models.Result[*models.Goal] {
	return call[*models.Goal](ctx, s.api, http.MethodPut, "/goals/"+seg(id), in, MsgGoalUpdateFailed)
}

func (s *goalService) UpdateProgress(ctx context.Context, id string, progress int) models.Result[*models.Goal] {
	body := models.ProgressUpdate{Progress: progress}
	return call[*models.Goal](ctx, s.api, http.MethodPatch, "/goals/"+seg(id)+"/progress", body, MsgGoalProgressFailed)
}

func (s *goalService) Delete(ctx context.Context, id string) models.Result[struct{}] {
	return callNoContent(ctx, s.api, http.MethodDelete, "/goals/"+seg(id), nil, MsgGoalDeleteFailed)
}
