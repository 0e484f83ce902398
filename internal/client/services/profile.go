package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/goaltracker/internal/client/models"
)

const (
	MsgProfileLoadFailed   = "Failed to fetch profile"
	MsgProfileUpdateFailed = "Failed to update profile"
	MsgPasswordFailed      = "Failed to change password"
	MsgDashboardFailed     = "Failed to load dashboard"
)

type ProfileService interface {
	Get(ctx context.Context) models.Result[*models.Profile]
	Update(ctx context.Context, in models.ProfileInput) models.Result[*models.Profile]
	ChangePassword(ctx context.Context, in models.PasswordChange) models.Result[struct{}]
	Dashboard(ctx context.Context) models.Result[*models.Dashboard]
}

type profileService struct {
	api Requester
}

func NewProfileService(api Requester) ProfileService {
	return &profileService{api: api}
}

func (s *profileService) Get(ctx context.Context) models.Result[*models.Profile] {
	return call[*models.Profile](ctx, s.api, http.MethodGet, "/user/profile", nil, MsgProfileLoadFailed)
}

func (s *profileService) Update(ctx context.Context, in models.ProfileInput) models.Result[*models.Profile] {
	return call[*models.Profile](ctx, s.api, http.MethodPut, "/user/profile", in, MsgProfileUpdateFailed)
}

func (s *profileService) ChangePassword(ctx context.Context, in models.PasswordChange) models.Result[struct{}] {
	return callNoContent(ctx, s.api, http.MethodPut, "/user/password", in, MsgPasswordFailed)
}

func (s *profileService) Dashboard(ctx context.Context) models.Result[*models.Dashboard] {
	return call[*models.Dashboard](ctx, s.api, http.MethodGet, "/user/dashboard", nil, MsgDashboardFailed)
}
