package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/goaltracker/internal/client/client"
	"github.com/dmitrijs2005/goaltracker/internal/client/models"
	"github.com/dmitrijs2005/goaltracker/internal/logging"
)

const (
	MsgLoginFailed        = "Login failed"
	MsgRegistrationFailed = "Registration failed"
	MsgNotAuthenticated   = "Not authenticated"
	MsgUserLoadFailed     = "Failed to load user"
	MsgLogoutFailed       = "Failed to clear session"
)

// AuthService owns the session token lifecycle: it stores the token issued
// by login/registration and deletes it on logout.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) models.Result[models.AuthPayload]
	Register(ctx context.Context, reg models.Registration) models.Result[models.AuthPayload]
	Logout(ctx context.Context) models.Result[struct{}]
	// IsLoggedIn reports whether a token is stored. It never touches the network.
	IsLoggedIn(ctx context.Context) bool
	// CurrentUser asks the server who the token belongs to. Without a token
	// it fails immediately with MsgNotAuthenticated.
	CurrentUser(ctx context.Context) models.Result[models.User]
	// Token returns the stored token, empty when anonymous.
	Token(ctx context.Context) string
}

type authService struct {
	api    Requester
	tokens client.TokenStore
	log    logging.Logger
}

func NewAuthService(api Requester, tokens client.TokenStore, log logging.Logger) AuthService {
	return &authService{api: api, tokens: tokens, log: log.With("component", "auth_service")}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) models.Result[models.AuthPayload] {
	return a.authenticate(ctx, "/auth/login", creds, MsgLoginFailed)
}

func (a *authService) Register(ctx context.Context, reg models.Registration) models.Result[models.AuthPayload] {
	return a.authenticate(ctx, "/auth/register", reg, MsgRegistrationFailed)
}

func (a *authService) authenticate(ctx context.Context, path string, body any, fallback string) models.Result[models.AuthPayload] {
	res := call[models.AuthPayload](ctx, a.api, http.MethodPost, path, body, fallback)
	if !res.Success {
		return res
	}
	if res.Data.Token == "" {
		if text := (client.ErrorBody{Error: res.Data.Error, Message: res.Data.Message}).Text(); text != "" {
			return models.Fail[models.AuthPayload](text)
		}
		return models.Fail[models.AuthPayload](fallback)
	}
	if err := a.tokens.SetToken(ctx, res.Data.Token); err != nil {
		a.log.Error(ctx, "failed to store session token", "error", err)
		return models.Fail[models.AuthPayload](fallback)
	}
	return res
}

func (a *authService) Logout(ctx context.Context) models.Result[struct{}] {
	if err := a.tokens.ClearToken(ctx); err != nil {
		a.log.Error(ctx, "failed to clear session token", "error", err)
		return models.Fail[struct{}](MsgLogoutFailed)
	}
	return models.OK(struct{}{})
}

func (a *authService) IsLoggedIn(ctx context.Context) bool {
	return a.Token(ctx) != ""
}

func (a *authService) Token(ctx context.Context) string {
	token, err := a.tokens.Token(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to read session token", "error", err)
		return ""
	}
	return token
}

func (a *authService) CurrentUser(ctx context.Context) models.Result[models.User] {
	if !a.IsLoggedIn(ctx) {
		return models.Fail[models.User](MsgNotAuthenticated)
	}

	res := call[models.MePayload](ctx, a.api, http.MethodGet, "/auth/me", nil, MsgUserLoadFailed)
	if !res.Success {
		return models.Fail[models.User](res.Error)
	}
	if res.Data.User == nil {
		return models.Fail[models.User](MsgUserLoadFailed)
	}
	return models.OK(*res.Data.User)
}
