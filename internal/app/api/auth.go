package api

import (
	"context"
	"net/http"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
	"github.com/FACorreiaa/go-stallui/internal/pkg/apiclient"
)

func (a *API) Login(ctx context.Context, form models.LoginForm) (*models.LoginResult, error) {
	if err := a.check(form); err != nil {
		return nil, err
	}
	var out models.LoginResult
	err := a.client.Do(ctx, apiclient.Request{Method: http.MethodPost, Path: "/auth/login", Body: form}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) Register(ctx context.Context, form models.RegisterForm) error {
	if err := a.check(form); err != nil {
		return err
	}
	return a.post(ctx, "/auth/register", form)
}

func (a *API) Logout(ctx context.Context) error {
	return a.post(ctx, "/auth/logout", nil)
}

func (a *API) GetUserInfo(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := a.get(ctx, "/auth/info", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) UpdatePassword(ctx context.Context, form models.PasswordForm) error {
	if err := a.check(form); err != nil {
		return err
	}
	return a.put(ctx, "/auth/password", nil, form)
}
