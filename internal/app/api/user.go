package api

import (
	"context"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
)

func (a *API) GetProfile(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := a.get(ctx, "/user/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) UpdateProfile(ctx context.Context, form models.ProfileForm) error {
	return a.put(ctx, "/user/profile", nil, form)
}

func (a *API) GetUserList(ctx context.Context, q models.UserQuery) (*models.PageResult[models.User], error) {
	var out models.PageResult[models.User]
	if err := a.get(ctx, "/user/admin/list", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var out models.User
	if err := a.get(ctx, path("/user/admin/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) UpdateUser(ctx context.Context, id int64, form models.ProfileForm) error {
	return a.put(ctx, path("/user/admin/%d", id), nil, form)
}

func (a *API) UpdateUserStatus(ctx context.Context, id int64, status int) error {
	return a.put(ctx, path("/user/admin/%d/status", id), map[string]any{"status": status}, nil)
}

func (a *API) ResetPassword(ctx context.Context, id int64) error {
	return a.put(ctx, path("/user/admin/%d/reset-password", id), nil, nil)
}

func (a *API) DeleteUser(ctx context.Context, id int64) error {
	return a.delete(ctx, path("/user/admin/%d", id))
}
