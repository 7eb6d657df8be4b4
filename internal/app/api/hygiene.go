package api

import (
	"context"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
)

func (a *API) GetHygieneList(ctx context.Context, q models.HygieneQuery) (*models.PageResult[models.Hygiene], error) {
	var out models.PageResult[models.Hygiene]
	if err := a.get(ctx, "/hygiene/list", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) GetHygieneByID(ctx context.Context, id int64) (*models.Hygiene, error) {
	var out models.Hygiene
	if err := a.get(ctx, path("/hygiene/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) CreateHygiene(ctx context.Context, form models.HygieneForm) error {
	if err := a.check(form); err != nil {
		return err
	}
	return a.post(ctx, "/hygiene/admin", form)
}

func (a *API) UpdateHygiene(ctx context.Context, id int64, form models.HygieneForm) error {
	return a.put(ctx, path("/hygiene/admin/%d", id), nil, form)
}

func (a *API) UpdateRectificationStatus(ctx context.Context, id int64, status int) error {
	return a.put(ctx, path("/hygiene/admin/%d/rectification", id), map[string]any{"status": status}, nil)
}

func (a *API) DeleteHygiene(ctx context.Context, id int64) error {
	return a.delete(ctx, path("/hygiene/admin/%d", id))
}
