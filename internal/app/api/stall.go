package api

import (
	"context"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
)

func (a *API) GetStallList(ctx context.Context, q models.StallQuery) (*models.PageResult[models.Stall], error) {
	var out models.PageResult[models.Stall]
	if err := a.get(ctx, "/stall/list", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) GetStallByID(ctx context.Context, id int64) (*models.Stall, error) {
	var out models.Stall
	if err := a.get(ctx, path("/stall/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) GetAvailableStalls(ctx context.Context) ([]models.Stall, error) {
	var out []models.Stall
	if err := a.get(ctx, "/stall/available", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) CreateStall(ctx context.Context, form models.StallForm) error {
	if err := a.check(form); err != nil {
		return err
	}
	return a.post(ctx, "/stall/admin", form)
}

func (a *API) UpdateStall(ctx context.Context, id int64, form models.StallForm) error {
	return a.put(ctx, path("/stall/admin/%d", id), nil, form)
}

func (a *API) UpdateStallStatus(ctx context.Context, id int64, status int) error {
	return a.put(ctx, path("/stall/admin/%d/status", id), map[string]any{"status": status}, nil)
}

func (a *API) DeleteStall(ctx context.Context, id int64) error {
	return a.delete(ctx, path("/stall/admin/%d", id))
}
