package api

import (
	"context"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
)

func (a *API) GetStallTypeList(ctx context.Context) ([]models.StallType, error) {
	var out []models.StallType
	if err := a.get(ctx, "/stall-type/list", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAllStallTypes is an alias of GetStallTypeList.
func (a *API) GetAllStallTypes(ctx context.Context) ([]models.StallType, error) {
	return a.GetStallTypeList(ctx)
}

func (a *API) GetStallTypeByID(ctx context.Context, id int64) (*models.StallType, error) {
	var out models.StallType
	if err := a.get(ctx, path("/stall-type/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) CreateStallType(ctx context.Context, form models.StallTypeForm) error {
	if err := a.check(form); err != nil {
		return err
	}
	return a.post(ctx, "/stall-type/admin", form)
}

func (a *API) UpdateStallType(ctx context.Context, id int64, form models.StallTypeForm) error {
	return a.put(ctx, path("/stall-type/admin/%d", id), nil, form)
}

func (a *API) DeleteStallType(ctx context.Context, id int64) error {
	return a.delete(ctx, path("/stall-type/admin/%d", id))
}
