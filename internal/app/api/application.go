package api

import (
	"context"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
)

func (a *API) GetApplicationList(ctx context.Context, q models.ApplicationQuery) (*models.PageResult[models.Application], error) {
	var out models.PageResult[models.Application]
	if err := a.get(ctx, "/application/admin/list", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) GetMyApplications(ctx context.Context, q models.ApplicationQuery) (*models.PageResult[models.Application], error) {
	var out models.PageResult[models.Application]
	if err := a.get(ctx, "/application/my", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) GetApplicationByID(ctx context.Context, id int64) (*models.Application, error) {
	var out models.Application
	if err := a.get(ctx, path("/application/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) CreateApplication(ctx context.Context, form models.ApplicationForm) error {
	if err := a.check(form); err != nil {
		return err
	}
	return a.post(ctx, "/application/submit", form)
}

func (a *API) CancelApplication(ctx context.Context, id int64) error {
	return a.delete(ctx, path("/application/%d", id))
}

func (a *API) ReviewApplication(ctx context.Context, id int64, form models.ReviewForm) error {
	if err := a.check(form); err != nil {
		return err
	}
	return a.put(ctx, path("/application/admin/%d/review", id), nil, form)
}

func (a *API) ApproveApplication(ctx context.Context, id int64) error {
	return a.ReviewApplication(ctx, id, models.ReviewForm{Status: models.ApplicationApproved})
}

func (a *API) RejectApplication(ctx context.Context, id int64, reason string) error {
	return a.ReviewApplication(ctx, id, models.ReviewForm{Status: models.ApplicationRejected, ReviewOpinion: reason})
}
