package api

import (
	"context"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
)

func (a *API) GetFeedbackList(ctx context.Context, q models.FeedbackQuery) (*models.PageResult[models.Feedback], error) {
	var out models.PageResult[models.Feedback]
	if err := a.get(ctx, "/feedback/admin/list", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) GetMyFeedbacks(ctx context.Context, q models.FeedbackQuery) (*models.PageResult[models.Feedback], error) {
	var out models.PageResult[models.Feedback]
	if err := a.get(ctx, "/feedback/my", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) GetFeedbackByID(ctx context.Context, id int64) (*models.Feedback, error) {
	var out models.Feedback
	if err := a.get(ctx, path("/feedback/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) CreateFeedback(ctx context.Context, form models.FeedbackForm) error {
	if err := a.check(form); err != nil {
		return err
	}
	return a.post(ctx, "/feedback/submit", form)
}

func (a *API) ReplyFeedback(ctx context.Context, id int64, reply string) error {
	return a.put(ctx, path("/feedback/admin/%d/reply", id), nil, map[string]string{"reply": reply})
}

func (a *API) UpdateFeedbackStatus(ctx context.Context, id int64, status int) error {
	return a.put(ctx, path("/feedback/admin/%d/status", id), map[string]any{"status": status}, nil)
}
