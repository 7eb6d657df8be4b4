package api

import (
	"context"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
)

func (a *API) GetRentalList(ctx context.Context, q models.RentalQuery) (*models.PageResult[models.Rental], error) {
	var out models.PageResult[models.Rental]
	if err := a.get(ctx, "/rental/admin/list", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) GetMyRentals(ctx context.Context, q models.PageQuery) (*models.PageResult[models.Rental], error) {
	var out models.PageResult[models.Rental]
	if err := a.get(ctx, "/rental/my", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) GetRentalByID(ctx context.Context, id int64) (*models.Rental, error) {
	var out models.Rental
	if err := a.get(ctx, path("/rental/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) UpdatePaymentStatus(ctx context.Context, id int64, paymentStatus int) error {
	return a.put(ctx, path("/rental/admin/%d/payment", id), map[string]any{"paymentStatus": paymentStatus}, nil)
}

func (a *API) TerminateRental(ctx context.Context, id int64) error {
	return a.put(ctx, path("/rental/admin/%d/terminate", id), nil, nil)
}
