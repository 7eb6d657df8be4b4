// Package api exposes one typed method per backend operation. Every method
// is a thin call through the apiclient pipeline.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
	"github.com/FACorreiaa/go-stallui/internal/pkg/apiclient"
)

// Doer is the subset of the pipeline the API needs.
type Doer interface {
	Do(ctx context.Context, req apiclient.Request, out any) error
}

// validate is shared by every API value; it caches struct metadata and is
// safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

type API struct {
	client Doer
}

func New(client Doer) *API {
	return &API{client: client}
}

func (a *API) check(payload any) error {
	if err := validate.Struct(payload); err != nil {
		return errors.Wrap(models.ErrValidation, err.Error())
	}
	return nil
}

func (a *API) get(ctx context.Context, path string, query, out any) error {
	return a.client.Do(ctx, apiclient.Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

func (a *API) post(ctx context.Context, path string, body any) error {
	return a.client.Do(ctx, apiclient.Request{Method: http.MethodPost, Path: path, Body: body}, nil)
}

func (a *API) put(ctx context.Context, path string, query, body any) error {
	return a.client.Do(ctx, apiclient.Request{Method: http.MethodPut, Path: path, Query: query, Body: body}, nil)
}

func (a *API) delete(ctx context.Context, path string) error {
	return a.client.Do(ctx, apiclient.Request{Method: http.MethodDelete, Path: path}, nil)
}

func path(format string, id int64) string {
	return fmt.Sprintf(format, id)
}
