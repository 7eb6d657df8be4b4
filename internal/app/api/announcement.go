package api

import (
	"context"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
)

// GetPublishedAnnouncements lists published announcements, optionally
// filtered by type.
func (a *API) GetPublishedAnnouncements(ctx context.Context, announcementType *int) ([]models.Announcement, error) {
	var out []models.Announcement
	query := map[string]any{}
	if announcementType != nil {
		query["type"] = *announcementType
	}
	if err := a.get(ctx, "/announcement/list", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) GetAnnouncementByID(ctx context.Context, id int64) (*models.Announcement, error) {
	var out models.Announcement
	if err := a.get(ctx, path("/announcement/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) GetAnnouncementList(ctx context.Context, q models.AnnouncementQuery) (*models.PageResult[models.Announcement], error) {
	var out models.PageResult[models.Announcement]
	if err := a.get(ctx, "/announcement/admin/list", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) CreateAnnouncement(ctx context.Context, form models.AnnouncementForm) error {
	if err := a.check(form); err != nil {
		return err
	}
	return a.post(ctx, "/announcement/admin", form)
}

func (a *API) UpdateAnnouncement(ctx context.Context, id int64, form models.AnnouncementForm) error {
	return a.put(ctx, path("/announcement/admin/%d", id), nil, form)
}

func (a *API) PublishAnnouncement(ctx context.Context, id int64) error {
	return a.put(ctx, path("/announcement/admin/%d/status", id), map[string]any{"status": models.AnnouncementPublished}, nil)
}

func (a *API) UnpublishAnnouncement(ctx context.Context, id int64) error {
	return a.put(ctx, path("/announcement/admin/%d/status", id), map[string]any{"status": models.AnnouncementUnpublished}, nil)
}

func (a *API) DeleteAnnouncement(ctx context.Context, id int64) error {
	return a.delete(ctx, path("/announcement/admin/%d", id))
}
