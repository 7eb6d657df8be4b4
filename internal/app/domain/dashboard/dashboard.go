package dashboard

import (
	"context"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-stallui/internal/app/api"
	"github.com/FACorreiaa/go-stallui/internal/app/handlers"
	"github.com/FACorreiaa/go-stallui/internal/app/models"
	"github.com/FACorreiaa/go-stallui/internal/app/pages"
	"github.com/FACorreiaa/go-stallui/internal/pkg/format"
)

// Counters are the totals shown on the admin dashboard.
type Counters struct {
	Users                  int64
	Stalls                 int64
	IdleStalls             int64
	PendingApplications    int64
	ActiveRentals          int64
	PendingFeedback        int64
	Inspections            int64
	PublishedAnnouncements int64
}

type DashboardHandlers struct {
	*handlers.BaseHandler
}

func NewDashboardHandlers(base *handlers.BaseHandler) *DashboardHandlers {
	return &DashboardHandlers{BaseHandler: base}
}

// one record per page is enough to read the total
func firstPage() models.PageQuery {
	return models.PageQuery{PageNum: models.Int(1), PageSize: models.Int(1)}
}

// LoadCounters queries every total concurrently. The first failure cancels
// the rest.
func LoadCounters(ctx context.Context, a *api.API) (*Counters, error) {
	var out Counters
	g, ctx := errgroup.WithContext(ctx)

	total := func(dst *int64, fetch func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fetch(ctx)
			*dst = n
			return err
		})
	}

	total(&out.Users, func(ctx context.Context) (int64, error) {
		r, err := a.GetUserList(ctx, models.UserQuery{PageQuery: firstPage()})
		return totalOf(r, err)
	})
	total(&out.Stalls, func(ctx context.Context) (int64, error) {
		r, err := a.GetStallList(ctx, models.StallQuery{PageQuery: firstPage()})
		return totalOf(r, err)
	})
	total(&out.IdleStalls, func(ctx context.Context) (int64, error) {
		r, err := a.GetStallList(ctx, models.StallQuery{PageQuery: firstPage(), Status: models.Int(models.StallIdle)})
		return totalOf(r, err)
	})
	total(&out.PendingApplications, func(ctx context.Context) (int64, error) {
		r, err := a.GetApplicationList(ctx, models.ApplicationQuery{PageQuery: firstPage(), Status: models.Int(models.ApplicationPending)})
		return totalOf(r, err)
	})
	total(&out.ActiveRentals, func(ctx context.Context) (int64, error) {
		r, err := a.GetRentalList(ctx, models.RentalQuery{PageQuery: firstPage(), Status: models.Int(models.RentalActive)})
		return totalOf(r, err)
	})
	total(&out.PendingFeedback, func(ctx context.Context) (int64, error) {
		r, err := a.GetFeedbackList(ctx, models.FeedbackQuery{PageQuery: firstPage(), Status: models.Int(models.FeedbackPending)})
		return totalOf(r, err)
	})
	total(&out.Inspections, func(ctx context.Context) (int64, error) {
		r, err := a.GetHygieneList(ctx, models.HygieneQuery{PageQuery: firstPage()})
		return totalOf(r, err)
	})
	total(&out.PublishedAnnouncements, func(ctx context.Context) (int64, error) {
		r, err := a.GetAnnouncementList(ctx, models.AnnouncementQuery{PageQuery: firstPage(), Status: models.Int(models.AnnouncementPublished)})
		return totalOf(r, err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

func totalOf[T any](r *models.PageResult[T], err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	return r.Total, nil
}

func (h *DashboardHandlers) Show(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	counters, err := LoadCounters(c.Request.Context(), sc.API)
	if err != nil {
		h.Fail(c, "Dashboard", err)
		return
	}
	h.RenderAdminPage(c, "Dashboard", "Dashboard", pages.Section("Dashboard", pages.Stats(
		pages.Stat{Label: "Users", Value: format.Number(counters.Users), Href: "/admin/user"},
		pages.Stat{Label: "Stalls", Value: format.Number(counters.Stalls), Href: "/admin/stall"},
		pages.Stat{Label: "Available stalls", Value: format.Number(counters.IdleStalls), Href: "/admin/stall?status=0"},
		pages.Stat{Label: "Pending applications", Value: format.Number(counters.PendingApplications), Href: "/admin/application?status=0"},
		pages.Stat{Label: "Active rentals", Value: format.Number(counters.ActiveRentals), Href: "/admin/rental?status=1"},
		pages.Stat{Label: "Open feedback", Value: format.Number(counters.PendingFeedback), Href: "/admin/feedback?status=0"},
		pages.Stat{Label: "Hygiene inspections", Value: format.Number(counters.Inspections), Href: "/admin/hygiene"},
		pages.Stat{Label: "Published announcements", Value: format.Number(counters.PublishedAnnouncements), Href: "/admin/announcement"},
	)))
}
