package home

import (
	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-stallui/internal/app/handlers"
	"github.com/FACorreiaa/go-stallui/internal/app/models"
	"github.com/FACorreiaa/go-stallui/internal/app/pages"
	"github.com/FACorreiaa/go-stallui/internal/pkg/format"
)

const latestAnnouncements = 5

type HomeHandlers struct {
	*handlers.BaseHandler
}

func NewHomeHandlers(base *handlers.BaseHandler) *HomeHandlers {
	return &HomeHandlers{BaseHandler: base}
}

// ShowHomePage lists the latest announcements and the stalls open for
// application.
func (h *HomeHandlers) ShowHomePage(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}

	var (
		announcements []models.Announcement
		stalls        []models.Stall
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		announcements, err = sc.API.GetPublishedAnnouncements(ctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		stalls, err = sc.API.GetAvailableStalls(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.Fail(c, "Home", err)
		return
	}

	if len(announcements) > latestAnnouncements {
		announcements = announcements[:latestAnnouncements]
	}
	news := make([]pages.Row, 0, len(announcements))
	for _, a := range announcements {
		news = append(news, pages.Row{
			{Text: a.Title, Href: "/announcement/" + handlers.ID(a.ID)},
			{Text: format.DateTime(a.PublishTime)},
		})
	}
	open := make([]pages.Row, 0, len(stalls))
	for _, s := range stalls {
		open = append(open, pages.Row{
			{Text: s.StallNo + " " + s.Name, Href: "/stall/" + handlers.ID(s.ID)},
			{Text: format.Text(s.Location)},
			{Text: format.Money(s.RentPrice)},
		})
	}

	var welcome templ.Component = pages.Paragraph("Browse the market's stalls and apply for one online.")
	if u := sc.Session.User(); u != nil {
		welcome = pages.Paragraph("Welcome, " + u.DisplayName() + ".")
	}

	h.RenderPage(c, "Home", "Home", pages.Group(
		pages.Section("Stall Market", welcome),
		pages.Section("Latest announcements",
			pages.Table{Columns: []string{"Title", "Published"}, Rows: news, Empty: "No announcements yet."}.Component(),
			pages.Actions(pages.Action{Label: "All announcements", Href: "/announcement"}),
		),
		pages.Section("Available stalls",
			pages.Table{Columns: []string{"Stall", "Location", "Monthly rent"}, Rows: open, Empty: "All stalls are taken."}.Component(),
			pages.Actions(pages.Action{Label: "All stalls", Href: "/stall"}),
		),
	))
}
