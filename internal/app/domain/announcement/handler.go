package announcement

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/FACorreiaa/go-stallui/internal/app/api"
	"github.com/FACorreiaa/go-stallui/internal/app/handlers"
	"github.com/FACorreiaa/go-stallui/internal/app/models"
	"github.com/FACorreiaa/go-stallui/internal/app/pages"
	"github.com/FACorreiaa/go-stallui/internal/pkg/format"
)

const adminPath = "/admin/announcement"

var typeLabels = map[int]string{
	1: "Notice",
	2: "Policy",
	3: "Event",
}

func typeLabel(t int) string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return "General"
}

func typeOptions(withAll bool) []pages.Option {
	var opts []pages.Option
	if withAll {
		opts = append(opts, pages.Option{Value: "", Label: "All types"})
	}
	for _, t := range []int{1, 2, 3} {
		opts = append(opts, pages.Option{Value: strconv.Itoa(t), Label: typeLabels[t]})
	}
	return opts
}

type AnnouncementHandlers struct {
	*handlers.BaseHandler
}

func NewAnnouncementHandlers(base *handlers.BaseHandler) *AnnouncementHandlers {
	return &AnnouncementHandlers{BaseHandler: base}
}

// List shows published announcements, optionally of one type.
func (h *AnnouncementHandlers) List(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	var typ *int
	if v, err := strconv.Atoi(c.Query("type")); err == nil {
		typ = models.Int(v)
	}
	items, err := sc.API.GetPublishedAnnouncements(c.Request.Context(), typ)
	if err != nil {
		h.Fail(c, "Announcements", err)
		return
	}

	rows := make([]pages.Row, 0, len(items))
	for _, a := range items {
		rows = append(rows, pages.Row{
			{Text: a.Title, Href: "/announcement/" + handlers.ID(a.ID)},
			{Text: typeLabel(a.Type)},
			{Text: format.DateTime(a.PublishTime)},
		})
	}
	h.RenderPage(c, "Announcements", "Announcements", pages.Section("Announcements",
		pages.Form{
			Action: "/announcement",
			Submit: "Filter",
			Fields: []pages.Field{{Name: "type", Label: "Type", Type: "select", Value: c.Query("type"), Options: typeOptions(true)}},
		}.Component(),
		pages.Table{Columns: []string{"Title", "Type", "Published"}, Rows: rows, Empty: "No announcements yet."}.Component(),
	))
}

func (h *AnnouncementHandlers) Detail(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	id, ok := handlers.PathID(c, "id")
	if !ok {
		h.NotFound(c)
		return
	}
	a, err := sc.API.GetAnnouncementByID(c.Request.Context(), id)
	if err != nil {
		h.Fail(c, "Announcement", err)
		return
	}
	h.RenderPage(c, a.Title, "Announcements", pages.Section(a.Title,
		pages.Detail(
			pages.Item{Label: "Type", Value: typeLabel(a.Type)},
			pages.Item{Label: "Published", Value: format.DateTime(a.PublishTime)},
			pages.Item{Label: "Publisher", Value: format.Text(a.PublisherName)},
		),
		pages.Paragraph(a.Content),
		pages.Actions(pages.Action{Label: "All announcements", Href: "/announcement"}),
	))
}

func (h *AnnouncementHandlers) AdminList(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	var q models.AnnouncementQuery
	if err := handlers.BindQuery(c, &q); err != nil {
		h.Fail(c, "Announcement management", err)
		return
	}
	handlers.BindPage(&q.PageQuery)
	result, err := sc.API.GetAnnouncementList(c.Request.Context(), q)
	if err != nil {
		h.Fail(c, "Announcement management", err)
		return
	}

	rows := make([]pages.Row, 0, len(result.Records))
	for _, a := range result.Records {
		base := adminPath + "/" + handlers.ID(a.ID)
		actions := []pages.Action{{Label: "Edit", Href: base + "/edit"}}
		if a.Status == models.AnnouncementPublished {
			actions = append(actions, pages.Action{Label: "Unpublish", Href: base + "/unpublish", Method: "post"})
		} else {
			actions = append(actions, pages.Action{Label: "Publish", Href: base + "/publish", Method: "post", Variant: "primary"})
		}
		actions = append(actions, pages.Action{Label: "Delete", Href: base + "/delete", Method: "post", Confirm: "Delete this announcement?", Variant: "danger"})
		rows = append(rows, pages.Row{
			{Text: a.Title},
			{Text: typeLabel(a.Type)},
			{Text: strconv.Itoa(a.Priority)},
			{Text: format.AnnouncementStatus(a.Status)},
			{Text: format.DateTime(a.PublishTime)},
			{Actions: actions},
		})
	}
	h.RenderAdminPage(c, "Announcement management", "Announcements", pages.Section("Announcements",
		pages.Actions(pages.Action{Label: "New announcement", Href: adminPath + "/new", Variant: "primary"}),
		pages.Table{Columns: []string{"Title", "Type", "Priority", "Status", "Published", ""}, Rows: rows}.Component(),
		handlers.Pager(c, result),
	))
}

func (h *AnnouncementHandlers) form(c *gin.Context, title, action string, a *models.Announcement) {
	h.RenderAdminPage(c, title, "Announcements", pages.Section(title, pages.Form{
		Action: action,
		Fields: []pages.Field{
			{Name: "title", Label: "Title", Value: a.Title, Required: true},
			{Name: "type", Label: "Type", Type: "select", Value: strconv.Itoa(a.Type), Options: typeOptions(false)},
			{Name: "priority", Label: "Priority", Type: "number", Value: strconv.Itoa(a.Priority)},
			{Name: "content", Label: "Content", Type: "textarea", Value: a.Content, Required: true},
		},
		Cancel: adminPath,
	}.Component()))
}

func (h *AnnouncementHandlers) AdminNew(c *gin.Context) {
	h.form(c, "New announcement", adminPath, &models.Announcement{Type: 1})
}

func (h *AnnouncementHandlers) AdminEdit(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	id, ok := handlers.PathID(c, "id")
	if !ok {
		h.NotFound(c)
		return
	}
	a, err := sc.API.GetAnnouncementByID(c.Request.Context(), id)
	if err != nil {
		h.Fail(c, "Edit announcement", err)
		return
	}
	h.form(c, "Edit announcement", adminPath+"/"+handlers.ID(id), a)
}

func (h *AnnouncementHandlers) AdminCreate(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	var form models.AnnouncementForm
	if err := c.ShouldBind(&form); err != nil {
		h.Complete(c, errors.Wrap(models.ErrValidation, err.Error()), "", "", adminPath+"/new")
		return
	}
	err := sc.API.CreateAnnouncement(c.Request.Context(), form)
	h.Complete(c, err, "Announcement saved as draft", adminPath, adminPath+"/new")
}

func (h *AnnouncementHandlers) AdminUpdate(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	id, ok := handlers.PathID(c, "id")
	if !ok {
		h.NotFound(c)
		return
	}
	back := adminPath + "/" + handlers.ID(id) + "/edit"
	var form models.AnnouncementForm
	if err := c.ShouldBind(&form); err != nil {
		h.Complete(c, errors.Wrap(models.ErrValidation, err.Error()), "", "", back)
		return
	}
	err := sc.API.UpdateAnnouncement(c.Request.Context(), id, form)
	h.Complete(c, err, "Announcement updated", adminPath, back)
}

func (h *AnnouncementHandlers) AdminPublish(c *gin.Context) {
	h.Mutate(c, "Announcement published", adminPath, func(ctx context.Context, a *api.API, id int64) error {
		return a.PublishAnnouncement(ctx, id)
	})
}

func (h *AnnouncementHandlers) AdminUnpublish(c *gin.Context) {
	h.Mutate(c, "Announcement withdrawn", adminPath, func(ctx context.Context, a *api.API, id int64) error {
		return a.UnpublishAnnouncement(ctx, id)
	})
}

func (h *AnnouncementHandlers) AdminDelete(c *gin.Context) {
	h.Mutate(c, "Announcement deleted", adminPath, func(ctx context.Context, a *api.API, id int64) error {
		return a.DeleteAnnouncement(ctx, id)
	})
}
