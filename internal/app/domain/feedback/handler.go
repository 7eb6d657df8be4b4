package feedback

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

const (
	userPath  = "/feedback"
	adminPath = "/admin/feedback"
)

var typeLabels = map[int]string{
	1: "Suggestion",
	2: "Complaint",
	3: "Repair request",
	4: "Other",
}

func typeLabel(t int) string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return format.Empty
}

type FeedbackHandlers struct {
	*handlers.BaseHandler
}

func NewFeedbackHandlers(base *handlers.BaseHandler) *FeedbackHandlers {
	return &FeedbackHandlers{BaseHandler: base}
}

func (h *FeedbackHandlers) My(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	var q models.FeedbackQuery
	if err := handlers.BindQuery(c, &q); err != nil {
		h.Fail(c, "My feedback", err)
		return
	}
	handlers.BindPage(&q.PageQuery)
	result, err := sc.API.GetMyFeedbacks(c.Request.Context(), q)
	if err != nil {
		h.Fail(c, "My feedback", err)
		return
	}

	rows := make([]pages.Row, 0, len(result.Records))
	for _, f := range result.Records {
		rows = append(rows, pages.Row{
			{Text: f.Title},
			{Text: typeLabel(f.Type)},
			{Text: format.FeedbackStatus(f.Status)},
			{Text: format.Text(f.Reply)},
			{Text: format.DateTime(f.CreateTime)},
		})
	}
	h.RenderPage(c, "My feedback", "Feedback", pages.Section("My feedback",
		pages.Actions(pages.Action{Label: "New feedback", Href: userPath + "/submit", Variant: "primary"}),
		pages.Table{
			Columns: []string{"Title", "Type", "Status", "Reply", "Submitted"},
			Rows:    rows,
			Empty:   "You have not sent any feedback.",
		}.Component(),
		handlers.Pager(c, result),
	))
}

func (h *FeedbackHandlers) SubmitForm(c *gin.Context) {
	opts := make([]pages.Option, 0, len(typeLabels))
	for _, t := range []int{1, 2, 3, 4} {
		opts = append(opts, pages.Option{Value: strconv.Itoa(t), Label: typeLabels[t]})
	}
	h.RenderPage(c, "New feedback", "Feedback", pages.Section("New feedback", pages.Form{
		Action: userPath + "/submit",
		Submit: "Send",
		Fields: []pages.Field{
			{Name: "type", Label: "Type", Type: "select", Value: "1", Options: opts},
			{Name: "stallId", Label: "Stall id (optional)", Type: "number", Value: c.Query("stallId")},
			{Name: "title", Label: "Title", Required: true},
			{Name: "content", Label: "Details", Type: "textarea", Required: true},
		},
		Cancel: userPath,
	}.Component()))
}

func (h *FeedbackHandlers) Submit(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	back := userPath + "/submit"
	var form models.FeedbackForm
	if err := c.ShouldBind(&form); err != nil {
		h.Complete(c, errors.Wrap(models.ErrValidation, err.Error()), "", "", back)
		return
	}
	if form.StallID != nil && *form.StallID <= 0 {
		form.StallID = nil
	}
	err := sc.API.CreateFeedback(c.Request.Context(), form)
	h.Complete(c, err, "Thank you, your feedback was sent", userPath, back)
}

func (h *FeedbackHandlers) AdminList(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	var q models.FeedbackQuery
	if err := handlers.BindQuery(c, &q); err != nil {
		h.Fail(c, "Feedback", err)
		return
	}
	handlers.BindPage(&q.PageQuery)
	result, err := sc.API.GetFeedbackList(c.Request.Context(), q)
	if err != nil {
		h.Fail(c, "Feedback", err)
		return
	}

	rows := make([]pages.Row, 0, len(result.Records))
	for _, f := range result.Records {
		base := adminPath + "/" + handlers.ID(f.ID)
		actions := []pages.Action{{Label: "Reply", Href: base}}
		if f.Status == models.FeedbackPending {
			actions = append(actions, pages.Action{
				Label: "Start processing", Href: base + "/status", Method: "post",
				Fields: map[string]string{"status": strconv.Itoa(models.FeedbackProcessing)},
			})
		}
		if f.Status != models.FeedbackResolved {
			actions = append(actions, pages.Action{
				Label: "Resolve", Href: base + "/status", Method: "post", Variant: "primary",
				Fields: map[string]string{"status": strconv.Itoa(models.FeedbackResolved)},
			})
		}
		rows = append(rows, pages.Row{
			{Text: f.Title},
			{Text: typeLabel(f.Type)},
			{Text: format.Text(f.Username)},
			{Text: format.FeedbackStatus(f.Status)},
			{Text: format.DateTime(f.CreateTime)},
			{Actions: actions},
		})
	}
	h.RenderAdminPage(c, "Feedback", "Feedback", pages.Section("Feedback",
		pages.Table{Columns: []string{"Title", "Type", "From", "Status", "Submitted", ""}, Rows: rows}.Component(),
		handlers.Pager(c, result),
	))
}

func (h *FeedbackHandlers) AdminDetail(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	id, ok := handlers.PathID(c, "id")
	if !ok {
		h.NotFound(c)
		return
	}
	f, err := sc.API.GetFeedbackByID(c.Request.Context(), id)
	if err != nil {
		h.Fail(c, "Feedback", err)
		return
	}
	h.RenderAdminPage(c, "Feedback", "Feedback", pages.Group(
		pages.Section(f.Title,
			pages.Detail(
				pages.Item{Label: "Type", Value: typeLabel(f.Type)},
				pages.Item{Label: "From", Value: format.Text(f.Username)},
				pages.Item{Label: "Stall", Value: format.Text(f.StallName)},
				pages.Item{Label: "Status", Value: format.FeedbackStatus(f.Status)},
				pages.Item{Label: "Submitted", Value: format.DateTime(f.CreateTime)},
				pages.Item{Label: "Handled by", Value: format.Text(f.HandlerName)},
				pages.Item{Label: "Handled", Value: format.DateTime(f.HandleTime)},
			),
			pages.Paragraph(f.Content),
		),
		pages.Section("Reply", pages.Form{
			Action: adminPath + "/" + handlers.ID(id) + "/reply",
			Submit: "Send reply",
			Fields: []pages.Field{{Name: "reply", Label: "Reply", Type: "textarea", Value: f.Reply, Required: true}},
			Cancel: adminPath,
		}.Component()),
	))
}

func (h *FeedbackHandlers) AdminReply(c *gin.Context) {
	reply := c.PostForm("reply")
	if reply == "" {
		h.Complete(c, models.ErrValidation, "", "", adminPath+"/"+c.Param("id"))
		return
	}
	h.Mutate(c, "Reply sent", adminPath, func(ctx context.Context, a *api.API, id int64) error {
		return a.ReplyFeedback(ctx, id, reply)
	})
}

func (h *FeedbackHandlers) AdminStatus(c *gin.Context) {
	status, ok := handlers.FormInt(c, "status")
	if !ok {
		h.Complete(c, models.ErrValidation, "", "", adminPath)
		return
	}
	h.Mutate(c, "Feedback status updated", adminPath, func(ctx context.Context, a *api.API, id int64) error {
		return a.UpdateFeedbackStatus(ctx, id, status)
	})
}
