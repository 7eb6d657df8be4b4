package application

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/go-stallui/internal/app/api"
	"github.com/FACorreiaa/go-stallui/internal/app/handlers"
	"github.com/FACorreiaa/go-stallui/internal/app/models"
	"github.com/FACorreiaa/go-stallui/internal/app/pages"
	"github.com/FACorreiaa/go-stallui/internal/pkg/format"
)

func (h *ApplicationHandlers) AdminList(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	var q models.ApplicationQuery
	if err := handlers.BindQuery(c, &q); err != nil {
		h.Fail(c, "Application review", err)
		return
	}
	handlers.BindPage(&q.PageQuery)
	result, err := sc.API.GetApplicationList(c.Request.Context(), q)
	if err != nil {
		h.Fail(c, "Application review", err)
		return
	}

	rows := make([]pages.Row, 0, len(result.Records))
	for _, a := range result.Records {
		base := adminPath + "/" + handlers.ID(a.ID)
		actions := []pages.Action{{Label: "Review", Href: base}}
		if a.Status == models.ApplicationPending {
			actions = append(actions, pages.Action{Label: "Approve", Href: base + "/approve", Method: "post", Variant: "primary"})
		}
		rows = append(rows, pages.Row{
			{Text: format.Text(a.ApplicationNo)},
			{Text: format.Text(a.Username)},
			{Text: a.StallNo + " " + a.StallName},
			{Text: format.Text(a.BusinessType)},
			{Text: format.ApplicationStatus(a.Status)},
			{Text: format.DateTime(a.CreateTime)},
			{Actions: actions},
		})
	}
	h.RenderAdminPage(c, "Application review", "Applications", pages.Section("Applications",
		statusFilter(c, adminPath),
		pages.Table{Columns: []string{"No.", "Applicant", "Stall", "Business", "Status", "Submitted", ""}, Rows: rows}.Component(),
		handlers.Pager(c, result),
	))
}

func (h *ApplicationHandlers) AdminDetail(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	id, ok := handlers.PathID(c, "id")
	if !ok {
		h.NotFound(c)
		return
	}
	a, err := sc.API.GetApplicationByID(c.Request.Context(), id)
	if err != nil {
		h.Fail(c, "Application review", err)
		return
	}

	section := pages.Section("Application "+a.ApplicationNo, pages.Detail(detailItems(a)...))
	if a.Status == models.ApplicationPending {
		section = pages.Group(section, pages.Section("Review", pages.Form{
			Action: adminPath + "/" + handlers.ID(id) + "/review",
			Submit: "Submit review",
			Fields: []pages.Field{
				{Name: "status", Label: "Decision", Type: "select", Value: strconv.Itoa(models.ApplicationApproved), Options: []pages.Option{
					{Value: strconv.Itoa(models.ApplicationApproved), Label: "Approve"},
					{Value: strconv.Itoa(models.ApplicationRejected), Label: "Reject"},
				}},
				{Name: "reviewOpinion", Label: "Opinion", Type: "textarea"},
			},
			Cancel: adminPath,
		}.Component()))
	}
	h.RenderAdminPage(c, "Application review", "Applications", section)
}

// AdminReview applies the decision posted from the review form.
func (h *ApplicationHandlers) AdminReview(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	id, ok := handlers.PathID(c, "id")
	if !ok {
		h.NotFound(c)
		return
	}
	back := adminPath + "/" + handlers.ID(id)
	status, _ := handlers.FormInt(c, "status")
	form := models.ReviewForm{Status: status, ReviewOpinion: c.PostForm("reviewOpinion")}

	var err error
	if form.Status == models.ApplicationRejected {
		err = sc.API.RejectApplication(c.Request.Context(), id, form.ReviewOpinion)
	} else {
		err = sc.API.ReviewApplication(c.Request.Context(), id, form)
	}
	h.Complete(c, err, "Review saved", adminPath, back)
}

func (h *ApplicationHandlers) AdminApprove(c *gin.Context) {
	h.Mutate(c, "Application approved", adminPath, func(ctx context.Context, a *api.API, id int64) error {
		return a.ApproveApplication(ctx, id)
	})
}
