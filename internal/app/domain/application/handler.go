package application

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/FACorreiaa/go-stallui/internal/app/api"
	"github.com/FACorreiaa/go-stallui/internal/app/handlers"
	"github.com/FACorreiaa/go-stallui/internal/app/models"
	"github.com/FACorreiaa/go-stallui/internal/app/pages"
	"github.com/FACorreiaa/go-stallui/internal/pkg/format"
)

const (
	userPath  = "/application"
	adminPath = "/admin/application"
)

type ApplicationHandlers struct {
	*handlers.BaseHandler
}

func NewApplicationHandlers(base *handlers.BaseHandler) *ApplicationHandlers {
	return &ApplicationHandlers{BaseHandler: base}
}

func statusFilter(c *gin.Context, action string) templ.Component {
	opts := []pages.Option{{Value: "", Label: "All statuses"}}
	for _, s := range []int{models.ApplicationPending, models.ApplicationApproved, models.ApplicationRejected, models.ApplicationCancelled} {
		opts = append(opts, pages.Option{Value: strconv.Itoa(s), Label: format.ApplicationStatus(s)})
	}
	return pages.Form{
		Action: action,
		Submit: "Filter",
		Fields: []pages.Field{{Name: "status", Label: "Status", Type: "select", Value: c.Query("status"), Options: opts}},
	}.Component()
}

func detailItems(a *models.Application) []pages.Item {
	return []pages.Item{
		{Label: "Application no.", Value: format.Text(a.ApplicationNo)},
		{Label: "Stall", Value: a.StallNo + " " + a.StallName},
		{Label: "Applicant", Value: format.Text(a.Username)},
		{Label: "Business", Value: format.Text(a.BusinessType)},
		{Label: "Period", Value: format.Date(a.StartDate) + " to " + format.Date(a.EndDate)},
		{Label: "Reason", Value: format.Text(a.Reason)},
		{Label: "Status", Value: format.ApplicationStatus(a.Status)},
		{Label: "Review opinion", Value: format.Text(a.ReviewOpinion)},
		{Label: "Reviewed", Value: format.DateTime(a.ReviewTime)},
		{Label: "Submitted", Value: format.DateTime(a.CreateTime)},
	}
}

// My lists the signed-in user's applications.
func (h *ApplicationHandlers) My(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	var q models.ApplicationQuery
	if err := handlers.BindQuery(c, &q); err != nil {
		h.Fail(c, "My applications", err)
		return
	}
	handlers.BindPage(&q.PageQuery)
	result, err := sc.API.GetMyApplications(c.Request.Context(), q)
	if err != nil {
		h.Fail(c, "My applications", err)
		return
	}

	rows := make([]pages.Row, 0, len(result.Records))
	for _, a := range result.Records {
		var actions []pages.Action
		if a.Status == models.ApplicationPending {
			actions = append(actions, pages.Action{
				Label: "Cancel", Href: userPath + "/" + handlers.ID(a.ID) + "/cancel", Method: "post",
				Confirm: "Cancel this application?", Variant: "danger",
			})
		}
		rows = append(rows, pages.Row{
			{Text: format.Text(a.ApplicationNo), Href: userPath + "/" + handlers.ID(a.ID)},
			{Text: a.StallNo + " " + a.StallName},
			{Text: format.Date(a.StartDate) + " to " + format.Date(a.EndDate)},
			{Text: format.ApplicationStatus(a.Status)},
			{Text: format.DateTime(a.CreateTime)},
			{Actions: actions},
		})
	}
	h.RenderPage(c, "My applications", "Applications", pages.Section("My applications",
		statusFilter(c, userPath),
		pages.Table{
			Columns: []string{"No.", "Stall", "Period", "Status", "Submitted", ""},
			Rows:    rows,
			Empty:   "You have not applied for a stall yet.",
		}.Component(),
		handlers.Pager(c, result),
	))
}

func (h *ApplicationHandlers) Detail(c *gin.Context) {
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
		h.Fail(c, "Application", err)
		return
	}
	h.RenderPage(c, "Application", "Applications", pages.Section("Application",
		pages.Detail(detailItems(a)...),
		pages.Actions(pages.Action{Label: "Back", Href: userPath}),
	))
}

func (h *ApplicationHandlers) SubmitForm(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	stallID, ok := handlers.PathID(c, "stallId")
	if !ok {
		h.NotFound(c)
		return
	}
	s, err := sc.API.GetStallByID(c.Request.Context(), stallID)
	if err != nil {
		h.Fail(c, "Apply for a stall", err)
		return
	}
	h.RenderPage(c, "Apply for a stall", "Applications", pages.Section("Apply for "+s.StallNo+" "+s.Name,
		pages.Detail(
			pages.Item{Label: "Location", Value: format.Text(s.Location)},
			pages.Item{Label: "Monthly rent", Value: format.Money(s.RentPrice)},
		),
		pages.Form{
			Action: userPath + "/submit/" + handlers.ID(stallID),
			Submit: "Submit application",
			Fields: []pages.Field{
				{Name: "startDate", Label: "Start date", Type: "date", Required: true},
				{Name: "endDate", Label: "End date", Type: "date", Required: true},
				{Name: "businessType", Label: "Business", Required: true, Placeholder: "e.g. snacks, fruit"},
				{Name: "reason", Label: "Notes", Type: "textarea"},
			},
			Cancel: "/stall/" + handlers.ID(stallID),
		}.Component(),
	))
}

func (h *ApplicationHandlers) Submit(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	stallID, ok := handlers.PathID(c, "stallId")
	if !ok {
		h.NotFound(c)
		return
	}
	back := userPath + "/submit/" + handlers.ID(stallID)
	var form models.ApplicationForm
	if err := c.ShouldBind(&form); err != nil {
		h.Complete(c, errors.Wrap(models.ErrValidation, err.Error()), "", "", back)
		return
	}
	form.StallID = stallID
	err := sc.API.CreateApplication(c.Request.Context(), form)
	h.Complete(c, err, "Application submitted", userPath, back)
}

func (h *ApplicationHandlers) Cancel(c *gin.Context) {
	h.Mutate(c, "Application cancelled", userPath, func(ctx context.Context, a *api.API, id int64) error {
		return a.CancelApplication(ctx, id)
	})
}
