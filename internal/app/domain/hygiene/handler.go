package hygiene

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

const adminPath = "/admin/hygiene"

type HygieneHandlers struct {
	*handlers.BaseHandler
}

func NewHygieneHandlers(base *handlers.BaseHandler) *HygieneHandlers {
	return &HygieneHandlers{BaseHandler: base}
}

func (h *HygieneHandlers) AdminList(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	var q models.HygieneQuery
	if err := handlers.BindQuery(c, &q); err != nil {
		h.Fail(c, "Hygiene inspections", err)
		return
	}
	handlers.BindPage(&q.PageQuery)
	result, err := sc.API.GetHygieneList(c.Request.Context(), q)
	if err != nil {
		h.Fail(c, "Hygiene inspections", err)
		return
	}

	rows := make([]pages.Row, 0, len(result.Records))
	for _, r := range result.Records {
		base := adminPath + "/" + handlers.ID(r.ID)
		actions := []pages.Action{{Label: "Edit", Href: base + "/edit"}}
		if r.Status == models.RectificationPending {
			actions = append(actions, pages.Action{
				Label: "Mark rectified", Href: base + "/rectification", Method: "post", Variant: "primary",
				Fields: map[string]string{"status": strconv.Itoa(models.RectificationDone)},
			})
		}
		actions = append(actions, pages.Action{Label: "Delete", Href: base + "/delete", Method: "post", Confirm: "Delete this inspection?", Variant: "danger"})
		rows = append(rows, pages.Row{
			{Text: r.StallNo + " " + r.StallName},
			{Text: format.Date(r.InspectionDate)},
			{Text: strconv.Itoa(r.Score)},
			{Text: format.Text(r.Result)},
			{Text: format.RectificationStatus(r.Status)},
			{Text: format.Text(r.InspectorName)},
			{Actions: actions},
		})
	}
	h.RenderAdminPage(c, "Hygiene inspections", "Hygiene", pages.Section("Hygiene inspections",
		pages.Actions(pages.Action{Label: "Record inspection", Href: adminPath + "/new", Variant: "primary"}),
		pages.Form{
			Action: adminPath,
			Submit: "Filter",
			Fields: []pages.Field{
				{Name: "stallId", Label: "Stall id", Type: "number", Value: c.Query("stallId")},
				{Name: "result", Label: "Result", Value: c.Query("result")},
			},
		}.Component(),
		pages.Table{Columns: []string{"Stall", "Date", "Score", "Result", "Rectification", "Inspector", ""}, Rows: rows}.Component(),
		handlers.Pager(c, result),
	))
}

func (h *HygieneHandlers) form(c *gin.Context, title, action string, r *models.Hygiene) {
	stallID := ""
	if r.StallID != 0 {
		stallID = handlers.ID(r.StallID)
	}
	h.RenderAdminPage(c, title, "Hygiene", pages.Section(title, pages.Form{
		Action: action,
		Fields: []pages.Field{
			{Name: "stallId", Label: "Stall id", Type: "number", Value: stallID, Required: true},
			{Name: "inspectionDate", Label: "Inspection date", Type: "date", Value: dateValue(r.InspectionDate), Required: true},
			{Name: "score", Label: "Score (0-100)", Type: "number", Value: strconv.Itoa(r.Score)},
			{Name: "problems", Label: "Problems found", Type: "textarea", Value: r.Problems},
			{Name: "suggestions", Label: "Suggestions", Type: "textarea", Value: r.Suggestions},
		},
		Cancel: adminPath,
	}.Component()))
}

func dateValue(s string) string {
	if d := format.Date(s); d != format.Empty {
		return d
	}
	return ""
}

func (h *HygieneHandlers) AdminNew(c *gin.Context) {
	h.form(c, "Record inspection", adminPath, &models.Hygiene{Score: 100})
}

func (h *HygieneHandlers) AdminEdit(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	id, ok := handlers.PathID(c, "id")
	if !ok {
		h.NotFound(c)
		return
	}
	r, err := sc.API.GetHygieneByID(c.Request.Context(), id)
	if err != nil {
		h.Fail(c, "Edit inspection", err)
		return
	}
	h.form(c, "Edit inspection", adminPath+"/"+handlers.ID(id), r)
}

func (h *HygieneHandlers) AdminCreate(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	var form models.HygieneForm
	if err := c.ShouldBind(&form); err != nil {
		h.Complete(c, errors.Wrap(models.ErrValidation, err.Error()), "", "", adminPath+"/new")
		return
	}
	err := sc.API.CreateHygiene(c.Request.Context(), form)
	h.Complete(c, err, "Inspection recorded", adminPath, adminPath+"/new")
}

func (h *HygieneHandlers) AdminUpdate(c *gin.Context) {
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
	var form models.HygieneForm
	if err := c.ShouldBind(&form); err != nil {
		h.Complete(c, errors.Wrap(models.ErrValidation, err.Error()), "", "", back)
		return
	}
	err := sc.API.UpdateHygiene(c.Request.Context(), id, form)
	h.Complete(c, err, "Inspection updated", adminPath, back)
}

func (h *HygieneHandlers) AdminRectification(c *gin.Context) {
	status, ok := handlers.FormInt(c, "status")
	if !ok {
		h.Complete(c, models.ErrValidation, "", "", adminPath)
		return
	}
	h.Mutate(c, "Rectification status updated", adminPath, func(ctx context.Context, a *api.API, id int64) error {
		return a.UpdateRectificationStatus(ctx, id, status)
	})
}

func (h *HygieneHandlers) AdminDelete(c *gin.Context) {
	h.Mutate(c, "Inspection deleted", adminPath, func(ctx context.Context, a *api.API, id int64) error {
		return a.DeleteHygiene(ctx, id)
	})
}
