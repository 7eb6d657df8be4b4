package stall

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/FACorreiaa/go-stallui/internal/app/handlers"
	"github.com/FACorreiaa/go-stallui/internal/app/models"
	"github.com/FACorreiaa/go-stallui/internal/app/pages"
	"github.com/FACorreiaa/go-stallui/internal/pkg/format"
)

type StallHandlers struct {
	*handlers.BaseHandler
}

func NewStallHandlers(base *handlers.BaseHandler) *StallHandlers {
	return &StallHandlers{BaseHandler: base}
}

func statusOptions(withAll bool) []pages.Option {
	var opts []pages.Option
	if withAll {
		opts = append(opts, pages.Option{Value: "", Label: "All statuses"})
	}
	for _, s := range []int{models.StallIdle, models.StallRented, models.StallMaintenance} {
		opts = append(opts, pages.Option{Value: strconv.Itoa(s), Label: format.StallStatus(s)})
	}
	return opts
}

func typeOptions(types []models.StallType, withAll bool) []pages.Option {
	var opts []pages.Option
	if withAll {
		opts = append(opts, pages.Option{Value: "", Label: "All types"})
	}
	for _, t := range types {
		opts = append(opts, pages.Option{Value: handlers.ID(t.ID), Label: t.Name})
	}
	return opts
}

func filterForm(c *gin.Context, types []models.StallType) templ.Component {
	return pages.Form{
		Action: c.Request.URL.Path,
		Submit: "Filter",
		Fields: []pages.Field{
			{Name: "keyword", Label: "Keyword", Value: c.Query("keyword")},
			{Name: "typeId", Label: "Type", Type: "select", Value: c.Query("typeId"), Options: typeOptions(types, true)},
			{Name: "status", Label: "Status", Type: "select", Value: c.Query("status"), Options: statusOptions(true)},
		},
	}.Component()
}

func (h *StallHandlers) list(c *gin.Context) (*models.PageResult[models.Stall], []models.StallType, error) {
	sc, ok := h.Session(c)
	if !ok {
		return nil, nil, errors.WithStack(models.ErrNoSession)
	}
	var q models.StallQuery
	if err := handlers.BindQuery(c, &q); err != nil {
		return nil, nil, err
	}
	handlers.BindPage(&q.PageQuery)

	ctx := c.Request.Context()
	types, err := sc.API.GetAllStallTypes(ctx)
	if err != nil {
		return nil, nil, err
	}
	result, err := sc.API.GetStallList(ctx, q)
	if err != nil {
		return nil, nil, err
	}
	return result, types, nil
}

// List is the public stall catalogue.
func (h *StallHandlers) List(c *gin.Context) {
	result, types, err := h.list(c)
	if err != nil {
		if !c.IsAborted() {
			h.Fail(c, "Stalls", err)
		}
		return
	}

	rows := make([]pages.Row, 0, len(result.Records))
	for _, s := range result.Records {
		rows = append(rows, pages.Row{
			{Text: s.StallNo, Href: "/stall/" + handlers.ID(s.ID)},
			{Text: s.Name},
			{Text: format.Text(s.TypeName)},
			{Text: format.Text(s.Location)},
			{Text: format.Money(s.RentPrice)},
			{Text: format.StallStatus(s.Status)},
		})
	}
	h.RenderPage(c, "Stalls", "Stalls", pages.Section("Stalls",
		filterForm(c, types),
		pages.Table{
			Columns: []string{"No.", "Name", "Type", "Location", "Monthly rent", "Status"},
			Rows:    rows,
			Empty:   "No stalls match the filter.",
		}.Component(),
		handlers.Pager(c, result),
	))
}

func (h *StallHandlers) Detail(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	id, ok := handlers.PathID(c, "id")
	if !ok {
		h.NotFound(c)
		return
	}
	s, err := sc.API.GetStallByID(c.Request.Context(), id)
	if err != nil {
		h.Fail(c, "Stall", err)
		return
	}

	var actions []pages.Action
	if s.Status == models.StallIdle {
		actions = append(actions, pages.Action{Label: "Apply for this stall", Href: "/application/submit/" + handlers.ID(s.ID), Variant: "primary"})
	}
	actions = append(actions, pages.Action{Label: "Back to stalls", Href: "/stall"})

	h.RenderPage(c, s.Name, "Stalls", pages.Section(s.StallNo+" "+s.Name,
		pages.Detail(detailItems(s)...),
		pages.Actions(actions...),
	))
}

func detailItems(s *models.Stall) []pages.Item {
	return []pages.Item{
		{Label: "Stall no.", Value: s.StallNo},
		{Label: "Name", Value: s.Name},
		{Label: "Type", Value: format.Text(s.TypeName)},
		{Label: "Location", Value: format.Text(s.Location)},
		{Label: "Area (m²)", Value: strconv.FormatFloat(s.Area, 'f', 2, 64)},
		{Label: "Monthly rent", Value: format.Money(s.RentPrice)},
		{Label: "Status", Value: format.StallStatus(s.Status)},
		{Label: "Description", Value: format.Text(s.Description)},
		{Label: "Updated", Value: format.DateTime(s.UpdateTime)},
	}
}
