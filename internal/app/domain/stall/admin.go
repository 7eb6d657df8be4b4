package stall

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/FACorreiaa/go-stallui/internal/app/handlers"
	"github.com/FACorreiaa/go-stallui/internal/app/models"
	"github.com/FACorreiaa/go-stallui/internal/app/pages"
	"github.com/FACorreiaa/go-stallui/internal/pkg/format"
)

const adminPath = "/admin/stall"

func (h *StallHandlers) AdminList(c *gin.Context) {
	result, types, err := h.list(c)
	if err != nil {
		if !c.IsAborted() {
			h.Fail(c, "Stall management", err)
		}
		return
	}

	rows := make([]pages.Row, 0, len(result.Records))
	for _, s := range result.Records {
		base := adminPath + "/" + handlers.ID(s.ID)
		actions := []pages.Action{{Label: "Edit", Href: base + "/edit"}}
		for _, next := range []int{models.StallIdle, models.StallMaintenance} {
			if next != s.Status && s.Status != models.StallRented {
				actions = append(actions, pages.Action{
					Label:  "Mark " + format.StallStatus(next),
					Href:   base + "/status",
					Method: "post",
					Fields: map[string]string{"status": strconv.Itoa(next)},
				})
			}
		}
		actions = append(actions, pages.Action{Label: "Delete", Href: base + "/delete", Method: "post", Confirm: "Delete stall " + s.StallNo + "?", Variant: "danger"})
		rows = append(rows, pages.Row{
			{Text: s.StallNo},
			{Text: s.Name},
			{Text: format.Text(s.TypeName)},
			{Text: format.Money(s.RentPrice)},
			{Text: format.StallStatus(s.Status)},
			{Actions: actions},
		})
	}

	h.RenderAdminPage(c, "Stall management", "Stalls", pages.Section("Stalls",
		pages.Actions(pages.Action{Label: "New stall", Href: adminPath + "/new", Variant: "primary"}),
		filterForm(c, types),
		pages.Table{Columns: []string{"No.", "Name", "Type", "Monthly rent", "Status", ""}, Rows: rows}.Component(),
		handlers.Pager(c, result),
	))
}

func (h *StallHandlers) stallForm(c *gin.Context, title, action string, s *models.Stall) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	types, err := sc.API.GetAllStallTypes(c.Request.Context())
	if err != nil {
		h.Fail(c, title, err)
		return
	}
	if s == nil {
		s = &models.Stall{}
	}
	typeID := ""
	if s.TypeID != 0 {
		typeID = handlers.ID(s.TypeID)
	}
	h.RenderAdminPage(c, title, "Stalls", pages.Section(title, pages.Form{
		Action: action,
		Fields: []pages.Field{
			{Name: "stallNo", Label: "Stall no.", Value: s.StallNo, Required: true},
			{Name: "name", Label: "Name", Value: s.Name, Required: true},
			{Name: "typeId", Label: "Type", Type: "select", Value: typeID, Options: typeOptions(types, false), Required: true},
			{Name: "location", Label: "Location", Value: s.Location},
			{Name: "area", Label: "Area (m²)", Type: "number", Value: strconv.FormatFloat(s.Area, 'f', -1, 64)},
			{Name: "rentPrice", Label: "Monthly rent", Type: "number", Value: strconv.FormatFloat(s.RentPrice, 'f', -1, 64)},
			{Name: "description", Label: "Description", Type: "textarea", Value: s.Description},
			{Name: "image", Label: "Image URL", Value: s.Image},
		},
		Cancel: adminPath,
	}.Component()))
}

func (h *StallHandlers) AdminNew(c *gin.Context) {
	h.stallForm(c, "New stall", adminPath, nil)
}

func (h *StallHandlers) AdminEdit(c *gin.Context) {
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
		h.Fail(c, "Edit stall", err)
		return
	}
	h.stallForm(c, "Edit stall "+s.StallNo, adminPath+"/"+handlers.ID(id), s)
}

func (h *StallHandlers) AdminCreate(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	var form models.StallForm
	if err := c.ShouldBind(&form); err != nil {
		h.Complete(c, errors.Wrap(models.ErrValidation, err.Error()), "", "", adminPath+"/new")
		return
	}
	err := sc.API.CreateStall(c.Request.Context(), form)
	h.Complete(c, err, "Stall created", adminPath, adminPath+"/new")
}

func (h *StallHandlers) AdminUpdate(c *gin.Context) {
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
	var form models.StallForm
	if err := c.ShouldBind(&form); err != nil {
		h.Complete(c, errors.Wrap(models.ErrValidation, err.Error()), "", "", back)
		return
	}
	err := sc.API.UpdateStall(c.Request.Context(), id, form)
	h.Complete(c, err, "Stall updated", adminPath, back)
}

func (h *StallHandlers) AdminStatus(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	id, ok := handlers.PathID(c, "id")
	if !ok {
		h.NotFound(c)
		return
	}
	status, ok := handlers.FormInt(c, "status")
	if !ok {
		h.Complete(c, models.ErrValidation, "", "", adminPath)
		return
	}
	err := sc.API.UpdateStallStatus(c.Request.Context(), id, status)
	h.Complete(c, err, "Stall status updated", adminPath, adminPath)
}

func (h *StallHandlers) AdminDelete(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	id, ok := handlers.PathID(c, "id")
	if !ok {
		h.NotFound(c)
		return
	}
	err := sc.API.DeleteStall(c.Request.Context(), id)
	h.Complete(c, err, "Stall deleted", adminPath, adminPath)
}
