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

const typePath = "/admin/stall/type"

func typeFields(t *models.StallType) []pages.Field {
	return []pages.Field{
		{Name: "name", Label: "Name", Value: t.Name, Required: true},
		{Name: "description", Label: "Description", Value: t.Description},
		{Name: "sortOrder", Label: "Sort order", Type: "number", Value: strconv.Itoa(t.SortOrder)},
	}
}

func (h *StallHandlers) TypeList(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	types, err := sc.API.GetStallTypeList(c.Request.Context())
	if err != nil {
		h.Fail(c, "Stall types", err)
		return
	}

	rows := make([]pages.Row, 0, len(types))
	for _, t := range types {
		base := typePath + "/" + handlers.ID(t.ID)
		rows = append(rows, pages.Row{
			{Text: t.Name},
			{Text: format.Text(t.Description)},
			{Text: strconv.Itoa(t.SortOrder)},
			{Actions: []pages.Action{
				{Label: "Edit", Href: base + "/edit"},
				{Label: "Delete", Href: base + "/delete", Method: "post", Confirm: "Delete type " + t.Name + "?", Variant: "danger"},
			}},
		})
	}
	h.RenderAdminPage(c, "Stall types", "Stall types", pages.Group(
		pages.Section("Stall types", pages.Table{Columns: []string{"Name", "Description", "Sort", ""}, Rows: rows}.Component()),
		pages.Section("New type", pages.Form{Action: typePath, Submit: "Create", Fields: typeFields(&models.StallType{})}.Component()),
	))
}

func (h *StallHandlers) TypeEdit(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	id, ok := handlers.PathID(c, "id")
	if !ok {
		h.NotFound(c)
		return
	}
	t, err := sc.API.GetStallTypeByID(c.Request.Context(), id)
	if err != nil {
		h.Fail(c, "Edit stall type", err)
		return
	}
	h.RenderAdminPage(c, "Edit stall type", "Stall types", pages.Section("Edit "+t.Name,
		pages.Form{Action: typePath + "/" + handlers.ID(id), Fields: typeFields(t), Cancel: typePath}.Component()))
}

func (h *StallHandlers) TypeCreate(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	var form models.StallTypeForm
	if err := c.ShouldBind(&form); err != nil {
		h.Complete(c, errors.Wrap(models.ErrValidation, err.Error()), "", "", typePath)
		return
	}
	err := sc.API.CreateStallType(c.Request.Context(), form)
	h.Complete(c, err, "Stall type created", typePath, typePath)
}

func (h *StallHandlers) TypeUpdate(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	id, ok := handlers.PathID(c, "id")
	if !ok {
		h.NotFound(c)
		return
	}
	back := typePath + "/" + handlers.ID(id) + "/edit"
	var form models.StallTypeForm
	if err := c.ShouldBind(&form); err != nil {
		h.Complete(c, errors.Wrap(models.ErrValidation, err.Error()), "", "", back)
		return
	}
	err := sc.API.UpdateStallType(c.Request.Context(), id, form)
	h.Complete(c, err, "Stall type updated", typePath, back)
}

func (h *StallHandlers) TypeDelete(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	id, ok := handlers.PathID(c, "id")
	if !ok {
		h.NotFound(c)
		return
	}
	err := sc.API.DeleteStallType(c.Request.Context(), id)
	h.Complete(c, err, "Stall type deleted", typePath, typePath)
}
