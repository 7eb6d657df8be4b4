package pages

import (
	"context"

	"github.com/a-h/templ"
)

type Option struct {
	Value string
	Label string
}

// Field is a form control. Type is an input type, or "textarea" or
// "select".
type Field struct {
	Name        string
	Label       string
	Type        string
	Value       string
	Placeholder string
	Required    bool
	Options     []Option
}

type Form struct {
	Action string
	Submit string
	Fields []Field
	Cancel string
}

func (f Form) Component() templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<form method="post" class="form"`)
		h.attr("action", string(templ.URL(f.Action)))
		h.raw(">")
		for _, field := range f.Fields {
			writeField(h, field)
		}
		h.open("div", "class", "actions")
		submit := f.Submit
		if submit == "" {
			submit = "Save"
		}
		h.element("button", submit, "type", "submit", "class", "btn btn-primary")
		if f.Cancel != "" {
			h.raw(`<a class="btn"`)
			h.href(f.Cancel)
			h.raw(">Cancel</a>")
		}
		h.close("div")
		h.close("form")
	})
}

func writeField(h *html, f Field) {
	if f.Type == "hidden" {
		h.raw(`<input type="hidden"`)
		h.attr("name", f.Name)
		h.attr("value", f.Value)
		h.raw(">")
		return
	}

	h.open("div", "class", "field")
	h.element("label", f.Label, "for", f.Name)
	switch f.Type {
	case "textarea":
		h.raw("<textarea")
		controlAttrs(h, f)
		h.raw(">")
		h.text(f.Value)
		h.close("textarea")
	case "select":
		h.raw("<select")
		controlAttrs(h, f)
		h.raw(">")
		for _, o := range f.Options {
			h.raw("<option")
			h.attr("value", o.Value)
			if o.Value == f.Value {
				h.raw(" selected")
			}
			h.raw(">")
			h.text(o.Label)
			h.close("option")
		}
		h.close("select")
	default:
		typ := f.Type
		if typ == "" {
			typ = "text"
		}
		h.raw("<input")
		h.attr("type", typ)
		controlAttrs(h, f)
		if typ != "password" {
			h.attr("value", f.Value)
		}
		if f.Placeholder != "" {
			h.attr("placeholder", f.Placeholder)
		}
		h.raw(">")
	}
	h.close("div")
}

func controlAttrs(h *html, f Field) {
	h.attr("id", f.Name)
	h.attr("name", f.Name)
	if f.Required {
		h.raw(" required")
	}
}
