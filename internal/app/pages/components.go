package pages

import (
	"context"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
)

// Action is a link, or a POST form when Method is "post".
type Action struct {
	Label   string
	Href    string
	Method  string
	Confirm string
	Fields  map[string]string
	Variant string
}

func (a Action) write(h *html) {
	cls := "btn"
	if a.Variant != "" {
		cls += " btn-" + a.Variant
	}
	if a.Method != "post" {
		h.raw("<a")
		h.attr("class", cls)
		h.href(a.Href)
		h.raw(">")
		h.text(a.Label)
		h.close("a")
		return
	}
	h.raw(`<form method="post" class="inline"`)
	h.attr("action", string(templ.URL(a.Href)))
	if a.Confirm != "" {
		h.attr("hx-confirm", a.Confirm)
	}
	h.raw(">")
	for _, k := range sortedKeys(a.Fields) {
		h.raw(`<input type="hidden"`)
		h.attr("name", k)
		h.attr("value", a.Fields[k])
		h.raw(">")
	}
	h.element("button", a.Label, "type", "submit", "class", cls)
	h.close("form")
}

// Actions renders a row of buttons.
func Actions(actions ...Action) templ.Component {
	return component(func(_ context.Context, h *html) {
		if len(actions) == 0 {
			return
		}
		h.open("div", "class", "actions")
		for _, a := range actions {
			a.write(h)
		}
		h.close("div")
	})
}

// Section is a titled block.
func Section(title string, children ...templ.Component) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.open("section", "class", "card")
		if title != "" {
			h.element("h1", title)
		}
		for _, c := range children {
			h.render(ctx, c)
		}
		h.close("section")
	})
}

func Paragraph(s string) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.element("p", s)
	})
}

// Cell is one table cell. Href turns the text into a link.
type Cell struct {
	Text    string
	Href    string
	Actions []Action
}

type Row []Cell

type Table struct {
	Columns []string
	Rows    []Row
	Empty   string
}

func (t Table) Component() templ.Component {
	return component(func(_ context.Context, h *html) {
		if len(t.Rows) == 0 {
			msg := t.Empty
			if msg == "" {
				msg = "Nothing here yet."
			}
			h.element("p", msg, "class", "empty")
			return
		}
		h.open("table", "class", "table")
		h.open("thead")
		h.open("tr")
		for _, col := range t.Columns {
			h.element("th", col)
		}
		h.close("tr")
		h.close("thead")
		h.open("tbody")
		for _, row := range t.Rows {
			h.open("tr")
			for _, cell := range row {
				h.open("td")
				switch {
				case len(cell.Actions) > 0:
					h.open("div", "class", "actions")
					for _, a := range cell.Actions {
						a.write(h)
					}
					h.close("div")
				case cell.Href != "":
					h.raw("<a")
					h.href(cell.Href)
					h.raw(">")
					h.text(cell.Text)
					h.close("a")
				default:
					h.text(cell.Text)
				}
				h.close("td")
			}
			h.close("tr")
		}
		h.close("tbody")
		h.close("table")
	})
}

// Item is one label/value pair of a detail list.
type Item struct {
	Label string
	Value string
}

func Detail(items ...Item) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.open("dl", "class", "detail")
		for _, it := range items {
			h.element("dt", it.Label)
			h.element("dd", it.Value)
		}
		h.close("dl")
	})
}

// Stat is a dashboard counter.
type Stat struct {
	Label string
	Value string
	Href  string
}

func Stats(stats ...Stat) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.open("div", "class", "stats")
		for _, s := range stats {
			h.raw(`<a class="stat"`)
			h.href(s.Href)
			h.raw(">")
			h.element("span", s.Value, "class", "stat-value")
			h.element("span", s.Label, "class", "stat-label")
			h.close("a")
		}
		h.close("div")
	})
}

// Pager links to the neighbouring pages of a paginated list, keeping the
// current filters.
type Pager struct {
	Path    string
	Query   url.Values
	Current int64
	Pages   int64
	Total   int64
}

func (p Pager) link(page int64) string {
	q := url.Values{}
	for k, v := range p.Query {
		q[k] = v
	}
	q.Set("pageNum", strconv.FormatInt(page, 10))
	return p.Path + "?" + q.Encode()
}

func (p Pager) Component() templ.Component {
	return component(func(_ context.Context, h *html) {
		if p.Pages <= 1 {
			return
		}
		h.open("nav", "class", "pager")
		if p.Current > 1 {
			h.raw(`<a rel="prev"`)
			h.href(p.link(p.Current - 1))
			h.raw(">Previous</a>")
		}
		h.element("span", "Page "+strconv.FormatInt(p.Current, 10)+" of "+strconv.FormatInt(p.Pages, 10))
		if p.Current < p.Pages {
			h.raw(`<a rel="next"`)
			h.href(p.link(p.Current + 1))
			h.raw(">Next</a>")
		}
		h.close("nav")
	})
}

// ErrorPage is shown when a page cannot load its data.
func ErrorPage(title, message string) templ.Component {
	return Section(title, Paragraph(message), Actions(Action{Label: "Back to home", Href: "/"}))
}
