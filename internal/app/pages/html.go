// Package pages holds the HTML components rendered by the handlers.
package pages

import (
	"context"
	"io"
	"sort"

	"github.com/a-h/templ"
)

// html accumulates the first write error so components can be written as a
// flat sequence of calls.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) attr(name, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (h *html) href(u string) {
	h.attr("href", string(templ.URL(u)))
}

func (h *html) open(tag string, attrs ...string) {
	h.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		h.attr(attrs[i], attrs[i+1])
	}
	h.raw(">")
}

func (h *html) close(tag string) {
	h.raw("</" + tag + ">")
}

func (h *html) element(tag, content string, attrs ...string) {
	h.open(tag, attrs...)
	h.text(content)
	h.close(tag)
}

func (h *html) render(ctx context.Context, c templ.Component) {
	if h.err == nil && c != nil {
		h.err = c.Render(ctx, h.w)
	}
}

func component(fn func(ctx context.Context, h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		fn(ctx, h)
		return h.err
	})
}

// Group renders children in order.
func Group(children ...templ.Component) templ.Component {
	return component(func(ctx context.Context, h *html) {
		for _, c := range children {
			h.render(ctx, c)
		}
	})
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
