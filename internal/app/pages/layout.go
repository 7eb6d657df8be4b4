package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// LayoutPage renders the full document around l.Content.
func LayoutPage(l models.LayoutTempl) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw("<!DOCTYPE html>")
		h.open("html", "lang", "en")
		h.open("head")
		h.raw(`<meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.element("title", l.Title)
		h.raw(`<link rel="stylesheet" href="/assets/css/app.css">`)
		h.open("script", "src", htmxSrc, "defer", "")
		h.close("script")
		h.close("head")

		h.open("body", "hx-boost", "true")
		header(h, l)
		h.open("main", "class", "container")
		h.render(ctx, Notices(l.Notices))
		h.render(ctx, l.Content)
		h.close("main")
		h.close("body")
		h.close("html")
	})
}

func header(h *html, l models.LayoutTempl) {
	h.open("header", "class", "topbar")
	h.open("a", "class", "brand", "href", "/")
	h.text("Stall Market")
	h.close("a")

	h.open("nav")
	h.open("ul")
	for _, item := range l.Nav.Items {
		cls := "nav-item"
		if item.Name == l.ActiveNav {
			cls += " active"
		}
		h.open("li", "class", cls)
		h.raw("<a")
		h.href(item.URL)
		h.raw(">")
		h.text(item.Name)
		h.close("a")
		h.close("li")
	}
	h.close("ul")
	h.close("nav")

	if l.User != nil {
		h.open("div", "class", "account")
		h.element("span", l.User.DisplayName(), "class", "account-name")
		if l.User.Role == models.RoleAdmin {
			h.element("a", "Admin", "href", "/admin", "class", "account-admin")
		}
		h.open("form", "method", "post", "action", "/logout", "class", "inline")
		h.element("button", "Sign out", "type", "submit")
		h.close("form")
		h.close("div")
	}
	h.close("header")
}

// Notices renders one-shot flash messages.
func Notices(notices []models.Notice) templ.Component {
	return component(func(_ context.Context, h *html) {
		if len(notices) == 0 {
			return
		}
		h.open("div", "class", "notices", "role", "status")
		for _, n := range notices {
			h.element("p", n.Message, "class", "notice notice-"+n.Level)
		}
		h.close("div")
	})
}
