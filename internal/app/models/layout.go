package models

import "github.com/a-h/templ"

type NavItem struct {
	Name string
	URL  string
}

type Navigation struct {
	Items []NavItem
}

// Notice is a one-shot message shown on the next rendered page.
type Notice struct {
	Level   string
	Message string
}

type LayoutTempl struct {
	Title     string
	User      *User
	Nav       Navigation
	ActiveNav string
	Notices   []Notice
	Content   templ.Component
}

var MainNav = Navigation{
	Items: []NavItem{
		{Name: "Home", URL: "/"},
		{Name: "Stalls", URL: "/stall"},
		{Name: "Announcements", URL: "/announcement"},
		{Name: "Applications", URL: "/application"},
		{Name: "Rentals", URL: "/rental"},
		{Name: "Feedback", URL: "/feedback"},
		{Name: "Profile", URL: "/profile"},
	},
}

var OfflineNav = Navigation{
	Items: []NavItem{
		{Name: "Home", URL: "/"},
		{Name: "Stalls", URL: "/stall"},
		{Name: "Announcements", URL: "/announcement"},
		{Name: "Sign in", URL: "/login"},
		{Name: "Register", URL: "/register"},
	},
}

var AdminNav = Navigation{
	Items: []NavItem{
		{Name: "Dashboard", URL: "/admin"},
		{Name: "Users", URL: "/admin/user"},
		{Name: "Stalls", URL: "/admin/stall"},
		{Name: "Stall types", URL: "/admin/stall/type"},
		{Name: "Applications", URL: "/admin/application"},
		{Name: "Rentals", URL: "/admin/rental"},
		{Name: "Hygiene", URL: "/admin/hygiene"},
		{Name: "Feedback", URL: "/admin/feedback"},
		{Name: "Announcements", URL: "/admin/announcement"},
		{Name: "Profile", URL: "/admin/profile"},
	},
}
