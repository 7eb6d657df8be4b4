package user

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-stallui/internal/app/api"
	"github.com/FACorreiaa/go-stallui/internal/app/guard"
	"github.com/FACorreiaa/go-stallui/internal/app/handlers"
	"github.com/FACorreiaa/go-stallui/internal/app/models"
	"github.com/FACorreiaa/go-stallui/internal/app/pages"
	"github.com/FACorreiaa/go-stallui/internal/pkg/apiclient"
	"github.com/FACorreiaa/go-stallui/internal/pkg/format"
)

const (
	profilePath      = "/profile"
	adminProfilePath = "/admin/profile"
	adminPath        = "/admin/user"

	MsgPasswordChanged = "Password changed, please sign in again"
)

type UserHandlers struct {
	*handlers.BaseHandler
}

func NewUserHandlers(base *handlers.BaseHandler) *UserHandlers {
	return &UserHandlers{BaseHandler: base}
}

func (h *UserHandlers) ShowProfile(c *gin.Context) {
	h.profile(c, profilePath, false)
}

func (h *UserHandlers) ShowAdminProfile(c *gin.Context) {
	h.profile(c, adminProfilePath, true)
}

func (h *UserHandlers) profile(c *gin.Context, self string, admin bool) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	u, err := sc.API.GetProfile(c.Request.Context())
	if err != nil {
		h.Fail(c, "Profile", err)
		return
	}

	content := pages.Group(
		pages.Section("Profile",
			pages.Detail(
				pages.Item{Label: "Username", Value: u.Username},
				pages.Item{Label: "Role", Value: format.Role(u.Role)},
				pages.Item{Label: "Status", Value: format.UserStatus(u.Status)},
				pages.Item{Label: "Member since", Value: format.Date(u.CreateTime)},
			),
			pages.Form{
				Action: profilePath,
				Submit: "Save profile",
				Fields: []pages.Field{
					{Name: "back", Type: "hidden", Value: self},
					{Name: "nickname", Label: "Nickname", Value: u.Nickname},
					{Name: "phone", Label: "Phone", Value: u.Phone},
					{Name: "idCard", Label: "ID card", Value: u.IDCard},
				},
			}.Component(),
		),
		pages.Section("Change password", pages.Form{
			Action: profilePath + "/password",
			Submit: "Change password",
			Fields: []pages.Field{
				{Name: "back", Type: "hidden", Value: self},
				{Name: "oldPassword", Label: "Current password", Type: "password", Required: true},
				{Name: "newPassword", Label: "New password", Type: "password", Required: true},
			},
		}.Component()),
	)
	if admin {
		h.RenderAdminPage(c, "Profile", "Profile", content)
		return
	}
	h.RenderPage(c, "Profile", "Profile", content)
}

func backTo(c *gin.Context) string {
	if c.PostForm("back") == adminProfilePath {
		return adminProfilePath
	}
	return profilePath
}

// UpdateProfile saves the editable fields and refreshes the cached profile.
func (h *UserHandlers) UpdateProfile(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	back := backTo(c)
	ctx := c.Request.Context()
	form := models.ProfileForm{
		Nickname: c.PostForm("nickname"),
		Phone:    c.PostForm("phone"),
		IDCard:   c.PostForm("idCard"),
	}
	err := sc.API.UpdateProfile(ctx, form)
	if err == nil {
		if ferr := sc.Session.FetchUserInfo(ctx); ferr != nil {
			h.Logger.Warn("Profile refresh after update failed", zap.Error(ferr))
		}
	}
	h.Complete(c, err, "Profile saved", back, back)
}

// UpdatePassword ends the session after a successful change.
func (h *UserHandlers) UpdatePassword(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	back := backTo(c)
	ctx := c.Request.Context()
	var form models.PasswordForm
	if err := c.ShouldBind(&form); err != nil {
		h.Complete(c, errors.Wrap(models.ErrValidation, err.Error()), "", "", back)
		return
	}
	if err := sc.API.UpdatePassword(ctx, form); err != nil {
		h.Complete(c, err, "", "", back)
		return
	}
	if err := sc.Session.Logout(ctx); err != nil {
		h.Logger.Warn("Remote logout after password change failed", zap.Error(err))
	}
	sc.Notifier.Notify(ctx, apiclient.LevelInfo, MsgPasswordChanged)
	handlers.SeeOther(c, guard.LoginPath)
}

func (h *UserHandlers) AdminList(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	var q models.UserQuery
	if err := handlers.BindQuery(c, &q); err != nil {
		h.Fail(c, "User management", err)
		return
	}
	handlers.BindPage(&q.PageQuery)
	result, err := sc.API.GetUserList(c.Request.Context(), q)
	if err != nil {
		h.Fail(c, "User management", err)
		return
	}

	self := sc.Session.User()
	rows := make([]pages.Row, 0, len(result.Records))
	for _, u := range result.Records {
		base := adminPath + "/" + handlers.ID(u.ID)
		actions := []pages.Action{{Label: "Edit", Href: base + "/edit"}}
		if self == nil || self.ID != u.ID {
			next, label := models.UserDisabled, "Disable"
			if u.Status == models.UserDisabled {
				next, label = models.UserEnabled, "Enable"
			}
			actions = append(actions,
				pages.Action{Label: label, Href: base + "/status", Method: "post", Fields: map[string]string{"status": strconv.Itoa(next)}},
				pages.Action{Label: "Reset password", Href: base + "/reset-password", Method: "post", Confirm: "Reset the password of " + u.Username + "?"},
				pages.Action{Label: "Delete", Href: base + "/delete", Method: "post", Confirm: "Delete user " + u.Username + "?", Variant: "danger"},
			)
		}
		rows = append(rows, pages.Row{
			{Text: u.Username},
			{Text: format.Text(u.Nickname)},
			{Text: format.Text(u.Phone)},
			{Text: format.Role(u.Role)},
			{Text: format.UserStatus(u.Status)},
			{Text: format.DateTime(u.CreateTime)},
			{Actions: actions},
		})
	}
	h.RenderAdminPage(c, "User management", "Users", pages.Section("Users",
		pages.Form{
			Action: adminPath,
			Submit: "Search",
			Fields: []pages.Field{
				{Name: "keyword", Label: "Keyword", Value: c.Query("keyword")},
				{Name: "role", Label: "Role", Type: "select", Value: c.Query("role"), Options: roleOptions(true)},
			},
		}.Component(),
		pages.Table{Columns: []string{"Username", "Nickname", "Phone", "Role", "Status", "Created", ""}, Rows: rows}.Component(),
		handlers.Pager(c, result),
	))
}

func roleOptions(withAll bool) []pages.Option {
	var opts []pages.Option
	if withAll {
		opts = append(opts, pages.Option{Value: "", Label: "All roles"})
	}
	return append(opts,
		pages.Option{Value: string(models.RoleUser), Label: format.Role(models.RoleUser)},
		pages.Option{Value: string(models.RoleAdmin), Label: format.Role(models.RoleAdmin)},
	)
}

func (h *UserHandlers) AdminEdit(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	id, ok := handlers.PathID(c, "id")
	if !ok {
		h.NotFound(c)
		return
	}
	u, err := sc.API.GetUserByID(c.Request.Context(), id)
	if err != nil {
		h.Fail(c, "Edit user", err)
		return
	}
	h.RenderAdminPage(c, "Edit user", "Users", pages.Section("Edit "+u.Username, pages.Form{
		Action: adminPath + "/" + handlers.ID(id),
		Fields: []pages.Field{
			{Name: "nickname", Label: "Nickname", Value: u.Nickname},
			{Name: "phone", Label: "Phone", Value: u.Phone},
			{Name: "idCard", Label: "ID card", Value: u.IDCard},
			{Name: "role", Label: "Role", Type: "select", Value: string(u.Role), Options: roleOptions(false)},
		},
		Cancel: adminPath,
	}.Component()))
}

func (h *UserHandlers) AdminUpdate(c *gin.Context) {
	form := models.ProfileForm{
		Nickname: c.PostForm("nickname"),
		Phone:    c.PostForm("phone"),
		IDCard:   c.PostForm("idCard"),
		Role:     models.Role(c.PostForm("role")),
	}
	h.Mutate(c, "User updated", adminPath, func(ctx context.Context, a *api.API, id int64) error {
		return a.UpdateUser(ctx, id, form)
	})
}

func (h *UserHandlers) AdminStatus(c *gin.Context) {
	status, ok := handlers.FormInt(c, "status")
	if !ok {
		h.Complete(c, models.ErrValidation, "", "", adminPath)
		return
	}
	h.Mutate(c, "User status updated", adminPath, func(ctx context.Context, a *api.API, id int64) error {
		return a.UpdateUserStatus(ctx, id, status)
	})
}

func (h *UserHandlers) AdminResetPassword(c *gin.Context) {
	h.Mutate(c, "Password reset", adminPath, func(ctx context.Context, a *api.API, id int64) error {
		return a.ResetPassword(ctx, id)
	})
}

func (h *UserHandlers) AdminDelete(c *gin.Context) {
	h.Mutate(c, "User deleted", adminPath, func(ctx context.Context, a *api.API, id int64) error {
		return a.DeleteUser(ctx, id)
	})
}
