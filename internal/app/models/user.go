package models

// Role is one of the closed set of account roles.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is the cached profile of the authenticated account.
type User struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Nickname   string `json:"nickname"`
	Phone      string `json:"phone"`
	IDCard     string `json:"idCard"`
	Role       Role   `json:"role"`
	Status     int    `json:"status"`
	CreateTime string `json:"createTime"`
	UpdateTime string `json:"updateTime"`
}

// DisplayName prefers the nickname over the login name.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Nickname != "" {
		return u.Nickname
	}
	return u.Username
}

type LoginForm struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginResult is returned by a successful login call.
type LoginResult struct {
	Token    string `json:"token"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

type RegisterForm struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
	Nickname string `json:"nickname" form:"nickname"`
	Phone    string `json:"phone" form:"phone"`
}

type PasswordForm struct {
	OldPassword string `json:"oldPassword" form:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" form:"newPassword" validate:"required,min=6,nefield=OldPassword"`
}

// ProfileForm carries the editable subset of a User.
type ProfileForm struct {
	Nickname string `json:"nickname,omitempty" form:"nickname"`
	Phone    string `json:"phone,omitempty" form:"phone"`
	IDCard   string `json:"idCard,omitempty" form:"idCard"`
	Role     Role   `json:"role,omitempty" form:"role"`
}

type UserQuery struct {
	PageQuery
	Keyword *string `form:"keyword"`
	Role    *string `form:"role"`
}

// User account status.
const (
	UserDisabled = 0
	UserEnabled  = 1
)
