package models

type Feedback struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	StallID      int64  `json:"stallId"`
	Type         int    `json:"type"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	Images       string `json:"images"`
	ContactPhone string `json:"contactPhone"`
	Status       int    `json:"status"`
	Reply        string `json:"reply"`
	HandlerID    int64  `json:"handlerId"`
	HandleTime   string `json:"handleTime"`
	CreateTime   string `json:"createTime"`
	UpdateTime   string `json:"updateTime"`
	Username     string `json:"username"`
	StallName    string `json:"stallName"`
	HandlerName  string `json:"handlerName"`
}

type FeedbackForm struct {
	StallID *int64 `json:"stallId,omitempty" form:"stallId"`
	Type    int    `json:"type" form:"type" validate:"gte=1"`
	Title   string `json:"title" form:"title" validate:"required,max=100"`
	Content string `json:"content" form:"content" validate:"required"`
}

type FeedbackQuery struct {
	PageQuery
	Type   *int `form:"type"`
	Status *int `form:"status"`
}

// Feedback handling status.
const (
	FeedbackPending    = 0
	FeedbackProcessing = 1
	FeedbackResolved   = 2
)
