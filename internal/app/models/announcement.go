package models

type Announcement struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Type          int    `json:"type"`
	Priority      int    `json:"priority"`
	PublisherID   int64  `json:"publisherId"`
	Status        int    `json:"status"`
	PublishTime   string `json:"publishTime"`
	CreateTime    string `json:"createTime"`
	UpdateTime    string `json:"updateTime"`
	PublisherName string `json:"publisherName"`
}

type AnnouncementForm struct {
	Title    string `json:"title,omitempty" form:"title" validate:"required"`
	Content  string `json:"content,omitempty" form:"content" validate:"required"`
	Type     int    `json:"type,omitempty" form:"type"`
	Priority int    `json:"priority,omitempty" form:"priority"`
}

type AnnouncementQuery struct {
	PageQuery
	Status *int `form:"status"`
	Type   *int `form:"type"`
}

// Announcement publication status.
const (
	AnnouncementDraft       = 0
	AnnouncementPublished   = 1
	AnnouncementUnpublished = 2
)
