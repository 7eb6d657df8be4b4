package models

type Hygiene struct {
	ID             int64  `json:"id"`
	StallID        int64  `json:"stallId"`
	InspectorID    int64  `json:"inspectorId"`
	InspectionDate string `json:"inspectionDate"`
	Score          int    `json:"score"`
	Result         string `json:"result"`
	Problems       string `json:"problems"`
	Suggestions    string `json:"suggestions"`
	Images         string `json:"images"`
	Status         int    `json:"status"`
	CreateTime     string `json:"createTime"`
	UpdateTime     string `json:"updateTime"`
	StallName      string `json:"stallName"`
	StallNo        string `json:"stallNo"`
	InspectorName  string `json:"inspectorName"`
}

type HygieneForm struct {
	StallID        int64  `json:"stallId,omitempty" form:"stallId" validate:"required"`
	InspectionDate string `json:"inspectionDate,omitempty" form:"inspectionDate" validate:"required"`
	Score          int    `json:"score" form:"score" validate:"gte=0,lte=100"`
	Problems       string `json:"problems,omitempty" form:"problems"`
	Suggestions    string `json:"suggestions,omitempty" form:"suggestions"`
}

type HygieneQuery struct {
	PageQuery
	StallID *int    `form:"stallId"`
	Result  *string `form:"result"`
}

// Rectification status of an inspection.
const (
	RectificationNone    = 0
	RectificationPending = 1
	RectificationDone    = 2
)
