package models

type Application struct {
	ID              int64  `json:"id"`
	ApplicationNo   string `json:"applicationNo"`
	UserID          int64  `json:"userId"`
	StallID         int64  `json:"stallId"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	BusinessType    string `json:"businessType"`
	BusinessLicense string `json:"businessLicense"`
	Reason          string `json:"reason"`
	Status          int    `json:"status"`
	ReviewOpinion   string `json:"reviewOpinion"`
	ReviewerID      int64  `json:"reviewerId"`
	ReviewTime      string `json:"reviewTime"`
	CreateTime      string `json:"createTime"`
	UpdateTime      string `json:"updateTime"`
	Username        string `json:"username"`
	StallName       string `json:"stallName"`
	StallNo         string `json:"stallNo"`
}

type ApplicationForm struct {
	StallID      int64  `json:"stallId" form:"stallId" validate:"required"`
	StartDate    string `json:"startDate" form:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate      string `json:"endDate" form:"endDate" validate:"required,datetime=2006-01-02"`
	BusinessType string `json:"businessType" form:"businessType" validate:"required"`
	Reason       string `json:"reason,omitempty" form:"reason"`
}

type ReviewForm struct {
	Status        int    `json:"status" form:"status" validate:"oneof=1 2"`
	ReviewOpinion string `json:"reviewOpinion,omitempty" form:"reviewOpinion"`
}

type ApplicationQuery struct {
	PageQuery
	Status *int `form:"status"`
}

// Application status.
const (
	ApplicationPending   = 0
	ApplicationApproved  = 1
	ApplicationRejected  = 2
	ApplicationCancelled = 3
)
