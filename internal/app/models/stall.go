package models

type StallType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
	CreateTime  string `json:"createTime"`
	UpdateTime  string `json:"updateTime"`
}

type StallTypeForm struct {
	Name        string `json:"name,omitempty" form:"name" validate:"required"`
	Description string `json:"description,omitempty" form:"description"`
	SortOrder   int    `json:"sortOrder,omitempty" form:"sortOrder"`
}

type Stall struct {
	ID          int64   `json:"id"`
	StallNo     string  `json:"stallNo"`
	Name        string  `json:"name"`
	TypeID      int64   `json:"typeId"`
	Location    string  `json:"location"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Area        float64 `json:"area"`
	RentPrice   float64 `json:"rentPrice"`
	Status      int     `json:"status"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	CreateTime  string  `json:"createTime"`
	UpdateTime  string  `json:"updateTime"`
	TypeName    string  `json:"typeName"`
}

// StallForm is the create/update payload; zero fields are omitted.
type StallForm struct {
	StallNo     string  `json:"stallNo,omitempty" form:"stallNo" validate:"required"`
	Name        string  `json:"name,omitempty" form:"name" validate:"required"`
	TypeID      int64   `json:"typeId,omitempty" form:"typeId" validate:"required"`
	Location    string  `json:"location,omitempty" form:"location"`
	Area        float64 `json:"area,omitempty" form:"area" validate:"gte=0"`
	RentPrice   float64 `json:"rentPrice,omitempty" form:"rentPrice" validate:"gte=0"`
	Description string  `json:"description,omitempty" form:"description"`
	Image       string  `json:"image,omitempty" form:"image"`
}

type StallQuery struct {
	PageQuery
	Keyword *string `form:"keyword"`
	TypeID  *int    `form:"typeId"`
	Status  *int    `form:"status"`
}

// Stall status.
const (
	StallIdle        = 0
	StallRented      = 1
	StallMaintenance = 2
)
