package models

type Rental struct {
	ID            int64   `json:"id"`
	ApplicationID int64   `json:"applicationId"`
	UserID        int64   `json:"userId"`
	StallID       int64   `json:"stallId"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	RentAmount    float64 `json:"rentAmount"`
	Deposit       float64 `json:"deposit"`
	PaymentStatus int     `json:"paymentStatus"`
	Status        int     `json:"status"`
	CreateTime    string  `json:"createTime"`
	UpdateTime    string  `json:"updateTime"`
	Username      string  `json:"username"`
	StallName     string  `json:"stallName"`
	StallNo       string  `json:"stallNo"`
}

type RentalQuery struct {
	PageQuery
	Status  *int `form:"status"`
	StallID *int `form:"stallId"`
}

// Rental payment status.
const (
	PaymentUnpaid = 0
	PaymentPaid   = 1
)

// Rental status.
const (
	RentalActive     = 1
	RentalTerminated = 2
)
