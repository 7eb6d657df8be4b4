package format

import (
	"strconv"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
)

func label(labels map[int]string, v int) string {
	if l, ok := labels[v]; ok {
		return l
	}
	return "Unknown (" + strconv.Itoa(v) + ")"
}

var (
	stallStatus = map[int]string{
		models.StallIdle:        "Available",
		models.StallRented:      "Rented",
		models.StallMaintenance: "Maintenance",
	}
	applicationStatus = map[int]string{
		models.ApplicationPending:   "Pending",
		models.ApplicationApproved:  "Approved",
		models.ApplicationRejected:  "Rejected",
		models.ApplicationCancelled: "Cancelled",
	}
	paymentStatus = map[int]string{
		models.PaymentUnpaid: "Unpaid",
		models.PaymentPaid:   "Paid",
	}
	rentalStatus = map[int]string{
		models.RentalActive:     "Active",
		models.RentalTerminated: "Terminated",
	}
	rectificationStatus = map[int]string{
		models.RectificationNone:    "Not required",
		models.RectificationPending: "Pending",
		models.RectificationDone:    "Rectified",
	}
	feedbackStatus = map[int]string{
		models.FeedbackPending:    "Pending",
		models.FeedbackProcessing: "Processing",
		models.FeedbackResolved:   "Resolved",
	}
	announcementStatus = map[int]string{
		models.AnnouncementDraft:       "Draft",
		models.AnnouncementPublished:   "Published",
		models.AnnouncementUnpublished: "Unpublished",
	}
	userStatus = map[int]string{
		models.UserDisabled: "Disabled",
		models.UserEnabled:  "Enabled",
	}
)

func StallStatus(v int) string         { return label(stallStatus, v) }
func ApplicationStatus(v int) string   { return label(applicationStatus, v) }
func PaymentStatus(v int) string       { return label(paymentStatus, v) }
func RentalStatus(v int) string        { return label(rentalStatus, v) }
func RectificationStatus(v int) string { return label(rectificationStatus, v) }
func FeedbackStatus(v int) string      { return label(feedbackStatus, v) }
func AnnouncementStatus(v int) string  { return label(announcementStatus, v) }
func UserStatus(v int) string          { return label(userStatus, v) }

// Role renders a user role.
func Role(r models.Role) string {
	switch r {
	case models.RoleAdmin:
		return "Administrator"
	case models.RoleUser:
		return "User"
	}
	return Text(string(r))
}
