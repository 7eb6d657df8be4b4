package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
)

func TestDateTime(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Empty", "", "-"},
		{"Blank", "   ", "-"},
		{"Garbage", "not a date", "-"},
		{"ISOWithZone", "2024-03-05T09:07:00Z", "2024-03-05 09:07"},
		{"ISOLocal", "2024-03-05T09:07:31", "2024-03-05 09:07"},
		{"ISOFraction", "2024-03-05T09:07:31.123", "2024-03-05 09:07"},
		{"SpaceSeparated", "2024-03-05 21:30:00", "2024-03-05 21:30"},
		{"DateOnly", "2024-03-05", "2024-03-05 00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateTime(tt.in))
		})
	}
}

func TestDate(t *testing.T) {
	assert.Equal(t, "-", Date(""))
	assert.Equal(t, "-", Date("2024-13-40"))
	assert.Equal(t, "2024-03-05", Date("2024-03-05T23:59:59"))
	assert.Equal(t, "2024-03-05", Date("2024-03-05"))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "0.00", Money(0))
	assert.Equal(t, "1,234.50", Money(1234.5))
	assert.Equal(t, "1,000,000.00", Money(1e6))
	assert.Equal(t, "12,345", Number(12345))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Rented", StallStatus(models.StallRented))
	assert.Equal(t, "Cancelled", ApplicationStatus(models.ApplicationCancelled))
	assert.Equal(t, "Paid", PaymentStatus(models.PaymentPaid))
	assert.Equal(t, "Terminated", RentalStatus(models.RentalTerminated))
	assert.Equal(t, "Rectified", RectificationStatus(models.RectificationDone))
	assert.Equal(t, "Processing", FeedbackStatus(models.FeedbackProcessing))
	assert.Equal(t, "Draft", AnnouncementStatus(models.AnnouncementDraft))
	assert.Equal(t, "Disabled", UserStatus(models.UserDisabled))
	assert.Equal(t, "Unknown (9)", StallStatus(9))

	assert.Equal(t, "Administrator", Role(models.RoleAdmin))
	assert.Equal(t, "User", Role(models.RoleUser))
	assert.Equal(t, "-", Role(""))
	assert.Equal(t, "-", Text(""))
}
