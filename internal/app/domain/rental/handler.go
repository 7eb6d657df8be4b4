package rental

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/go-stallui/internal/app/api"
	"github.com/FACorreiaa/go-stallui/internal/app/handlers"
	"github.com/FACorreiaa/go-stallui/internal/app/models"
	"github.com/FACorreiaa/go-stallui/internal/app/pages"
	"github.com/FACorreiaa/go-stallui/internal/pkg/format"
)

const adminPath = "/admin/rental"

type RentalHandlers struct {
	*handlers.BaseHandler
}

func NewRentalHandlers(base *handlers.BaseHandler) *RentalHandlers {
	return &RentalHandlers{BaseHandler: base}
}

func period(r models.Rental) string {
	return format.Date(r.StartDate) + " to " + format.Date(r.EndDate)
}

// My lists the signed-in user's rentals.
func (h *RentalHandlers) My(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	var q models.PageQuery
	if err := handlers.BindQuery(c, &q); err != nil {
		h.Fail(c, "My rentals", err)
		return
	}
	handlers.BindPage(&q)
	result, err := sc.API.GetMyRentals(c.Request.Context(), q)
	if err != nil {
		h.Fail(c, "My rentals", err)
		return
	}

	rows := make([]pages.Row, 0, len(result.Records))
	for _, r := range result.Records {
		rows = append(rows, pages.Row{
			{Text: r.StallNo + " " + r.StallName, Href: "/stall/" + handlers.ID(r.StallID)},
			{Text: period(r)},
			{Text: format.Money(r.RentAmount)},
			{Text: format.Money(r.Deposit)},
			{Text: format.PaymentStatus(r.PaymentStatus)},
			{Text: format.RentalStatus(r.Status)},
		})
	}
	h.RenderPage(c, "My rentals", "Rentals", pages.Section("My rentals",
		pages.Table{
			Columns: []string{"Stall", "Period", "Rent", "Deposit", "Payment", "Status"},
			Rows:    rows,
			Empty:   "You have no rentals.",
		}.Component(),
		handlers.Pager(c, result),
	))
}

func (h *RentalHandlers) AdminList(c *gin.Context) {
	sc, ok := h.Session(c)
	if !ok {
		return
	}
	var q models.RentalQuery
	if err := handlers.BindQuery(c, &q); err != nil {
		h.Fail(c, "Rental management", err)
		return
	}
	handlers.BindPage(&q.PageQuery)
	result, err := sc.API.GetRentalList(c.Request.Context(), q)
	if err != nil {
		h.Fail(c, "Rental management", err)
		return
	}

	rows := make([]pages.Row, 0, len(result.Records))
	for _, r := range result.Records {
		base := adminPath + "/" + handlers.ID(r.ID)
		var actions []pages.Action
		if r.Status == models.RentalActive {
			next := models.PaymentPaid
			label := "Mark paid"
			if r.PaymentStatus == models.PaymentPaid {
				next, label = models.PaymentUnpaid, "Mark unpaid"
			}
			actions = append(actions,
				pages.Action{Label: label, Href: base + "/payment", Method: "post", Fields: map[string]string{"paymentStatus": strconv.Itoa(next)}},
				pages.Action{Label: "Terminate", Href: base + "/terminate", Method: "post", Confirm: "Terminate this rental?", Variant: "danger"},
			)
		}
		rows = append(rows, pages.Row{
			{Text: format.Text(r.Username)},
			{Text: r.StallNo + " " + r.StallName},
			{Text: period(r)},
			{Text: format.Money(r.RentAmount)},
			{Text: format.PaymentStatus(r.PaymentStatus)},
			{Text: format.RentalStatus(r.Status)},
			{Actions: actions},
		})
	}

	statusOpts := []pages.Option{{Value: "", Label: "All statuses"}}
	for _, s := range []int{models.RentalActive, models.RentalTerminated} {
		statusOpts = append(statusOpts, pages.Option{Value: strconv.Itoa(s), Label: format.RentalStatus(s)})
	}
	h.RenderAdminPage(c, "Rental management", "Rentals", pages.Section("Rentals",
		pages.Form{
			Action: adminPath,
			Submit: "Filter",
			Fields: []pages.Field{
				{Name: "status", Label: "Status", Type: "select", Value: c.Query("status"), Options: statusOpts},
				{Name: "stallId", Label: "Stall id", Type: "number", Value: c.Query("stallId")},
			},
		}.Component(),
		pages.Table{Columns: []string{"Tenant", "Stall", "Period", "Rent", "Payment", "Status", ""}, Rows: rows}.Component(),
		handlers.Pager(c, result),
	))
}

func (h *RentalHandlers) AdminPayment(c *gin.Context) {
	status, ok := handlers.FormInt(c, "paymentStatus")
	if !ok {
		h.Complete(c, models.ErrValidation, "", "", adminPath)
		return
	}
	h.Mutate(c, "Payment status updated", adminPath, func(ctx context.Context, a *api.API, id int64) error {
		return a.UpdatePaymentStatus(ctx, id, status)
	})
}

func (h *RentalHandlers) AdminTerminate(c *gin.Context) {
	h.Mutate(c, "Rental terminated", adminPath, func(ctx context.Context, a *api.API, id int64) error {
		return a.TerminateRental(ctx, id)
	})
}
