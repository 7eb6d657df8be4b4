package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-stallui/internal/app/api"
	"github.com/FACorreiaa/go-stallui/internal/app/models"
	"github.com/FACorreiaa/go-stallui/internal/pkg/apiclient"
)

// totalsDoer answers every list call with a page whose total is looked up
// by path, and records the page size it was asked for.
type totalsDoer struct {
	mu     sync.Mutex
	totals map[string]int64
	fail   string
	sizes  []int
}

func (d *totalsDoer) Do(_ context.Context, req apiclient.Request, out any) error {
	key := req.Path
	var page models.PageQuery
	switch q := req.Query.(type) {
	case models.StallQuery:
		page = q.PageQuery
		if q.Status != nil {
			key = fmt.Sprintf("%s?status=%d", key, *q.Status)
		}
	case models.UserQuery:
		page = q.PageQuery
	case models.ApplicationQuery:
		page = q.PageQuery
	case models.RentalQuery:
		page = q.PageQuery
	case models.FeedbackQuery:
		page = q.PageQuery
	case models.HygieneQuery:
		page = q.PageQuery
	case models.AnnouncementQuery:
		page = q.PageQuery
	}

	d.mu.Lock()
	if page.PageSize != nil {
		d.sizes = append(d.sizes, *page.PageSize)
	}
	d.mu.Unlock()

	if key == d.fail {
		return &apiclient.Error{Code: 500, Message: "backend down"}
	}
	raw, _ := json.Marshal(map[string]int64{"total": d.totals[key]})
	return json.Unmarshal(raw, out)
}

func TestLoadCounters(t *testing.T) {
	totals := map[string]int64{
		"/user/admin/list":         12,
		"/stall/list":              40,
		"/stall/list?status=0":     7,
		"/application/admin/list":  3,
		"/rental/admin/list":       25,
		"/feedback/admin/list":     2,
		"/hygiene/list":            9,
		"/announcement/admin/list": 4,
	}

	t.Run("ReadsEveryTotal", func(t *testing.T) {
		doer := &totalsDoer{totals: totals}

		got, err := LoadCounters(context.Background(), api.New(doer))

		require.NoError(t, err)
		assert.Equal(t, Counters{
			Users:                  12,
			Stalls:                 40,
			IdleStalls:             7,
			PendingApplications:    3,
			ActiveRentals:          25,
			PendingFeedback:        2,
			Inspections:            9,
			PublishedAnnouncements: 4,
		}, *got)

		require.Len(t, doer.sizes, 8)
		for _, size := range doer.sizes {
			assert.Equal(t, 1, size)
		}
	})

	t.Run("FirstFailureWins", func(t *testing.T) {
		doer := &totalsDoer{totals: totals, fail: "/rental/admin/list"}

		got, err := LoadCounters(context.Background(), api.New(doer))

		assert.Nil(t, got)
		var apiErr *apiclient.Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "backend down", apiErr.Message)
	})
}
