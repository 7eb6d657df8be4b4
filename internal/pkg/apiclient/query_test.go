package apiclient

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
)

func TestEncodeQuery(t *testing.T) {
	t.Run("skips nil optional fields", func(t *testing.T) {
		q := models.StallQuery{
			PageQuery: models.PageQuery{PageNum: models.Int(2), PageSize: models.Int(20)},
			Keyword:   models.String("fruit"),
		}
		assert.Equal(t, url.Values{
			"pageNum":  {"2"},
			"pageSize": {"20"},
			"keyword":  {"fruit"},
		}, EncodeQuery(q))
	})

	t.Run("pointer to struct", func(t *testing.T) {
		q := &models.FeedbackQuery{Status: models.Int(0)}
		assert.Equal(t, "status=0", EncodeQuery(q).Encode())
	})

	t.Run("nil and maps", func(t *testing.T) {
		assert.Empty(t, EncodeQuery(nil))
		assert.Empty(t, EncodeQuery((*models.StallQuery)(nil)))
		assert.Equal(t, "status=1", EncodeQuery(map[string]any{"status": 1, "skip": nil}).Encode())
	})
}
