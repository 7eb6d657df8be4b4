package middleware

import (
	"context"
	"encoding/gob"
	"sync"

	"github.com/gin-contrib/sessions"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
	"github.com/FACorreiaa/go-stallui/internal/pkg/apiclient"
)

const flashKey = "notices"

func init() {
	gob.Register(models.Notice{})
}

// FlashNotifier queues notices in the browser session until the next page
// render consumes them. Concurrent API calls of one request share it.
type FlashNotifier struct {
	mu     sync.Mutex
	sess   sessions.Session
	logger *zap.Logger
}

func NewFlashNotifier(sess sessions.Session, logger *zap.Logger) *FlashNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FlashNotifier{sess: sess, logger: logger}
}

// Notify saves immediately so a following redirect carries the cookie.
func (f *FlashNotifier) Notify(_ context.Context, level apiclient.Level, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sess.AddFlash(models.Notice{Level: string(level), Message: message}, flashKey)
	if err := f.sess.Save(); err != nil {
		f.logger.Warn("Failed to save flash notice", zap.Error(err))
	}
}

// Drain returns and removes every queued notice.
func (f *FlashNotifier) Drain() []models.Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw := f.sess.Flashes(flashKey)
	if len(raw) == 0 {
		return nil
	}
	if err := f.sess.Save(); err != nil {
		f.logger.Warn("Failed to save drained flashes", zap.Error(err))
	}
	notices := make([]models.Notice, 0, len(raw))
	for _, v := range raw {
		if n, ok := v.(models.Notice); ok {
			notices = append(notices, n)
		}
	}
	return notices
}
