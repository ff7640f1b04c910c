package telegram

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"message-triage-assistant/internal/triage"
	pkgLog "message-triage-assistant/pkg/log"
	pkgTelegram "message-triage-assistant/pkg/telegram"
)

// dedupeCacheSize bounds how many recent update IDs are remembered.
// Telegram retries webhook delivery on slow responses, so duplicates
// arrive in bursts close together.
const dedupeCacheSize = 1024

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l   pkgLog.Logger
	uc  triage.UseCase
	bot *pkgTelegram.Bot

	seen *lru.Cache[int64, struct{}]

	mu       sync.Mutex
	limiters map[int64]*rate.Limiter
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc triage.UseCase, bot *pkgTelegram.Bot) Handler {
	seen, _ := lru.New[int64, struct{}](dedupeCacheSize)
	return &handler{
		l:        l,
		uc:       uc,
		bot:      bot,
		seen:     seen,
		limiters: make(map[int64]*rate.Limiter),
	}
}

// limiter returns the per-chat limiter, creating it on first use.
// One message per second with a burst of 3 tracks how fast a human
// actually types; anything above that is a flood.
func (h *handler) limiter(chatID int64) *rate.Limiter {
	h.mu.Lock()
	defer h.mu.Unlock()

	lim, ok := h.limiters[chatID]
	if !ok {
		lim = rate.NewLimiter(rate.Every(time.Second), 3)
		h.limiters[chatID] = lim
	}
	return lim
}
