package telegram

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"message-triage-assistant/internal/model"
	pkgResponse "message-triage-assistant/pkg/response"
	pkgTelegram "message-triage-assistant/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine to avoid the Telegram webhook timeout (Telegram
// expects a response within a few seconds, but classification plus
// retrieval or extraction can take longer than that).
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.From == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Telegram redelivers the same update until it sees a 200, so a slow
	// first attempt can produce duplicates.
	if found, _ := h.seen.ContainsOrAdd(update.UpdateID, struct{}{}); found {
		pkgResponse.OK(c, map[string]string{"status": "duplicate"})
		return
	}

	if !h.limiter(update.Message.Chat.ID).Allow() {
		h.l.Warnf(ctx, "telegram handler: rate limit exceeded for chat %d", update.Message.Chat.ID)
		pkgResponse.OK(c, map[string]string{"status": "throttled"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	// Critical: process in goroutine, return 200 immediately to Telegram
	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		h.processMessage(bgCtx, msg)
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message end to end. The triage
// use case never returns an error and always produces a reply, so the only
// failure mode left here is the send itself.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) {
	if msg.Text == "" {
		return
	}

	// ---- Built-in commands ----
	switch msg.Text {
	case "/start":
		h.send(ctx, msg.Chat.ID,
			"Здравствуйте! Я помощник компании. Задайте вопрос или опишите, что хотите заказать, и я отвечу или передам заявку менеджеру.")
		return
	case "/help":
		h.send(ctx, msg.Chat.ID,
			"Просто напишите сообщение:\n• вопрос — я поищу ответ в базе знаний;\n• заявку на покупку — я сохраню контакты и передам менеджеру.")
		return
	}

	// Show the typing indicator while the pipeline runs.
	if err := h.bot.SendChatAction(msg.Chat.ID, "typing"); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send chat action: %v", err)
	}

	in := model.Message{
		MessageID: msg.MessageID,
		UserID:    msg.From.ID,
		Username:  msg.From.Username,
		FirstName: msg.From.FirstName,
		LastName:  msg.From.LastName,
		ChatID:    msg.Chat.ID,
		Date:      time.Unix(msg.Date, 0),
		Text:      msg.Text,
	}

	out := h.uc.Handle(ctx, in)
	h.l.Infof(ctx, "telegram handler: message %d triaged as %s (%s)", msg.MessageID, out.Category, out.Status)

	h.send(ctx, msg.Chat.ID, out.Reply)
}

func (h *handler) send(ctx context.Context, chatID int64, text string) {
	if err := h.bot.SendMessage(chatID, text); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to send reply to chat %d: %v", chatID, err)
	}
}
