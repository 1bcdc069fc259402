// Package handler provides the player handler routing chat through the
// moderation pipeline.
package handler

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/player/chat"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/chatguard"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/locale"
	"github.com/sandertv/gophertunnel/minecraft/text"
)

// PlayerHandler intercepts chat events. Every message is cancelled at the
// source, moderated on its own worker goroutine and re-broadcast according to
// the verdict, so a slow classification never stalls the world thread or
// other players' messages.
type PlayerHandler struct {
	guard *chatguard.Guard

	player.NopHandler
}

// NewPlayerHandler ...
func NewPlayerHandler(guard *chatguard.Guard) *PlayerHandler {
	return &PlayerHandler{guard: guard}
}

// HandleChat ...
func (h *PlayerHandler) HandleChat(ctx *player.Context, message *string) {
	ctx.Cancel()
	p := ctx.Val()

	msg := *message
	name, uuid := p.Name(), p.UUID().String()

	if h.guard.Bypassed(name) {
		_, _ = chat.Global.WriteString(formatChat(name, msg))
		return
	}

	handle := p.H()
	go func() {
		res := h.guard.Process(msg, uuid, name)
		switch res.Verdict {
		case chatguard.VerdictAllowed:
			_, _ = chat.Global.WriteString(formatChat(name, msg))
			return
		case chatguard.VerdictCensored:
			_, _ = chat.Global.WriteString(formatChat(name, strings.Repeat("*", utf8.RuneCountInString(msg))))
		case chatguard.VerdictBlocked:
			// Dropped entirely.
		}

		if !h.guard.Policy().NotifyUser {
			return
		}
		key := "message-blocked"
		if res.Verdict == chatguard.VerdictCensored {
			key = "message-censored"
		}
		notice := h.guard.Policy().Prefix + locale.Translate(key) + " " + text.Colourf("<red>%s</red>", res.Reason)
		handle.ExecWorld(func(_ *world.Tx, e world.Entity) {
			if pl, ok := e.(*player.Player); ok {
				pl.Message(notice)
			}
		})
	}()
}

// formatChat ...
func formatChat(name, message string) string {
	return fmt.Sprintf("<%s> %s", name, message)
}
