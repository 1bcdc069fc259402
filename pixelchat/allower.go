package pixelchat

import (
	"net"

	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/dispatch"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/locale"
	"github.com/sandertv/gophertunnel/minecraft/protocol/login"
	"github.com/sandertv/gophertunnel/minecraft/text"
)

// Allower refuses connections from players with an active ban list entry.
type Allower struct {
	bans *dispatch.BanList
}

// Allow ...
func (a *Allower) Allow(_ net.Addr, d login.IdentityData, _ login.ClientData) (string, bool) {
	b, ok := a.bans.Lookup(d.DisplayName)
	if !ok {
		return "", true
	}
	if b.Permanent() {
		return text.Colourf("<red>%s</red>", locale.Translate("banned.permanent", b.Reason)), false
	}
	return text.Colourf("<red>%s</red>", locale.Translate("banned.temporary", b.ExpiryTime().Format("2006-01-02 15:04:05"), b.Reason)), false
}
