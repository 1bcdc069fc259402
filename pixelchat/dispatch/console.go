package dispatch

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/locale"
	"github.com/sandertv/gophertunnel/minecraft/text"
)

// Executor runs a dispatched action inside the authoritative world
// transaction. Implementations must not retain the transaction.
type Executor interface {
	Execute(tx *world.Tx, a Action) error
}

// Console interprets substituted command lines the way a vanilla console
// would: kick, tempban, ban and unban are handled structurally, anything else
// is rejected.
type Console struct {
	log  *slog.Logger
	bans *BanList

	tempBanDuration time.Duration
}

// NewConsole ...
func NewConsole(log *slog.Logger, bans *BanList, tempBanDuration time.Duration) *Console {
	return &Console{
		log:             log,
		bans:            bans,
		tempBanDuration: tempBanDuration,
	}
}

// Execute parses the command line of an action and applies it. The expected
// shape is "<verb> <player> <reason...>", matching the default templates.
func (c *Console) Execute(tx *world.Tx, a Action) error {
	fields := strings.Fields(a.Command)
	if len(fields) < 2 {
		return fmt.Errorf("malformed command %q", a.Command)
	}
	verb, target := strings.ToLower(fields[0]), fields[1]
	reason := strings.Join(fields[2:], " ")
	if reason == "" {
		reason = locale.Translate("strike.no-reason")
	}

	switch verb {
	case "kick":
		p, ok := findPlayer(tx, target)
		if !ok {
			return fmt.Errorf("cannot kick %q: not online", target)
		}
		p.Disconnect(text.Colourf("<red>%s</red>", reason))
		c.log.Info("Kicked player", "player", target, "reason", reason)
	case "tempban":
		expiry := time.Now().Add(c.tempBanDuration).UnixMilli()
		if err := c.ban(tx, a, target, reason, expiry); err != nil {
			return err
		}
	case "ban":
		if err := c.ban(tx, a, target, reason, 0); err != nil {
			return err
		}
	case "unban":
		removed, err := c.bans.Remove(target)
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("cannot unban %q: no active ban", target)
		}
		c.log.Info("Unbanned player", "player", target)
	default:
		return fmt.Errorf("unsupported command verb %q in %q", verb, a.Command)
	}
	return nil
}

// ban records the ban and disconnects the target if they are online. A ban on
// an offline player still lands in the ban list and is enforced at login.
func (c *Console) ban(tx *world.Tx, a Action, target, reason string, expiry int64) error {
	err := c.bans.Add(Ban{
		Name:   target,
		UUID:   a.PlayerUUID,
		Reason: reason,
		Expiry: expiry,
	})
	if err != nil {
		return err
	}

	if p, ok := findPlayer(tx, target); ok {
		if expiry == 0 {
			p.Disconnect(text.Colourf("<red>%s %s</red>", locale.Translate("player.ban-permanent"), reason))
		} else {
			p.Disconnect(text.Colourf("<red>%s %s</red>", locale.Translate("player.ban-temporary"), reason))
		}
	}
	c.log.Info("Banned player", "player", target, "reason", reason, "expiry", expiry)
	return nil
}

// findPlayer looks an online player up by name within the transaction.
func findPlayer(tx *world.Tx, name string) (*player.Player, bool) {
	for ent := range tx.Players() {
		p, ok := ent.(*player.Player)
		if !ok {
			continue
		}
		if strings.EqualFold(p.Name(), name) {
			return p, true
		}
	}
	return nil, false
}
