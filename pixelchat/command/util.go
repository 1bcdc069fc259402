// Package command provides the administrative moderation commands.
package command

import (
	"slices"
	"strings"

	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/strikes"
)

// adminAllower restricts a command to the console and to players named in the
// configured admin list.
type adminAllower struct {
	admins []string
}

// Allow ...
func (a adminAllower) Allow(s cmd.Source) bool {
	p, ok := s.(*player.Player)
	if !ok {
		return true
	}
	return slices.ContainsFunc(a.admins, func(n string) bool {
		return strings.EqualFold(n, p.Name())
	})
}

// resolveTarget resolves a command target to a player UUID and display name,
// preferring the online player and falling back to the strike ledger so
// offline players remain addressable.
func resolveTarget(tx *world.Tx, target string, store *strikes.Store) (string, string, bool) {
	for ent := range tx.Players() {
		p, ok := ent.(*player.Player)
		if !ok {
			continue
		}
		if strings.EqualFold(p.Name(), target) {
			return p.UUID().String(), p.Name(), true
		}
	}
	if uuid, ok := store.FindByName(target); ok {
		rec, _ := store.Lookup(uuid)
		return uuid, rec.Name, true
	}
	return "", "", false
}
