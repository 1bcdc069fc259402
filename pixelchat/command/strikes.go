package command

import (
	"slices"

	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/chatguard"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/locale"
)

// Strikes shows a player's strike count and violation history.
type Strikes struct {
	Target string `name:"target"`

	adminAllower
}

// NewStrikes ...
func NewStrikes(admins []string) cmd.Command {
	return cmd.New("strikes", "Show a player's strike count and history", nil, Strikes{adminAllower: adminAllower{admins: admins}})
}

// Run executes the strikes command.
func (s Strikes) Run(_ cmd.Source, o *cmd.Output, tx *world.Tx) {
	store := chatguard.GlobalGuard().Store()

	uuid, name, ok := resolveTarget(tx, s.Target, store)
	if !ok {
		o.Error(locale.Translate("strike.unknown", s.Target))
		return
	}

	rec, ok := store.Lookup(uuid)
	if !ok || len(rec.History) == 0 {
		o.Print(locale.Translate("strike.none", name))
		return
	}

	o.Print(locale.Translate("strike.count", name, rec.Strikes))

	keys := make([]string, 0, len(rec.History))
	for k := range rec.History {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		entry := rec.History[k]
		o.Printf("%s - %s (%s)", k, entry.Reason, entry.Action)
	}
}
