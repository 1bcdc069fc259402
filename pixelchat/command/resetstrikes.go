package command

import (
	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/chatguard"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/locale"
)

// ResetStrikes sets a player's strike count back to zero while keeping their
// violation history.
type ResetStrikes struct {
	Target string `name:"target"`

	adminAllower
}

// NewResetStrikes ...
func NewResetStrikes(admins []string) cmd.Command {
	return cmd.New("resetstrikes", "Reset a player's strike count to zero", nil, ResetStrikes{adminAllower: adminAllower{admins: admins}})
}

// Run executes the resetstrikes command.
func (r ResetStrikes) Run(_ cmd.Source, o *cmd.Output, tx *world.Tx) {
	store := chatguard.GlobalGuard().Store()

	uuid, name, ok := resolveTarget(tx, r.Target, store)
	if !ok {
		o.Error(locale.Translate("strike.unknown", r.Target))
		return
	}

	if err := store.Reset(uuid); err != nil {
		o.Errorf("Failed to reset strikes: %v", err)
		return
	}
	o.Print(locale.Translate("strike.reset", name))
}
