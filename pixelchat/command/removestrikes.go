package command

import (
	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/chatguard"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/locale"
)

// RemoveStrikes deletes a player's strike record entirely, history included.
type RemoveStrikes struct {
	Target string `name:"target"`

	adminAllower
}

// NewRemoveStrikes ...
func NewRemoveStrikes(admins []string) cmd.Command {
	return cmd.New("removestrikes", "Delete a player's strike record", nil, RemoveStrikes{adminAllower: adminAllower{admins: admins}})
}

// Run executes the removestrikes command.
func (r RemoveStrikes) Run(_ cmd.Source, o *cmd.Output, tx *world.Tx) {
	store := chatguard.GlobalGuard().Store()

	uuid, name, ok := resolveTarget(tx, r.Target, store)
	if !ok {
		o.Error(locale.Translate("strike.unknown", r.Target))
		return
	}

	if err := store.Remove(uuid); err != nil {
		o.Errorf("Failed to remove strike record: %v", err)
		return
	}
	o.Print(locale.Translate("strike.removed", name))
}
