package command

import (
	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/chatguard"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/locale"
)

// Strike manually records a strike against a player, running the same
// escalation ladder as the automatic chat guard.
type Strike struct {
	Target string `name:"target"`
	Reason string `name:"reason" optional:"true" type:"text"`

	adminAllower
}

// NewStrike creates a new strike command restricted to the given admin names.
func NewStrike(admins []string) cmd.Command {
	return cmd.New("strike", "Record a strike against a player", nil, Strike{adminAllower: adminAllower{admins: admins}})
}

// Run executes the strike command.
func (s Strike) Run(_ cmd.Source, o *cmd.Output, tx *world.Tx) {
	guard := chatguard.GlobalGuard()

	reason := s.Reason
	if reason == "" {
		reason = locale.Translate("strike.no-reason")
	}

	uuid, name, ok := resolveTarget(tx, s.Target, guard.Store())
	if !ok {
		o.Error(locale.Translate("strike.unknown", s.Target))
		return
	}

	count, _ := guard.StrikePlayer(uuid, name, reason)
	o.Print(locale.Translate("strike.struck", name, count))
}
