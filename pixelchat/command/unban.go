package command

import (
	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/dispatch"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/locale"
)

// Unban lifts an active ban so the player can join again. Their strike
// record is left untouched.
type Unban struct {
	Target string `name:"target"`

	adminAllower
	bans *dispatch.BanList
}

// NewUnban ...
func NewUnban(admins []string, bans *dispatch.BanList) cmd.Command {
	return cmd.New("unban", "Lift a player's ban", nil, Unban{adminAllower: adminAllower{admins: admins}, bans: bans})
}

// Run executes the unban command.
func (u Unban) Run(_ cmd.Source, o *cmd.Output, _ *world.Tx) {
	removed, err := u.bans.Remove(u.Target)
	if err != nil {
		o.Errorf("Failed to lift ban: %v", err)
		return
	}
	if !removed {
		o.Error(locale.Translate("ban.none", u.Target))
		return
	}
	o.Print(locale.Translate("ban.lifted", u.Target))
}
