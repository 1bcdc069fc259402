package chatguard

import "github.com/pixelmindmc/pixelchat-guardian/pixelchat/strikes"

// actionFor maps a strike count onto the escalation ladder. Bands are
// half-open with inclusive lower bounds, so a count landing exactly on a
// threshold falls into the band that threshold opens and a single violation
// can never fire two punishments, even with equal thresholds.
func actionFor(count int, t Thresholds) strikes.Action {
	switch {
	case count >= t.Kick && count < t.TempBan:
		return strikes.ActionKick
	case count >= t.TempBan && count < t.Ban:
		return strikes.ActionTempBan
	case count >= t.Ban:
		return strikes.ActionBan
	default:
		return strikes.ActionNone
	}
}
