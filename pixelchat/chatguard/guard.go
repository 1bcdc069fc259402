// Package chatguard implements the chat moderation pipeline: classification,
// rule evaluation and the strike escalation ladder.
package chatguard

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/classify"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/dispatch"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/locale"
	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/strikes"
)

// Classifier turns free message text into a structured verdict. Any error
// makes the pipeline fail open.
type Classifier interface {
	Classify(message string) (classify.Classification, error)
}

// Dispatcher hands enforcement actions off to the authoritative thread.
type Dispatcher interface {
	Dispatch(a dispatch.Action)
}

// globalGuard ...
var globalGuard *Guard

// GlobalGuard returns the global guard instance.
func GlobalGuard() *Guard {
	return globalGuard
}

// Guard is the moderation pipeline. Process is safe to call from any number
// of concurrent message workers; all game-state mutation goes through the
// dispatcher.
type Guard struct {
	log        *slog.Logger
	classifier Classifier
	store      *strikes.Store
	dispatcher Dispatcher
	policy     Policy
}

// NewGuard creates the global guard instance with the provided collaborators
// and policy snapshot.
func NewGuard(log *slog.Logger, classifier Classifier, store *strikes.Store, dispatcher Dispatcher, policy Policy) *Guard {
	globalGuard = &Guard{
		log:        log,
		classifier: classifier,
		store:      store,
		dispatcher: dispatcher,
		policy:     policy,
	}
	return globalGuard
}

// Policy returns the active policy snapshot.
func (g *Guard) Policy() Policy {
	return g.policy
}

// Store returns the strike store, for administrative commands and the API.
func (g *Guard) Store() *strikes.Store {
	return g.store
}

// Bypassed reports whether the named player is exempt from moderation.
func (g *Guard) Bypassed(name string) bool {
	return slices.ContainsFunc(g.policy.BypassPlayers, func(n string) bool {
		return strings.EqualFold(n, name)
	})
}

// Process runs the moderation pipeline for a single incoming message and
// returns the verdict synchronously. On a violation the strike system is
// triggered before returning; any resulting punishment is dispatched
// asynchronously. Classification failures fail open: the message is allowed
// and the strike system is never invoked.
func (g *Guard) Process(message, uuid, name string) Result {
	if !g.policy.Enabled {
		return Result{Verdict: VerdictAllowed}
	}

	c, err := g.classifier.Classify(message)
	if err != nil {
		g.log.Error("failed to classify message, allowing it through", "player", name, "error", err)
		sentry.CaptureException(err)
		return Result{Verdict: VerdictAllowed}
	}

	if !ShouldBlock(c, g.policy) {
		return Result{Verdict: VerdictAllowed}
	}

	verdict := VerdictBlocked
	if g.policy.Handling == HandlingCensor {
		verdict = VerdictCensored
	}
	g.log.Info("Message violated chat guard rules", "player", name, "verdict", verdict.String(), "reason", c.Reason, "message", message)

	if g.policy.UseBuiltInStrikeSystem {
		g.StrikePlayer(uuid, name, c.Reason)
	} else {
		g.dispatcher.Dispatch(dispatch.Action{
			PlayerUUID: uuid,
			PlayerName: name,
			Command:    dispatch.Substitute(g.policy.CustomStrikeCommand, name, c.Reason),
		})
	}

	return Result{Verdict: verdict, Reason: c.Reason}
}

// StrikePlayer records a strike and, when the new count crosses an
// escalation threshold, dispatches the corresponding punishment command. A
// persistence failure is logged and reported but does not roll back the
// already decided punishment.
func (g *Guard) StrikePlayer(uuid, name, reason string) (int, strikes.Action) {
	count, action, err := g.store.RecordStrike(uuid, name, reason, func(count int) strikes.Action {
		return actionFor(count, g.policy.Thresholds)
	})
	if err != nil {
		g.log.Error("failed to persist strike", "player", name, "error", err)
		sentry.CaptureException(err)
	}
	g.log.Info("Player struck", "player", name, "reason", reason, "strikes", count, "action", string(action))

	var template, langKey string
	switch action {
	case strikes.ActionKick:
		template, langKey = g.policy.KickCommand, "player.kick"
	case strikes.ActionTempBan:
		template, langKey = g.policy.TempBanCommand, "player.ban-temporary"
	case strikes.ActionBan:
		template, langKey = g.policy.BanCommand, "player.ban-permanent"
	default:
		return count, action
	}

	g.dispatcher.Dispatch(dispatch.Action{
		PlayerUUID: uuid,
		PlayerName: name,
		Command:    dispatch.Substitute(template, name, locale.Translate(langKey)+" "+reason),
	})
	return count, action
}
