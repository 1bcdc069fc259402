package dispatch

import "strings"

// Action is a single enforcement request handed to the dispatcher. Command is
// a fully substituted command line to be executed as the server console.
type Action struct {
	PlayerUUID string
	PlayerName string
	Command    string
}

// Substitute replaces the <player> and <reason> placeholders in a configured
// command template.
func Substitute(template, playerName, reason string) string {
	line := strings.ReplaceAll(template, "<player>", playerName)
	return strings.ReplaceAll(line, "<reason>", reason)
}
