package dispatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubstitute(t *testing.T) {
	cases := []struct {
		name     string
		template string
		player   string
		reason   string
		want     string
	}{
		{"both placeholders", "kick <player> <reason>", "Steve", "spam", "kick Steve spam"},
		{"player only", "warn <player>", "Steve", "spam", "warn Steve"},
		{"no placeholders", "broadcast chat rules", "Steve", "spam", "broadcast chat rules"},
		{"repeated placeholders", "log <player> <player>: <reason>", "Steve", "spam", "log Steve Steve: spam"},
		{"empty reason", "kick <player> <reason>", "Steve", "", "kick Steve "},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, Substitute(c.template, c.player, c.reason))
		})
	}
}
