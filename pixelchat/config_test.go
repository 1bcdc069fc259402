package pixelchat

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/chatguard"
	"github.com/stretchr/testify/require"
)

func TestPolicy_MessageHandling(t *testing.T) {
	cases := []struct {
		name     string
		mode     string
		want     chatguard.Handling
		warnsLog bool
	}{
		{"block", "BLOCK", chatguard.HandlingBlock, false},
		{"censor", "CENSOR", chatguard.HandlingCensor, false},
		{"lowercase falls back", "censor", chatguard.HandlingBlock, true},
		{"unknown falls back", "DELETE", chatguard.HandlingBlock, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			conf := DefaultConfig()
			conf.API.Key = "real-key"
			conf.ChatGuard.MessageHandling = c.mode

			pc := &PixelChat{log: slog.New(slog.NewTextHandler(&buf, nil)), conf: conf}
			p := pc.policy()
			require.Equal(t, c.want, p.Handling)
			if c.warnsLog {
				require.Contains(t, buf.String(), "unrecognized message handling mode")
			} else {
				require.NotContains(t, buf.String(), "unrecognized message handling mode")
			}
		})
	}
}

func TestPolicy_PlaceholderAPIKeyDisables(t *testing.T) {
	var buf bytes.Buffer
	conf := DefaultConfig()

	pc := &PixelChat{log: slog.New(slog.NewTextHandler(&buf, nil)), conf: conf}
	require.False(t, pc.policy().Enabled)

	conf.API.Key = "real-key"
	pc = &PixelChat{log: slog.New(slog.NewTextHandler(&buf, nil)), conf: conf}
	require.True(t, pc.policy().Enabled)
}

func TestParseLogLevel(t *testing.T) {
	lvl, err := ParseLogLevel("debug")
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)

	_, err = ParseLogLevel("verbose")
	require.Error(t, err)
}
