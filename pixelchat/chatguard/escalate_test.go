package chatguard

import (
	"testing"

	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/strikes"
	"github.com/stretchr/testify/require"
)

func TestActionFor_Bands(t *testing.T) {
	th := Thresholds{Kick: 3, TempBan: 5, Ban: 7}

	cases := []struct {
		count int
		want  strikes.Action
	}{
		{0, strikes.ActionNone},
		{1, strikes.ActionNone},
		{2, strikes.ActionNone},
		{3, strikes.ActionKick},
		{4, strikes.ActionKick},
		{5, strikes.ActionTempBan},
		{6, strikes.ActionTempBan},
		{7, strikes.ActionBan},
		{8, strikes.ActionBan},
		{100, strikes.ActionBan},
	}
	for _, c := range cases {
		require.Equal(t, c.want, actionFor(c.count, th), "count %d", c.count)
	}
}

func TestActionFor_EqualThresholdsCollapseBands(t *testing.T) {
	th := Thresholds{Kick: 3, TempBan: 3, Ban: 5}

	// The kick band is empty, a third strike goes straight to a temp ban.
	require.Equal(t, strikes.ActionTempBan, actionFor(3, th))
	require.Equal(t, strikes.ActionTempBan, actionFor(4, th))
	require.Equal(t, strikes.ActionBan, actionFor(5, th))
}

func TestActionFor_SingleActionPerStrike(t *testing.T) {
	th := Thresholds{Kick: 1, TempBan: 1, Ban: 1}
	require.Equal(t, strikes.ActionBan, actionFor(1, th))
}
