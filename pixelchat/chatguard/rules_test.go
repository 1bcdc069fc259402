package chatguard

import (
	"testing"

	"github.com/pixelmindmc/pixelchat-guardian/pixelchat/classify"
	"github.com/stretchr/testify/require"
)

// allRules ...
func allRules() Rules {
	return Rules{
		OffensiveLanguage: true,
		Usernames:         true,
		Passwords:         true,
		HomeAddresses:     true,
		EmailAddresses:    true,
		Websites:          true,
		SexualContent:     true,
	}
}

func TestShouldBlock_PerRule(t *testing.T) {
	cases := []struct {
		name           string
		rules          Rules
		classification classify.Classification
	}{
		{"offensive language", Rules{OffensiveLanguage: true}, classify.Classification{IsOffensiveLanguage: true}},
		{"username", Rules{Usernames: true}, classify.Classification{IsUsername: true}},
		{"password", Rules{Passwords: true}, classify.Classification{IsPassword: true}},
		{"home address", Rules{HomeAddresses: true}, classify.Classification{IsHomeAddress: true}},
		{"email address", Rules{EmailAddresses: true}, classify.Classification{IsEmailAddress: true}},
		{"website", Rules{Websites: true}, classify.Classification{IsWebsite: true}},
		{"sexual content", Rules{SexualContent: true}, classify.Classification{IsSexualContent: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.True(t, ShouldBlock(c.classification, Policy{Rules: c.rules}))
		})
	}
}

func TestShouldBlock_DisabledRuleDoesNotBlock(t *testing.T) {
	// Every flag set, but the only matching rule is off.
	c := classify.Classification{IsWebsite: true}
	r := allRules()
	r.Websites = false
	require.False(t, ShouldBlock(c, Policy{Rules: r}))
}

func TestShouldBlock_CleanMessageNeverBlocks(t *testing.T) {
	require.False(t, ShouldBlock(classify.Classification{}, Policy{Rules: allRules()}))
}

func TestShouldBlock_AllRulesOffNeverBlocks(t *testing.T) {
	c := classify.Classification{
		IsOffensiveLanguage: true,
		IsUsername:          true,
		IsPassword:          true,
		IsHomeAddress:       true,
		IsEmailAddress:      true,
		IsWebsite:           true,
		IsSexualContent:     true,
	}
	require.False(t, ShouldBlock(c, Policy{}))
}

func TestShouldBlock_AnySingleMatchSuffices(t *testing.T) {
	c := classify.Classification{IsPassword: true}
	require.True(t, ShouldBlock(c, Policy{Rules: allRules()}))
}
