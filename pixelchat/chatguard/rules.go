package chatguard

import "github.com/pixelmindmc/pixelchat-guardian/pixelchat/classify"

// ShouldBlock reports whether a classified message violates the policy: true
// iff at least one enabled rule toggle has its corresponding classification
// flag set. Pure and deterministic.
func ShouldBlock(c classify.Classification, p Policy) bool {
	r := p.Rules
	return (r.OffensiveLanguage && c.IsOffensiveLanguage) ||
		(r.Usernames && c.IsUsername) ||
		(r.Passwords && c.IsPassword) ||
		(r.HomeAddresses && c.IsHomeAddress) ||
		(r.EmailAddresses && c.IsEmailAddress) ||
		(r.Websites && c.IsWebsite) ||
		(r.SexualContent && c.IsSexualContent)
}
