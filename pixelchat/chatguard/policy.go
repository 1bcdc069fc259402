package chatguard

// Handling decides what happens to a message once it violates a rule.
type Handling string

const (
	// HandlingBlock drops violating messages entirely.
	HandlingBlock Handling = "BLOCK"
	// HandlingCensor masks violating messages instead of dropping them.
	HandlingCensor Handling = "CENSOR"
)

// Rules holds the operator-configured rule toggles, one per classification
// flag. An unset toggle never blocks.
type Rules struct {
	OffensiveLanguage bool
	Usernames         bool
	Passwords         bool
	HomeAddresses     bool
	EmailAddresses    bool
	Websites          bool
	SexualContent     bool
}

// Thresholds are the ascending strike counts opening each escalation band.
// The engine does not validate their ordering; a misconfigured ladder yields
// skipped or collapsed bands.
type Thresholds struct {
	Kick    int
	TempBan int
	Ban     int
}

// Policy is a read-only snapshot of the chat guard configuration, resolved
// once at startup. The engine never writes it.
type Policy struct {
	Enabled    bool
	Rules      Rules
	Handling   Handling
	NotifyUser bool
	Prefix     string

	BypassPlayers []string

	UseBuiltInStrikeSystem bool
	CustomStrikeCommand    string
	Thresholds             Thresholds
	KickCommand            string
	TempBanCommand         string
	BanCommand             string
}
