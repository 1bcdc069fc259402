package strikes

// Action is the enforcement action recorded alongside a strike.
type Action string

const (
	ActionNone    Action = "NOTHING"
	ActionKick    Action = "KICK"
	ActionTempBan Action = "TEMP-BAN"
	ActionBan     Action = "BAN"
)

// HistoryEntry is a single violation in a player's strike history.
type HistoryEntry struct {
	Reason string `json:"reason"`
	Action Action `json:"action"`
}

// Record is the durable ledger entry for one player, keyed by their UUID in
// the store document. History entries are keyed by the timestamp the strike
// was recorded at and are only removed by full record removal.
type Record struct {
	Name    string                  `json:"name"`
	Strikes int                     `json:"strikes"`
	History map[string]HistoryEntry `json:"strikeHistory"`
}
