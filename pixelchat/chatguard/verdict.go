package chatguard

// Verdict is the pipeline's final decision for one message.
type Verdict int

const (
	// VerdictAllowed lets the message through unmodified.
	VerdictAllowed Verdict = iota
	// VerdictBlocked drops the message entirely.
	VerdictBlocked
	// VerdictCensored replaces the message content before it is broadcast.
	VerdictCensored
)

// String ...
func (v Verdict) String() string {
	switch v {
	case VerdictBlocked:
		return "blocked"
	case VerdictCensored:
		return "censored"
	default:
		return "allowed"
	}
}

// Result carries the verdict for one processed message together with the
// classification reason backing it. Reason is empty for allowed messages.
type Result struct {
	Verdict Verdict
	Reason  string
}
