package classify

import "encoding/json"

// DefaultReason is used whenever the judge does not provide a reason of its own.
const DefaultReason = "No reason provided"

// Classification represents the AI classification of a single chat message.
// It is produced once per classified message and never mutated.
type Classification struct {
	IsOffensiveLanguage bool
	IsUsername          bool
	IsPassword          bool
	IsHomeAddress       bool
	IsEmailAddress      bool
	IsWebsite           bool
	IsSexualContent     bool

	// Reason is always non-empty; DefaultReason when the judge omitted it.
	Reason string
}

// Flagged reports whether any classification flag is set.
func (c Classification) Flagged() bool {
	return c.IsOffensiveLanguage || c.IsUsername || c.IsPassword ||
		c.IsHomeAddress || c.IsEmailAddress || c.IsWebsite || c.IsSexualContent
}

// rawClassification mirrors the JSON object embedded in the judge response.
// Every field is optional; absence and explicit null both mean "unset".
type rawClassification struct {
	IsOffensiveLanguage *bool   `json:"isOffensiveLanguage"`
	IsUsername          *bool   `json:"isUsername"`
	IsPassword          *bool   `json:"isPassword"`
	IsHomeAddress       *bool   `json:"isHomeAddress"`
	IsEmailAddress      *bool   `json:"isEmailAddress"`
	IsWebsite           *bool   `json:"isWebsite"`
	IsSexualContent     *bool   `json:"isSexualContent"`
	Reason              *string `json:"reason"`
}

// parseClassification decodes the nested content JSON into a Classification,
// treating missing or null fields as false and defaulting the reason.
func parseClassification(content string) (Classification, error) {
	var raw rawClassification
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return Classification{}, err
	}

	c := Classification{
		IsOffensiveLanguage: boolOf(raw.IsOffensiveLanguage),
		IsUsername:          boolOf(raw.IsUsername),
		IsPassword:          boolOf(raw.IsPassword),
		IsHomeAddress:       boolOf(raw.IsHomeAddress),
		IsEmailAddress:      boolOf(raw.IsEmailAddress),
		IsWebsite:           boolOf(raw.IsWebsite),
		IsSexualContent:     boolOf(raw.IsSexualContent),
		Reason:              DefaultReason,
	}
	if raw.Reason != nil && *raw.Reason != "" {
		c.Reason = *raw.Reason
	}
	return c, nil
}

// boolOf ...
func boolOf(b *bool) bool {
	return b != nil && *b
}
