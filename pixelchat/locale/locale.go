// Package locale provides translation string lookup for operator and player
// facing moderation messages.
package locale

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sandertv/gophertunnel/minecraft/text"
	"golang.org/x/text/language"
)

// localeData represents a mapping of translation keys to their respective values for a specific language.
type localeData map[string]string

// locales is a map of registered locales keyed by language tags.
var locales = make(map[language.Tag]localeData)

// fallback holds the built-in English strings, used whenever no locale file
// provides a key. Moderation messages must never fail on a missing file.
var fallback = localeData{
	"chatguard.prefix":     "<dark-grey>[</dark-grey><red>Pixel</red><blue>Chat</blue><dark-grey>]</dark-grey>",
	"message-blocked":      "Your message has been blocked.",
	"message-censored":     "Your message has been censored.",
	"player.kick":          "You have been kicked:",
	"player.ban-temporary": "You have been temporarily banned:",
	"player.ban-permanent": "You have been permanently banned:",
	"strike.no-reason":     "No reason provided",
	"strike.struck":        "Struck player %1, they now have %2 strike(s).",
	"strike.count":         "%1 has %2 strike(s).",
	"strike.none":          "No strikes recorded for %1.",
	"strike.reset":         "Reset strikes of %1.",
	"strike.removed":       "Removed strike record of %1.",
	"strike.unknown":       "No strike record found for %1.",
	"ban.lifted":           "Lifted ban of %1.",
	"ban.none":             "No active ban found for %1.",
	"banned.permanent":     "You're banned! Reason: %1",
	"banned.temporary":     "You're banned until %1! Reason: %2",
}

// Register registers a new locale from the specified language file path.
// It reads the language file and populates the locale data for the provided language tag.
// The language file should be in the format "key=value" where each key corresponds to a translation key.
func Register(lang language.Tag, filePath string) error {
	file, err := os.Open(fmt.Sprintf("%s/%s.lang", filePath, lang.String()))
	if err != nil {
		return fmt.Errorf("could not open lang file: %w", err)
	}
	defer file.Close()

	data := make(localeData)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) < 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		data[key] = value
	}
	if err = scanner.Err(); err != nil {
		return fmt.Errorf("error reading lang file: %w", err)
	}

	locales[lang] = data
	return nil
}

// Translate translates a key to the default language (English) and formats it with the provided arguments.
// It uses the TranslateL function internally for the English translation.
func Translate(key string, args ...any) string {
	return text.Colourf("%s", TranslateL(language.English, key, args...))
}

// TranslateL translates a key to a specified language and formats it with the provided arguments.
// If the language data or the key is unavailable, it falls back to the
// built-in English strings. Placeholders %1, %2, ... are replaced in order by
// the arguments.
func TranslateL(lang language.Tag, key string, args ...any) string {
	locale, ok := locales[lang]
	if !ok {
		locale = locales[language.English]
	}

	translation, ok := locale[key]
	if !ok {
		if translation, ok = fallback[key]; !ok {
			return fmt.Sprintf("missing translation for '%s'", key)
		}
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("%%%d", i+1)
		translation = strings.ReplaceAll(translation, placeholder, fmt.Sprintf("%v", arg))
	}
	return translation
}
