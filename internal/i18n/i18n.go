// Package i18n resolves user-facing portal messages. The portal is
// Amharic-first; English is kept as the fallback for API clients.
package i18n

import "golang.org/x/text/language"

// Key identifies a translatable message.
type Key int

const (
	SubmissionWindowPassed Key = iota
	SubmissionCutoffPassed
	InvalidDateTimeFormat
	RequestSubmitted
	TooManyRequests
)

var supported = []language.Tag{
	language.Amharic, // default
	language.English,
}

var matcher = language.NewMatcher(supported)

var messages = map[language.Tag]map[Key]string{
	language.Amharic: {
		SubmissionWindowPassed: "የሚድያ ሽፋን ጥያቄ የሚቀርብበት ሰአት ስላለፈ ጥያቄዎ ተቀባይነት አላገኘም። ከይቅርታ ጋር!",
		SubmissionCutoffPassed: "ለነገ የሚሆን የሚድያ ሽፋን ጥያቄ ከ1:00 PM በፊት መቅረብ አለበት። አሁን ሰዓቱ ካለፈ እባክዎ ከነገ ወዲያ ላለው ቀን ያስገቡ።",
		InvalidDateTimeFormat:  "የተሳሳተ የቀን ወይም ሰዓት ቅርጸት።",
		RequestSubmitted:       "የሚድያ ሽፋን ጥያቄዎ በተሳካ ሁኔታ ተልኳል።",
		TooManyRequests:        "በጣም ብዙ ጥያቄዎች። እባክዎ ቆየት ብለው ይሞክሩ።",
	},
	language.English: {
		SubmissionWindowPassed: "The submission window for this coverage date has passed.",
		SubmissionCutoffPassed: "Next-day coverage requests must be filed before the cutoff hour. Please pick the day after tomorrow or later.",
		InvalidDateTimeFormat:  "Invalid date or time format.",
		RequestSubmitted:       "Your media coverage request has been submitted.",
		TooManyRequests:        "Too many requests. Please try again later.",
	},
}

// Match picks the best supported language for an Accept-Language header.
// An empty or unparseable header falls back to Amharic.
func Match(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return supported[0]
	}
	tag, _ := language.MatchStrings(matcher, acceptLanguage)
	// The matcher returns extended tags; reduce to a supported base.
	base, _ := tag.Base()
	for _, s := range supported {
		if b, _ := s.Base(); b == base {
			return s
		}
	}
	return supported[0]
}

// T returns the message for key in the given language, falling back to
// Amharic when the key has no translation.
func T(tag language.Tag, key Key) string {
	if m, ok := messages[tag]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return messages[supported[0]][key]
}
