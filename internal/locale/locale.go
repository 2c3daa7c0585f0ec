// Package locale selects the message catalog used for every user-facing line.
//
// The language is detected once at startup from the environment and the
// resulting *Catalog is handed to each component that prints something.
// Nothing in this package holds mutable state.
package locale

import (
	"strings"
)

// Lang identifies one of the supported message languages.
type Lang int

const (
	// En is the baseline language used when nothing else matches.
	En Lang = iota
	// Fr is French.
	Fr
	// Es is Spanish.
	Es
)

// String returns the two-letter code of the language.
func (l Lang) String() string {
	switch l {
	case Fr:
		return "fr"
	case Es:
		return "es"
	default:
		return "en"
	}
}

// envPriority lists the variables consulted by Detect, highest priority first.
var envPriority = []string{"LC_ALL", "LANG", "LANGUAGE"}

// Detect picks the language from LC_ALL, LANG and LANGUAGE (in that order).
// The first non-empty variable wins; its language code is the part before
// any '_', '.', '@' or ':' separator ("fr_CA.UTF-8" -> "fr").
// Unknown or missing values fall back to En.
func Detect(getenv func(string) string) Lang {
	for _, key := range envPriority {
		if value := strings.TrimSpace(getenv(key)); value != "" {
			lang, _ := Parse(languageCode(value))
			return lang
		}
	}
	return En
}

// Parse maps a language code to a Lang. The boolean reports whether the code
// was recognised; unrecognised codes map to En.
func Parse(code string) (Lang, bool) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "en":
		return En, true
	case "fr":
		return Fr, true
	case "es":
		return Es, true
	default:
		return En, false
	}
}

func languageCode(value string) string {
	if i := strings.IndexAny(value, "_.@:"); i >= 0 {
		value = value[:i]
	}
	return strings.ToLower(value)
}
