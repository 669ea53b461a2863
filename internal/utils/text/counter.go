// Package text provides small text measurement helpers shared by the
// summarization adapters.
package text

import "strings"

// CountRunes counts the number of Unicode characters (runes) in the given
// text. Summaries may contain emoji and non-ASCII handles, so byte length is
// the wrong measure for the character target.
func CountRunes(text string) int {
	return len([]rune(text))
}

// CountWords counts whitespace-separated words. Used to check generated
// summaries against the prompt's word-range instruction in telemetry.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
