package summarizer

import (
	"fmt"
	"strings"
	"time"

	"tweetbrief/pkg/config"
)

// Summary shape targets. The prompt instructs the model to stay within these
// bounds; CharacterTarget is advisory, the hard cap lives in the entity layer.
const (
	minSummaryWords = 6
	maxSummaryWords = 17
)

// Config holds configuration shared by all summarizer implementations.
// Configuration is loaded from environment variables with fallback to defaults.
type Config struct {
	// Model is the provider-specific model identifier.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int

	// CharacterTarget is the approximate maximum summary length the prompt
	// asks for. Loaded from SUMMARIZER_CHAR_TARGET. Valid range: 80-500.
	CharacterTarget int

	// Timeout is the maximum duration for a single summarization API call.
	Timeout time.Duration
}

// LoadConfig loads summarizer configuration from environment variables.
// An out-of-range SUMMARIZER_CHAR_TARGET falls back to the default with a
// warning log rather than failing startup.
//
// Environment variables:
//   - SUMMARIZER_MODEL: model identifier (default depends on provider)
//   - SUMMARIZER_CHAR_TARGET: approximate summary length (default: 180, range: 80-500)
//   - SUMMARIZER_TIMEOUT: per-attempt API timeout (default: 60s)
func LoadConfig(defaultModel string) Config {
	const (
		defaultCharTarget = 180
		minCharTarget     = 80
		maxCharTarget     = 500
	)

	charTarget := config.GetEnvInt("SUMMARIZER_CHAR_TARGET", defaultCharTarget)
	if charTarget < minCharTarget || charTarget > maxCharTarget {
		charTarget = defaultCharTarget
	}

	return Config{
		Model:           config.GetEnvString("SUMMARIZER_MODEL", defaultModel),
		MaxTokens:       256,
		CharacterTarget: charTarget,
		Timeout:         config.GetEnvDuration("SUMMARIZER_TIMEOUT", 60*time.Second),
	}
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.CharacterTarget <= 0 {
		return fmt.Errorf("character target must be positive, got %d", c.CharacterTarget)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// BuildPrompt constructs the fixed instructional prompt for one tweet.
// The instruction pins the summary to 6-17 words, the configured character
// target, a neutral tone, and an author-handle prefix. Author and URL are
// embedded as context when present.
func (c Config) BuildPrompt(text, author, url string) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"Summarize the following social media post in %d to %d words (at most %d characters). "+
			"Use a neutral tone. Begin the summary with the author's handle. "+
			"Reply with the summary only, no preamble.\n",
		minSummaryWords, maxSummaryWords, c.CharacterTarget)
	if author != "" {
		fmt.Fprintf(&b, "Author: %s\n", author)
	}
	if url != "" {
		fmt.Fprintf(&b, "Source: %s\n", url)
	}
	fmt.Fprintf(&b, "Post:\n%s", text)
	return b.String()
}
