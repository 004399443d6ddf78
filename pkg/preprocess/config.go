package preprocess

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Chrome user agent for better compatibility with bot-protected sites.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Config holds the default pipeline settings. Each Preprocessor owns
// its Config; instances never share mutable defaults.
//
// Start from DefaultConfig and flip fields off as needed: the boolean
// fields cannot distinguish unset from false, so a Config built as a
// literal runs with every toggle it does not name switched off.
type Config struct {
	// RemoveTags is the ordered set of tag names whose paired-content
	// spans the default pipeline deletes. Order is significant: names
	// are processed front to back. A nil slice means the default set;
	// an empty non-nil slice removes nothing.
	RemoveTags []string `json:"remove_tags" yaml:"remove_tags" validate:"dive,required,alphanum"`

	// StripInlineStyles removes style="" attributes.
	StripInlineStyles bool `json:"strip_inline_styles" yaml:"strip_inline_styles"`

	// StripComments removes HTML comments.
	StripComments bool `json:"strip_comments" yaml:"strip_comments"`

	// NormalizeWhitespace compacts structural whitespace.
	NormalizeWhitespace bool `json:"normalize_whitespace" yaml:"normalize_whitespace"`

	// UserAgent is sent by the fetch collaborator when a document is
	// constructed from a URL.
	UserAgent string `json:"user_agent" yaml:"user_agent" validate:"required"`
}

// DefaultConfig returns the standard cleanup settings: scripts, styles
// and page chrome removed, comments and inline styles stripped,
// whitespace compacted.
func DefaultConfig() *Config {
	return &Config{
		RemoveTags:          []string{"script", "style", "nav", "footer", "header", "noscript", "svg"},
		StripInlineStyles:   true,
		StripComments:       true,
		NormalizeWhitespace: true,
		UserAgent:           defaultUserAgent,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the config for unusable values, e.g. a tag name with
// non-alphanumeric characters that would never match the tag pattern.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// withDefaults returns a copy of c with zero values filled in. A nil
// receiver yields the full default config.
func (c *Config) withDefaults() *Config {
	if c == nil {
		return DefaultConfig()
	}
	out := *c
	if out.RemoveTags == nil {
		out.RemoveTags = DefaultConfig().RemoveTags
	}
	if out.UserAgent == "" {
		out.UserAgent = defaultUserAgent
	}
	return &out
}
