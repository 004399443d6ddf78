package preprocess

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmylchreest/htmlprep/internal/logger"
	"github.com/jmylchreest/htmlprep/pkg/fetcher"
)

// Preprocessor holds a document's immutable original text and its
// mutable working copy, and sequences rewrite operations over the
// latter. The mutating methods return the receiver so calls can be
// chained; the first error is latched and later calls become no-ops.
//
// A Preprocessor is single-owner and synchronous: concurrent mutating
// calls against the same instance are undefined. Callers that need
// parallelism should copy Cleaned() and hand the snapshots to Analyze,
// which is pure.
type Preprocessor struct {
	raw     string
	current string
	url     string
	config  *Config
	report  *Report
	stats   Stats
	err     error
}

// Option configures construction.
type Option func(*construction)

type construction struct {
	html    string
	url     string
	config  *Config
	fetcher fetcher.Fetcher
	headers map[string]string
}

// WithHTML supplies the document as a literal string. Exactly one of
// WithHTML and WithURL must be given.
func WithHTML(html string) Option {
	return func(c *construction) { c.html = html }
}

// WithURL supplies the document by URL, resolved through the fetch
// collaborator during construction.
func WithURL(url string) Option {
	return func(c *construction) { c.url = url }
}

// WithConfig sets the pipeline config. Nil means DefaultConfig.
func WithConfig(cfg *Config) Option {
	return func(c *construction) { c.config = cfg }
}

// WithFetcher overrides the fetch collaborator used by WithURL.
func WithFetcher(f fetcher.Fetcher) Option {
	return func(c *construction) { c.fetcher = f }
}

// WithHeaders sets extra request headers for the construction-time
// fetch.
func WithHeaders(headers map[string]string) Option {
	return func(c *construction) { c.headers = headers }
}

// New constructs a Preprocessor from exactly one of a literal document
// or a URL. Supplying both, or neither, or empty literal text fails
// with ErrInvalidConstruction. A URL is fetched immediately; fetch
// failures and empty fetch results are returned as-is so callers can
// branch on the fetcher's error kinds.
func New(ctx context.Context, opts ...Option) (*Preprocessor, error) {
	var c construction
	for _, opt := range opts {
		opt(&c)
	}

	switch {
	case c.html != "" && c.url != "":
		return nil, fmt.Errorf("%w: got both", ErrInvalidConstruction)
	case c.html == "" && c.url == "":
		return nil, fmt.Errorf("%w: got neither", ErrInvalidConstruction)
	}

	cfg := c.config.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConstruction, err)
	}

	p := &Preprocessor{config: cfg}

	if c.url != "" {
		if err := p.fetch(ctx, c.url, c.fetcher, c.headers); err != nil {
			return nil, err
		}
		return p, nil
	}

	if strings.TrimSpace(c.html) == "" {
		return nil, fmt.Errorf("%w: literal text is empty", ErrInvalidConstruction)
	}
	p.raw = c.html
	p.current = c.html
	return p, nil
}

// fetch resolves url through the collaborator and installs the body as
// both original and current text.
func (p *Preprocessor) fetch(ctx context.Context, url string, f fetcher.Fetcher, headers map[string]string) error {
	if f == nil {
		f = fetcher.NewStatic(fetcher.StaticConfig{UserAgent: p.config.UserAgent})
	}
	content, err := f.Fetch(ctx, url, fetcher.Options{
		UserAgent: p.config.UserAgent,
		Headers:   headers,
	})
	if err != nil {
		return err
	}
	if !content.IsHTML() {
		logger.Warn("content type is not HTML", "url", url, "content_type", content.ContentType)
	}
	if strings.TrimSpace(content.HTML) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyFetchResult, url)
	}
	p.url = url
	p.raw = content.HTML
	p.current = content.HTML
	p.report = nil
	p.stats = Stats{}
	p.err = nil
	logger.Debug("document fetched", "url", url, "bytes", len(content.HTML))
	return nil
}

// apply runs one rewrite operation over the current text.
func (p *Preprocessor) apply(op string, fn func(string) string) *Preprocessor {
	if p.err != nil {
		return p
	}
	if p.raw == "" {
		p.err = ErrNotInitialized
		return p
	}
	before := len(p.current)
	p.current = fn(p.current)
	p.stats.record(op, before, len(p.current))
	logger.Debug("rewrite applied", "op", op, "before", before, "after", len(p.current))
	return p
}

// RemoveScriptsAndStyles deletes script and style elements with their
// content.
func (p *Preprocessor) RemoveScriptsAndStyles() *Preprocessor {
	return p.apply("remove_scripts_and_styles", RemoveScriptsAndStyles)
}

// RemoveTags deletes the named tags with their content, in the given
// order. With no arguments the config's RemoveTags set is used.
func (p *Preprocessor) RemoveTags(tags ...string) *Preprocessor {
	if len(tags) == 0 {
		tags = p.configTags()
	}
	return p.apply("remove_tags", func(s string) string { return RemoveTags(s, tags) })
}

// StripInlineStyles deletes style attributes from opening tags.
func (p *Preprocessor) StripInlineStyles() *Preprocessor {
	return p.apply("strip_inline_styles", StripInlineStyles)
}

// RemoveComments deletes HTML comments.
func (p *Preprocessor) RemoveComments() *Preprocessor {
	return p.apply("remove_comments", RemoveComments)
}

// RemoveByClass deletes elements whose class attribute contains any of
// the given names as a whitespace-delimited token.
func (p *Preprocessor) RemoveByClass(classes ...string) *Preprocessor {
	return p.apply("remove_by_class", func(s string) string { return RemoveByClass(s, classes) })
}

// RemoveByID deletes elements whose id attribute equals any of the
// given names.
func (p *Preprocessor) RemoveByID(ids ...string) *Preprocessor {
	return p.apply("remove_by_id", func(s string) string { return RemoveByID(s, ids) })
}

// DecodeEntities replaces character references with literal characters.
func (p *Preprocessor) DecodeEntities() *Preprocessor {
	return p.apply("decode_entities", DecodeEntities)
}

// NormalizeWhitespace compacts structural whitespace.
func (p *Preprocessor) NormalizeWhitespace() *Preprocessor {
	return p.apply("normalize_whitespace", NormalizeWhitespace)
}

// Clean runs the default pipeline in fixed order: scripts and styles,
// unwanted tags, inline styles, comments, entities, whitespace.
// Structural removal runs before attribute and content cleanup, and
// destructive removal before entity decoding, so decoded text can
// never feed the removal patterns. Decoding runs before whitespace
// normalization so literal spaces produced from &nbsp; get collapsed.
func (p *Preprocessor) Clean() *Preprocessor {
	p.RemoveScriptsAndStyles()
	p.RemoveTags(p.configTags()...)
	if p.cfg().StripInlineStyles {
		p.StripInlineStyles()
	}
	if p.cfg().StripComments {
		p.RemoveComments()
	}
	p.DecodeEntities()
	if p.cfg().NormalizeWhitespace {
		p.NormalizeWhitespace()
	}
	logger.Info("document cleaned", "url", p.url, "stats", p.stats.String())
	return p
}

// Op selects a rewrite operation in a custom pipeline Step.
type Op string

const (
	OpRemoveScriptsAndStyles Op = "remove_scripts_and_styles"
	OpRemoveTags             Op = "remove_tags"
	OpStripInlineStyles      Op = "strip_inline_styles"
	OpRemoveComments         Op = "remove_comments"
	OpRemoveByClass          Op = "remove_by_class"
	OpRemoveByID             Op = "remove_by_id"
	OpDecodeEntities         Op = "decode_entities"
	OpNormalizeWhitespace    Op = "normalize_whitespace"
)

// Step is one operation of a custom pipeline. Args carries the tag,
// class or id names for the operations that take them.
type Step struct {
	Op   Op
	Args []string
}

// Run applies exactly the given steps in the given order, with no
// implicit steps.
func (p *Preprocessor) Run(steps ...Step) *Preprocessor {
	for _, step := range steps {
		switch step.Op {
		case OpRemoveScriptsAndStyles:
			p.RemoveScriptsAndStyles()
		case OpRemoveTags:
			p.RemoveTags(step.Args...)
		case OpStripInlineStyles:
			p.StripInlineStyles()
		case OpRemoveComments:
			p.RemoveComments()
		case OpRemoveByClass:
			p.RemoveByClass(step.Args...)
		case OpRemoveByID:
			p.RemoveByID(step.Args...)
		case OpDecodeEntities:
			p.DecodeEntities()
		case OpNormalizeWhitespace:
			p.NormalizeWhitespace()
		default:
			if p.err == nil {
				p.err = fmt.Errorf("unknown operation %q", step.Op)
			}
		}
	}
	return p
}

// Reset restores the current text to the original, discarding every
// applied operation. The original text itself is never touched.
func (p *Preprocessor) Reset() *Preprocessor {
	if p.raw == "" {
		if p.err == nil {
			p.err = ErrNotInitialized
		}
		return p
	}
	p.current = p.raw
	p.stats = Stats{}
	p.err = nil
	return p
}

// Analyze computes a fresh report from the current text.
func (p *Preprocessor) Analyze() (*Report, error) {
	if p.raw == "" {
		return nil, ErrNotInitialized
	}
	report, err := Analyze(p.current)
	if err != nil {
		return nil, err
	}
	p.report = report
	return report, nil
}

// Summary returns the most recent report, computing one if none exists
// yet.
func (p *Preprocessor) Summary() (*Report, error) {
	if p.report != nil {
		return p.report, nil
	}
	return p.Analyze()
}

// Raw returns the original text as passed at construction.
func (p *Preprocessor) Raw() string {
	return p.raw
}

// Cleaned returns the current text: the original with every applied
// rewrite operation folded in.
func (p *Preprocessor) Cleaned() string {
	return p.current
}

// URL returns the source URL, or "" for a literal document.
func (p *Preprocessor) URL() string {
	return p.url
}

// Stats reports the size effect of the operations applied since the
// last Reset.
func (p *Preprocessor) Stats() Stats {
	return p.stats
}

// Err returns the first error latched by a chained call, or nil.
func (p *Preprocessor) Err() error {
	return p.err
}

func (p *Preprocessor) cfg() *Config {
	if p.config == nil {
		p.config = DefaultConfig()
	}
	return p.config
}

func (p *Preprocessor) configTags() []string {
	return p.cfg().RemoveTags
}
