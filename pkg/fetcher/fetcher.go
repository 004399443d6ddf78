// Package fetcher resolves a URL into raw document text. The
// preprocessor consumes it as a black box; implement the Fetcher
// interface to swap in custom transports or authentication.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Fetcher abstracts document retrieval.
type Fetcher interface {
	// Fetch retrieves the document at url.
	Fetch(ctx context.Context, url string, opts Options) (Content, error)

	// Close releases any resources held by the fetcher.
	Close() error

	// Type returns a string identifying the fetcher type.
	Type() string
}

// Options controls a single fetch.
type Options struct {
	UserAgent string
	Timeout   time.Duration
	Headers   map[string]string
}

// Content is the fetched document.
type Content struct {
	URL         string
	HTML        string
	StatusCode  int
	ContentType string
	FetchedAt   time.Time
}

// IsHTML reports whether the response advertised an HTML content type.
// Callers treat a false result as advisory, not as a failure.
func (c Content) IsHTML() bool {
	ct := strings.ToLower(c.ContentType)
	return strings.Contains(ct, "text/html") || strings.Contains(ct, "application/xhtml")
}

// Error kinds, distinguishable so callers can branch on transient vs
// permanent failures. Check with errors.Is, or errors.As for
// *StatusError.
var (
	// ErrTimeout indicates the server took too long to respond.
	ErrTimeout = errors.New("fetch timeout")

	// ErrConnection indicates the server could not be reached.
	ErrConnection = errors.New("connection failed")
)

// StatusError reports a non-success HTTP status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.Code)
}
