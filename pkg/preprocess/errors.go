package preprocess

import "errors"

// Error kinds surfaced by the package. Check with errors.Is; fetch
// failures propagate the fetcher package's error kinds unwrapped.
var (
	// ErrInvalidConstruction reports that construction was given both a
	// literal document and a URL, or neither, or empty literal text.
	ErrInvalidConstruction = errors.New("provide either HTML text or a URL")

	// ErrNotInitialized reports an operation on a Preprocessor that was
	// never given text. It only occurs on a zero-value handle.
	ErrNotInitialized = errors.New("no HTML content available")

	// ErrEmptyInput reports that the analyzer was given empty or
	// whitespace-only text.
	ErrEmptyInput = errors.New("empty input text")

	// ErrEmptyFetchResult reports that the fetch collaborator returned
	// an empty body.
	ErrEmptyFetchResult = errors.New("fetched content is empty")
)
