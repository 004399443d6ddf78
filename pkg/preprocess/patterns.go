package preprocess

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// The fixed pattern set shared by the analyzer and the rewrite
// operations. All patterns are case-insensitive over tag and attribute
// names and operate on raw text, never a parsed tree. Matches come back
// in document order, not semantic order.
var (
	// openTagPattern matches an opening tag and captures its name.
	openTagPattern = regexp.MustCompile(`(?i)<(\w+)(?:\s+[^>]*)?>`)

	// anyTagPattern matches any tag, opening or closing.
	anyTagPattern = regexp.MustCompile(`<[^>]+>`)

	// commentPattern matches <!-- ... --> across line boundaries.
	commentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)

	// Attribute-value patterns capture the quoted value verbatim,
	// without entity decoding.
	classAttrPattern = regexp.MustCompile(`(?i)class=["']([^"']+)["']`)
	idAttrPattern    = regexp.MustCompile(`(?i)id=["']([^"']+)["']`)

	inlineStylePattern = regexp.MustCompile(`(?i)\s+style=["'][^"']*["']`)

	paragraphPattern = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p>`)

	scriptPattern = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	stylePattern  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
)

// headingPatterns[i] matches <h{i+1}> elements and captures the inner
// content, spanning lines.
var headingPatterns = func() [6]*regexp.Regexp {
	var ps [6]*regexp.Regexp
	for i := range ps {
		ps[i] = regexp.MustCompile(fmt.Sprintf(`(?is)<h%d[^>]*>(.*?)</h%d>`, i+1, i+1))
	}
	return ps
}()

// Per-name patterns are built on demand and memoized. The cache is
// shared across Preprocessor instances, so it takes a lock even though
// a single pipeline is synchronous.
var (
	patternMu    sync.Mutex
	patternCache = map[string]*regexp.Regexp{}
)

func cachedPattern(key, expr string) *regexp.Regexp {
	patternMu.Lock()
	defer patternMu.Unlock()
	if re, ok := patternCache[key]; ok {
		return re
	}
	re := regexp.MustCompile(expr)
	patternCache[key] = re
	return re
}

// pairedTagPattern matches <name ...> ... </name> with non-greedy
// content across lines. It assumes no nested same-named tag inside the
// span; a nested element of the same name closes the match early.
func pairedTagPattern(name string) *regexp.Regexp {
	q := regexp.QuoteMeta(strings.ToLower(name))
	return cachedPattern("paired:"+q, `(?is)<`+q+`[^>]*>.*?</`+q+`>`)
}

// closeTagPattern matches the closing tag for name.
func closeTagPattern(name string) *regexp.Regexp {
	q := regexp.QuoteMeta(strings.ToLower(name))
	return cachedPattern("close:"+q, `(?i)</`+q+`>`)
}

// classOpenTagPattern matches an opening tag whose class attribute
// contains name as a whitespace-delimited token, capturing the tag name
// so the caller can require the same name at the close. The word
// boundary keeps class "ads" from matching target "ad".
func classOpenTagPattern(name string) *regexp.Regexp {
	q := regexp.QuoteMeta(name)
	return cachedPattern("classopen:"+q,
		`(?i)<(\w+)[^>]*\bclass=["'][^"']*\b`+q+`\b[^"']*["'][^>]*>`)
}

// classSelfClosingPattern matches a self-closing tag whose class
// attribute contains name as a token.
func classSelfClosingPattern(name string) *regexp.Regexp {
	q := regexp.QuoteMeta(name)
	return cachedPattern("classself:"+q,
		`(?i)<\w+[^>]*\bclass=["'][^"']*\b`+q+`\b[^"']*["'][^>]*/>`)
}

// idOpenTagPattern matches an opening tag whose id attribute equals
// name in full. Ids are unique by convention, so no token splitting.
func idOpenTagPattern(name string) *regexp.Regexp {
	q := regexp.QuoteMeta(name)
	return cachedPattern("idopen:"+q,
		`(?i)<(\w+)[^>]*\bid=["']`+q+`["'][^>]*>`)
}

// idSelfClosingPattern matches a self-closing tag with the given id.
func idSelfClosingPattern(name string) *regexp.Regexp {
	q := regexp.QuoteMeta(name)
	return cachedPattern("idself:"+q,
		`(?i)<\w+[^>]*\bid=["']`+q+`["'][^>]*/>`)
}
