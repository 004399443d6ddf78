package preprocess

import (
	"regexp"
	"strings"
)

// The rewrite operations are total functions from text to text: they
// never fail on malformed input, and a pattern that matches nothing
// leaves the text unchanged. Each call consumes the current text and
// returns a new string.

// RemoveScriptsAndStyles deletes every <script>...</script> and
// <style>...</style> span, non-greedy, spanning lines.
func RemoveScriptsAndStyles(text string) string {
	text = scriptPattern.ReplaceAllString(text, "")
	return stylePattern.ReplaceAllString(text, "")
}

// RemoveTags deletes the paired-content span of every tag name in tags,
// processed in the given order. Order matters when removing one tag
// exposes text that a later tag's pattern then matches; the list is not
// re-scanned from the start after each removal.
func RemoveTags(text string, tags []string) string {
	for _, tag := range tags {
		text = pairedTagPattern(tag).ReplaceAllString(text, "")
	}
	return text
}

// StripInlineStyles deletes style="..." attributes, leaving the rest of
// the opening tag intact.
func StripInlineStyles(text string) string {
	return inlineStylePattern.ReplaceAllString(text, "")
}

// RemoveComments deletes every <!-- ... --> span.
func RemoveComments(text string) string {
	return commentPattern.ReplaceAllString(text, "")
}

// RemoveByClass deletes every element whose class attribute contains
// one of the given names as a whitespace-delimited token. The tag name
// captured at the opening tag must match at the close, so an unrelated
// closing tag never ends the span. Self-closing elements are matched
// separately. Nested same-named elements inside a removed span are
// removed with it; see the package documentation.
func RemoveByClass(text string, classes []string) string {
	for _, cls := range classes {
		text = removeElements(text, classOpenTagPattern(cls))
		text = classSelfClosingPattern(cls).ReplaceAllString(text, "")
	}
	return text
}

// RemoveByID is the id counterpart of RemoveByClass. Id values are
// matched in full, without token splitting.
func RemoveByID(text string, ids []string) string {
	for _, id := range ids {
		text = removeElements(text, idOpenTagPattern(id))
		text = idSelfClosingPattern(id).ReplaceAllString(text, "")
	}
	return text
}

// removeElements deletes every span that starts at a match of open
// (which must capture the tag name) and ends at the nearest subsequent
// closing tag of the same name. An opening tag with no matching close
// is left untouched.
func removeElements(text string, open *regexp.Regexp) string {
	offset := 0
	for {
		loc := open.FindStringSubmatchIndex(text[offset:])
		if loc == nil {
			return text
		}
		start := offset + loc[0]
		end := offset + loc[1]
		name := text[offset+loc[2] : offset+loc[3]]
		cl := closeTagPattern(name).FindStringIndex(text[end:])
		if cl == nil {
			offset = end
			continue
		}
		text = text[:start] + text[end+cl[1]:]
		offset = start
	}
}

// blockTags is the fixed set of block-level tag names whose structural
// whitespace NormalizeWhitespace compacts.
const blockTags = `div|p|h[1-6]|section|article|header|footer|nav|ul|ol|li|table|tr|td|th`

var (
	spaceRunPattern   = regexp.MustCompile(`[ \t]+`)
	blankLinePattern  = regexp.MustCompile(`\n(?:[ \t\r]*\n)+`)
	blockClosePattern = regexp.MustCompile(`(?i)</(` + blockTags + `)>\s+<`)
	blockOpenPattern  = regexp.MustCompile(`(?i)<(` + blockTags + `)([^>]*)>\s+`)
)

// NormalizeWhitespace collapses runs of spaces and tabs into one space,
// collapses runs of blank lines into a single newline, and deletes
// whitespace that immediately follows a block-level closing tag (up to
// the next opening angle bracket) or a block-level opening tag. Inline
// spacing, e.g. inside <span> or <em>, is preserved. The operation is
// idempotent: a second application returns its input unchanged.
func NormalizeWhitespace(text string) string {
	text = spaceRunPattern.ReplaceAllString(text, " ")
	text = blankLinePattern.ReplaceAllString(text, "\n")
	// The close-tag pattern consumes the following "<", so adjacent
	// closings need repeated passes to compact fully. Each pass
	// strictly shrinks the text, so the loop terminates.
	for {
		next := blockClosePattern.ReplaceAllString(text, "</$1><")
		if next == text {
			break
		}
		text = next
	}
	return blockOpenPattern.ReplaceAllString(text, "<$1$2>")
}

// StripTags removes every tag from text and trims surrounding
// whitespace. The analyzer uses it to reduce captured heading and
// paragraph spans to their inner text.
func StripTags(text string) string {
	return strings.TrimSpace(anyTagPattern.ReplaceAllString(text, ""))
}
