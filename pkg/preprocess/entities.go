package preprocess

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	numericEntityPattern = regexp.MustCompile(`&#(\d+);`)
	hexEntityPattern     = regexp.MustCompile(`&#x([0-9a-fA-F]+);`)
)

// namedEntities is the fixed table of named references the decoder
// knows about. Unknown named references are left unmodified.
var namedEntities = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&mdash;", "—",
	"&ndash;", "–",
	"&rsquo;", "’",
	"&lsquo;", "‘",
	"&rdquo;", "”",
	"&ldquo;", "“",
	"&hellip;", "...",
	"&copy;", "©",
	"&reg;", "®",
)

// DecodeEntities replaces character references with literal characters:
// numeric references first, then hexadecimal, then the fixed named
// table. A reference whose payload does not decode to a valid code
// point is left as-is rather than treated as an error.
func DecodeEntities(text string) string {
	text = numericEntityPattern.ReplaceAllStringFunc(text, func(m string) string {
		n, err := strconv.Atoi(m[2 : len(m)-1])
		if err != nil || !validCodePoint(n) {
			return m
		}
		return string(rune(n))
	})
	text = hexEntityPattern.ReplaceAllStringFunc(text, func(m string) string {
		n, err := strconv.ParseInt(m[3:len(m)-1], 16, 32)
		if err != nil || !validCodePoint(int(n)) {
			return m
		}
		return string(rune(n))
	})
	return namedEntities.Replace(text)
}

func validCodePoint(n int) bool {
	return n >= 0 && n <= utf8.MaxRune && utf8.ValidRune(rune(n))
}
