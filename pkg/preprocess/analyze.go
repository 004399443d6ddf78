package preprocess

import (
	"sort"
	"strings"
)

// Heading is one heading element in document order. Level 1 corresponds
// to <h1>. Text has all sub-tags stripped.
type Heading struct {
	Level int    `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// Report is a snapshot of structural statistics computed from one text
// scan. It is never mutated after Analyze returns and is not linked to
// the document it was computed from.
type Report struct {
	// Tags maps lowercased tag names to opening-tag counts.
	Tags map[string]int `json:"tags" yaml:"tags"`

	// Classes maps individual class tokens to counts. A single class
	// attribute may contribute several tokens.
	Classes map[string]int `json:"classes" yaml:"classes"`

	// IDs maps whole id values to counts.
	IDs map[string]int `json:"ids" yaml:"ids"`

	// Headings lists headings in document order with sub-tags stripped.
	Headings []Heading `json:"headings" yaml:"headings"`

	// Paragraphs lists paragraph inner texts in document order.
	Paragraphs []string `json:"paragraphs" yaml:"paragraphs"`

	TotalTags  int `json:"total_tags" yaml:"total_tags"`
	UniqueTags int `json:"unique_tags" yaml:"unique_tags"`
}

// TagCount is one entry of a frequency ranking.
type TagCount struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// TopTags returns the n most frequent tags, ties broken by name.
func (r *Report) TopTags(n int) []TagCount {
	return topCounts(r.Tags, n)
}

// TopClasses returns the n most frequent class tokens.
func (r *Report) TopClasses(n int) []TagCount {
	return topCounts(r.Classes, n)
}

func topCounts(m map[string]int, n int) []TagCount {
	out := make([]TagCount, 0, len(m))
	for name, count := range m {
		out = append(out, TagCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Analyze scans text with the fixed pattern set and returns a report of
// tag, class and id frequencies plus headings and paragraphs. It is a
// pure function of text and never mutates document state. Empty or
// whitespace-only text yields ErrEmptyInput.
//
// Each heading level is scanned independently, so a heading nested
// inside another (invalid HTML, but pattern matching does not reject
// it) is reported once per level: the enclosing span and the nested
// one each contribute an entry.
func Analyze(text string) (*Report, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	r := &Report{
		Tags:    make(map[string]int),
		Classes: make(map[string]int),
		IDs:     make(map[string]int),
	}

	for _, m := range openTagPattern.FindAllStringSubmatch(text, -1) {
		r.Tags[strings.ToLower(m[1])]++
		r.TotalTags++
	}
	r.UniqueTags = len(r.Tags)

	for _, m := range classAttrPattern.FindAllStringSubmatch(text, -1) {
		for _, token := range strings.Fields(m[1]) {
			r.Classes[token]++
		}
	}

	for _, m := range idAttrPattern.FindAllStringSubmatch(text, -1) {
		r.IDs[m[1]]++
	}

	// The six level patterns each scan independently; interleave their
	// matches back into document order.
	type located struct {
		pos     int
		heading Heading
	}
	var found []located
	for level, p := range headingPatterns {
		for _, idx := range p.FindAllStringSubmatchIndex(text, -1) {
			found = append(found, located{
				pos:     idx[0],
				heading: Heading{Level: level + 1, Text: StripTags(text[idx[2]:idx[3]])},
			})
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].pos < found[j].pos })
	for _, f := range found {
		r.Headings = append(r.Headings, f.heading)
	}

	for _, m := range paragraphPattern.FindAllStringSubmatch(text, -1) {
		r.Paragraphs = append(r.Paragraphs, StripTags(m[1]))
	}

	return r, nil
}
