package preprocess

import (
	"errors"
	"reflect"
	"testing"
)

func TestAnalyze(t *testing.T) {
	t.Run("counts opening tags only", func(t *testing.T) {
		r, err := Analyze(`<h1>A</h1><p>one</p><p>two</p>`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.TotalTags != 3 {
			t.Errorf("TotalTags = %d, want 3", r.TotalTags)
		}
		if r.UniqueTags != 2 {
			t.Errorf("UniqueTags = %d, want 2", r.UniqueTags)
		}
		if r.Tags["p"] != 2 || r.Tags["h1"] != 1 {
			t.Errorf("unexpected tag counts: %v", r.Tags)
		}
	})

	t.Run("lowercases tag names", func(t *testing.T) {
		r, err := Analyze(`<DIV>x</DIV><div>y</div>`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Tags["div"] != 2 {
			t.Errorf("Tags[div] = %d, want 2", r.Tags["div"])
		}
		if _, ok := r.Tags["DIV"]; ok {
			t.Error("tag names should be lowercased")
		}
	})

	t.Run("splits class attributes into tokens", func(t *testing.T) {
		r, err := Analyze(`<div class="box wide"><span class="box">x</span></div>`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Classes["box"] != 2 {
			t.Errorf("Classes[box] = %d, want 2", r.Classes["box"])
		}
		if r.Classes["wide"] != 1 {
			t.Errorf("Classes[wide] = %d, want 1", r.Classes["wide"])
		}
	})

	t.Run("counts whole id values", func(t *testing.T) {
		r, err := Analyze(`<div id="main content">x</div>`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.IDs["main content"] != 1 {
			t.Errorf("IDs = %v, want whole value counted once", r.IDs)
		}
	})

	t.Run("headings in document order with sub-tags stripped", func(t *testing.T) {
		r, err := Analyze(`<h2>Second <em>level</em></h2><h1>First</h1><h2>Again</h2>`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []Heading{
			{Level: 2, Text: "Second level"},
			{Level: 1, Text: "First"},
			{Level: 2, Text: "Again"},
		}
		if !reflect.DeepEqual(r.Headings, want) {
			t.Errorf("Headings = %v, want %v", r.Headings, want)
		}
	})

	t.Run("nested headings reported once per level", func(t *testing.T) {
		r, err := Analyze(`<h1>a<h2>b</h2>c</h1>`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []Heading{
			{Level: 1, Text: "abc"},
			{Level: 2, Text: "b"},
		}
		if !reflect.DeepEqual(r.Headings, want) {
			t.Errorf("Headings = %v, want %v", r.Headings, want)
		}
	})

	t.Run("paragraph inner text", func(t *testing.T) {
		r, err := Analyze(`<p>one <b>bold</b></p><p class="x">two</p>`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"one bold", "two"}
		if !reflect.DeepEqual(r.Paragraphs, want) {
			t.Errorf("Paragraphs = %v, want %v", r.Paragraphs, want)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		for _, in := range []string{"", "   \n\t "} {
			if _, err := Analyze(in); !errors.Is(err, ErrEmptyInput) {
				t.Errorf("Analyze(%q) error = %v, want ErrEmptyInput", in, err)
			}
		}
	})
}

func TestReportTopTags(t *testing.T) {
	r := &Report{Tags: map[string]int{"div": 5, "p": 3, "a": 3, "h1": 1}}

	got := r.TopTags(3)
	want := []TagCount{{"div", 5}, {"a", 3}, {"p", 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopTags(3) = %v, want %v", got, want)
	}

	if got := r.TopTags(0); len(got) != 4 {
		t.Errorf("TopTags(0) should return all entries, got %d", len(got))
	}
}
