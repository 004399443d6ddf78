package preprocess

import "testing"

func TestDecodeEntities(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "decimal hex and named",
			in:   "&#65;&#x42;&amp;",
			want: "AB&",
		},
		{
			name: "named table",
			in:   "a&nbsp;b &lt;tag&gt; &quot;q&quot; &hellip;",
			want: `a b <tag> "q" ...`,
		},
		{
			name: "amp decodes last so it cannot form new references",
			in:   "&amp;#65;",
			want: "&#65;",
		},
		{
			name: "unknown named reference unchanged",
			in:   "&bogus;",
			want: "&bogus;",
		},
		{
			name: "out of range code point unchanged",
			in:   "&#9999999;",
			want: "&#9999999;",
		},
		{
			name: "surrogate code point unchanged",
			in:   "&#55296;",
			want: "&#55296;",
		},
		{
			name: "malformed reference unchanged",
			in:   "&#x;&#;",
			want: "&#x;&#;",
		},
		{
			name: "hex is case insensitive in the payload",
			in:   "&#x2014;&#X27;",
			want: "—&#X27;",
		},
		{
			name: "typographic references",
			in:   "&ldquo;quoted&rdquo; &mdash; &copy;",
			want: "“quoted” — ©",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeEntities(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// Decoding twice must not differ from decoding once for text without
// ampersand-producing references.
func TestDecodeEntitiesDeterministic(t *testing.T) {
	in := "&#65;&#x42; &nbsp;done"
	once := DecodeEntities(in)
	if twice := DecodeEntities(once); twice != once {
		t.Errorf("decode not stable: %q then %q", once, twice)
	}
}
