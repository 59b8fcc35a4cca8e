package markup

import "testing"

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{{
		name: "plain text untouched",
		in:   "just some words",
		want: "just some words",
	}, {
		name: "simple tags removed",
		in:   "<b>bold</b> and <i>italic</i>",
		want: "bold and italic",
	}, {
		name: "block elements separated",
		in:   "<div>first line</div><div>second line</div>",
		want: "first line second line",
	}, {
		name: "nested markup",
		in:   "<div><b>deep</b> <span>text</span></div>",
		want: "deep text",
	}, {
		name: "empty string",
		in:   "",
		want: "",
	}, {
		name: "markup only",
		in:   "<br><div></div>",
		want: "",
	}, {
		name: "surrounding whitespace trimmed",
		in:   "  padded  ",
		want: "padded",
	}}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Strip(tc.in); got != tc.want {
				t.Errorf("Strip(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
