package faqbank

import "testing"

func TestNormalizeQuestion(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "trims whitespace", in: "  When Are You Open?  ", out: "when are you open"},
		{name: "punctuation becomes space", in: "What's your address?", out: "what s your address"},
		{name: "collapses runs", in: "hours -- of   operation", out: "hours of operation"},
	}

	for _, tc := range cases {
		if got := normalizeQuestion(tc.in); got != tc.out {
			t.Fatalf("%s: expected %q got %q", tc.name, tc.out, got)
		}
	}
}
