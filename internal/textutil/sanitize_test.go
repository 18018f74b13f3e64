package textutil_test

import (
	"testing"

	"sleeve/internal/textutil"
)

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		"Abbey Road":        "Abbey Road",
		"AC/DC: Live":       "AC-DC- Live",
		"  What? <Why>  ":   "What Why",
		"a*b|c\"d":          "a-bcd",
		"":                  "",
		"back\\slash":       "back-slash",
	}
	for input, want := range cases {
		if got := textutil.SanitizeFileName(input); got != want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSanitizeToken(t *testing.T) {
	cases := map[string]string{
		"Abbey Road":    "abbey_road",
		"OK Computer":   "ok_computer",
		"---":           "untitled",
		"":              "untitled",
		"Señor Blues":   "se_or_blues",
		"already_safe1": "already_safe1",
	}
	for input, want := range cases {
		if got := textutil.SanitizeToken(input); got != want {
			t.Fatalf("SanitizeToken(%q) = %q, want %q", input, got, want)
		}
	}
}
