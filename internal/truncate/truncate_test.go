package truncate

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCap_NeverExceedsBudget(t *testing.T) {
	s := "the quick brown fox jumps over the lazy dog"
	for n := 0; n <= len(s)+5; n++ {
		for _, wordSafe := range []bool{false, true} {
			got := Cap(s, n, wordSafe)
			if utf8.RuneCountInString(got) > n {
				t.Fatalf("Cap(%d, wordSafe=%v) = %q exceeds budget", n, wordSafe, got)
			}
		}
	}
}

func TestCap_WordSafeNeverSplitsWords(t *testing.T) {
	s := "alpha beta gamma"
	for n := 1; n < len(s); n++ {
		if !strings.Contains(s[:n], " ") {
			// No boundary within the cut region; a hard cut is allowed.
			continue
		}
		got := Cap(s, n, true)
		if got == "" {
			continue
		}
		// Every emitted word must be a complete word of the input.
		for _, w := range strings.Fields(got) {
			switch w {
			case "alpha", "beta", "gamma":
			default:
				t.Fatalf("Cap(%d) split a word: %q", n, got)
			}
		}
	}
}

func TestCap_BoundaryAtCutPointKept(t *testing.T) {
	// Cut lands exactly after a full word; nothing should be trimmed away.
	if got := Cap("alpha beta", 5, true); got != "alpha" {
		t.Fatalf("Cap = %q, want %q", got, "alpha")
	}
}

func TestCap_NoBoundaryHardCut(t *testing.T) {
	if got := Cap("abcdefghij", 4, true); got != "abcd" {
		t.Fatalf("without any boundary a hard cut applies, got %q", got)
	}
}

func TestCap_SentinelDisables(t *testing.T) {
	s := strings.Repeat("x", 10000)
	if got := Cap(s, Disabled, true); got != s {
		t.Fatalf("Disabled must return input unchanged")
	}
}

func TestCap_NegativeClampsToZero(t *testing.T) {
	if got := Cap("content", -7, false); got != "" {
		t.Fatalf("negative caps other than the sentinel clamp to zero, got %q", got)
	}
}

func TestCap_ShortInputUnchanged(t *testing.T) {
	if got := Cap("short", 100, true); got != "short" {
		t.Fatalf("content under budget must pass through, got %q", got)
	}
}

func TestCap_RuneBudgetNotBytes(t *testing.T) {
	s := "héllo wörld"
	got := Cap(s, 5, false)
	if got != "héllo" {
		t.Fatalf("cap must count runes, got %q", got)
	}
}

func TestWordCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one two\tthree\nfour", 4},
		{"• bullet line", 3},
	}
	for _, tc := range cases {
		if got := WordCount(tc.in); got != tc.want {
			t.Fatalf("WordCount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
