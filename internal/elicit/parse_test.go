package elicit

import (
	"errors"
	"testing"

	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/query"
)

func TestIsInteger(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"3", true},
		{"0", true},
		{"-1", true},
		{"+7", true},
		{"3.0", false},
		{"abc", false},
		{"", false},
		{" 3", false},
		{"3 ", false},
		{"1e3", false},
		{"0x10", false},
	}
	for _, c := range cases {
		if got := IsInteger(c.in); got != c.want {
			t.Fatalf("IsInteger(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseChoice(t *testing.T) {
	set := query.IndexSet{K: 3}

	v, err := ParseChoice("2", set)
	if err != nil || v != 2 {
		t.Fatalf("expected 2, got %d (%v)", v, err)
	}

	if _, err := ParseChoice("two", set); !errors.Is(err, ErrNotInteger) {
		t.Fatalf("expected ErrNotInteger, got %v", err)
	}
	if _, err := ParseChoice("2.0", set); !errors.Is(err, ErrNotInteger) {
		t.Fatalf("expected ErrNotInteger, got %v", err)
	}
	if _, err := ParseChoice("3", set); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := ParseChoice("-1", set); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestParseComparison(t *testing.T) {
	for _, in := range []string{"-1", "0", "1"} {
		if _, err := ParseComparison(in); err != nil {
			t.Fatalf("ParseComparison(%q): unexpected error %v", in, err)
		}
	}
	if _, err := ParseComparison("2"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := ParseComparison("equal"); !errors.Is(err, ErrNotInteger) {
		t.Fatalf("expected ErrNotInteger, got %v", err)
	}
}

func TestParseRank(t *testing.T) {
	v, err := ParseRank("1", 3, []int{0})
	if err != nil || v != 1 {
		t.Fatalf("expected 1, got %d (%v)", v, err)
	}

	if _, err := ParseRank("0", 3, []int{0}); !errors.Is(err, ErrDuplicateRank) {
		t.Fatalf("expected ErrDuplicateRank, got %v", err)
	}
	if _, err := ParseRank("3", 3, nil); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := ParseRank("x", 3, nil); !errors.Is(err, ErrNotInteger) {
		t.Fatalf("expected ErrNotInteger, got %v", err)
	}
}
