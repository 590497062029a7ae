package elicit

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/query"
	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/trajectory"
)

func testSlate(n int) trajectory.Set {
	items := make([]trajectory.Trajectory, n)
	for i := range items {
		items[i] = trajectory.Trajectory{
			ID: string(rune('a' + i)),
			Steps: []trajectory.Step{
				{State: []float64{float64(i)}, Action: []float64{0}},
			},
			Features: []float64{float64(i)},
		}
	}
	return trajectory.NewSet(items...)
}

func preferenceQuery(t *testing.T, k int) *query.PreferenceQuery {
	t.Helper()
	q, err := query.NewPreferenceQuery(testSlate(k))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return q
}

func TestPreferenceRetriesUntilValid(t *testing.T) {
	q := preferenceQuery(t, 3)
	in := strings.NewReader("abc\n5\n2.0\n1\n")
	var out bytes.Buffer
	s := NewSession(in, &out, nil)

	v, err := s.Preference(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 1 {
		t.Fatalf("expected 1, got %d", v)
	}
	if s.Retries() != 3 {
		t.Fatalf("expected 3 retries, got %d", s.Retries())
	}
	if len(s.RawInputs()) != 4 {
		t.Fatalf("expected 4 raw inputs, got %d", len(s.RawInputs()))
	}

	// Each slate item is announced before the prompt.
	text := out.String()
	for _, want := range []string{"Playing trajectory #0", "Playing trajectory #1", "Playing trajectory #2"} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
}

func TestPreferenceInputClosed(t *testing.T) {
	q := preferenceQuery(t, 2)
	s := NewSession(strings.NewReader("nope\n"), &bytes.Buffer{}, nil)

	_, err := s.Preference(q)
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
}

func TestWeakComparisonSession(t *testing.T) {
	q, err := query.NewWeakComparisonQuery(testSlate(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out bytes.Buffer
	s := NewSession(strings.NewReader("2\n-1\n"), &out, nil)

	v, err := s.WeakComparison(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != -1 {
		t.Fatalf("expected -1, got %d", v)
	}
	if !strings.Contains(out.String(), "About Equal") {
		t.Fatalf("prompt missing the tie option:\n%s", out.String())
	}
}

func TestFullRankingSession(t *testing.T) {
	q, err := query.NewFullRankingQuery(testSlate(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// First pick 2, then a duplicate (rejected), then 0.
	// The final slot (1) is filled automatically without a prompt.
	var out bytes.Buffer
	s := NewSession(strings.NewReader("2\n2\n0\n"), &out, nil)

	got, err := s.FullRanking(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{2, 0, 1}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if !strings.Contains(out.String(), "You have already chosen trajectory 2 before!") {
		t.Fatalf("missing duplicate-rank reminder:\n%s", out.String())
	}
	if s.Retries() != 1 {
		t.Fatalf("expected 1 retry, got %d", s.Retries())
	}
}

func TestFullRankingResultIsValidResponse(t *testing.T) {
	q, err := query.NewFullRankingQuery(testSlate(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := NewSession(strings.NewReader("3\n1\n0\n"), &bytes.Buffer{}, nil)

	got, err := s.FullRanking(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.ResponseSet().Contains(got) {
		t.Fatalf("elicited ranking %v is not in the response set", got)
	}
}

func TestPlayerIsInvokedPerSlateItem(t *testing.T) {
	q := preferenceQuery(t, 2)
	var played []string
	s := NewSession(strings.NewReader("0\n"), &bytes.Buffer{}, playerFunc(func(tr trajectory.Trajectory) {
		played = append(played, tr.ID)
	}))

	if _, err := s.Preference(q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(played) != 2 || played[0] != "a" || played[1] != "b" {
		t.Fatalf("expected playback of a,b in order, got %v", played)
	}
}

type playerFunc func(trajectory.Trajectory)

func (f playerFunc) Play(t trajectory.Trajectory) { f(t) }
