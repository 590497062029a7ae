package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/query"
	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/trajectory"
)

func intp(v int) *int { return &v }

func testFixture() *Fixture {
	trajs := make([]trajectory.Trajectory, 3)
	for i := range trajs {
		trajs[i] = trajectory.Trajectory{
			ID: string(rune('a' + i)),
			Steps: []trajectory.Step{
				{State: []float64{float64(i), 0.5}, Action: []float64{0}},
			},
			Features: []float64{float64(i)},
		}
	}
	return &Fixture{
		Description:  "test fixture",
		Trajectories: trajs,
	}
}

func TestReplayAcceptsValidAnswers(t *testing.T) {
	fx := testFixture()
	fx.Items = []FixtureItem{
		{Name: "pref-ok", Kind: query.KindPreference, Slate: []int{0, 1, 2}, Response: intp(1), ExpectAccept: true},
		{Name: "weak-tie", Kind: query.KindWeakComparison, Slate: []int{0, 1}, Response: intp(-1), ExpectAccept: true},
		{Name: "rank-ok", Kind: query.KindFullRanking, Slate: []int{0, 1}, Ranking: []int{1, 0}, ExpectAccept: true},
		{Name: "demo-ok", Kind: query.KindDemonstration, Demonstrated: intp(2), ExpectAccept: true},
	}

	results, summary, err := Replay(fx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Accepted != 4 || summary.Rejected != 0 || summary.Mismatches != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	for _, r := range results {
		if !r.Accepted || !r.MatchesExpected {
			t.Fatalf("item %s: expected acceptance, got %+v", r.Name, r)
		}
	}
}

func TestReplayRejectsInvalidAnswers(t *testing.T) {
	fx := testFixture()
	fx.Items = []FixtureItem{
		{Name: "pref-out-of-range", Kind: query.KindPreference, Slate: []int{0, 1, 2}, Response: intp(5), ExpectAccept: false},
		{Name: "pref-small-slate", Kind: query.KindPreference, Slate: []int{0}, Response: intp(0), ExpectAccept: false},
		{Name: "weak-triple", Kind: query.KindWeakComparison, Slate: []int{0, 1, 2}, Response: intp(0), ExpectAccept: false},
		{Name: "rank-dup", Kind: query.KindFullRanking, Slate: []int{0, 1}, Ranking: []int{1, 1}, ExpectAccept: false},
		{Name: "demo-mismatch", Kind: query.KindDemonstration, Demonstrated: intp(0), InitialState: []float64{9, 9}, ExpectAccept: false},
	}

	results, summary, err := Replay(fx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Rejected != 5 || summary.Mismatches != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	for _, r := range results {
		if r.Accepted {
			t.Fatalf("item %s: expected rejection", r.Name)
		}
		if r.Reason == "" {
			t.Fatalf("item %s: rejection needs a reason", r.Name)
		}
	}
}

func TestReplayFlagsExpectationMismatch(t *testing.T) {
	fx := testFixture()
	fx.Items = []FixtureItem{
		{Name: "wrong-expectation", Kind: query.KindPreference, Slate: []int{0, 1}, Response: intp(0), ExpectAccept: false},
	}

	results, summary, err := Replay(fx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Mismatches != 1 {
		t.Fatalf("expected 1 mismatch, got %d", summary.Mismatches)
	}
	if results[0].MatchesExpected {
		t.Fatal("expected MatchesExpected = false")
	}
}

func TestReplayAbortsOnStructuralErrors(t *testing.T) {
	bad := []FixtureItem{
		{Name: "bad-slate-index", Kind: query.KindPreference, Slate: []int{0, 9}, Response: intp(0)},
		{Name: "missing-response", Kind: query.KindPreference, Slate: []int{0, 1}},
		{Name: "unknown-kind", Kind: query.Kind("ordinal"), Slate: []int{0, 1}, Response: intp(0)},
		{Name: "bad-demo-index", Kind: query.KindDemonstration, Demonstrated: intp(7)},
	}
	for _, item := range bad {
		fx := testFixture()
		fx.Items = []FixtureItem{item}
		if _, _, err := Replay(fx); err == nil {
			t.Fatalf("item %s: expected a structural error", item.Name)
		}
	}
}

func TestLoadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.json")
	data := `{
		"description": "two trajectories, one preference",
		"trajectories": [
			{"id": "a", "steps": [{"state": [0], "action": [0]}], "features": [0]},
			{"id": "b", "steps": [{"state": [1], "action": [0]}], "features": [1]}
		],
		"items": [
			{"name": "pref", "kind": "preference", "slate": [0, 1], "response": 1, "expect_accept": true}
		]
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fx, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	if len(fx.Trajectories) != 2 || len(fx.Items) != 1 {
		t.Fatalf("unexpected fixture: %+v", fx)
	}

	_, summary, err := Replay(fx)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if summary.Accepted != 1 || summary.Mismatches != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestLoadFixtureMissingFile(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing fixture")
	}
}
