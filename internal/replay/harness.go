package replay

import (
	"errors"
	"fmt"

	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/feedback"
	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/query"
)

// #region types
// Result captures the outcome of replaying one scripted answer
// through query construction and response validation.
type Result struct {
	Name     string
	Kind     query.Kind
	Accepted bool
	Reason   string // validation failure detail when rejected

	// MatchesExpected is false when the accept/reject outcome
	// disagrees with the fixture's expectation.
	MatchesExpected bool
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	Total      int
	Accepted   int
	Rejected   int
	Mismatches int
}
// #endregion types

// #region replay
// Replay runs every fixture item through the validation pipeline:
// slate → query construction → response construction. A failure at
// either stage counts as a rejection, so fixtures can pin both slate
// constraints and response-set membership. Structural fixture problems
// (bad trajectory indices, missing answers) abort the run.
func Replay(fx *Fixture) ([]Result, Summary, error) {
	results := make([]Result, 0, len(fx.Items))
	var summary Summary

	for _, item := range fx.Items {
		err := replayItem(fx, item)

		res := Result{
			Name:     item.Name,
			Kind:     item.Kind,
			Accepted: err == nil,
		}
		if err != nil {
			var structural *fixtureError
			if errors.As(err, &structural) {
				return nil, Summary{}, err
			}
			res.Reason = err.Error()
		}
		res.MatchesExpected = res.Accepted == item.ExpectAccept

		summary.Total++
		if res.Accepted {
			summary.Accepted++
		} else {
			summary.Rejected++
		}
		if !res.MatchesExpected {
			summary.Mismatches++
		}
		results = append(results, res)
	}
	return results, summary, nil
}

func replayItem(fx *Fixture, item FixtureItem) error {
	switch item.Kind {
	case query.KindPreference:
		if item.Response == nil {
			return structuralf("item %q: preference item needs a response", item.Name)
		}
		slate, err := fx.slateFor(item)
		if err != nil {
			return structuralf("%v", err)
		}
		q, err := query.NewPreferenceQuery(slate)
		if err != nil {
			return err
		}
		_, err = feedback.NewPreference(q, *item.Response)
		return err

	case query.KindWeakComparison:
		if item.Response == nil {
			return structuralf("item %q: weak comparison item needs a response", item.Name)
		}
		slate, err := fx.slateFor(item)
		if err != nil {
			return structuralf("%v", err)
		}
		q, err := query.NewWeakComparisonQuery(slate)
		if err != nil {
			return err
		}
		_, err = feedback.NewWeakComparison(q, *item.Response)
		return err

	case query.KindFullRanking:
		if item.Ranking == nil {
			return structuralf("item %q: ranking item needs a ranking", item.Name)
		}
		slate, err := fx.slateFor(item)
		if err != nil {
			return structuralf("%v", err)
		}
		q, err := query.NewFullRankingQuery(slate)
		if err != nil {
			return err
		}
		_, err = feedback.NewFullRanking(q, item.Ranking)
		return err

	case query.KindDemonstration:
		if item.Demonstrated == nil {
			return structuralf("item %q: demonstration item needs a demonstrated index", item.Name)
		}
		idx := *item.Demonstrated
		if idx < 0 || idx >= len(fx.Trajectories) {
			return structuralf("item %q: demonstrated index %d out of range [0,%d)", item.Name, idx, len(fx.Trajectories))
		}
		var q *query.DemonstrationQuery
		if item.InitialState != nil {
			q = query.NewDemonstrationQuery(item.InitialState)
		}
		_, err := feedback.NewDemonstration(fx.Trajectories[idx], q)
		return err

	default:
		return structuralf("item %q: unknown kind %q", item.Name, item.Kind)
	}
}
// #endregion replay

// #region fixture-error
// fixtureError marks a structural fixture problem, as opposed to a
// validation rejection that the fixture intended to exercise.
type fixtureError struct {
	msg string
}

func (e *fixtureError) Error() string { return e.msg }

func structuralf(format string, args ...any) error {
	return &fixtureError{msg: fmt.Sprintf(format, args...)}
}
// #endregion fixture-error
