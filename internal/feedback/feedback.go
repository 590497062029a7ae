// Package feedback holds the response side of the query/response data
// model: each type pairs a query with a response that was validated
// against the query's response set at construction time. Values are
// immutable once built; a new answer means a new value.
package feedback

import (
	"math"

	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/query"
	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/trajectory"
)

// #region feedback-interface
// Feedback is the common surface of all query-with-response pairs.
type Feedback interface {
	Kind() query.Kind
	Query() query.Query
}
// #endregion feedback-interface

// #region preference
// Preference records the chosen index for a preference query.
type Preference struct {
	query    *query.PreferenceQuery
	response int
}

// NewPreference validates response against the query's response set.
// An out-of-range response is a hard construction failure.
func NewPreference(q *query.PreferenceQuery, response int) (*Preference, error) {
	if !q.ResponseSet().Contains(response) {
		return nil, query.Invalidf("response %d is out of bounds for a slate size of %d", response, q.K())
	}
	return &Preference{query: q, response: response}, nil
}

func (p *Preference) Kind() query.Kind   { return query.KindPreference }
func (p *Preference) Query() query.Query { return p.query }

// PreferenceQuery returns the typed query.
func (p *Preference) PreferenceQuery() *query.PreferenceQuery { return p.query }

// Response returns the chosen trajectory index.
func (p *Preference) Response() int { return p.response }
// #endregion preference

// #region weak-comparison
// WeakComparison records the answer to a pairwise comparison with a
// tie option: -1 for "about equal", 0 or 1 for the preferred item.
type WeakComparison struct {
	query    *query.WeakComparisonQuery
	response int
}

// NewWeakComparison validates response against {-1, 0, 1}.
func NewWeakComparison(q *query.WeakComparisonQuery, response int) (*WeakComparison, error) {
	if !q.ResponseSet().Contains(response) {
		return nil, query.Invalidf("response %d is invalid for a weak comparison query", response)
	}
	return &WeakComparison{query: q, response: response}, nil
}

func (w *WeakComparison) Kind() query.Kind   { return query.KindWeakComparison }
func (w *WeakComparison) Query() query.Query { return w.query }

// WeakComparisonQuery returns the typed query.
func (w *WeakComparison) WeakComparisonQuery() *query.WeakComparisonQuery { return w.query }

// Response returns the recorded answer.
func (w *WeakComparison) Response() int { return w.response }
// #endregion weak-comparison

// #region full-ranking
// FullRanking records a total order of the slate, most-preferred
// first.
type FullRanking struct {
	query    *query.FullRankingQuery
	response []int
}

// NewFullRanking validates that response is exactly one of the
// query's enumerated permutations.
func NewFullRanking(q *query.FullRankingQuery, response []int) (*FullRanking, error) {
	if !q.ResponseSet().Contains(response) {
		return nil, query.Invalidf("response %v is invalid for a ranking query of size %d", response, q.K())
	}
	return &FullRanking{query: q, response: append([]int(nil), response...)}, nil
}

func (r *FullRanking) Kind() query.Kind   { return query.KindFullRanking }
func (r *FullRanking) Query() query.Query { return r.query }

// FullRankingQuery returns the typed query.
func (r *FullRanking) FullRankingQuery() *query.FullRankingQuery { return r.query }

// Response returns a copy of the recorded ranking.
func (r *FullRanking) Response() []int {
	return append([]int(nil), r.response...)
}
// #endregion full-ranking

// #region demonstration
// Demonstration pairs a trajectory with a demonstration query. The
// trajectory itself is the response content; its feature vector is
// kept alongside for downstream consumers.
type Demonstration struct {
	query      *query.DemonstrationQuery
	trajectory trajectory.Trajectory
	features   []float64
}

// NewDemonstration builds a demonstration from a trajectory. A nil
// query is synthesized from the trajectory's first state; an explicit
// query must match that state within floating tolerance.
func NewDemonstration(t trajectory.Trajectory, q *query.DemonstrationQuery) (*Demonstration, error) {
	initial, err := t.InitialState()
	if err != nil {
		return nil, err
	}
	if q == nil {
		q = query.NewDemonstrationQuery(initial)
	} else if !allClose(q.InitialState(), initial) {
		return nil, query.MismatchErr("mismatch between the query and the response for the demonstration")
	}
	return &Demonstration{
		query:      q,
		trajectory: t,
		features:   append([]float64(nil), t.Features...),
	}, nil
}

func (d *Demonstration) Kind() query.Kind   { return query.KindDemonstration }
func (d *Demonstration) Query() query.Query { return d.query }

// DemonstrationQuery returns the typed query.
func (d *Demonstration) DemonstrationQuery() *query.DemonstrationQuery { return d.query }

// Trajectory returns the demonstrated trajectory.
func (d *Demonstration) Trajectory() trajectory.Trajectory { return d.trajectory }

// Features returns a copy of the trajectory's feature vector.
func (d *Demonstration) Features() []float64 {
	return append([]float64(nil), d.features...)
}
// #endregion demonstration

// #region closeness
// Element-wise numeric closeness, |a-b| <= atol + rtol*|b|.
const (
	closeRtol = 1e-5
	closeAtol = 1e-8
)

func allClose(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > closeAtol+closeRtol*math.Abs(b[i]) {
			return false
		}
	}
	return true
}
// #endregion closeness
