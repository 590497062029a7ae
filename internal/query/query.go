package query

import (
	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/trajectory"
)

// #region kind
// Kind identifies a query variant.
type Kind string

const (
	KindDemonstration  Kind = "demonstration"
	KindPreference     Kind = "preference"
	KindWeakComparison Kind = "weak_comparison"
	KindFullRanking    Kind = "full_ranking"
)
// #endregion kind

// #region query-interface
// Query is the common surface of all query variants. Concrete variants
// additionally expose their slate and strongly-typed response set.
type Query interface {
	Kind() Kind
	// Copy returns a deep, independent duplicate with no shared
	// mutable state.
	Copy() Query
}
// #endregion query-interface

// #region demonstration-query
// DemonstrationQuery asks the user to control the robot from a given
// initial state. It has no response set: the response is an entire
// trajectory, not a choice from an enumerable set.
type DemonstrationQuery struct {
	initialState []float64
}

// NewDemonstrationQuery builds a demonstration query for the given
// initial state.
func NewDemonstrationQuery(initialState []float64) *DemonstrationQuery {
	return &DemonstrationQuery{initialState: append([]float64(nil), initialState...)}
}

func (q *DemonstrationQuery) Kind() Kind { return KindDemonstration }

// InitialState returns a copy of the initial state vector.
func (q *DemonstrationQuery) InitialState() []float64 {
	return append([]float64(nil), q.initialState...)
}

func (q *DemonstrationQuery) Copy() Query {
	return NewDemonstrationQuery(q.initialState)
}
// #endregion demonstration-query

// #region preference-query
// PreferenceQuery asks which of K trajectories is the best. Its
// response set is the contiguous index range [0, K).
type PreferenceQuery struct {
	slate trajectory.Set
	set   IndexSet
}

// NewPreferenceQuery builds a preference query over the slate. K and
// the response set are computed once, atomically; reassigning the
// slate means building a new query via WithSlate.
func NewPreferenceQuery(slate trajectory.Set) (*PreferenceQuery, error) {
	if slate.Size() < 2 {
		return nil, validationf(ErrSlateTooSmall, "preference queries need at least 2 trajectories, got %d", slate.Size())
	}
	return &PreferenceQuery{slate: slate, set: IndexSet{K: slate.Size()}}, nil
}

func (q *PreferenceQuery) Kind() Kind { return KindPreference }

// K returns the slate size.
func (q *PreferenceQuery) K() int { return q.set.K }

// Slate returns the trajectory slate.
func (q *PreferenceQuery) Slate() trajectory.Set { return q.slate }

// ResponseSet returns the legal response range.
func (q *PreferenceQuery) ResponseSet() IndexSet { return q.set }

// WithSlate returns a new query over a different slate. K and the
// response set are recomputed; the receiver is unchanged.
func (q *PreferenceQuery) WithSlate(slate trajectory.Set) (*PreferenceQuery, error) {
	return NewPreferenceQuery(slate)
}

func (q *PreferenceQuery) Copy() Query {
	return &PreferenceQuery{slate: q.slate.Clone(), set: q.set}
}
// #endregion preference-query

// #region weak-comparison-query
// WeakComparisonQuery asks which of exactly two trajectories is the
// best, with an "about equal" option. Its response set is always
// {-1, 0, 1} regardless of the slate.
type WeakComparisonQuery struct {
	slate trajectory.Set
}

// NewWeakComparisonQuery builds a weak comparison query over a
// pairwise slate.
func NewWeakComparisonQuery(slate trajectory.Set) (*WeakComparisonQuery, error) {
	if slate.Size() != 2 {
		return nil, validationf(ErrSlateNotPair, "weak comparison queries are pairwise, got %d trajectories", slate.Size())
	}
	return &WeakComparisonQuery{slate: slate}, nil
}

func (q *WeakComparisonQuery) Kind() Kind { return KindWeakComparison }

// K returns the slate size, always 2.
func (q *WeakComparisonQuery) K() int { return 2 }

// Slate returns the trajectory slate.
func (q *WeakComparisonQuery) Slate() trajectory.Set { return q.slate }

// ResponseSet returns the fixed comparison set.
func (q *WeakComparisonQuery) ResponseSet() ComparisonSet { return ComparisonSet{} }

// WithSlate returns a new query over a different slate.
func (q *WeakComparisonQuery) WithSlate(slate trajectory.Set) (*WeakComparisonQuery, error) {
	return NewWeakComparisonQuery(slate)
}

func (q *WeakComparisonQuery) Copy() Query {
	return &WeakComparisonQuery{slate: q.slate.Clone()}
}
// #endregion weak-comparison-query

// #region full-ranking-query
// FullRankingQuery asks for a total order of K trajectories,
// most-preferred first. Its response set is every permutation of
// [0, K), enumerated eagerly at construction time.
type FullRankingQuery struct {
	slate trajectory.Set
	set   RankingSet
}

// NewFullRankingQuery builds a ranking query over the slate. The K!
// permutation enumeration happens here; keep K small.
func NewFullRankingQuery(slate trajectory.Set) (*FullRankingQuery, error) {
	if slate.Size() < 2 {
		return nil, validationf(ErrSlateTooSmall, "ranking queries need at least 2 trajectories, got %d", slate.Size())
	}
	return &FullRankingQuery{slate: slate, set: NewRankingSet(slate.Size())}, nil
}

func (q *FullRankingQuery) Kind() Kind { return KindFullRanking }

// K returns the slate size.
func (q *FullRankingQuery) K() int { return q.set.K }

// Slate returns the trajectory slate.
func (q *FullRankingQuery) Slate() trajectory.Set { return q.slate }

// ResponseSet returns the permutation set.
func (q *FullRankingQuery) ResponseSet() RankingSet { return q.set }

// WithSlate returns a new query over a different slate.
func (q *FullRankingQuery) WithSlate(slate trajectory.Set) (*FullRankingQuery, error) {
	return NewFullRankingQuery(slate)
}

func (q *FullRankingQuery) Copy() Query {
	return &FullRankingQuery{slate: q.slate.Clone(), set: NewRankingSet(q.set.K)}
}
// #endregion full-ranking-query
