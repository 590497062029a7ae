package query

// #region index-set
// IndexSet is the response space of a preference query: the contiguous
// integer range [0, K).
type IndexSet struct {
	K int
}

// Contains reports whether r is a legal response.
func (s IndexSet) Contains(r int) bool {
	return r >= 0 && r < s.K
}

// Values enumerates the set in ascending order.
func (s IndexSet) Values() []int {
	out := make([]int, s.K)
	for i := range out {
		out[i] = i
	}
	return out
}
// #endregion index-set

// #region comparison-set
// ComparisonSet is the response space of a weak comparison query: the
// fixed set {-1, 0, 1}, where -1 denotes "about equal" and 0/1 index
// the preferred trajectory.
type ComparisonSet struct{}

// Contains reports whether r is a legal response.
func (ComparisonSet) Contains(r int) bool {
	return r == -1 || r == 0 || r == 1
}

// Values enumerates the set.
func (ComparisonSet) Values() []int {
	return []int{-1, 0, 1}
}
// #endregion comparison-set

// #region ranking-set
// RankingSet is the response space of a full ranking query: every
// permutation of [0, K), most-preferred first. The enumeration is
// materialized eagerly and has K! rows, which is only acceptable for
// small K.
type RankingSet struct {
	K     int
	perms [][]int
}

// NewRankingSet enumerates all permutations of [0, k).
func NewRankingSet(k int) RankingSet {
	return RankingSet{K: k, perms: permutations(k)}
}

// Contains reports whether r is exactly one of the enumerated
// permutations.
func (s RankingSet) Contains(r []int) bool {
	if len(r) != s.K {
		return false
	}
	seen := make([]bool, s.K)
	for _, v := range r {
		if v < 0 || v >= s.K || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Permutations returns the full enumeration. Rows share no backing
// arrays with the set.
func (s RankingSet) Permutations() [][]int {
	out := make([][]int, len(s.perms))
	for i, p := range s.perms {
		out[i] = append([]int(nil), p...)
	}
	return out
}

// Len returns the number of rows (K!).
func (s RankingSet) Len() int {
	return len(s.perms)
}

// permutations generates every ordering of [0, k) in lexicographic
// order.
func permutations(k int) [][]int {
	if k <= 0 {
		return nil
	}
	var out [][]int
	cur := make([]int, 0, k)
	used := make([]bool, k)
	var build func()
	build = func() {
		if len(cur) == k {
			out = append(out, append([]int(nil), cur...))
			return
		}
		for v := 0; v < k; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			cur = append(cur, v)
			build()
			cur = cur[:len(cur)-1]
			used[v] = false
		}
	}
	build()
	return out
}
// #endregion ranking-set
