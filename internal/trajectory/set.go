package trajectory

import "fmt"

// #region set
// Set is an ordered collection of trajectories. A raw slice is
// normalized into a Set on construction; queries always hold a Set.
type Set struct {
	items []Trajectory
}

// NewSet builds a Set from an ordered sequence of trajectories.
func NewSet(items ...Trajectory) Set {
	return Set{items: append([]Trajectory(nil), items...)}
}

// Size returns the number of trajectories in the set.
func (s Set) Size() int {
	return len(s.items)
}

// Get returns the trajectory at index i.
func (s Set) Get(i int) (Trajectory, error) {
	if i < 0 || i >= len(s.items) {
		return Trajectory{}, fmt.Errorf("trajectory index %d out of range [0,%d)", i, len(s.items))
	}
	return s.items[i], nil
}

// Items returns the trajectories in order. The slice is a copy; the
// trajectories share backing arrays with the set.
func (s Set) Items() []Trajectory {
	return append([]Trajectory(nil), s.items...)
}

// Clone returns a deep copy of the set and every trajectory in it.
func (s Set) Clone() Set {
	out := Set{items: make([]Trajectory, len(s.items))}
	for i, t := range s.items {
		out.items[i] = t.Clone()
	}
	return out
}
// #endregion set
