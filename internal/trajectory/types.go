package trajectory

import "fmt"

// #region step
// Step is a single (state, action) pair along a trajectory.
type Step struct {
	State  []float64 `json:"state"`
	Action []float64 `json:"action"`
}
// #endregion step

// #region trajectory
// Trajectory is an ordered sequence of steps together with its
// precomputed feature vector. Index 0 yields the initial state.
type Trajectory struct {
	ID       string    `json:"id"`
	Steps    []Step    `json:"steps"`
	Features []float64 `json:"features"`
}

// InitialState returns the state at step 0.
func (t Trajectory) InitialState() ([]float64, error) {
	if len(t.Steps) == 0 {
		return nil, fmt.Errorf("trajectory %s has no steps", t.ID)
	}
	return t.Steps[0].State, nil
}

// Len returns the number of steps.
func (t Trajectory) Len() int {
	return len(t.Steps)
}

// Clone returns a deep copy with no shared backing arrays.
func (t Trajectory) Clone() Trajectory {
	out := Trajectory{
		ID:       t.ID,
		Steps:    make([]Step, len(t.Steps)),
		Features: append([]float64(nil), t.Features...),
	}
	for i, s := range t.Steps {
		out.Steps[i] = Step{
			State:  append([]float64(nil), s.State...),
			Action: append([]float64(nil), s.Action...),
		}
	}
	return out
}
// #endregion trajectory
