package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/query"
	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/trajectory"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a scripted elicitation
// fixture: a pool of trajectories plus a list of scripted answers with
// expected accept/reject outcomes.
type Fixture struct {
	Description  string                  `json:"description"`
	Trajectories []trajectory.Trajectory `json:"trajectories"`
	Items        []FixtureItem           `json:"items"`
}

// FixtureItem is one scripted query/answer pair. Slate entries index
// into the fixture's trajectory pool. Exactly one of Response,
// Ranking, or Demonstrated must be set, matching Kind.
type FixtureItem struct {
	Name string     `json:"name"`
	Kind query.Kind `json:"kind"`

	Slate []int `json:"slate,omitempty"`

	// Preference / weak comparison answer.
	Response *int `json:"response,omitempty"`
	// Full ranking answer, most-preferred first.
	Ranking []int `json:"ranking,omitempty"`
	// Demonstration: index of the demonstrated trajectory.
	Demonstrated *int `json:"demonstrated,omitempty"`
	// Optional explicit initial state for a demonstration query;
	// lets fixtures exercise the mismatch check.
	InitialState []float64 `json:"initial_state,omitempty"`

	ExpectAccept bool `json:"expect_accept"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// slateFor resolves a fixture item's slate indices against the pool.
func (f *Fixture) slateFor(item FixtureItem) (trajectory.Set, error) {
	items := make([]trajectory.Trajectory, 0, len(item.Slate))
	for _, idx := range item.Slate {
		if idx < 0 || idx >= len(f.Trajectories) {
			return trajectory.Set{}, fmt.Errorf("item %q: slate index %d out of range [0,%d)", item.Name, idx, len(f.Trajectories))
		}
		items = append(items, f.Trajectories[idx])
	}
	return trajectory.NewSet(items...), nil
}

// #endregion fixture-loader
