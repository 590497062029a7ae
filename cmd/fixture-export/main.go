package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/query"
	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/record"
	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/replay"
	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/trajectory"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to elicitation.db")
	last := flag.Int("last", 10, "number of most recent feedback rows to export")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/db --out path/to/fixture.json [--last N]")
		os.Exit(2)
	}

	if err := run(*dbPath, *last, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

// demonstrationJSON mirrors the stored demonstration response shape.
type demonstrationJSON struct {
	Trajectory trajectory.Trajectory `json:"trajectory"`
	Features   []float64             `json:"features"`
}

func run(dbPath string, last int, outPath string) error {
	store, err := record.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	records, err := store.ListFeedback(last)
	if err != nil {
		return err
	}

	fx := replay.Fixture{
		Description: fmt.Sprintf("exported from %s (%d most recent feedback rows)", dbPath, len(records)),
	}

	for _, rec := range records {
		q, err := store.GetQuery(rec.QueryID)
		if err != nil {
			return err
		}
		item, pool, err := exportItem(rec, q, len(fx.Trajectories))
		if err != nil {
			return err
		}
		fx.Trajectories = append(fx.Trajectories, pool...)
		fx.Items = append(fx.Items, item)
	}

	data, err := json.MarshalIndent(fx, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	fmt.Printf("wrote %d items to %s\n", len(fx.Items), outPath)
	return nil
}

// exportItem converts one stored feedback row into a fixture item
// plus the trajectories it appends to the fixture pool, starting at
// pool offset base.
func exportItem(rec record.FeedbackRecord, q record.QueryRecord, base int) (replay.FixtureItem, []trajectory.Trajectory, error) {
	item := replay.FixtureItem{
		Name:         fmt.Sprintf("feedback-%d", rec.ID),
		Kind:         rec.Kind,
		ExpectAccept: true, // stored feedback passed validation once already
	}

	switch rec.Kind {
	case query.KindPreference, query.KindWeakComparison:
		var resp int
		if err := json.Unmarshal([]byte(rec.ResponseJSON), &resp); err != nil {
			return replay.FixtureItem{}, nil, fmt.Errorf("feedback %d: parse response: %w", rec.ID, err)
		}
		item.Response = &resp
		pool, err := slatePool(q)
		if err != nil {
			return replay.FixtureItem{}, nil, fmt.Errorf("feedback %d: %w", rec.ID, err)
		}
		item.Slate = indexRange(base, len(pool))
		return item, pool, nil

	case query.KindFullRanking:
		var ranking []int
		if err := json.Unmarshal([]byte(rec.ResponseJSON), &ranking); err != nil {
			return replay.FixtureItem{}, nil, fmt.Errorf("feedback %d: parse ranking: %w", rec.ID, err)
		}
		item.Ranking = ranking
		pool, err := slatePool(q)
		if err != nil {
			return replay.FixtureItem{}, nil, fmt.Errorf("feedback %d: %w", rec.ID, err)
		}
		item.Slate = indexRange(base, len(pool))
		return item, pool, nil

	case query.KindDemonstration:
		var demo demonstrationJSON
		if err := json.Unmarshal([]byte(rec.ResponseJSON), &demo); err != nil {
			return replay.FixtureItem{}, nil, fmt.Errorf("feedback %d: parse demonstration: %w", rec.ID, err)
		}
		var initial []float64
		if err := json.Unmarshal([]byte(q.SlateJSON), &initial); err != nil {
			return replay.FixtureItem{}, nil, fmt.Errorf("feedback %d: parse initial state: %w", rec.ID, err)
		}
		idx := base
		item.Demonstrated = &idx
		item.InitialState = initial
		return item, []trajectory.Trajectory{demo.Trajectory}, nil

	default:
		return replay.FixtureItem{}, nil, fmt.Errorf("feedback %d: unknown kind %q", rec.ID, rec.Kind)
	}
}

func slatePool(q record.QueryRecord) ([]trajectory.Trajectory, error) {
	var pool []trajectory.Trajectory
	if err := json.Unmarshal([]byte(q.SlateJSON), &pool); err != nil {
		return nil, fmt.Errorf("parse slate: %w", err)
	}
	return pool, nil
}

func indexRange(base, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = base + i
	}
	return out
}

// #endregion export
