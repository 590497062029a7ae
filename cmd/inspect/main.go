package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/logging"
	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/record"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to elicitation.db")
	last := flag.Int("last", 20, "show N most recent feedback rows")
	queryID := flag.String("query", "", "show single query detail")
	withLog := flag.Bool("log", false, "include elicitation provenance")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/elicitation.db [--last N] [--query id] [--log] [--json]")
		os.Exit(2)
	}

	store, err := record.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *queryID != "" {
		err = runDetailMode(store, *queryID, *jsonOut)
	} else {
		err = runListMode(store, *last, *withLog, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	ID        int64  `json:"id"`
	QueryID   string `json:"query_id"`
	Kind      string `json:"kind"`
	Response  string `json:"response"`
	CreatedAt string `json:"created_at"`
	Retries   *int   `json:"retries,omitempty"`
}

func runListMode(store *record.Store, last int, withLog, jsonOut bool) error {
	records, err := store.ListFeedback(last)
	if err != nil {
		return err
	}

	retriesByQuery := map[string]int{}
	if withLog {
		entries, err := logging.ListElicitations(store.DB(), 0)
		if err != nil {
			return err
		}
		for _, e := range entries {
			retriesByQuery[e.QueryID] = e.Retries
		}
	}

	rows := make([]listRow, 0, len(records))
	for _, rec := range records {
		row := listRow{
			ID:        rec.ID,
			QueryID:   rec.QueryID,
			Kind:      string(rec.Kind),
			Response:  rec.ResponseJSON,
			CreatedAt: rec.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if withLog {
			if r, ok := retriesByQuery[rec.QueryID]; ok {
				row.Retries = &r
			}
		}
		rows = append(rows, row)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	fmt.Printf("%-5s %-36s %-16s %-20s %s\n", "ID", "QUERY", "KIND", "CREATED", "RESPONSE")
	for _, row := range rows {
		resp := row.Response
		if len(resp) > 40 {
			resp = resp[:37] + "..."
		}
		fmt.Printf("%-5d %-36s %-16s %-20s %s", row.ID, row.QueryID, row.Kind, row.CreatedAt, resp)
		if row.Retries != nil {
			fmt.Printf("  (%d retries)", *row.Retries)
		}
		fmt.Println()
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailView struct {
	Query    record.QueryRecord `json:"query"`
	Feedback []feedbackView     `json:"feedback"`
}

type feedbackView struct {
	ID        int64  `json:"id"`
	Kind      string `json:"kind"`
	Response  string `json:"response"`
	CreatedAt string `json:"created_at"`
}

func runDetailMode(store *record.Store, queryID string, jsonOut bool) error {
	q, err := store.GetQuery(queryID)
	if err != nil {
		return err
	}

	all, err := store.ListFeedback(0)
	if err != nil {
		return err
	}
	var views []feedbackView
	for _, rec := range all {
		if rec.QueryID != queryID {
			continue
		}
		views = append(views, feedbackView{
			ID:        rec.ID,
			Kind:      string(rec.Kind),
			Response:  rec.ResponseJSON,
			CreatedAt: rec.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(detailView{Query: q, Feedback: views})
	}

	fmt.Printf("query %s\n", q.QueryID)
	fmt.Printf("  kind:       %s\n", q.Kind)
	fmt.Printf("  slate size: %d\n", q.SlateSize)
	fmt.Printf("  created:    %s\n", q.CreatedAt.Format("2006-01-02 15:04:05"))
	for _, v := range views {
		fmt.Printf("  feedback #%d (%s): %s\n", v.ID, v.CreatedAt, v.Response)
	}
	return nil
}

// #endregion detail-mode
