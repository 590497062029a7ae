package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/elicit"
	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/feedback"
	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/logging"
	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/query"
	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/record"
	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/trajectory"
)

// #region main
func main() {
	dbPath := envOr("ELICIT_DB", "elicitation.db")
	trajPath := envOr("ELICIT_TRAJECTORIES", "trajectories.json")

	pool, err := loadTrajectories(trajPath)
	if err != nil {
		log.Fatalf("failed to load trajectories: %v", err)
	}

	store, err := record.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	session := elicit.NewSession(os.Stdin, os.Stdout, elicit.TextPlayer{Out: os.Stdout})

	fmt.Println("Preference elicitation session ready.")
	fmt.Printf("  DB: %s | Trajectories: %s (%d loaded)\n", dbPath, trajPath, len(pool))
	fmt.Println("Commands: pref i j [k...], weak i j, rank i j [k...], demo i, list, quit")

	for {
		line, err := session.Prompt("> ")
		if errors.Is(err, elicit.ErrInputClosed) {
			break
		}
		if err != nil {
			log.Fatalf("read command: %v", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		if err := runCommand(session, store, pool, line); err != nil {
			log.Printf("error: %v", err)
		}
	}
}
// #endregion main

// #region commands
func runCommand(session *elicit.Session, store *record.Store, pool []trajectory.Trajectory, line string) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "list":
		for i, t := range pool {
			fmt.Printf("  [%d] %s: %d steps, %d features\n", i, t.ID, t.Len(), len(t.Features))
		}
		return nil
	case "pref", "weak", "rank":
		slate, err := slateFromArgs(pool, args)
		if err != nil {
			return err
		}
		return runSlateQuery(session, store, cmd, slate)
	case "demo":
		if len(args) != 1 {
			return fmt.Errorf("usage: demo i")
		}
		idx, err := poolIndex(pool, args[0])
		if err != nil {
			return err
		}
		return runDemonstration(store, pool[idx])
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runSlateQuery(session *elicit.Session, store *record.Store, cmd string, slate trajectory.Set) error {
	switch cmd {
	case "pref":
		q, err := query.NewPreferenceQuery(slate)
		if err != nil {
			return err
		}
		queryID, err := store.SaveQuery(q)
		if err != nil {
			return err
		}
		resp, err := session.Preference(q)
		if err != nil {
			return err
		}
		pref, err := feedback.NewPreference(q, resp)
		if err != nil {
			return err
		}
		return persist(session, store, queryID, pref, resp)

	case "weak":
		q, err := query.NewWeakComparisonQuery(slate)
		if err != nil {
			return err
		}
		queryID, err := store.SaveQuery(q)
		if err != nil {
			return err
		}
		resp, err := session.WeakComparison(q)
		if err != nil {
			return err
		}
		comp, err := feedback.NewWeakComparison(q, resp)
		if err != nil {
			return err
		}
		return persist(session, store, queryID, comp, resp)

	case "rank":
		q, err := query.NewFullRankingQuery(slate)
		if err != nil {
			return err
		}
		queryID, err := store.SaveQuery(q)
		if err != nil {
			return err
		}
		resp, err := session.FullRanking(q)
		if err != nil {
			return err
		}
		ranking, err := feedback.NewFullRanking(q, resp)
		if err != nil {
			return err
		}
		return persist(session, store, queryID, ranking, resp)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func runDemonstration(store *record.Store, t trajectory.Trajectory) error {
	demo, err := feedback.NewDemonstration(t, nil)
	if err != nil {
		return err
	}
	queryID, err := store.SaveQuery(demo.DemonstrationQuery())
	if err != nil {
		return err
	}
	id, err := store.SaveFeedback(queryID, demo)
	if err != nil {
		return err
	}
	fmt.Printf("recorded demonstration #%d (query %s)\n", id, queryID)
	return nil
}

// persist stores the feedback and its elicitation provenance.
func persist(session *elicit.Session, store *record.Store, queryID string, f feedback.Feedback, response any) error {
	id, err := store.SaveFeedback(queryID, f)
	if err != nil {
		return err
	}

	acceptedJSON, _ := json.Marshal(response)
	err = logging.LogElicitation(store.DB(), logging.ElicitationEntry{
		QueryID:      queryID,
		RawInputs:    session.RawInputs(),
		Retries:      session.Retries(),
		AcceptedJSON: string(acceptedJSON),
	})
	if err != nil {
		log.Printf("logging error: %v", err)
	}

	fmt.Printf("recorded %s #%d (query %s, %d retries)\n", f.Kind(), id, queryID, session.Retries())
	return nil
}
// #endregion commands

// #region helpers
func loadTrajectories(path string) ([]trajectory.Trajectory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var pool []trajectory.Trajectory
	if err := json.Unmarshal(data, &pool); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return pool, nil
}

func slateFromArgs(pool []trajectory.Trajectory, args []string) (trajectory.Set, error) {
	items := make([]trajectory.Trajectory, 0, len(args))
	for _, a := range args {
		idx, err := poolIndex(pool, a)
		if err != nil {
			return trajectory.Set{}, err
		}
		items = append(items, pool[idx])
	}
	return trajectory.NewSet(items...), nil
}

func poolIndex(pool []trajectory.Trajectory, arg string) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 0 || idx >= len(pool) {
		return 0, fmt.Errorf("invalid trajectory index %q (have %d trajectories)", arg, len(pool))
	}
	return idx, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
// #endregion helpers
