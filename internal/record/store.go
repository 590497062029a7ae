package record

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/feedback"
	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/query"
	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/trajectory"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS queries (
	query_id    TEXT PRIMARY KEY,
	kind        TEXT NOT NULL,
	slate_size  INTEGER NOT NULL,
	slate_json  TEXT NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS feedback (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	query_id      TEXT NOT NULL,
	kind          TEXT NOT NULL,
	response_json TEXT NOT NULL,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (query_id) REFERENCES queries(query_id)
);

CREATE TABLE IF NOT EXISTS elicitation_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	query_id      TEXT NOT NULL,
	raw_inputs    TEXT,
	retries       INTEGER NOT NULL,
	accepted_json TEXT,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (query_id) REFERENCES queries(query_id)
);
`
// #endregion schema

// #region store-struct
// Store persists collected queries and feedback in SQLite so
// downstream learners can consume them later.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages
// (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}
// #endregion db-accessor

// #region save-query
// SaveQuery assigns the query a fresh ID and stores it. For slate
// queries the slate JSON is the trajectory list; for demonstration
// queries it is the initial state vector.
func (s *Store) SaveQuery(q query.Query) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	var slateSize int
	var slatePayload any
	switch v := q.(type) {
	case *query.PreferenceQuery:
		slateSize = v.K()
		slatePayload = v.Slate().Items()
	case *query.WeakComparisonQuery:
		slateSize = v.K()
		slatePayload = v.Slate().Items()
	case *query.FullRankingQuery:
		slateSize = v.K()
		slatePayload = v.Slate().Items()
	case *query.DemonstrationQuery:
		slateSize = 0
		slatePayload = v.InitialState()
	default:
		return "", fmt.Errorf("unknown query kind %q", q.Kind())
	}

	slateJSON, err := json.Marshal(slatePayload)
	if err != nil {
		return "", fmt.Errorf("marshal slate: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO queries (query_id, kind, slate_size, slate_json, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		id, string(q.Kind()), slateSize, string(slateJSON), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert query: %w", err)
	}
	return id, nil
}
// #endregion save-query

// #region save-feedback
// demonstrationJSON is the stored response shape for demonstrations.
type demonstrationJSON struct {
	Trajectory trajectory.Trajectory `json:"trajectory"`
	Features   []float64             `json:"features"`
}

// SaveFeedback stores a validated response under its query ID.
func (s *Store) SaveFeedback(queryID string, f feedback.Feedback) (int64, error) {
	var payload any
	switch v := f.(type) {
	case *feedback.Preference:
		payload = v.Response()
	case *feedback.WeakComparison:
		payload = v.Response()
	case *feedback.FullRanking:
		payload = v.Response()
	case *feedback.Demonstration:
		payload = demonstrationJSON{Trajectory: v.Trajectory(), Features: v.Features()}
	default:
		return 0, fmt.Errorf("unknown feedback kind %q", f.Kind())
	}

	responseJSON, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("marshal response: %w", err)
	}

	now := time.Now().UTC()
	res, err := s.db.Exec(
		`INSERT INTO feedback (query_id, kind, response_json, created_at)
		 VALUES (?, ?, ?, ?)`,
		queryID, string(f.Kind()), string(responseJSON), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("insert feedback: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}
// #endregion save-feedback

// #region get-query
// GetQuery reads a stored query row by ID.
func (s *Store) GetQuery(queryID string) (QueryRecord, error) {
	var rec QueryRecord
	var kind, createdAt string
	err := s.db.QueryRow(
		`SELECT query_id, kind, slate_size, slate_json, created_at
		 FROM queries WHERE query_id = ?`, queryID,
	).Scan(&rec.QueryID, &kind, &rec.SlateSize, &rec.SlateJSON, &createdAt)
	if err != nil {
		return QueryRecord{}, fmt.Errorf("get query %s: %w", queryID, err)
	}
	rec.Kind = query.Kind(kind)
	rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return QueryRecord{}, fmt.Errorf("parse created_at: %w", err)
	}
	return rec, nil
}
// #endregion get-query

// #region list-feedback
// ListFeedback returns the most recent feedback rows, newest first.
// limit <= 0 means no limit.
func (s *Store) ListFeedback(limit int) ([]FeedbackRecord, error) {
	q := `SELECT id, query_id, kind, response_json, created_at
	      FROM feedback ORDER BY id DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.Query(q+` LIMIT ?`, limit)
	} else {
		rows, err = s.db.Query(q)
	}
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	var out []FeedbackRecord
	for rows.Next() {
		var rec FeedbackRecord
		var kind, createdAt string
		if err := rows.Scan(&rec.ID, &rec.QueryID, &kind, &rec.ResponseJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		rec.Kind = query.Kind(kind)
		rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
// #endregion list-feedback
