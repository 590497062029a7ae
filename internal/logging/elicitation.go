package logging

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// #region log-elicitation
// LogElicitation writes a provenance entry to the elicitation_log
// table.
func LogElicitation(db *sql.DB, entry ElicitationEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	rawJSON, err := json.Marshal(entry.RawInputs)
	if err != nil {
		return fmt.Errorf("marshal raw inputs: %w", err)
	}

	_, err = db.Exec(
		`INSERT INTO elicitation_log (query_id, raw_inputs, retries, accepted_json, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.QueryID,
		string(rawJSON),
		entry.Retries,
		nullIfEmpty(entry.AcceptedJSON),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log elicitation: %w", err)
	}
	return nil
}
// #endregion log-elicitation

// #region list-elicitations
// ListElicitations returns the most recent provenance rows, newest
// first. limit <= 0 means no limit.
func ListElicitations(db *sql.DB, limit int) ([]ElicitationEntry, error) {
	q := `SELECT query_id, raw_inputs, retries, accepted_json, created_at
	      FROM elicitation_log ORDER BY id DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = db.Query(q+` LIMIT ?`, limit)
	} else {
		rows, err = db.Query(q)
	}
	if err != nil {
		return nil, fmt.Errorf("list elicitations: %w", err)
	}
	defer rows.Close()

	var out []ElicitationEntry
	for rows.Next() {
		var entry ElicitationEntry
		var rawJSON string
		var accepted sql.NullString
		var createdAt string
		if err := rows.Scan(&entry.QueryID, &rawJSON, &entry.Retries, &accepted, &createdAt); err != nil {
			return nil, fmt.Errorf("scan elicitation: %w", err)
		}
		if err := json.Unmarshal([]byte(rawJSON), &entry.RawInputs); err != nil {
			return nil, fmt.Errorf("unmarshal raw inputs: %w", err)
		}
		entry.AcceptedJSON = accepted.String
		entry.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}
// #endregion list-elicitations

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
// #endregion helpers
