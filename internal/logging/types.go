package logging

import "time"

// #region elicitation-entry
// ElicitationEntry is a single row in the elicitation_log table: the
// provenance of one collected answer, including every raw line the
// user typed and how many were rejected before a valid one arrived.
type ElicitationEntry struct {
	QueryID      string
	RawInputs    []string
	Retries      int
	AcceptedJSON string
	CreatedAt    time.Time
}
// #endregion elicitation-entry
