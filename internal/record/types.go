package record

import (
	"time"

	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/query"
)

// #region query-record
// QueryRecord is a stored query row. The slate (or, for
// demonstrations, the initial state) is kept as JSON.
type QueryRecord struct {
	QueryID   string
	Kind      query.Kind
	SlateSize int
	SlateJSON string
	CreatedAt time.Time
}
// #endregion query-record

// #region feedback-record
// FeedbackRecord is a stored response row, always referencing the
// query it answered.
type FeedbackRecord struct {
	ID           int64
	QueryID      string
	Kind         query.Kind
	ResponseJSON string
	CreatedAt    time.Time
}
// #endregion feedback-record
