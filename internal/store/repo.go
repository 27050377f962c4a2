package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To

	// Purpose restricts LLM event queries to one purpose label.
	Purpose string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM calls sharing a purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM calls per model, for cost estimation.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// ClassificationEventData captures one completed classification.
type ClassificationEventData struct {
	SessionID   string
	Ratings     []int
	MainType    string
	Source      string
	Scores      map[string]int
	Degradation string
	LatencyMs   int64
}

// ClassificationEvent is a stored classification.
type ClassificationEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ClassificationEventData
}

// ClassificationSummary counts stored classifications.
type ClassificationSummary struct {
	Total    int
	ByType   map[string]int
	BySource map[string]int
}

// EventRepo provides append and query access to events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single LLM event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// AppendClassification records a completed classification.
	AppendClassification(ctx context.Context, data ClassificationEventData) error

	// QueryClassifications returns classifications newest first.
	QueryClassifications(ctx context.Context, opts QueryOpts) ([]ClassificationEvent, error)

	ClassificationStats(ctx context.Context) (*ClassificationSummary, error)

	// Purge deletes every event and restarts the sequence.
	Purge(ctx context.Context) error
}
