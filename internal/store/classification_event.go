package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var classificationColumns = []string{
	"id", "sequence", "timestamp", "session_id", "ratings", "main_type",
	"source", "scores", "degradation", "latency_ms",
}

func (r *eventRepo) AppendClassification(ctx context.Context, data ClassificationEventData) error {
	ratings, err := json.Marshal(data.Ratings)
	if err != nil {
		return fmt.Errorf("encode ratings: %w", err)
	}
	scores, err := json.Marshal(data.Scores)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(classificationEventsTable).
		Columns(classificationColumns[1:]...).
		Values(
			seqNum, time.Now().UTC(), data.SessionID, string(ratings), data.MainType,
			data.Source, string(scores), data.Degradation, data.LatencyMs,
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save classification event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryClassifications(ctx context.Context, opts QueryOpts) ([]ClassificationEvent, error) {
	sel := builder().Select(classificationColumns...).From(builder().Table(classificationEventsTable))
	applyOpts(sel, opts)

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query classifications: %w", err)
	}
	defer rows.Close()

	var events []ClassificationEvent
	for rows.Next() {
		var (
			e              ClassificationEvent
			ratings, score string
		)
		if err := rows.Scan(
			&e.ID, &e.Sequence, &e.Timestamp, &e.SessionID, &ratings, &e.MainType,
			&e.Source, &score, &e.Degradation, &e.LatencyMs,
		); err != nil {
			return nil, fmt.Errorf("scan classification: %w", err)
		}
		if err := json.Unmarshal([]byte(ratings), &e.Ratings); err != nil {
			return nil, fmt.Errorf("decode ratings of event %d: %w", e.ID, err)
		}
		if err := json.Unmarshal([]byte(score), &e.Scores); err != nil {
			return nil, fmt.Errorf("decode scores of event %d: %w", e.ID, err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepo) ClassificationStats(ctx context.Context) (*ClassificationSummary, error) {
	summary := &ClassificationSummary{
		ByType:   map[string]int{},
		BySource: map[string]int{},
	}

	count := func(column string, into map[string]int) error {
		query, args := builder().Select(column, entsql.As(entsql.Count("*"), "n")).
			From(builder().Table(classificationEventsTable)).
			GroupBy(column).
			Query()
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("count by %s: %w", column, err)
		}
		defer rows.Close()
		for rows.Next() {
			var (
				key string
				n   int
			)
			if err := rows.Scan(&key, &n); err != nil {
				return fmt.Errorf("scan count: %w", err)
			}
			into[key] = n
		}
		return rows.Err()
	}

	if err := count("main_type", summary.ByType); err != nil {
		return nil, err
	}
	if err := count("source", summary.BySource); err != nil {
		return nil, err
	}
	for _, n := range summary.BySource {
		summary.Total += n
	}
	return summary, nil
}
