package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := r.builder().Insert("answer_events").
		Columns("sequence", "timestamp", "session_id", "a", "b", "chosen", "product", "correct", "score_after", "transition").
		Values(seqNum, time.Now().UnixMilli(), data.SessionID, data.A, data.B, data.Chosen, data.Product, data.Correct, data.ScoreAfter, data.Transition).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnswerEvents(ctx context.Context, sessionID string) ([]AnswerEventRecord, error) {
	b := r.builder()
	query, args := b.Select("sequence", "timestamp", "session_id", "a", "b", "chosen", "product", "correct", "score_after", "transition").
		From(b.Table("answer_events")).
		Where(entsql.EQ("session_id", sessionID)).
		OrderBy("sequence").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var records []AnswerEventRecord
	for rows.Next() {
		var rec AnswerEventRecord
		var ts int64
		if err := rows.Scan(&rec.Sequence, &ts, &rec.SessionID, &rec.A, &rec.B,
			&rec.Chosen, &rec.Product, &rec.Correct, &rec.ScoreAfter, &rec.Transition); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *eventRepo) TrickiestFacts(ctx context.Context, sessionID string, limit int) ([]FactMiss, error) {
	if limit <= 0 {
		return nil, nil
	}

	b := r.builder()
	query, args := b.Select("a", "b", entsql.As(entsql.Count("*"), "misses")).
		From(b.Table("answer_events")).
		Where(entsql.And(
			entsql.EQ("session_id", sessionID),
			entsql.EQ("correct", false),
		)).
		GroupBy("a", "b").
		OrderBy(entsql.Desc("misses"), "a", "b").
		Limit(limit).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query trickiest facts: %w", err)
	}
	defer rows.Close()

	var misses []FactMiss
	for rows.Next() {
		var m FactMiss
		if err := rows.Scan(&m.A, &m.B, &m.Misses); err != nil {
			return nil, fmt.Errorf("scan fact miss: %w", err)
		}
		misses = append(misses, m)
	}
	return misses, rows.Err()
}

func (r *eventRepo) SessionAccuracy(ctx context.Context, sessionID string) (int, int, error) {
	b := r.builder()
	query, args := b.Select(entsql.Count("*"), entsql.Sum("correct")).
		From(b.Table("answer_events")).
		Where(entsql.EQ("session_id", sessionID)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return 0, 0, fmt.Errorf("query session accuracy: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return 0, 0, rows.Err()
	}
	var answered int
	var correct sql.NullInt64
	if err := rows.Scan(&answered, &correct); err != nil {
		return 0, 0, fmt.Errorf("scan session accuracy: %w", err)
	}
	return answered, int(correct.Int64), nil
}
