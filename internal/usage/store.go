package usage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sitegen-ai/sitegen/internal/db"
)

// excerptLen bounds how much of the user prompt is kept in the log.
const excerptLen = 200

// Store records generation attempts in SQLite.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Excerpt truncates a prompt for logging.
func Excerpt(prompt string) string {
	prompt = strings.TrimSpace(prompt)
	if len(prompt) <= excerptLen {
		return prompt
	}
	return prompt[:excerptLen] + "..."
}

// Record inserts a new log entry. If entry.ID is empty a UUID is generated;
// if the timestamp is zero the current time is used.
func (s *Store) Record(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO generations (
			id, timestamp, prompt_excerpt, model, outcome, detail,
			duration_ms, input_tokens, output_tokens, cost_usd
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Timestamp.Format(time.RFC3339Nano),
		entry.PromptExcerpt,
		entry.Model,
		string(entry.Outcome),
		entry.Detail,
		entry.Duration,
		entry.InputTokens,
		entry.OutputTokens,
		entry.CostUSD,
	)
	if err != nil {
		return fmt.Errorf("inserting generation entry: %w", err)
	}
	return nil
}

// QueryFilter controls which log entries are returned by Query.
type QueryFilter struct {
	Outcome Outcome
	Model   string
	Since   *time.Time
	Limit   int
	Offset  int
}

// Query returns log entries matching the filter, newest first.
func (s *Store) Query(ctx context.Context, filter QueryFilter) ([]Entry, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.Outcome != "" {
		clauses = append(clauses, "outcome = ?")
		args = append(args, string(filter.Outcome))
	}
	if filter.Model != "" {
		clauses = append(clauses, "model = ?")
		args = append(args, filter.Model)
	}
	if filter.Since != nil {
		clauses = append(clauses, "timestamp >= ?")
		args = append(args, filter.Since.Format(time.RFC3339Nano))
	}

	query := `
		SELECT id, timestamp, prompt_excerpt, model, outcome, detail,
			   duration_ms, input_tokens, output_tokens, cost_usd
		FROM generations`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY timestamp DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += " LIMIT ?"
	args = append(args, limit)
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying generations: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e  Entry
			ts string
		)
		if err := rows.Scan(&e.ID, &ts, &e.PromptExcerpt, &e.Model, &e.Outcome,
			&e.Detail, &e.Duration, &e.InputTokens, &e.OutputTokens, &e.CostUSD); err != nil {
			return nil, fmt.Errorf("scanning generation entry: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			e.Timestamp = parsed
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Stats aggregates the whole log.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
			   COALESCE(SUM(CASE WHEN outcome = 'ok' THEN 1 ELSE 0 END), 0),
			   COALESCE(SUM(input_tokens), 0),
			   COALESCE(SUM(output_tokens), 0),
			   COALESCE(SUM(cost_usd), 0)
		FROM generations`)

	var st Stats
	if err := row.Scan(&st.Total, &st.Succeeded, &st.InputTokens, &st.OutputTokens, &st.CostUSD); err != nil {
		return nil, fmt.Errorf("aggregating generations: %w", err)
	}
	st.Failed = st.Total - st.Succeeded
	return &st, nil
}
