package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

const selectInvocation = `
	SELECT id, block_id, inputs, status, status_code, error, credential_source, started_at, duration_ns
	FROM invocations`

// Record stores an invocation, replacing any record with the same ID.
func (s *historyStore) Record(ctx context.Context, inv domain.Invocation) error {
	if inv.ID == "" {
		return domain.ErrInvalidInput
	}

	inputs, err := json.Marshal(inv.Inputs)
	if err != nil {
		return fmt.Errorf("marshalling inputs: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO invocations (id, block_id, inputs, status, status_code, error, credential_source, started_at, duration_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			status_code = excluded.status_code,
			error = excluded.error,
			credential_source = excluded.credential_source,
			duration_ns = excluded.duration_ns
	`, inv.ID, inv.BlockID, string(inputs), string(inv.Status), inv.StatusCode,
		nullString(inv.Error), nullString(string(inv.CredentialSource)),
		inv.StartedAt.UnixNano(), int64(inv.Duration))
	if err != nil {
		return fmt.Errorf("saving invocation: %w", err)
	}
	return nil
}

// Get retrieves an invocation by ID.
func (s *historyStore) Get(ctx context.Context, id string) (*domain.Invocation, error) {
	row := s.store.db.QueryRowContext(ctx, selectInvocation+` WHERE id = ?`, id)

	inv, err := scanInvocation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// List returns invocations newest first, at most limit when limit > 0.
func (s *historyStore) List(ctx context.Context, limit int) ([]domain.Invocation, error) {
	query := selectInvocation + ` ORDER BY started_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying invocations: %w", err)
	}
	defer rows.Close()

	var result []domain.Invocation
	for rows.Next() {
		inv, err := scanInvocation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *inv)
	}
	return result, rows.Err()
}

// Prune deletes invocations started before the cutoff.
func (s *historyStore) Prune(ctx context.Context, before time.Time) (int, error) {
	res, err := s.store.db.ExecContext(ctx, `DELETE FROM invocations WHERE started_at < ?`, before.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("pruning invocations: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned invocations: %w", err)
	}
	return int(n), nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanInvocation(row scanner) (*domain.Invocation, error) {
	var inv domain.Invocation
	var inputs, status string
	var errText, source sql.NullString
	var startedAt, duration int64

	if err := row.Scan(&inv.ID, &inv.BlockID, &inputs, &status, &inv.StatusCode,
		&errText, &source, &startedAt, &duration); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning invocation: %w", err)
	}

	if err := json.Unmarshal([]byte(inputs), &inv.Inputs); err != nil {
		return nil, fmt.Errorf("unmarshalling inputs: %w", err)
	}
	inv.Status = domain.InvocationStatus(status)
	inv.Error = errText.String
	inv.CredentialSource = domain.CredentialSource(source.String)
	inv.StartedAt = time.Unix(0, startedAt).UTC()
	inv.Duration = time.Duration(duration)

	return &inv, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
