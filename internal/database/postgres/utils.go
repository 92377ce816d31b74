package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/InventoryHub_Go/internal/database/generated"
	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/internal/logger"
	"github.com/osse101/InventoryHub_Go/internal/repository"
)

var _ repository.Store = (*Store)(nil)

// Store implements every repository interface on PostgreSQL. Fixed-shape queries go
// through the sqlc package; statements whose column list is chosen at runtime use the pool.
type Store struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewStore creates a new Store
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db, q: generated.New(db)}
}

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
	}
}

// parseID parses an entity id. Ids are opaque to clients, so a malformed one
// is reported as the entity's not-found error.
func parseID(id string, notFound error) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", notFound, id)
	}
	return u, nil
}

func textParam(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func boolParam(b *bool) pgtype.Bool {
	if b == nil {
		return pgtype.Bool{}
	}
	return pgtype.Bool{Bool: *b, Valid: true}
}

// limitParam clamps a row limit into the int4 range of LIMIT parameters.
func limitParam(n int) int32 {
	if n < 0 {
		return 0
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(n)
}

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// isUniqueViolation reports whether err is a unique-key violation, optionally on a named constraint.
func isUniqueViolation(err error, constraint string) bool {
	pgErr, ok := pgError(err)
	if !ok || pgErr.Code != PgCodeUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// foreignKeyViolation returns the violated constraint name when err is a foreign-key violation.
func foreignKeyViolation(err error) (string, bool) {
	pgErr, ok := pgError(err)
	if !ok || pgErr.Code != PgCodeForeignKeyViolation {
		return "", false
	}
	return pgErr.ConstraintName, true
}

// likePattern escapes LIKE metacharacters in s.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// ensureTags resolves tag names to ids, inserting missing ones. A concurrent insert of the
// same name wins the unique key and is picked up by the next lookup.
func ensureTags(ctx context.Context, q *generated.Queries, names []string) ([]int, error) {
	ids := make([]int, 0, len(names))
	for _, name := range domain.NormalizeTags(names) {
		id, err := ensureTag(ctx, q, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func ensureTag(ctx context.Context, q *generated.Queries, name string) (int, error) {
	for attempt := 0; attempt < MaxTagInsertAttempts; attempt++ {
		id, err := q.GetTagIDByName(ctx, name)
		if err == nil {
			return int(id), nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("failed to look up tag %q: %w", name, err)
		}

		id, err = q.InsertTag(ctx, name)
		if err == nil {
			return int(id), nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("failed to insert tag %q: %w", name, err)
		}
	}
	return 0, fmt.Errorf("%w: tag %q", domain.ErrDuplicateKey, name)
}

// replaceTags sets the tag links of one owner row to exactly names.
func replaceTags(ctx context.Context, tx pgx.Tx, linkTable, ownerColumn string, ownerID uuid.UUID, names []string) error {
	ids, err := ensureTags(ctx, generated.New(tx), names)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, linkTable, ownerColumn), ownerID); err != nil {
		return fmt.Errorf("failed to clear tags: %w", err)
	}
	for _, id := range ids {
		_, err := tx.Exec(ctx,
			fmt.Sprintf(`INSERT INTO %s (%s, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, linkTable, ownerColumn),
			ownerID, id)
		if err != nil {
			return fmt.Errorf("failed to link tag: %w", err)
		}
	}
	return nil
}
