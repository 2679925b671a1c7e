package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/database"
)

// Querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Repositories resolve their querier per call, so any method participates in
// an enclosing transaction automatically.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

// WithTransaction runs fn inside a transaction. The transaction is carried in
// the context; repository calls made with that context execute against it.
func WithTransaction(ctx context.Context, db *database.DB, fn func(ctx context.Context) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction failed (rollback error: %v): %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetQuerier returns the transaction carried by ctx, or the database itself.
func GetQuerier(ctx context.Context, db *database.DB) Querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db.DB
}
