package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type txKey struct{}

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// TxManager runs per-listing critical sections.
type TxManager struct {
	db *dbpg.DB
}

func NewTxManager(db *dbpg.DB) *TxManager {
	return &TxManager{db: db}
}

// WithinListingLock opens a transaction, locks the listing row and runs fn
// with the transaction attached to ctx. Repositories called with that ctx
// join the transaction. fn's error rolls everything back.
func (m *TxManager) WithinListingLock(ctx context.Context, listingID string, fn func(ctx context.Context) error) error {
	if _, ok := txFrom(ctx); ok {
		return fmt.Errorf("lock listing %s: nested transaction", listingID)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var id string
	if err = tx.QueryRowContext(ctx, `SELECT id FROM listings WHERE id = $1 FOR UPDATE`, listingID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrListingNotFound
		}
		return fmt.Errorf("lock listing: %w", err)
	}

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func txFrom(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}

// executor routes statements to the transaction carried by ctx, or to the
// pool with retries when there is none.
type executor struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func newExecutor(db *dbpg.DB) executor {
	return executor{db: db, strategy: defaultStrategy()}
}

func (e executor) queryRow(ctx context.Context, query string, args ...any) (*sql.Row, error) {
	if tx, ok := txFrom(ctx); ok {
		return tx.QueryRowContext(ctx, query, args...), nil
	}
	return e.db.QueryRowWithRetry(ctx, e.strategy, query, args...)
}

func (e executor) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if tx, ok := txFrom(ctx); ok {
		return tx.QueryContext(ctx, query, args...)
	}
	return e.db.QueryWithRetry(ctx, e.strategy, query, args...)
}

func (e executor) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx, ok := txFrom(ctx); ok {
		return tx.ExecContext(ctx, query, args...)
	}
	return e.db.ExecWithRetry(ctx, e.strategy, query, args...)
}

// inTx runs fn inside the transaction carried by ctx, or inside a new one.
func (e executor) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFrom(ctx); ok {
		return fn(ctx)
	}

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	return tx.Commit()
}
