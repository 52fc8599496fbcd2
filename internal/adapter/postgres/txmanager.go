package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

const defaultTxAttempts = 3

// TxManager runs callbacks inside a transaction carried by the context.
// Repositories pick the transaction up through QuerierFromCtx.
type TxManager struct {
	pool     *pgxpool.Pool
	opts     pgx.TxOptions
	attempts int
}

// TxOption configures a TxManager.
type TxOption func(*TxManager)

// WithIsolation sets the isolation level of transactions opened by RunInTx.
func WithIsolation(level pgx.TxIsoLevel) TxOption {
	return func(m *TxManager) { m.opts.IsoLevel = level }
}

// WithAttempts bounds how many times a transaction aborted by a
// serialization failure or deadlock is run. Values below 1 mean 1.
func WithAttempts(n int) TxOption {
	return func(m *TxManager) { m.attempts = max(n, 1) }
}

// NewTxManager returns a manager using the server default isolation and
// three attempts.
func NewTxManager(pool *pgxpool.Pool, opts ...TxOption) *TxManager {
	m := &TxManager{pool: pool, attempts: defaultTxAttempts}
	for _, o := range opts {
		o(m)
	}
	return m
}

// RunInTx commits when fn returns nil and rolls back otherwise, including on
// panic. A call nested in another RunInTx joins the outer transaction, so
// only the outermost call commits or retries.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= m.attempts; attempt++ {
		err = pgx.BeginTxFunc(ctx, m.pool, m.opts, func(tx pgx.Tx) error {
			return fn(withTx(ctx, tx))
		})
		if err == nil || !retryableTx(err) || ctx.Err() != nil {
			break
		}
	}
	return err
}

// InTx reports whether ctx carries a transaction started by RunInTx.
func InTx(ctx context.Context) bool {
	_, ok := ctx.Value(txCtxKey{}).(pgx.Tx)
	return ok
}

func retryableTx(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}
