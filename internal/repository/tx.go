package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type txKey struct{}

// DBTX — общее подмножество *pgxpool.Pool и pgx.Tx, которым пользуются репозитории.
type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
	SendBatch(context.Context, *pgx.Batch) pgx.BatchResults
}

// TransactionManager кладёт открытую транзакцию в контекст, и все репозитории,
// вызванные внутри fn, работают в ней.
type TransactionManager struct {
	db   *Postgres
	opts pgx.TxOptions
}

// NewTransactionManager создаёт менеджер с уровнем изоляции READ COMMITTED.
func NewTransactionManager(db *Postgres) *TransactionManager {
	return &TransactionManager{db: db, opts: pgx.TxOptions{IsoLevel: pgx.ReadCommitted}}
}

// WithIsolation возвращает копию менеджера с другим уровнем изоляции.
func (tm *TransactionManager) WithIsolation(level pgx.TxIsoLevel) *TransactionManager {
	cp := *tm
	cp.opts.IsoLevel = level
	return &cp
}

// RunInTransaction выполняет fn в транзакции: коммит при nil, откат при ошибке.
// Ошибка fn возвращается как есть. Вложенный вызов переиспользует внешнюю транзакцию.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	return pgx.BeginTxFunc(ctx, tm.db.Pool, tm.opts, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// GetQueryExecutor отдаёт транзакцию из контекста или пул.
func (p *Postgres) GetQueryExecutor(ctx context.Context) DBTX {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return p.Pool
}
