package dbmetrics

import (
	"context"
	"database/sql"
	"time"
)

// DBExecutor общий интерфейс *sql.DB, *sql.Tx и их обёрток
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor транзакция, через которую выполняются запросы
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// Collector получатель метрик БД (pkg/metrics.Metrics)
type Collector interface {
	ObserveDBCall(operation string, elapsed time.Duration)
	SetDBPoolStats(open, inUse, idle int, waitCount int64)
}

// DB обёртка над *sql.DB, замеряющая длительность запросов
type DB struct {
	db        *sql.DB
	collector Collector
}

// Wrap оборачивает соединение. collector может быть nil - тогда замеры не пишутся.
func Wrap(db *sql.DB, collector Collector) *DB {
	return &DB{db: db, collector: collector}
}

// Unwrap возвращает исходное соединение
func (d *DB) Unwrap() *sql.DB {
	return d.db
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe("exec", time.Now())
	return d.db.ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe("query", time.Now())
	return d.db.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe("query_row", time.Now())
	return d.db.QueryRowContext(ctx, query, args...)
}

// BeginTx открывает транзакцию; запросы внутри неё тоже замеряются
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, collector: d.collector}, nil
}

// StartPoolStatsCollector периодически публикует статистику пула до закрытия stop
func (d *DB) StartPoolStatsCollector(interval time.Duration, stop <-chan struct{}) {
	if d.collector == nil {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				s := d.db.Stats()
				d.collector.SetDBPoolStats(s.OpenConnections, s.InUse, s.Idle, s.WaitCount)
			}
		}
	}()
}

func (d *DB) observe(op string, started time.Time) {
	if d.collector != nil {
		d.collector.ObserveDBCall(op, time.Since(started))
	}
}

// Tx обёртка над *sql.Tx
type Tx struct {
	tx        *sql.Tx
	collector Collector
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer t.observe("tx_exec", time.Now())
	return t.tx.ExecContext(ctx, query, args...)
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer t.observe("tx_query", time.Now())
	return t.tx.QueryContext(ctx, query, args...)
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer t.observe("tx_query_row", time.Now())
	return t.tx.QueryRowContext(ctx, query, args...)
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

func (t *Tx) observe(op string, started time.Time) {
	if t.collector != nil {
		t.collector.ObserveDBCall(op, time.Since(started))
	}
}

type txKey struct{}

// WithTx кладет транзакцию в контекст
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetExecutor возвращает транзакцию из контекста, если она есть, иначе db
func GetExecutor(ctx context.Context, db DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey{}).(TxExecutor); ok && tx != nil {
		return tx
	}
	return db
}

// IsInTransaction сообщает, выполняется ли код внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	tx, ok := ctx.Value(txKey{}).(TxExecutor)
	return ok && tx != nil
}
