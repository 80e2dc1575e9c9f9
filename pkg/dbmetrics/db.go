package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// Observer получатель метрик запросов (реализуется *metrics.Metrics)
type Observer interface {
	ObserveDBQuery(operation string, seconds float64, err error)
}

// PoolObserver получатель метрик пула соединений
type PoolObserver interface {
	Observer
	ObservePool(db string, stats sql.DBStats)
}

// DB обертка над *sql.DB, которая замеряет длительность запросов
type DB struct {
	*sql.DB
	observer Observer
}

// Wrap оборачивает соединение; observer может быть nil
func Wrap(db *sql.DB, observer Observer) *DB {
	return &DB{DB: db, observer: observer}
}

// WrapWithDefault оборачивает соединение и запускает сбор статистики пула
// Сбор останавливается при закрытии stopCh
func WrapWithDefault(db *sql.DB, observer PoolObserver, dbName string, stopCh <-chan struct{}) *DB {
	go collectPoolStats(db, observer, dbName, 15*time.Second, stopCh)
	return Wrap(db, observer)
}

func collectPoolStats(db *sql.DB, observer PoolObserver, dbName string, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		observer.ObservePool(dbName, db.Stats())
		select {
		case <-ticker.C:
		case <-stopCh:
			return
		}
	}
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.DB.ExecContext(ctx, query, args...)
	d.observe(query, start, err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.DB.QueryContext(ctx, query, args...)
	d.observe(query, start, err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.DB.QueryRowContext(ctx, query, args...)
	d.observe(query, start, row.Err())
	return row
}

// BeginTx начинает транзакцию; запросы внутри нее тоже замеряются
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.DB.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &meteredTx{SqlTxWrapper: SqlTxWrapper{Tx: tx}, db: d}, nil
}

func (d *DB) observe(query string, start time.Time, err error) {
	if d.observer == nil {
		return
	}
	if err == sql.ErrNoRows {
		err = nil
	}
	d.observer.ObserveDBQuery(operation(query), time.Since(start).Seconds(), err)
}

// operation возвращает первое ключевое слово запроса (select, insert, ...)
func operation(query string) string {
	q := strings.TrimSpace(query)
	if i := strings.IndexAny(q, " \n\t"); i > 0 {
		q = q[:i]
	}
	return strings.ToLower(q)
}

type meteredTx struct {
	SqlTxWrapper
	db *DB
}

func (t *meteredTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.Tx.ExecContext(ctx, query, args...)
	t.db.observe(query, start, err)
	return res, err
}

func (t *meteredTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.Tx.QueryContext(ctx, query, args...)
	t.db.observe(query, start, err)
	return rows, err
}

func (t *meteredTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.Tx.QueryRowContext(ctx, query, args...)
	t.db.observe(query, start, row.Err())
	return row
}
