package dbmetrics

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeExecutor struct {
	DBExecutor
	name string
}

type fakeTx struct {
	fakeExecutor
}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

func TestGetExecutor(t *testing.T) {
	db := &fakeExecutor{name: "db"}
	tx := &fakeTx{fakeExecutor{name: "tx"}}

	ctx := context.Background()
	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Same(t, tx, GetExecutor(txCtx, db))
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM appointments"))
	assert.Equal(t, "insert", operation("  INSERT INTO appointments"))
	assert.Equal(t, "update", operation("UPDATE\nappointments SET"))
}

type recordingObserver struct {
	ops  []string
	errs []error
}

func (r *recordingObserver) ObserveDBQuery(operation string, _ float64, err error) {
	r.ops = append(r.ops, operation)
	r.errs = append(r.errs, err)
}

func TestDB_ObserveTreatsNoRowsAsSuccess(t *testing.T) {
	obs := &recordingObserver{}
	d := Wrap(nil, obs)

	d.observe("SELECT 1", time.Now(), sql.ErrNoRows)

	assert.Equal(t, []string{"select"}, obs.ops)
	assert.Nil(t, obs.errs[0])
}
