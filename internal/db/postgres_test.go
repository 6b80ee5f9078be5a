package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	commits   int
	rollbacks int
	commitErr error
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.commits++
	return t.commitErr
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rollbacks++
	return nil
}

type fakeBeginner struct {
	tx       *fakeTx
	beginErr error
}

func (b *fakeBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	return b.tx, nil
}

func TestWithTransactionCommits(t *testing.T) {
	tx := &fakeTx{}
	beginner := &fakeBeginner{tx: tx}

	err := WithTransaction(context.Background(), beginner, func(ctx context.Context, _ pgx.Tx) error {
		// A deadline is applied when the caller supplies none
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, tx.commits)
	assert.Zero(t, tx.rollbacks)
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	tx := &fakeTx{}
	beginner := &fakeBeginner{tx: tx}
	boom := errors.New("boom")

	err := WithTransaction(context.Background(), beginner, func(ctx context.Context, _ pgx.Tx) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, tx.rollbacks)
	assert.Zero(t, tx.commits)
}

func TestWithTransactionBeginFailure(t *testing.T) {
	beginner := &fakeBeginner{beginErr: errors.New("pool exhausted")}

	err := WithTransaction(context.Background(), beginner, func(ctx context.Context, _ pgx.Tx) error {
		t.Fatal("fn must not run when Begin fails")
		return nil
	})
	assert.ErrorContains(t, err, "failed to begin transaction")
}

func TestWithTransactionCommitFailure(t *testing.T) {
	tx := &fakeTx{commitErr: errors.New("connection reset")}
	beginner := &fakeBeginner{tx: tx}

	err := WithTransaction(context.Background(), beginner, func(ctx context.Context, _ pgx.Tx) error {
		return nil
	})
	assert.ErrorContains(t, err, "failed to commit transaction")
}

func TestWithTransactionRollsBackOnPanic(t *testing.T) {
	tx := &fakeTx{}
	beginner := &fakeBeginner{tx: tx}

	assert.Panics(t, func() {
		_ = WithTransaction(context.Background(), beginner, func(ctx context.Context, _ pgx.Tx) error {
			panic("handler blew up")
		})
	})
	assert.Equal(t, 1, tx.rollbacks)
	assert.Zero(t, tx.commits)
}
