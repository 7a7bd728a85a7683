package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_LatestGenerationWins(t *testing.T) {
	// Given
	tr := NewTracker()
	firstCtx, first := tr.Begin(context.Background(), "sales")
	secondCtx, second := tr.Begin(context.Background(), "sales")

	// When
	var applied []uint64
	staleOK := tr.Commit("sales", first, func() { applied = append(applied, first) })
	latestOK := tr.Commit("sales", second, func() { applied = append(applied, second) })

	// Then
	assert.False(t, staleOK)
	assert.True(t, latestOK)
	assert.Equal(t, []uint64{second}, applied)
	assert.ErrorIs(t, firstCtx.Err(), context.Canceled)
	assert.ErrorIs(t, secondCtx.Err(), context.Canceled, "released after commit")
}

func TestTracker_KeysAreIndependent(t *testing.T) {
	tr := NewTracker()
	salesCtx, sales := tr.Begin(context.Background(), "sales")
	_, inventory := tr.Begin(context.Background(), "inventory")

	assert.NoError(t, salesCtx.Err())
	assert.True(t, tr.Commit("inventory", inventory, func() {}))
	assert.NoError(t, salesCtx.Err())
	assert.True(t, tr.Commit("sales", sales, func() {}))
}

func TestTracker_CancelAll(t *testing.T) {
	tr := NewTracker()
	ctx, gen := tr.Begin(context.Background(), "financial")

	tr.CancelAll()

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.False(t, tr.Commit("financial", gen, func() {}))
}
