package store

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTripBitExact(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	rec := buildTestBatch(t, 100, 8)

	id, err := s.WriteBatch(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, id)

	got, err := s.ReadBatch(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, rec.BatchHash, got.BatchHash)
	assert.Equal(t, rec.MaxBound, got.MaxBound)
	assert.Equal(t, rec.NumAgents, got.NumAgents)
	assert.Equal(t, rec.Config, got.Config)
	assert.Equal(t, int64(1), got.CreatedSeq)

	require.Len(t, got.Seeds, len(rec.Seeds))
	for i, want := range rec.Seeds {
		have := got.Seeds[i]
		assert.Equal(t, want.Pair, have.Pair, "agent %d", i)
		assert.Equal(t, want.Index, have.Index)
		assert.Equal(t, want.IsUpper, have.IsUpper)
		// bit patterns, not float comparison
		assert.Equal(t, math.Float64bits(want.Position), math.Float64bits(have.Position), "agent %d position", i)
		assert.Equal(t, math.Float64bits(want.Velocity), math.Float64bits(have.Velocity), "agent %d velocity", i)
	}
}

func TestWriteBatchIdempotentOnContent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := buildTestBatch(t, 100, 8)
	id1, err := s.WriteBatch(ctx, first)
	require.NoError(t, err)

	// Same content, fresh storage ID: the write is a no-op and the
	// original storage ID wins.
	second := buildTestBatch(t, 100, 8)
	require.Equal(t, first.BatchHash, second.BatchHash)
	require.NotEqual(t, first.ID, second.ID)

	id2, err := s.WriteBatch(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	batches, err := s.ListBatches(ctx)
	require.NoError(t, err)
	assert.Len(t, batches, 1)
}

func TestListBatchesOrderedBySeq(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := buildTestBatch(t, 100, 4)
	b := buildTestBatch(t, 100, 8)
	c := buildTestBatch(t, 200, 4)

	for _, rec := range []BatchRecord{a, b, c} {
		_, err := s.WriteBatch(ctx, rec)
		require.NoError(t, err)
	}

	batches, err := s.ListBatches(ctx)
	require.NoError(t, err)
	require.Len(t, batches, 3)

	assert.Equal(t, []int64{1, 2, 3}, []int64{batches[0].CreatedSeq, batches[1].CreatedSeq, batches[2].CreatedSeq})
	assert.Equal(t, a.BatchHash, batches[0].BatchHash)
	assert.Equal(t, b.BatchHash, batches[1].BatchHash)
	assert.Equal(t, c.BatchHash, batches[2].BatchHash)
}
