package project

import (
	"context"
	"testing"

	"github.com/de-tools/flood-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(region string) domain.ProjectRecord {
	return domain.ProjectRecord{Region: region, MainIsland: "Luzon", FundingYear: 2022}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("starts empty", func(t *testing.T) {
		s := NewStore()
		n, err := s.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		snap, err := s.Snapshot(ctx)
		require.NoError(t, err)
		assert.Empty(t, snap)
	})

	t.Run("append accumulates", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.Append(ctx, []domain.ProjectRecord{record("R1")}))
		require.NoError(t, s.Append(ctx, []domain.ProjectRecord{record("R2"), record("R3")}))

		snap, err := s.Snapshot(ctx)
		require.NoError(t, err)
		require.Len(t, snap, 3)
		assert.Equal(t, "R3", snap[2].Region)
	})

	t.Run("replace drops previous records", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.Append(ctx, []domain.ProjectRecord{record("R1"), record("R2")}))
		require.NoError(t, s.Replace(ctx, []domain.ProjectRecord{record("R9")}))

		snap, err := s.Snapshot(ctx)
		require.NoError(t, err)
		require.Len(t, snap, 1)
		assert.Equal(t, "R9", snap[0].Region)
	})

	t.Run("snapshot is detached from the store", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.Append(ctx, []domain.ProjectRecord{record("R1")}))

		snap, err := s.Snapshot(ctx)
		require.NoError(t, err)
		snap[0].Region = "mutated"

		again, err := s.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, "R1", again[0].Region)
	})

	t.Run("clear", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.Append(ctx, []domain.ProjectRecord{record("R1")}))
		require.NoError(t, s.Clear(ctx))

		n, err := s.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("error - cancelled context", func(t *testing.T) {
		s := NewStore()
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, s.Append(cctx, []domain.ProjectRecord{record("R1")}), context.Canceled)
		_, err := s.Snapshot(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
