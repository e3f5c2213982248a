package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/faceplate/internal/bundle"
)

func TestStore_RecordAndRecent(t *testing.T) {
	ctx := context.Background()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, ok := range []bool{true, false, true} {
		require.NoError(t, s.Record(ctx, bundle.Run{
			ID:        []string{"a", "b", "c"}[i],
			Project:   "Synth",
			Windows:   []string{"Main", "Settings"},
			Delivery:  bundle.DeliveryArchive,
			Location:  "/tmp/synth-faceplate.zip",
			OK:        ok,
			Message:   "done",
			Metrics:   bundle.Metrics{FileCount: 7, TotalBytes: 1234, Optimized: true, SavingsPercent: 12.5},
			StartedAt: base.Add(time.Duration(i) * time.Minute),
			Duration:  1500 * time.Millisecond,
		}))
	}

	runs, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "c", runs[0].ID)
	assert.Equal(t, "b", runs[1].ID)
	assert.False(t, runs[1].OK)
	assert.Equal(t, []string{"Main", "Settings"}, runs[0].Windows)
	assert.Equal(t, 7, runs[0].Metrics.FileCount)
	assert.InDelta(t, 12.5, runs[0].Metrics.SavingsPercent, 1e-9)
	assert.Equal(t, bundle.DeliveryArchive, runs[0].Delivery)
	assert.True(t, runs[0].StartedAt.Equal(base.Add(2*time.Minute)))
	assert.Equal(t, 1500*time.Millisecond, runs[0].Duration)

	all, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStore_DuplicateID(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	run := bundle.Run{ID: "x", Project: "p", StartedAt: time.Now()}
	require.NoError(t, s.Record(context.Background(), run))
	assert.Error(t, s.Record(context.Background(), run))
}
