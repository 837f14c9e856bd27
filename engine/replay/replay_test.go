package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hordekit/horde-engine/engine/input"
)

func TestRecordAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.hrd")

	rec, err := NewRecorder(path, 42)
	require.NoError(t, err)

	intents := []input.Intent{
		{MoveX: 1, Run: true, AimX: 500, AimY: 480},
		{MoveX: 1, MoveY: -0.5, Fire: true, AimX: 510.25, AimY: 470},
		{Reload: true},
	}
	for i, in := range intents {
		require.NoError(t, rec.Record(uint64(i*2), in))
	}
	require.NoError(t, rec.Close())

	rep, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), rep.Seed)
	require.Len(t, rep.Frames, 3)

	for i, in := range intents {
		assert.Equal(t, in, rep.Frames[i].Intent())
		assert.Equal(t, uint64(i*2), rep.Frames[i].Tick)
	}
}

func TestIntentForTickSkipsAndSettles(t *testing.T) {
	rep := &Replay{Frames: []Frame{
		{Tick: 0, MoveX: 1},
		{Tick: 2, Fire: true, AimX: 100},
		{Tick: 3, MoveY: -1},
	}}

	assert.Equal(t, input.Intent{MoveX: 1}, rep.IntentForTick(0))
	// Tick 1 was never recorded: neutral input, no carry-over.
	assert.Equal(t, input.Intent{}, rep.IntentForTick(1))
	assert.Equal(t, input.Intent{Fire: true, AimX: 100}, rep.IntentForTick(2))
	assert.Equal(t, input.Intent{MoveY: -1}, rep.IntentForTick(3))

	assert.Equal(t, input.Intent{}, rep.IntentForTick(10))
	assert.True(t, rep.Done())
}

func TestLoadRejectsForeignFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-replay")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a replay file"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
