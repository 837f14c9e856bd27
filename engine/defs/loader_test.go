package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTablesLoad(t *testing.T) {
	require.NotEmpty(t, Library)
	require.NotEmpty(t, Regulars)
	require.NotEmpty(t, Specials)

	assert.Contains(t, Library, FallbackArchetype)
	assert.Greater(t, Player.MaxHP, 0.0)
	assert.Greater(t, Bullet.Speed+Player.BulletSpeed, 0.0)
	assert.Greater(t, EnemyShot.Speed, 0.0)

	for id, def := range Library {
		assert.Equal(t, id, def.ID)
		assert.Greater(t, def.MaxHP, 0.0, id)
		assert.Greater(t, def.AttackAnimSpeed, 0.0, id)
	}
}

func TestArchetypeFallsBackOnUnknownID(t *testing.T) {
	def := Archetype("no_such_archetype")
	assert.Equal(t, FallbackArchetype, def.ID)
}

func TestSeparationRadius(t *testing.T) {
	regular := ArchetypeDef{Width: 200, Height: 400}
	assert.InDelta(t, 90.0, regular.SeparationRadius(), 1e-9)

	special := ArchetypeDef{Width: 200, Height: 400, Special: true}
	assert.InDelta(t, 100.0, special.SeparationRadius(), 1e-9)
}

func TestHitShrink(t *testing.T) {
	assert.Equal(t, 0.82, ArchetypeDef{}.HitShrink())
	assert.Equal(t, 0.80, ArchetypeDef{Special: true}.HitShrink())
}

func TestAttackWindup(t *testing.T) {
	def := ArchetypeDef{AttackFrames: 11, AttackAnimSpeed: 8}
	assert.InDelta(t, 1.375, def.AttackWindup(), 1e-9)
	assert.Equal(t, 0.0, ArchetypeDef{AttackFrames: 5}.AttackWindup())
}

func TestLoadReplacesTables(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, loadBytes(defaultTables))
	})

	path := filepath.Join(t.TempDir(), "tables.yaml")
	data := `
player:
  max_hp: 50
archetypes:
  - id: zombie_normal
    max_hp: 5
    speed: 10
    damage: 1
    attack_anim_speed: 2
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	require.NoError(t, Load(path))

	assert.Equal(t, 50.0, Player.MaxHP)
	assert.Equal(t, 5.0, Archetype("zombie_normal").MaxHP)
	assert.Empty(t, Specials)
}

func TestLoadErrors(t *testing.T) {
	assert.Error(t, Load(filepath.Join(t.TempDir(), "missing.yaml")))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("archetypes: []"), 0o644))
	assert.Error(t, Load(path), "a table without archetypes is rejected")

	path2 := filepath.Join(t.TempDir(), "nofallback.yaml")
	require.NoError(t, os.WriteFile(path2, []byte(`
archetypes:
  - id: something_else
`), 0o644))
	assert.Error(t, Load(path2), "the fallback archetype must exist")
}
