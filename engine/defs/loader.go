package defs

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed archetypes.yaml
var defaultTables []byte

// FallbackArchetype resolves lookups for unknown archetype ids
const FallbackArchetype = "zombie_normal"

// Library maps archetype id to its definition
var Library map[string]ArchetypeDef

// Specials lists the special archetype ids in file order; the spawner's
// rotation policy walks this slice.
var Specials []string

// Regulars lists the regular archetype ids in file order
var Regulars []string

// Player holds the loaded player stats
var Player PlayerDef

// Bullet holds the player bullet tuning
var Bullet ProjectileDef

// EnemyShot holds the enemy projectile tuning
var EnemyShot ProjectileDef

type tableFile struct {
	Player     PlayerDef      `yaml:"player"`
	Bullet     ProjectileDef  `yaml:"bullet"`
	EnemyShot  ProjectileDef  `yaml:"enemy_shot"`
	Archetypes []ArchetypeDef `yaml:"archetypes"`
}

func init() {
	if err := loadBytes(defaultTables); err != nil {
		panic(fmt.Sprintf("defs: embedded archetype tables are invalid: %v", err))
	}
}

// Load replaces the built-in stat tables with the ones from a YAML file
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read archetype tables: %w", err)
	}
	if err := loadBytes(data); err != nil {
		return fmt.Errorf("failed to parse archetype tables: %w", err)
	}
	return nil
}

func loadBytes(data []byte) error {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	if len(f.Archetypes) == 0 {
		return fmt.Errorf("no archetypes defined")
	}

	lib := make(map[string]ArchetypeDef, len(f.Archetypes))
	var specials, regulars []string
	for _, def := range f.Archetypes {
		if def.ID == "" {
			return fmt.Errorf("archetype with empty id")
		}
		lib[def.ID] = def
		if def.Special {
			specials = append(specials, def.ID)
		} else {
			regulars = append(regulars, def.ID)
		}
	}
	if _, ok := lib[FallbackArchetype]; !ok {
		return fmt.Errorf("fallback archetype %q missing", FallbackArchetype)
	}

	Library = lib
	Specials = specials
	Regulars = regulars
	Player = f.Player
	Bullet = f.Bullet
	EnemyShot = f.EnemyShot
	return nil
}

// Archetype returns the definition for an id, falling back to the documented
// default archetype when the id is unknown.
func Archetype(id string) ArchetypeDef {
	if def, ok := Library[id]; ok {
		return def
	}
	return Library[FallbackArchetype]
}
