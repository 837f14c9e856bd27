package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hordekit/horde-engine/engine/core"
	"github.com/hordekit/horde-engine/engine/defs"
	"github.com/hordekit/horde-engine/engine/input"
	"github.com/hordekit/horde-engine/engine/render"
	"github.com/hordekit/horde-engine/engine/replay"
	"github.com/hordekit/horde-engine/engine/systems"
	"github.com/hordekit/horde-engine/engine/ui"
)

const (
	ArenaWidth   = 1920.0
	ArenaHeight  = 1080.0
	WindowWidth  = 1280
	WindowHeight = 720
	TickRate     = 60.0
	SessionSecs  = 900.0 // 15 minute run
)

// Game implements ebiten.Game interface
type Game struct {
	session  *core.Session
	renderer *render.Renderer
	hud      *render.HUD
	menu     *ui.Menu
	input    *input.State

	playerSys *systems.PlayerSystem
	spawnSys  *systems.SpawnSystem

	recorder *replay.Recorder
	playback *replay.Replay
	seed     int64
}

func NewGame(playback *replay.Replay, recordPath string) *Game {
	g := &Game{
		renderer: render.NewRenderer(core.Arena{W: ArenaWidth, H: ArenaHeight}),
		menu:     ui.NewMenu(int(ArenaWidth), int(ArenaHeight)),
		input:    input.NewState(ArenaHeight),
		playback: playback,
	}
	g.seed = time.Now().UnixNano()
	if playback != nil {
		g.seed = playback.Seed
	}
	if recordPath != "" {
		rec, err := replay.NewRecorder(recordPath, g.seed)
		if err != nil {
			log.Fatalf("record replay: %v", err)
		}
		g.recorder = rec
	}

	g.reset()
	return g
}

// reset builds a fresh session, reusing the renderer and input state
func (g *Game) reset() {
	arena := g.renderer.Arena
	bus := core.NewEventBus()

	s := core.NewSession(TickRate, SessionSecs, bus)
	g.session = s
	g.hud = render.NewHUD(int(ArenaWidth), int(ArenaHeight))

	minY, maxY := arena.Band(defs.Player.Height)
	s.PlayerID = systems.NewPlayer(s.World, ArenaWidth/2-defs.Player.Width/2, (minY+maxY)/2)

	g.playerSys = &systems.PlayerSystem{Arena: arena, Bus: bus}
	g.spawnSys = &systems.SpawnSystem{
		Arena: arena,
		Bus:   bus,
		Rng:   rand.New(rand.NewSource(g.seed)),
	}

	s.World.AddSystem(&systems.StatusSystem{})
	s.World.AddSystem(g.playerSys)
	s.World.AddSystem(&systems.AISystem{Arena: arena, Bus: bus, PlayerID: s.PlayerID})
	s.World.AddSystem(&systems.ProjectileSystem{Arena: arena})
	s.World.AddSystem(&systems.SeparationSystem{Arena: arena})
	s.World.AddSystem(&systems.CollisionSystem{Arena: arena, Bus: bus, PlayerID: s.PlayerID})
	s.World.AddSystem(&systems.AnimationSystem{})
	s.World.AddSystem(g.spawnSys)

	s.BeforeTick = g.beforeTick
	g.wireEvents(bus)
}

// beforeTick hands every simulation tick its input intent. During playback
// the recording replaces the live devices.
func (g *Game) beforeTick(tick uint64) {
	in := g.input.Snapshot()
	if g.playback != nil {
		in = g.playback.IntentForTick(tick)
	}
	if g.recorder != nil {
		if err := g.recorder.Record(tick, in); err != nil {
			log.Printf("replay record failed, stopping: %v", err)
			g.recorder.Close()
			g.recorder = nil
		}
	}
	g.playerSys.Intent = in
}

func (g *Game) wireEvents(bus *core.EventBus) {
	bus.On(core.EvtEnemyKilled, func(core.Event) {
		g.hud.Kills++
	})
	bus.On(core.EvtSessionEnded, func(core.Event) {
		if g.recorder != nil {
			g.recorder.Close()
			g.recorder = nil
		}
	})
}

func (g *Game) Update() error {
	g.input.Update()

	switch g.menu.Update(g.input, g.session.State) {
	case ui.MenuStart:
		g.session.Play()
	case ui.MenuRestart:
		// Fresh seed on restart, unless a replay pins it.
		if g.playback == nil && g.recorder == nil {
			g.seed = time.Now().UnixNano()
		}
		g.reset()
		g.session.Play()
	}

	if g.session.State == core.StatePlaying || g.session.State == core.StatePaused {
		g.handleDebugKeys()
	}

	g.session.Update()
	g.session.Bus.Dispatch()
	return nil
}

func (g *Game) handleDebugKeys() {
	if g.input.IsKeyJustPressed(ebiten.KeyP) {
		switch g.session.State {
		case core.StatePlaying:
			g.session.Pause()
		case core.StatePaused:
			g.session.Play()
		}
	}
	if g.input.IsKeyJustPressed(ebiten.KeyF1) {
		g.renderer.ShowHitboxes = !g.renderer.ShowHitboxes
	}

	// Forced spawns and time scale would diverge from a recording, so they
	// are disabled whenever a replay is driving or being captured.
	if g.playback != nil || g.recorder != nil {
		return
	}
	if g.input.IsKeyJustPressed(ebiten.Key0) {
		g.spawnSys.ForceSpawn(defs.Regulars[0])
	}
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if g.input.IsKeyJustPressed(key) && i < len(defs.Specials) {
			g.spawnSys.ForceSpawn(defs.Specials[i])
		}
	}
	if g.input.IsKeyJustPressed(ebiten.KeyEqual) {
		g.session.TimeScale = clamp(g.session.TimeScale*2, 0.25, 8)
	}
	if g.input.IsKeyJustPressed(ebiten.KeyMinus) {
		g.session.TimeScale = clamp(g.session.TimeScale/2, 0.25, 8)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.session.State == core.StateMenu {
		g.menu.Draw(screen)
		return
	}
	g.renderer.Draw(screen, g.session.World)
	g.hud.Draw(screen, g.session)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return int(ArenaWidth), int(ArenaHeight)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func main() {
	archetypes := flag.String("archetypes", "", "path to an archetype stats file overriding the built-in set")
	recordPath := flag.String("record", "", "record this run's inputs to a replay file")
	replayPath := flag.String("replay", "", "play back a recorded run instead of reading input devices")
	flag.Parse()

	if *archetypes != "" {
		if err := defs.Load(*archetypes); err != nil {
			log.Fatalf("load archetypes: %v", err)
		}
	}

	var playback *replay.Replay
	if *replayPath != "" {
		rep, err := replay.Load(*replayPath)
		if err != nil {
			log.Fatalf("load replay: %v", err)
		}
		playback = rep
	}

	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowTitle("Horde Lane")

	if err := ebiten.RunGame(NewGame(playback, *recordPath)); err != nil {
		log.Fatal(err)
	}
}
