package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Intent is the per-tick snapshot of player input the simulation consumes.
// The core never polls devices itself; the shell hands it one of these before
// every tick.
type Intent struct {
	MoveX, MoveY float64 // normalized movement axes, y-up
	Run          bool
	Fire         bool
	Reload       bool
	AimX, AimY   float64 // cursor position in world coordinates
}

// State tracks mouse and keyboard state per frame and converts it to intents
type State struct {
	arenaH float64

	MouseX, MouseY int
	LeftPressed    bool

	KeysPressed map[ebiten.Key]bool
}

// NewState creates input state for an arena of the given height; the height
// is needed to flip screen-space cursor coordinates into y-up world space.
func NewState(arenaH float64) *State {
	return &State{
		arenaH:      arenaH,
		KeysPressed: make(map[ebiten.Key]bool),
	}
}

// Update should be called every frame
func (s *State) Update() {
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.LeftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	commonKeys := []ebiten.Key{
		ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
		ebiten.KeyUp, ebiten.KeyDown, ebiten.KeyLeft, ebiten.KeyRight,
		ebiten.KeySpace, ebiten.KeyEscape, ebiten.KeyEnter,
		ebiten.KeyShift, ebiten.KeyControl, ebiten.KeyR, ebiten.KeyP,
		ebiten.Key0, ebiten.Key1, ebiten.Key2, ebiten.Key3,
		ebiten.KeyMinus, ebiten.KeyEqual, ebiten.KeyF1,
	}
	for _, k := range commonKeys {
		s.KeysPressed[k] = ebiten.IsKeyPressed(k)
	}
}

// Snapshot produces the intent for the current frame
func (s *State) Snapshot() Intent {
	var in Intent
	if s.KeysPressed[ebiten.KeyW] || s.KeysPressed[ebiten.KeyUp] {
		in.MoveY += 1
	}
	if s.KeysPressed[ebiten.KeyS] || s.KeysPressed[ebiten.KeyDown] {
		in.MoveY -= 1
	}
	if s.KeysPressed[ebiten.KeyA] || s.KeysPressed[ebiten.KeyLeft] {
		in.MoveX -= 1
	}
	if s.KeysPressed[ebiten.KeyD] || s.KeysPressed[ebiten.KeyRight] {
		in.MoveX += 1
	}
	in.Run = s.KeysPressed[ebiten.KeyShift]
	in.Fire = s.LeftPressed
	in.Reload = s.KeysPressed[ebiten.KeyR]
	in.AimX = float64(s.MouseX)
	in.AimY = s.arenaH - float64(s.MouseY)
	return in
}

// IsKeyJustPressed returns true if key was just pressed this frame
func (s *State) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
