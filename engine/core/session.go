package core

import "time"

// GameState represents the overall game state
type GameState uint8

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateVictory
	StateDefeat
)

// Session manages one fixed-timestep survival run. The simulation is a pure
// function of the (state, dt) sequence: time acceleration is a multiplier on
// the dt fed into every system, never a hidden clock rate.
type Session struct {
	World     *World
	State     GameState
	TickRate  float64 // fixed ticks per second
	TimeScale float64 // debug dt multiplier
	Duration  float64 // session length budget in seconds
	Elapsed   float64 // simulated seconds so far
	PlayerID  EntityID
	Bus       *EventBus

	// BeforeTick, when set, runs right before every simulation tick. The
	// shell uses it to hand the tick its input intent; the replay layer uses
	// it to record or substitute that intent per tick.
	BeforeTick func(tick uint64)

	accumulator float64
	lastTime    time.Time
}

// NewSession creates a session with a fixed tick rate and duration budget
func NewSession(tickRate, duration float64, bus *EventBus) *Session {
	return &Session{
		World:     NewWorld(tickRate),
		TickRate:  tickRate,
		TimeScale: 1.0,
		Duration:  duration,
		Bus:       bus,
		lastTime:  time.Now(),
	}
}

// Update should be called every render frame. It runs the simulation at a
// fixed timestep and returns the interpolation alpha for smooth rendering.
func (s *Session) Update() float64 {
	now := time.Now()
	frameTime := now.Sub(s.lastTime).Seconds()
	s.lastTime = now

	// Cap frame time to avoid spiral of death
	if frameTime > 0.25 {
		frameTime = 0.25
	}

	dt := 1.0 / s.TickRate
	s.accumulator += frameTime

	for s.accumulator >= dt {
		if s.State == StatePlaying {
			if s.BeforeTick != nil {
				s.BeforeTick(s.World.TickCount)
			}
			s.Advance(dt)
		}
		s.accumulator -= dt
	}

	return s.accumulator / dt
}

// Advance runs exactly one simulation tick of the given base dt. Exposed so
// tests and replays can drive the session without a wall clock.
func (s *Session) Advance(dt float64) {
	scaled := dt * s.TimeScale
	s.World.Tick(scaled)
	s.Elapsed += scaled
	s.checkEnd()
}

func (s *Session) checkEnd() {
	if s.State != StatePlaying {
		return
	}
	if hp := s.World.Get(s.PlayerID, CompHealth); hp != nil {
		if hp.(*Health).Current <= 0 {
			s.end(StateDefeat)
			return
		}
	}
	if s.Elapsed >= s.Duration {
		s.end(StateVictory)
	}
}

func (s *Session) end(state GameState) {
	s.State = state
	if s.Bus != nil {
		s.Bus.Emit(Event{Type: EvtSessionEnded, Tick: s.World.TickCount, Entity: s.PlayerID, Value: s.Elapsed})
	}
}

// Play starts or resumes the session
func (s *Session) Play() {
	s.State = StatePlaying
	s.lastTime = time.Now()
}

// Pause pauses the session
func (s *Session) Pause() {
	s.State = StatePaused
}

// Remaining returns the simulated seconds left in the duration budget
func (s *Session) Remaining() float64 {
	r := s.Duration - s.Elapsed
	if r < 0 {
		r = 0
	}
	return r
}

// EnemyCount returns the number of live enemies
func (s *Session) EnemyCount() int {
	return len(s.World.Query(CompEnemy))
}

// PlayerHealth returns the player's current and max HP, or zeros if absent
func (s *Session) PlayerHealth() (float64, float64) {
	hp := s.World.Get(s.PlayerID, CompHealth)
	if hp == nil {
		return 0, 0
	}
	h := hp.(*Health)
	return h.Current, h.Max
}
