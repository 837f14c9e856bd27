// Package replay records the per-tick input stream of a session and plays it
// back. Because the simulation is a pure function of (seed, intent sequence),
// a replay file reproduces a whole run bit for bit.
package replay

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/hordekit/horde-engine/engine/input"
)

var magic = [4]byte{'H', 'R', 'D', '1'}

const (
	flagRun uint8 = 1 << iota
	flagFire
	flagReload
)

// Frame is one tick's worth of recorded input
type Frame struct {
	Tick   uint64
	MoveX  float64
	MoveY  float64
	AimX   float64
	AimY   float64
	Run    bool
	Fire   bool
	Reload bool
}

// FromIntent captures an input intent at a tick
func FromIntent(tick uint64, in input.Intent) Frame {
	return Frame{
		Tick:   tick,
		MoveX:  in.MoveX,
		MoveY:  in.MoveY,
		AimX:   in.AimX,
		AimY:   in.AimY,
		Run:    in.Run,
		Fire:   in.Fire,
		Reload: in.Reload,
	}
}

// Intent converts the frame back into the intent the simulation consumes
func (f Frame) Intent() input.Intent {
	return input.Intent{
		MoveX:  f.MoveX,
		MoveY:  f.MoveY,
		AimX:   f.AimX,
		AimY:   f.AimY,
		Run:    f.Run,
		Fire:   f.Fire,
		Reload: f.Reload,
	}
}

// Encode writes the frame in little-endian binary
func (f *Frame) Encode(w io.Writer) error {
	var flags uint8
	if f.Run {
		flags |= flagRun
	}
	if f.Fire {
		flags |= flagFire
	}
	if f.Reload {
		flags |= flagReload
	}
	for _, v := range []any{f.Tick, f.MoveX, f.MoveY, f.AimX, f.AimY, flags} {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads one frame
func (f *Frame) Decode(r io.Reader) error {
	var flags uint8
	for _, v := range []any{&f.Tick, &f.MoveX, &f.MoveY, &f.AimX, &f.AimY, &flags} {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	f.Run = flags&flagRun != 0
	f.Fire = flags&flagFire != 0
	f.Reload = flags&flagReload != 0
	return nil
}

// Recorder streams frames to a replay file as the session runs
type Recorder struct {
	Seed int64

	file   *os.File
	writer *bufio.Writer
}

// NewRecorder creates a replay file and writes its header. The seed must be
// the one the spawner was constructed with, or playback will diverge.
func NewRecorder(path string, seed int64) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create replay: %w", err)
	}
	w := bufio.NewWriter(f)
	if _, err := w.Write(magic[:]); err != nil {
		f.Close()
		return nil, err
	}
	if err := binary.Write(w, binary.LittleEndian, seed); err != nil {
		f.Close()
		return nil, err
	}
	return &Recorder{Seed: seed, file: f, writer: w}, nil
}

// Record appends one tick's intent
func (r *Recorder) Record(tick uint64, in input.Intent) error {
	f := FromIntent(tick, in)
	return f.Encode(r.writer)
}

// Close flushes and closes the replay file
func (r *Recorder) Close() error {
	if r.writer != nil {
		r.writer.Flush()
	}
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// Replay is a fully loaded recording
type Replay struct {
	Seed   int64
	Frames []Frame

	cursor int
}

// Load reads a replay file into memory
func Load(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var head [4]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, fmt.Errorf("failed to read replay header: %w", err)
	}
	if head != magic {
		return nil, fmt.Errorf("not a replay file")
	}

	rep := &Replay{}
	if err := binary.Read(r, binary.LittleEndian, &rep.Seed); err != nil {
		return nil, fmt.Errorf("failed to read replay seed: %w", err)
	}
	for {
		var fr Frame
		if err := fr.Decode(r); err != nil {
			break
		}
		rep.Frames = append(rep.Frames, fr)
	}
	return rep, nil
}

// IntentForTick returns the recorded intent for a tick. Ticks past the end of
// the recording return a neutral intent, so playback settles instead of
// repeating the last input. The cursor assumes monotonically increasing ticks.
func (r *Replay) IntentForTick(tick uint64) input.Intent {
	for r.cursor < len(r.Frames) && r.Frames[r.cursor].Tick < tick {
		r.cursor++
	}
	if r.cursor < len(r.Frames) && r.Frames[r.cursor].Tick == tick {
		return r.Frames[r.cursor].Intent()
	}
	return input.Intent{}
}

// Done reports whether playback has consumed every recorded frame
func (r *Replay) Done() bool {
	return r.cursor >= len(r.Frames)
}
