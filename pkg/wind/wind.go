package wind

import (
	"github.com/willbeason/diffeq-go/pkg/models"
	"github.com/willbeason/diffeq-go/pkg/solvers/order2"
	"github.com/willbeason/vermont/pkg/tree"
	"math"
)

// DefaultOscillator is a gusty, never quite repeating breeze.
var DefaultOscillator = models.DuffingOscillator{
	Delta:     0.3,
	Alpha:     -1.0,
	Beta:      1.0,
	Gamma:     0.37,
	Frequency: 1.2,
}

// Config controls how a breeze is simulated.
type Config struct {
	Oscillator models.DuffingOscillator

	// Frames is how many displacements to record.
	Frames int
	// FramesPerCycle is how many frames one forcing period is split into.
	FramesPerCycle int
	// StepsPerFrame is how many solver steps are taken between frames.
	StepsPerFrame int
	// WarmupCycles are simulated and discarded so the transient dies out.
	WarmupCycles int

	// Amplitude is the largest displacement of a leaf, in pixels.
	Amplitude float64
}

// DefaultConfig is a short loop suitable for a few seconds of animation.
func DefaultConfig() Config {
	return Config{
		Oscillator:     DefaultOscillator,
		Frames:         120,
		FramesPerCycle: 24,
		StepsPerFrame:  50,
		WarmupCycles:   20,
		Amplitude:      3,
	}
}

// Sway is a precomputed breeze. Offsets are normalized to [-1, 1].
type Sway struct {
	Offsets   []float64
	Amplitude float64
}

// NewSway integrates the oscillator and records one displacement per frame.
func NewSway(cfg Config) *Sway {
	s := &Sway{Amplitude: cfg.Amplitude}
	if cfg.Frames < 1 || cfg.FramesPerCycle < 1 || cfg.Oscillator.Frequency <= 0 {
		return s
	}
	if cfg.StepsPerFrame < 1 {
		cfg.StepsPerFrame = 1
	}

	spring := cfg.Oscillator
	h := 2 * math.Pi / spring.Frequency / float64(cfg.FramesPerCycle)

	t := 0.0
	y, yp := 0.1, 0.0
	for i := 0; i < cfg.WarmupCycles*cfg.FramesPerCycle; i++ {
		y, yp = order2.Solve(order2.RK4, spring.Acceleration, t, y, yp, t+h, cfg.StepsPerFrame)
		t += h
	}

	s.Offsets = make([]float64, cfg.Frames)
	peak := 0.0
	for i := range s.Offsets {
		y, yp = order2.Solve(order2.RK4, spring.Acceleration, t, y, yp, t+h, cfg.StepsPerFrame)
		t += h
		s.Offsets[i] = y
		peak = math.Max(peak, math.Abs(y))
	}

	if peak == 0 || math.IsNaN(peak) || math.IsInf(peak, 0) {
		clear(s.Offsets)
		return s
	}
	for i := range s.Offsets {
		s.Offsets[i] /= peak
	}
	return s
}

// Offset is the displacement of a leaf with movement factor 1 at frame.
func (s *Sway) Offset(frame int) float64 {
	if len(s.Offsets) == 0 {
		return 0
	}
	frame %= len(s.Offsets)
	if frame < 0 {
		frame += len(s.Offsets)
	}
	return s.Offsets[frame] * s.Amplitude
}

// Apply returns copies of leaves moved for frame. Fallen leaves stay put.
func (s *Sway) Apply(leaves []tree.Leaf, frame int) []tree.Leaf {
	out := make([]tree.Leaf, len(leaves))
	copy(out, leaves)

	d := s.Offset(frame)
	for i := range out {
		if out[i].Fallen {
			continue
		}
		m := d * out[i].MovementFactor
		out[i].X += math.Cos(out[i].MovementDirection) * m
		out[i].Y += math.Sin(out[i].MovementDirection) * m
	}
	return out
}

// Tree returns a copy of t with its leaves moved for frame.
func (s *Sway) Tree(t *tree.Tree, frame int) *tree.Tree {
	c := t.Clone()
	c.Leaves = s.Apply(t.Leaves, frame)
	return c
}
