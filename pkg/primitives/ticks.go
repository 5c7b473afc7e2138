package primitives

import (
	"fmt"
	"github.com/willbeason/vermont/pkg/geometry"
	"github.com/willbeason/vermont/pkg/rng"
)

// TickKind is one step of a broken ink line.
type TickKind int

const (
	Long TickKind = iota
	Short
	Space
)

func (k TickKind) String() string {
	switch k {
	case Long:
		return "long"
	case Short:
		return "short"
	case Space:
		return "space"
	}
	return fmt.Sprintf("TickKind(%d)", int(k))
}

// Lengths are the ranges each kind of tick advances the pen by.
var Lengths = map[TickKind]geometry.Range{
	Long:  {Min: 10, Max: 25},
	Short: {Min: 3, Max: 10},
	Space: {Min: 5, Max: 25},
}

// Length draws how far a tick of kind k advances the pen.
func (k TickKind) Length(src rng.Source) float64 {
	return rng.Between(src, Lengths[k])
}

// A Tick is one drawn stroke of a broken line.
type Tick struct {
	Kind  TickKind
	Curve geometry.Bezier
}

// LineStyle controls how a broken line is drawn.
type LineStyle struct {
	// Bump is how far each tick may arc away from the line.
	Bump geometry.Range
	// Kind picks the next tick.
	Kind func(src rng.Source) TickKind
}

// GroundStyle is the rough line drawn along the horizon.
var GroundStyle = LineStyle{
	Bump: geometry.Range{Min: -4, Max: 0},
	Kind: func(src rng.Source) TickKind {
		return rng.Choice(src, []TickKind{Long, Short, Long, Short, Space})
	},
}

// InkStyle is a calmer pen line, mostly long strokes.
var InkStyle = LineStyle{
	Bump: geometry.Range{Min: -1, Max: 0},
	Kind: func(src rng.Source) TickKind {
		if src.Uniform(0, 1) > 0.25 {
			return Long
		}
		return rng.Choice(src, []TickKind{Space, Short})
	},
}

// BrokenLine walks from xStart to xEnd along y emitting ticks. Spaces advance
// the pen but are not returned. The last tick may overshoot xEnd.
func BrokenLine(src rng.Source, xStart, y, xEnd float64, style LineStyle) []Tick {
	var ticks []Tick
	for x := xStart; x < xEnd; {
		bump := rng.Between(src, style.Bump)
		kind := style.Kind(src)
		length := kind.Length(src)

		if kind != Space {
			ticks = append(ticks, Tick{
				Kind: kind,
				Curve: geometry.Bezier{
					Start:    geometry.XY{X: x, Y: y},
					Controls: [2]geometry.XY{{X: x, Y: y}, {X: x + length/2, Y: y + bump}},
					End:      geometry.XY{X: x + length, Y: y},
				},
			})
		}
		x += length
	}
	return ticks
}
