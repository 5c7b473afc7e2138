package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/willbeason/vermont/pkg/rng"
	"image"
)

// FramesPerSecond is how fast animated pictures play.
const FramesPerSecond = 24

// Game shows the latest picture and rebuilds it with a fresh seed on a left
// click inside the window.
type Game struct {
	regen         *Regenerator
	width, height int

	shown  uint64
	frames []*ebiten.Image
	tick   int
}

// NewGame starts building the first picture from seed. A zero seed is
// replaced by a clock-derived one.
func NewGame(width, height int, build Builder, seed int64) *Game {
	g := &Game{
		regen:  NewRegenerator(build),
		width:  width,
		height: height,
	}
	g.regen.Request(rng.Seed(seed))
	return g
}

func (g *Game) Update() error {
	g.tick++
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if x >= 0 && x <= g.width && y >= 0 && y <= g.height {
			g.regen.Request(rng.Seed(0))
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if frames, _, version := g.regen.Latest(); version != g.shown {
		g.load(frames)
		g.shown = version
	}

	if len(g.frames) == 0 {
		ebitenutil.DebugPrint(screen, "painting...")
		return
	}

	i := g.tick * FramesPerSecond / ebiten.TPS() % len(g.frames)
	screen.DrawImage(g.frames[i], nil)

	if g.regen.Busy() {
		ebitenutil.DebugPrint(screen, "repainting...")
	}
}

func (g *Game) load(frames []image.Image) {
	for _, f := range g.frames {
		f.Deallocate()
	}
	g.frames = g.frames[:0]
	for _, f := range frames {
		g.frames = append(g.frames, ebiten.NewImageFromImage(f))
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens a window and blocks until it is closed.
func Run(title string, width, height int, build Builder, seed int64) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(NewGame(width, height, build, seed))
}
