package frame

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/rong/internal/config"
	"github.com/vovakirdan/rong/internal/core"
	"github.com/vovakirdan/rong/internal/games/rong"
)

// spyGame records what the driver passes in.
type spyGame struct {
	resets  []int64
	dts     []float64
	sizes   [][2]float64
	inputs  []core.Controls
	draws   int
	drawErr error
}

func (g *spyGame) ID() string    { return "spy" }
func (g *spyGame) Title() string { return "Spy" }

func (g *spyGame) Reset(w, h float64, seed int64) {
	g.resets = append(g.resets, seed)
}

func (g *spyGame) Update(in core.Controls, dt, w, h float64) {
	g.dts = append(g.dts, dt)
	g.sizes = append(g.sizes, [2]float64{w, h})
	g.inputs = append(g.inputs, in)
}

func (g *spyGame) Draw(core.Canvas) error {
	g.draws++
	return g.drawErr
}

func (g *spyGame) Score() (int, int) { return 0, 0 }

// nullCanvas accepts every draw call.
type nullCanvas struct{}

func (nullCanvas) Size() (float64, float64) { return 800, 600 }
func (nullCanvas) Clear(core.Color) error { return nil }
func (nullCanvas) FillRect(core.RectF, core.Color) error { return nil }
func (nullCanvas) DrawText(core.Vec2, string, core.Color) error { return nil }
func (nullCanvas) Present() error { return nil }

func TestDriverStep(t *testing.T) {
	g := &spyGame{}
	d := NewDriver(g, 800, 600, 9)

	if len(g.resets) != 1 || g.resets[0] != 9 {
		t.Fatalf("NewDriver should reset with the seed, got %v", g.resets)
	}

	in := core.Controls{LeftUp: true}
	d.Step(Frame{DT: 100 * time.Millisecond, Width: 1024, Height: 768, Controls: in})

	if g.dts[0] != 0.1 {
		t.Errorf("dt = %v, expected 0.1", g.dts[0])
	}
	if g.sizes[0] != [2]float64{1024, 768} {
		t.Errorf("size = %v, expected 1024x768", g.sizes[0])
	}
	if g.inputs[0] != in {
		t.Errorf("controls = %+v, expected %+v", g.inputs[0], in)
	}
	if w, h := d.Size(); w != 1024 || h != 768 {
		t.Errorf("Size() = %v, %v", w, h)
	}
	if d.Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", d.Frames())
	}
}

func TestDriverPausedAndNegativeDt(t *testing.T) {
	g := &spyGame{}
	d := NewDriver(g, 800, 600, 1)

	d.Step(Frame{DT: -time.Second, Width: 800, Height: 600})

	d.SetPaused(true)
	if !d.Paused() {
		t.Fatal("Paused() should be true")
	}
	d.Step(Frame{DT: time.Second, Width: 800, Height: 600})

	d.SetPaused(false)
	d.Step(Frame{DT: time.Second, Width: 800, Height: 600})

	expected := []float64{0, 0, 1}
	for i, dt := range expected {
		if g.dts[i] != dt {
			t.Errorf("frame %d dt = %v, expected %v", i, g.dts[i], dt)
		}
	}
}

func TestDriverRestart(t *testing.T) {
	g := &spyGame{}
	d := NewDriver(g, 800, 600, 1)
	d.Step(Frame{DT: time.Millisecond, Width: 400, Height: 300})

	d.Restart(77)

	if len(g.resets) != 2 || g.resets[1] != 77 {
		t.Errorf("resets = %v, expected second reset with seed 77", g.resets)
	}
	if d.Frames() != 0 {
		t.Errorf("Frames() = %d after restart, expected 0", d.Frames())
	}
}

func TestDriverRunUntilSourceEnds(t *testing.T) {
	g := &spyGame{}
	d := NewDriver(g, 800, 600, 1)

	src := &Script{
		Count:  5,
		DT:     16 * time.Millisecond,
		Width:  800,
		Height: 600,
		Controls: func(i int) core.Controls {
			return core.Controls{RightDown: i%2 == 0}
		},
	}

	if err := d.Run(context.Background(), src, nullCanvas{}); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if len(g.dts) != 5 || g.draws != 5 {
		t.Errorf("updates=%d draws=%d, expected 5 each", len(g.dts), g.draws)
	}
	if !g.inputs[0].RightDown || g.inputs[1].RightDown {
		t.Errorf("scripted controls not delivered: %+v", g.inputs)
	}
}

func TestDriverRunStopsOnRenderError(t *testing.T) {
	boom := errors.New("boom")
	g := &spyGame{drawErr: boom}
	d := NewDriver(g, 800, 600, 1)

	err := d.Run(context.Background(), &Script{Count: 10, Width: 800, Height: 600}, nullCanvas{})
	if !errors.Is(err, boom) {
		t.Fatalf("Run() = %v, expected render error", err)
	}
	if g.draws != 1 {
		t.Errorf("draws = %d, expected the loop to stop after the first failure", g.draws)
	}
}

func TestDriverRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDriver(&spyGame{}, 800, 600, 1)
	err := d.Run(ctx, &Script{Count: 10}, nullCanvas{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}
}

type failingSource struct{ err error }

func (s failingSource) Next(context.Context) (Frame, error) { return Frame{}, s.err }

func TestDriverRunSourceError(t *testing.T) {
	bad := errors.New("window lost")
	d := NewDriver(&spyGame{}, 800, 600, 1)

	if err := d.Run(context.Background(), failingSource{bad}, nullCanvas{}); !errors.Is(err, bad) {
		t.Errorf("Run() = %v, expected source error", err)
	}
}

func TestDriverRunsRong(t *testing.T) {
	g := rong.New(rong.Variants[0], config.Default())
	d := NewDriver(g, 800, 600, 42)

	// Ten seconds at 60fps without input: the ball crosses an edge several times
	src := &Script{Count: 600, DT: time.Second / 60, Width: 800, Height: 600}
	if err := d.Run(context.Background(), src, nullCanvas{}); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	left, right := g.Score()
	if left+right == 0 {
		t.Error("expected at least one point after ten seconds")
	}
}
