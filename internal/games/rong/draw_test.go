package rong

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/rong/internal/core"
)

// recordingCanvas logs every draw call and can fail on the nth call.
type recordingCanvas struct {
	w, h   float64
	calls  []string
	failAt int // 1-based call index to fail on, 0 = never
}

var errBackend = errors.New("backend failure")

func (c *recordingCanvas) record(call string) error {
	c.calls = append(c.calls, call)
	if c.failAt == len(c.calls) {
		return errBackend
	}
	return nil
}

func (c *recordingCanvas) Size() (float64, float64) { return c.w, c.h }

func (c *recordingCanvas) Clear(col core.Color) error {
	return c.record(fmt.Sprintf("clear %d", col))
}

func (c *recordingCanvas) FillRect(r core.RectF, col core.Color) error {
	return c.record(fmt.Sprintf("rect %v,%v %vx%v", r.Center.X, r.Center.Y, r.W, r.H))
}

func (c *recordingCanvas) DrawText(at core.Vec2, text string, col core.Color) error {
	return c.record(fmt.Sprintf("text %v,%v %q", at.X, at.Y, text))
}

func (c *recordingCanvas) Present() error {
	return c.record("present")
}

func TestDrawCalls(t *testing.T) {
	p := DefaultParams()
	s := NewState(800, 600, p, rand.New(rand.NewSource(1)))
	s.Score = Score{Left: 3, Right: 12}

	c := &recordingCanvas{w: 800, h: 600}
	if err := Draw(s, c, p); err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}

	expected := []string{
		fmt.Sprintf("clear %d", BackgroundColor),
		"rect 15,300 30x150",
		"rect 785,300 30x150",
		"rect 400,300 30x30",
		`text 400,300 "3   12"`,
		"present",
	}
	if strings.Join(c.calls, "\n") != strings.Join(expected, "\n") {
		t.Errorf("calls:\n%s\nexpected:\n%s", strings.Join(c.calls, "\n"), strings.Join(expected, "\n"))
	}
}

func TestDrawOmitsBallAndLabelPerParams(t *testing.T) {
	p := DefaultParams()
	p.Ball = false
	p.ScoreLabel = false
	s := NewState(800, 600, p, rand.New(rand.NewSource(1)))

	c := &recordingCanvas{w: 800, h: 600}
	if err := Draw(s, c, p); err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}
	if len(c.calls) != 4 {
		t.Errorf("expected clear, two rackets, present; got %v", c.calls)
	}
}

func TestDrawAbortsOnFirstError(t *testing.T) {
	p := DefaultParams()
	s := NewState(800, 600, p, rand.New(rand.NewSource(1)))

	for failAt := 1; failAt <= 6; failAt++ {
		t.Run(fmt.Sprintf("fail at call %d", failAt), func(t *testing.T) {
			c := &recordingCanvas{w: 800, h: 600, failAt: failAt}
			err := Draw(s, c, p)
			if !errors.Is(err, errBackend) {
				t.Fatalf("Draw() error = %v, expected backend failure", err)
			}
			if len(c.calls) != failAt {
				t.Errorf("made %d calls after failure at %d", len(c.calls), failAt)
			}
		})
	}
}

func TestScoreLabel(t *testing.T) {
	if got := ScoreLabel(Score{Left: 0, Right: 0}); got != "0   0" {
		t.Errorf("ScoreLabel() = %q, expected %q", got, "0   0")
	}
	if got := ScoreLabel(Score{Left: 10, Right: 7}); got != "10   7" {
		t.Errorf("ScoreLabel() = %q, expected %q", got, "10   7")
	}
}
