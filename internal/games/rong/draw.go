package rong

import (
	"fmt"

	"github.com/vovakirdan/rong/internal/core"
)

// Frame colors
const (
	BackgroundColor = core.ColorBlack
	ForegroundColor = core.ColorWhite
)

// ScoreLabel formats the score as drawn on screen.
func ScoreLabel(sc Score) string {
	return fmt.Sprintf("%d   %d", sc.Left, sc.Right)
}

// Draw renders the state: background, both rackets, the ball and the score
// label with its top-left corner at the screen center. The first failing
// draw call aborts the frame and its error is returned.
func Draw(s *State, dst core.Canvas, p Params) error {
	if err := dst.Clear(BackgroundColor); err != nil {
		return fmt.Errorf("rong: clear: %w", err)
	}

	if err := dst.FillRect(core.CenteredRect(s.Left, p.RacketWidth, p.RacketHeight), ForegroundColor); err != nil {
		return fmt.Errorf("rong: draw left racket: %w", err)
	}
	if err := dst.FillRect(core.CenteredRect(s.Right, p.RacketWidth, p.RacketHeight), ForegroundColor); err != nil {
		return fmt.Errorf("rong: draw right racket: %w", err)
	}

	if p.Ball {
		if err := dst.FillRect(core.CenteredRect(s.Ball, p.BallSize, p.BallSize), ForegroundColor); err != nil {
			return fmt.Errorf("rong: draw ball: %w", err)
		}
	}

	if p.ScoreLabel {
		w, h := dst.Size()
		if err := dst.DrawText(core.V(w/2, h/2), ScoreLabel(s.Score), ForegroundColor); err != nil {
			return fmt.Errorf("rong: draw score: %w", err)
		}
	}

	if err := dst.Present(); err != nil {
		return fmt.Errorf("rong: present: %w", err)
	}
	return nil
}
