package frame

import (
	"context"
	"io"
	"time"

	"github.com/vovakirdan/rong/internal/core"
)

// Script is a Source that replays a fixed number of identical frames.
// Controls, when set, picks the held keys for each frame index.
type Script struct {
	Count    int
	DT       time.Duration
	Width    float64
	Height   float64
	Controls func(i int) core.Controls

	next int
}

// Next returns the next scripted frame, or io.EOF after Count frames.
func (s *Script) Next(_ context.Context) (Frame, error) {
	if s.next >= s.Count {
		return Frame{}, io.EOF
	}

	f := Frame{DT: s.DT, Width: s.Width, Height: s.Height}
	if s.Controls != nil {
		f.Controls = s.Controls(s.next)
	}
	s.next++
	return f, nil
}
