package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rong/internal/config"
	"github.com/vovakirdan/rong/internal/core"
	"github.com/vovakirdan/rong/internal/frame"
	"github.com/vovakirdan/rong/internal/registry"
)

// statusRows is the number of terminal rows reserved below the playfield.
const statusRows = 1

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Result summarizes a finished session.
type Result struct {
	Left   int
	Right  int
	Frames uint64
}

// Model is the Bubble Tea model that hosts one game.
// Every tick it steps the frame driver with the time since the previous tick
// and the currently held keys, then renders into the canvas.
type Model struct {
	driver   *frame.Driver
	canvas   *Canvas
	held     *core.KeyState
	keys     KeyMap
	help     help.Model
	runtime  core.RuntimeConfig
	showKeys bool
	lastTick time.Time
	now      func() time.Time
	err      error
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg config.Config, rt core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.Display.FPS
	}

	canvas := NewCanvas(rt.ScreenW, max(rt.ScreenH-statusRows, 0), cfg.Display.CellWidth, cfg.Display.CellHeight)
	w, h := canvas.Size()

	hm := help.New()
	hm.Width = rt.ScreenW

	return Model{
		driver:  frame.NewDriver(game, w, h, rt.Seed),
		canvas:  canvas,
		held:    core.NewKeyState(cfg.HoldDuration()),
		keys:    DefaultKeyMap(),
		help:    hm,
		runtime: rt,
		now:     time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.driver.SetPaused(!m.driver.Paused())
	case key.Matches(msg, m.keys.Restart):
		m.runtime.Seed = m.now().UnixNano()
		m.driver.Restart(m.runtime.Seed)
		m.held.Reset()
	case key.Matches(msg, m.keys.Help):
		m.showKeys = !m.showKeys
	default:
		if k := m.keys.GameKey(msg); k != core.KeyNone {
			m.held.Press(k, m.now())
		}
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps running; the
// new drawable size reaches it with the next frame. A terminal too small for
// a playfield freezes the game until it grows again.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.canvas.Resize(msg.Width, max(msg.Height-statusRows, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame: update, then draw.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = t.Sub(m.lastTick)
	}
	m.lastTick = t

	// Nothing to play on; the game waits until the terminal grows
	if m.canvas.Bounds().Empty() {
		return m, tickCmd(m.runtime.TickRate)
	}

	w, h := m.canvas.Size()
	m.driver.Step(frame.Frame{
		DT:     dt,
		Width:  w,
		Height: h,
		Controls: core.ControlsFrom(func(k core.Key) bool {
			return m.held.Held(k, t)
		}),
	})

	// A failed frame ends the session
	if err := m.driver.Render(m.canvas); err != nil {
		m.err = fmt.Errorf("tui: frame %d: %w", m.driver.Frames(), err)
		m.quitting = true
		return m, tea.Quit
	}

	if m.driver.Paused() {
		front := m.canvas.Front()
		front.DrawTextCentered(front.Height()/4, "PAUSED", core.ColorYellow)
	}

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the last presented frame and the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var status string
	if m.showKeys {
		status = m.help.ShortHelpView([]key.Binding{
			m.keys.LeftUp, m.keys.LeftDown, m.keys.RightUp, m.keys.RightDown,
		})
	} else {
		status = m.help.View(m.keys)
	}
	return RenderScreen(m.canvas.Front()) + "\n" + statusStyle.Render(status)
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Result returns the current scores and frame count.
func (m Model) Result() Result {
	left, right := m.driver.Game().Score()
	return Result{Left: left, Right: right, Frames: m.driver.Frames()}
}

// Run starts the Bubble Tea program for the given game and blocks until the
// player quits or a frame fails.
func Run(game registry.Game, cfg config.Config, rt core.RuntimeConfig, opts ...tea.ProgramOption) (Result, error) {
	model := NewModel(game, cfg, rt)

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(model, opts...)

	final, err := p.Run()
	if err != nil {
		return model.Result(), fmt.Errorf("tui: %w", err)
	}

	fm, ok := final.(Model)
	if !ok {
		return model.Result(), nil
	}
	return fm.Result(), fm.Err()
}
