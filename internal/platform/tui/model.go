package tui

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/matrix-pong/internal/config"
	"github.com/vovakirdan/matrix-pong/internal/core"
	"github.com/vovakirdan/matrix-pong/internal/games/pong"
	"github.com/vovakirdan/matrix-pong/internal/input"
	"github.com/vovakirdan/matrix-pong/internal/max7219"
	"github.com/vovakirdan/matrix-pong/internal/platform/device"
	"github.com/vovakirdan/matrix-pong/internal/sim"
)

// ChipMsg carries the chip registers after a command latched.
type ChipMsg struct {
	Cmd   sim.Command
	State sim.State
	Seq   int // Commands latched so far
}

// LoopDoneMsg is sent when the game loop exits.
type LoopDoneMsg struct {
	Stats device.Stats
	Err   error
}

// Model is the Bubble Tea model for the simulated LED matrix.
type Model struct {
	latch  *input.Latch
	events <-chan ChipMsg
	done   <-chan LoopDoneMsg
	cancel context.CancelFunc

	state  sim.State
	writes int
	held   core.Buttons

	keys  KeyMap
	help  help.Model
	theme Theme

	width    int
	height   int
	quitting bool
	err      error
}

// NewModel creates a model that renders chip events and feeds key presses
// into latch. cancel stops the game loop.
func NewModel(latch *input.Latch, events <-chan ChipMsg, done <-chan LoopDoneMsg, cancel context.CancelFunc) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		latch:  latch,
		events: events,
		done:   done,
		cancel: cancel,
		keys:   DefaultKeyMap(),
		help:   h,
		theme:  DefaultTheme(),
	}
}

// Init starts listening for chip events.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitForEvent(), tickCmd(statusRate))
}

// waitForEvent returns a command that waits for the next chip event or the
// end of the game loop.
func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case evt, ok := <-m.events:
			if !ok {
				return nil
			}
			return evt
		case res := <-m.done:
			return res
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ChipMsg:
		m.state = msg.State
		m.writes = msg.Seq
		return m, m.waitForEvent()

	case LoopDoneMsg:
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit

	case TickMsg:
		m.held = m.latch.Read()
		return m, tickCmd(statusRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if b := m.keys.Buttons(msg); b != core.NoButtons {
		m.latch.Press(b)
		m.held = m.latch.Read()
	}
	return m, nil
}

// View renders the matrix, the status line and the key legend.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	parts := []string{
		m.theme.Title.Render("MATRIX PONG"),
		RenderMatrix(m.state, m.theme),
		RenderStatus(m.state, m.held, m.writes, m.theme),
	}
	if m.err != nil {
		parts = append(parts, m.theme.Error.Render(fmt.Sprintf("error: %v", m.err)))
	}
	parts = append(parts, m.help.View(m.keys))

	view := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Err returns the error that ended the game loop, if any.
func (m Model) Err() error {
	return m.err
}

// publish hands msg to the UI, replacing an event the UI has not consumed yet.
// There is a single producer, so the loop terminates.
func publish(ch chan ChipMsg, msg ChipMsg) {
	for {
		select {
		case ch <- msg:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// lastRow is the register written last by every full frame update.
const lastRow = max7219.RegRow0 + core.Size - 1

// chipEvents wires the chip's latch hook to a channel. Row writes are only
// published once the whole frame has been written.
func chipEvents(chip *sim.Chip) <-chan ChipMsg {
	ch := make(chan ChipMsg, 1)
	seq := 0
	chip.OnLatch(func(cmd sim.Command, st sim.State) {
		seq++
		if cmd.Reg >= max7219.RegRow0 && cmd.Reg < lastRow {
			return
		}
		publish(ch, ChipMsg{Cmd: cmd, State: st, Seq: seq})
	})
	return ch
}

// Run plays the game on a simulated chip until the user quits or ctx is done.
// The game loop runs on its own goroutine; Run waits for it to finish the
// current tick before returning.
func Run(ctx context.Context, cfg config.Config) (device.Stats, error) {
	chip := sim.New()
	events := chipEvents(chip)

	dev, err := chip.Attach(cfg.DisplayOpts())
	if err != nil {
		return device.Stats{}, err
	}
	gameOpts := cfg.GameOptions()
	game, err := pong.New(dev, cfg.Runtime(), &gameOpts)
	if err != nil {
		return device.Stats{}, err
	}
	latch := input.NewLatch(cfg.Sim.KeyHold)

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan LoopDoneMsg, 1)
	var (
		wg     sync.WaitGroup
		result LoopDoneMsg
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		stats, err := device.Run(loopCtx, game, latch, nil)
		result = LoopDoneMsg{Stats: stats, Err: err}
		done <- result
	}()

	model := NewModel(latch, events, done, cancel)
	model.state = chip.State()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, runErr := p.Run()

	cancel()
	wg.Wait()
	if runErr != nil {
		return result.Stats, runErr
	}
	return result.Stats, result.Err
}
