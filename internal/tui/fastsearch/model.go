package fastsearch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgechols/fastsearch/internal/config"
	"github.com/rgechols/fastsearch/internal/index"
	"github.com/rgechols/fastsearch/internal/widget"
)

type indexReadyMsg struct {
	docs []index.Document
}

type indexFailedMsg struct {
	err error
}

type clearStatusMsg struct{}

// Model binds the pure widget state machine to a terminal. It translates
// key presses into machine events, executes the commands each transition
// returns, and projects the resulting state into the view. The machine's
// result list, not the rendered output, is the source of truth for
// navigation order.
type Model struct {
	machine widget.Machine
	state   widget.State
	store   *index.Store
	keys    *keyMap
	chord   config.ShortcutConfig

	input  textinput.Model
	spin   spinner.Model
	status string
	width  int

	destination string
}

func NewModel(cfg config.Config, store *index.Store) Model {
	input := textinput.New()
	input.Placeholder = "Search"
	input.Prompt = "> "
	input.CharLimit = 128

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(spinnerStyle),
	)

	return Model{
		machine: widget.NewMachine(cfg),
		state:   widget.NewState(),
		store:   store,
		keys:    newKeyMap(cfg.Shortcuts.Open),
		chord:   cfg.Shortcuts.Open,
		input:   input,
		spin:    spin,
	}
}

// Destination returns the permalink chosen with Enter, empty if the
// program exited without navigating.
func (m Model) Destination() string {
	return m.destination
}

// State exposes the current machine state for assertions.
func (m Model) State() widget.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.state.Phase != widget.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case indexReadyMsg:
		return m.step(widget.IndexReady{Docs: msg.docs})

	case indexFailedMsg:
		return m.step(widget.IndexFailed{Err: msg.err})

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.toggle):
		return m.step(chordEvent(m.chord))

	case key.Matches(msg, m.keys.escape):
		return m.step(widget.KeyPressed{Key: widget.KeyEscape})

	case key.Matches(msg, m.keys.confirm):
		return m.step(widget.KeyPressed{Key: widget.KeyEnter})

	case key.Matches(msg, m.keys.down):
		return m.step(widget.KeyPressed{Key: widget.KeyArrowDown})

	case key.Matches(msg, m.keys.up):
		return m.step(widget.KeyPressed{Key: widget.KeyArrowUp})

	case key.Matches(msg, m.keys.copyLink) && m.focusedResult() != nil:
		return m.copyFocusedLink()
	}

	// Everything else is query text while the input has focus.
	if m.state.Phase != widget.PhaseClosed && m.state.Focus == widget.FocusInput {
		var inputCmd tea.Cmd
		before := m.input.Value()
		m.input, inputCmd = m.input.Update(msg)
		if value := m.input.Value(); value != before {
			next, stepCmd := m.step(widget.InputChanged{Text: value})
			return next, tea.Batch(inputCmd, stepCmd)
		}
		return m, inputCmd
	}

	return m, nil
}

// step feeds one event through the machine and executes the returned
// commands against the terminal platform.
func (m Model) step(ev widget.Event) (Model, tea.Cmd) {
	state, cmds := m.machine.Step(m.state, ev)
	m.state = state

	var teaCmds []tea.Cmd
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case widget.Fetch:
			teaCmds = append(teaCmds, loadIndex(m.store, cmd.URL), m.spin.Tick)
		case widget.SetFocus:
			if cmd.Target == widget.FocusInput {
				teaCmds = append(teaCmds, m.input.Focus())
			} else {
				m.input.Blur()
			}
		case widget.Blur:
			m.input.Blur()
		case widget.Navigate:
			m.destination = cmd.URL
			teaCmds = append(teaCmds, tea.Quit)
		}
	}

	// The machine owns the query text; opening and closing clear it.
	if m.input.Value() != m.state.Query {
		m.input.SetValue(m.state.Query)
		m.input.CursorEnd()
	}

	return m, tea.Batch(teaCmds...)
}

func loadIndex(store *index.Store, url string) tea.Cmd {
	return func() tea.Msg {
		if err := store.Load(context.Background(), url); err != nil {
			return indexFailedMsg{err: err}
		}
		return indexReadyMsg{docs: store.Documents()}
	}
}

func (m Model) focusedResult() *widget.Entry {
	entries, _ := widget.Render(m.state)
	if m.state.Focus < 0 || m.state.Focus >= len(entries) {
		return nil
	}
	return &entries[m.state.Focus]
}

func (m Model) copyFocusedLink() (Model, tea.Cmd) {
	entry := m.focusedResult()
	if entry == nil {
		return m, nil
	}
	if err := clipboard.WriteAll(entry.Permalink); err != nil {
		m.status = fmt.Sprintf("Failed to copy link: %v", err)
	} else {
		m.status = fmt.Sprintf("Copied %s", entry.Permalink)
	}
	return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m Model) View() string {
	if m.state.Phase == widget.PhaseClosed {
		hint := fmt.Sprintf("Press %s to search · ctrl+c to quit", chordKeyString(m.chord))
		return appStyle.Render(helpStyle.Render(hint))
	}

	var b strings.Builder
	b.WriteString(inputStyle.Render(m.input.View()))
	b.WriteString("\n")

	entries, message := widget.Render(m.state)
	switch {
	case m.state.Phase == widget.PhaseLoading:
		b.WriteString("\n" + m.spin.View() + messageStyle.Render(message))
	case message != "":
		b.WriteString("\n" + messageStyle.Render(message))
	default:
		for i, entry := range entries {
			b.WriteString("\n")
			if i == m.state.Focus {
				b.WriteString(focusedTitleStyle.Render(entry.Title))
			} else {
				b.WriteString(titleStyle.Render(entry.Title))
			}
			b.WriteString("\n" + metaStyle.Render(entry.Section+" · "+entry.Date))
		}
	}

	if m.status != "" {
		b.WriteString("\n\n" + statusStyle.Render(m.status))
	}

	b.WriteString("\n\n" + helpStyle.Render(m.helpLine()))
	return appStyle.Render(b.String())
}

func (m Model) helpLine() string {
	parts := []string{
		m.keys.toggle.Help().Key + " close",
		"esc close",
	}
	if m.state.Phase == widget.PhaseResults {
		parts = append(parts,
			"↑/↓ move",
			"↵ open",
			"y copy",
		)
	}
	return strings.Join(parts, " · ")
}
