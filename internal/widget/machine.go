package widget

import (
	"strings"
	"unicode/utf8"

	"github.com/rgechols/fastsearch/internal/config"
	"github.com/rgechols/fastsearch/internal/index"
	"github.com/rgechols/fastsearch/internal/search"
)

// Phase is the visible state of the widget.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseLoading
	PhaseTooShort
	PhaseEmpty
	PhaseNoResults
	PhaseResults
	PhaseFailed
)

// Focus positions. Result focus is the non-negative result index.
const (
	FocusNone  = -2
	FocusInput = -1
)

// State is the whole interaction state. It is a value: Step returns a new
// state and never mutates its input, so the machine can be driven and
// asserted without any rendering surface.
type State struct {
	Phase   Phase
	Query   string
	Results []index.Document
	Focus   int

	// Docs is the immutable index snapshot once loaded.
	Docs []index.Document
	// IndexRequested is set on first activation; the fetch happens once
	// per session no matter how often the widget toggles.
	IndexRequested bool
	IndexLoaded    bool
	LoadFailed     bool
}

// NewState returns the initial closed state.
func NewState() State {
	return State{Phase: PhaseClosed, Focus: FocusNone}
}

// Machine evaluates events against a fixed configuration. It holds no
// mutable state of its own.
type Machine struct {
	cfg config.Config
}

func NewMachine(cfg config.Config) Machine {
	return Machine{cfg: cfg}
}

// Step applies one event and returns the next state plus the side effects
// the platform must perform. Unknown or out-of-phase events are no-ops.
func (m Machine) Step(st State, ev Event) (State, []Command) {
	switch ev := ev.(type) {
	case KeyPressed:
		return m.stepKey(st, ev)
	case InputChanged:
		if st.Phase == PhaseClosed {
			return st, nil
		}
		st.Query = ev.Text
		return m.evaluate(st), nil
	case IndexReady:
		st.Docs = ev.Docs
		st.IndexLoaded = true
		if st.Phase == PhaseLoading {
			// Re-run the pending query against the fresh snapshot.
			return m.evaluate(st), nil
		}
		return st, nil
	case IndexFailed:
		st.LoadFailed = true
		if st.Phase != PhaseClosed {
			st.Phase = PhaseFailed
			st.Results = nil
		}
		return st, nil
	default:
		return st, nil
	}
}

func (m Machine) stepKey(st State, key KeyPressed) (State, []Command) {
	if chordMatches(key, m.cfg.Shortcuts.Open) {
		if st.Phase == PhaseClosed {
			return m.open(st)
		}
		return m.close(st)
	}

	if st.Phase == PhaseClosed {
		return st, nil
	}

	switch key.Key {
	case KeyEscape:
		return m.close(st)
	case KeyEnter:
		if len(st.Results) > 0 {
			// Navigation is a platform effect, not a transition.
			return st, []Command{Navigate{URL: st.Results[0].Permalink}}
		}
		return st, nil
	case KeyArrowDown:
		return moveFocus(st, 1)
	case KeyArrowUp:
		return moveFocus(st, -1)
	default:
		return st, nil
	}
}

// chordMatches requires the key and all four modifier flags to equal the
// configured chord exactly.
func chordMatches(key KeyPressed, chord config.ShortcutConfig) bool {
	return key.Key == chord.Key &&
		key.Meta == chord.MetaKey &&
		key.Alt == chord.AltKey &&
		key.Ctrl == chord.CtrlKey &&
		key.Shift == chord.ShiftKey
}

func (m Machine) open(st State) (State, []Command) {
	st.Query = ""
	st.Results = nil
	st.Focus = FocusInput
	cmds := []Command{SetFocus{Target: FocusInput}}

	switch {
	case !st.IndexRequested:
		st.IndexRequested = true
		st.Phase = PhaseLoading
		cmds = append(cmds, Fetch{URL: m.cfg.Search.IndexURL})
	case st.LoadFailed:
		st.Phase = PhaseFailed
	case !st.IndexLoaded:
		st.Phase = PhaseLoading
	default:
		st.Phase = PhaseEmpty
	}
	return st, cmds
}

func (m Machine) close(st State) (State, []Command) {
	st.Phase = PhaseClosed
	st.Query = ""
	st.Results = nil
	st.Focus = FocusNone
	return st, []Command{Blur{}}
}

// evaluate re-derives the open phase from the current query text. Focus
// returns to the input: a changed query invalidates any result focus.
func (m Machine) evaluate(st State) State {
	st.Focus = FocusInput

	if st.LoadFailed {
		st.Phase = PhaseFailed
		st.Results = nil
		return st
	}
	if !st.IndexLoaded {
		st.Phase = PhaseLoading
		st.Results = nil
		return st
	}

	trimmed := strings.TrimSpace(st.Query)
	if trimmed == "" {
		st.Phase = PhaseEmpty
		st.Results = nil
		return st
	}
	if utf8.RuneCountInString(trimmed) < m.cfg.Search.MinChars {
		st.Phase = PhaseTooShort
		st.Results = nil
		return st
	}

	tokens := search.Tokenize(trimmed)
	results := search.Rank(st.Docs, tokens, search.Options{
		Fields: search.Fields{
			Title:       m.cfg.Search.Fields.Title,
			Description: m.cfg.Search.Fields.Description,
			Section:     m.cfg.Search.Fields.Section,
		},
		MaxResults: m.cfg.Search.MaxResults,
	})

	if len(results) == 0 {
		st.Phase = PhaseNoResults
		st.Results = nil
		return st
	}
	st.Phase = PhaseResults
	st.Results = results
	return st
}

// moveFocus walks the input/result focus chain one step. There is no
// wraparound: ArrowDown on the last result and ArrowUp on the input are
// no-ops. Arrows only mean anything while results are showing.
func moveFocus(st State, delta int) (State, []Command) {
	if st.Phase != PhaseResults || len(st.Results) == 0 {
		return st, nil
	}

	switch {
	case delta > 0: // ArrowDown
		switch {
		case st.Focus == FocusInput:
			st.Focus = 0
		case st.Focus >= 0 && st.Focus < len(st.Results)-1:
			st.Focus++
		default:
			return st, nil
		}
	default: // ArrowUp
		switch {
		case st.Focus == 0:
			st.Focus = FocusInput
		case st.Focus > 0:
			st.Focus--
		default:
			return st, nil
		}
	}

	return st, []Command{SetFocus{Target: st.Focus}}
}
