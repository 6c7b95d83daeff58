package fastsearch

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/rgechols/fastsearch/internal/config"
	"github.com/rgechols/fastsearch/internal/widget"
)

type keyMap struct {
	toggle   key.Binding
	escape   key.Binding
	confirm  key.Binding
	up       key.Binding
	down     key.Binding
	copyLink key.Binding
	quit     key.Binding
}

func newKeyMap(chord config.ShortcutConfig) *keyMap {
	toggleKey := chordKeyString(chord)
	return &keyMap{
		toggle: key.NewBinding(
			key.WithKeys(toggleKey),
			key.WithHelp(toggleKey, "toggle search"),
		),
		escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open top result"),
		),
		up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous result"),
		),
		down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next result"),
		),
		copyLink: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy link"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// chordKeyString renders the configured chord as a bubbletea key string.
// Terminals have no distinct meta modifier, so a meta chord arrives as alt.
func chordKeyString(chord config.ShortcutConfig) string {
	name := chord.Key
	if chord.CtrlKey {
		name = "ctrl+" + name
	}
	if chord.AltKey || chord.MetaKey {
		name = "alt+" + name
	}
	return name
}

// chordEvent forwards the configured chord as the canonical key event the
// state machine matches against.
func chordEvent(chord config.ShortcutConfig) widget.KeyPressed {
	return widget.KeyPressed{
		Key:   chord.Key,
		Meta:  chord.MetaKey,
		Alt:   chord.AltKey,
		Ctrl:  chord.CtrlKey,
		Shift: chord.ShiftKey,
	}
}
