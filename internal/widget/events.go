package widget

import "github.com/rgechols/fastsearch/internal/index"

// Key names follow the platform's key event vocabulary. Platform adapters
// translate their native events into these names.
const (
	KeyEscape    = "Escape"
	KeyEnter     = "Enter"
	KeyArrowUp   = "ArrowUp"
	KeyArrowDown = "ArrowDown"
)

// Event is an input to the state machine. The concrete types below are the
// only implementations.
type Event interface {
	isEvent()
}

// KeyPressed is a raw key chord: the primary key and the exact modifier
// flags held with it.
type KeyPressed struct {
	Key   string
	Meta  bool
	Alt   bool
	Ctrl  bool
	Shift bool
}

// InputChanged carries the full current text of the query input.
type InputChanged struct {
	Text string
}

// IndexReady delivers the normalized document snapshot after a successful
// load.
type IndexReady struct {
	Docs []index.Document
}

// IndexFailed reports that the index load failed for good; the widget
// never retries on its own.
type IndexFailed struct {
	Err error
}

func (KeyPressed) isEvent()   {}
func (InputChanged) isEvent() {}
func (IndexReady) isEvent()   {}
func (IndexFailed) isEvent()  {}

// Command is a side effect requested by a transition, to be executed by
// the platform binding. The machine itself never performs effects.
type Command interface {
	isCommand()
}

// Fetch asks the platform to load the document index from URL. Emitted at
// most once per session, on first activation.
type Fetch struct {
	URL string
}

// SetFocus asks the platform to move focus to FocusInput or to the result
// at the given non-negative position.
type SetFocus struct {
	Target int
}

// Blur asks the platform to release focus entirely.
type Blur struct{}

// Navigate asks the platform to leave the page for URL.
type Navigate struct {
	URL string
}

func (Fetch) isCommand()    {}
func (SetFocus) isCommand() {}
func (Blur) isCommand()     {}
func (Navigate) isCommand() {}
