package widget

// Status messages are part of the observable contract; snapshot tests
// depend on the exact text.
const (
	MsgLoading   = "Loading..."
	MsgTooShort  = "Keep typing..."
	MsgNoResults = "No results found."
	MsgFailed    = "Error loading search index..."
)

// fallbackTitle labels index records without a title, such as micro posts.
const fallbackTitle = "Micro post"

// Entry is one renderable result row.
type Entry struct {
	Permalink string
	Title     string
	Section   string
	Date      string
}

// Render projects the state into either an ordered entry list or a single
// status message, never both. A closed or empty-query widget yields
// neither. The rendering layer materializes this projection verbatim; it
// is not a second source of truth for navigation order.
func Render(st State) ([]Entry, string) {
	switch st.Phase {
	case PhaseLoading:
		return nil, MsgLoading
	case PhaseTooShort:
		return nil, MsgTooShort
	case PhaseNoResults:
		return nil, MsgNoResults
	case PhaseFailed:
		return nil, MsgFailed
	case PhaseResults:
		entries := make([]Entry, len(st.Results))
		for i, doc := range st.Results {
			title := doc.Title
			if title == "" {
				title = fallbackTitle
			}
			entries[i] = Entry{
				Permalink: doc.Permalink,
				Title:     title,
				Section:   doc.Section,
				Date:      doc.Date,
			}
		}
		return entries, ""
	default:
		return nil, ""
	}
}
