package docgen

// View is the screen a document session is showing.
type View string

const (
	ViewOptions  View = "options"
	ViewDocument View = "document"
)

// Session is one pass through the document screens for a single
// order and document type. The server rebuilds it per request from
// the order snapshot and any saved markup; it carries no storage
// handles of its own. View transitions that stay inside one screen
// pass (BackToOptions, Regenerate) are driven by the client against
// its local copy of the session, so no HTTP route maps to them.
type Session struct {
	Doc     DocType       `json:"doc_type"`
	View    View          `json:"view"`
	Data    Data          `json:"-"`
	Options RenderOptions `json:"options"`

	// Reconstructed is set when the session opened from saved markup.
	Reconstructed *State `json:"reconstructed,omitempty"`

	// HTML is the saved markup on open, or the freshly generated
	// document after Generate.
	HTML string `json:"html,omitempty"`
}

// Open starts a session. With saved markup the session opens on the
// document view with its state reconstructed from the markup;
// otherwise it opens on the options form with defaults.
func Open(doc DocType, data Data, savedHTML string) (*Session, error) {
	if !doc.Valid() {
		return nil, ErrUnknownDocType
	}
	s := &Session{
		Doc:     doc,
		Data:    data,
		Options: DefaultOptions(doc, data.Order.AdditionalCostLabel, data.Order.ExchangeRate),
	}
	if savedHTML == "" {
		s.View = ViewOptions
		return s, nil
	}
	st, err := Reconcile(doc, savedHTML, data.Order.AdditionalCostLabel)
	if err != nil {
		return nil, err
	}
	s.View = ViewDocument
	s.HTML = savedHTML
	s.Reconstructed = st
	s.Options.Columns = st.Columns
	return s, nil
}

// Generate renders a fresh document from the given options and moves
// the session to the document view. Captured edits are discarded;
// the render starts over from the order snapshot.
func (s *Session) Generate(opts RenderOptions) (string, error) {
	html, err := Render(s.Doc, s.Data, opts)
	if err != nil {
		return "", err
	}
	s.Options = opts
	s.View = ViewDocument
	s.HTML = html
	return html, nil
}

// BackToOptions returns to the options form keeping the current
// column configuration, so a generate-tweak-generate loop does not
// lose the operator's column choices.
func (s *Session) BackToOptions() {
	s.View = ViewOptions
}

// Regenerate discards any configuration reconstructed from saved
// markup and resets the options form to defaults.
func (s *Session) Regenerate() {
	s.Reconstructed = nil
	s.HTML = ""
	s.Options = DefaultOptions(s.Doc, s.Data.Order.AdditionalCostLabel, s.Data.Order.ExchangeRate)
	s.View = ViewOptions
}
