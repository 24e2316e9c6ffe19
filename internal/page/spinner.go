package page

// Indicator is shown once when a request starts and hidden once when it settles.
type Indicator interface {
	Show()
	Hide()
}

// Spinner drives the loading indicator. Overlapping requests share it: it stays
// visible until the last outstanding request settles.
type Spinner struct {
	doc     *Document
	pending int
}

func NewSpinner(doc *Document) *Spinner {
	return &Spinner{doc: doc}
}

func (s *Spinner) Show() {
	s.pending++
	if s.pending == 1 {
		_ = s.doc.SetVisible(LoadingSpinner, true)
	}
}

func (s *Spinner) Hide() {
	if s.pending == 0 {
		return
	}
	s.pending--
	if s.pending == 0 {
		_ = s.doc.SetVisible(LoadingSpinner, false)
	}
}

func (s *Spinner) Pending() int {
	return s.pending
}
