package members

import (
	"sync"

	"go.uber.org/zap"
)

// Defaults used when a Config field is left at zero.
const (
	DefaultPageSize       = 10
	DefaultPagesToDisplay = 5
)

// Config sizes the pagination of a State.
type Config struct {
	PageSize       int
	PagesToDisplay int
}

// View is what the presentation layer renders. It is a copy; mutating it
// does not affect the State.
type View struct {
	Visible     []Record
	CurrentPage int
	// Pages is the navigable page window.
	Pages    []int
	LastPage int
	// Total is the number of records in the active source (projection or base).
	Total     int
	PageSize  int
	Term      string
	Searching bool
	// NotFound is set when a non-empty search matches nothing.
	NotFound bool
	// OutOfRange is set when the current page lies past the last page of a
	// non-empty source.
	OutOfRange        bool
	Err               string
	Selected          int
	AllOnPageSelected bool
}

// State owns the member collection and everything derived from it: the
// search projection, the current page and the visible slice. Every public
// method holds the lock for its whole run and leaves the derived state
// consistent with the base collection.
type State struct {
	mu  sync.Mutex
	log *zap.Logger

	base       []Record
	term       string
	projection []Record

	currentPage    int
	pageSize       int
	pagesToDisplay int
	lastPage       int
	visible        []Record

	loadErr string
}

// New returns an empty State. A nil logger discards output.
func New(cfg Config, log *zap.Logger) *State {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.PagesToDisplay <= 0 {
		cfg.PagesToDisplay = DefaultPagesToDisplay
	}
	s := &State{
		log:            log,
		currentPage:    1,
		pageSize:       cfg.PageSize,
		pagesToDisplay: cfg.PagesToDisplay,
	}
	s.recompute()
	return s
}

// Load replaces the collection. Selection flags are cleared, the load error
// is reset and the view returns to page 1. An active search term is kept.
func (s *State) Load(records []Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.base = SelectAll(records, false)
	s.loadErr = ""
	s.currentPage = 1
	s.recompute()
	s.log.Info("members loaded", zap.Int("count", len(s.base)))
}

// LoadFailed records a failed fetch. The collection is left empty.
func (s *State) LoadFailed(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.base = nil
	s.currentPage = 1
	if err != nil {
		s.loadErr = err.Error()
	} else {
		s.loadErr = "unknown error"
	}
	s.recompute()
	s.log.Warn("members load failed", zap.String("error", s.loadErr))
}

// Search sets the search term. A changed term moves the view to page 1.
func (s *State) Search(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if term != s.term {
		s.currentPage = 1
	}
	s.term = term
	s.recompute()
}

// GoToPage moves to page n. Pages below 1 are treated as 1; pages past the
// end give an empty slice.
func (s *State) GoToPage(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goTo(n)
}

// GoToPrevious moves back one page unless already on the first.
func (s *State) GoToPrevious() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentPage > 1 {
		s.goTo(s.currentPage - 1)
	}
}

// GoToNext moves forward one page unless already on the last.
func (s *State) GoToNext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentPage < s.lastPage {
		s.goTo(s.currentPage + 1)
	}
}

// GoToFirst moves to page 1.
func (s *State) GoToFirst() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goTo(1)
}

// GoToLast moves to the last page, or page 1 when there are no records.
func (s *State) GoToLast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goTo(s.lastPage)
}

// SetPageSize changes the page size and keeps the first visible record on
// screen. Non-positive sizes are ignored.
func (s *State) SetPageSize(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 || n == s.pageSize {
		return
	}
	first, _ := PageIndices(s.currentPage, s.pageSize)
	s.pageSize = n
	s.currentPage = first/n + 1
	s.recompute()
}

// Edit replaces the editable fields of the record with the given id. A
// missing id is a no-op and reports false; it is not an error.
func (s *State) Edit(id ID, f Fields) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.log.Debug("edit target missing", zap.String("id", string(id)))
		return false
	}
	prevLast := s.lastPage
	s.base[i].Name = f.Name
	s.base[i].Email = f.Email
	s.base[i].Role = f.Role
	s.recompute()
	// An edit can drop the record out of an active search.
	s.stepBackIfEmptied(prevLast)
	return true
}

// DeleteOne removes a single record.
func (s *State) DeleteOne(id ID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteRecords(NewIDSet(id))
}

// DeleteSelected removes every selected record, on any page.
func (s *State) DeleteSelected() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteRecords(CheckedIDs(s.base))
}

// DeleteRecords removes the records whose ids are in ids and returns how many
// were removed. If the current page was the last one and no longer exists,
// the view steps back; deleting from an earlier page never moves the view.
func (s *State) DeleteRecords(ids IDSet) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteRecords(ids)
}

func (s *State) deleteRecords(ids IDSet) int {
	if len(ids) == 0 {
		return 0
	}
	prevLast := s.lastPage
	kept := make([]Record, 0, len(s.base))
	for _, r := range s.base {
		if !ids.Has(r.ID) {
			kept = append(kept, r)
		}
	}
	removed := len(s.base) - len(kept)
	s.base = kept
	s.recompute()
	s.stepBackIfEmptied(prevLast)
	s.log.Debug("members deleted", zap.Int("removed", removed), zap.Int("remaining", len(s.base)))
	return removed
}

// ToggleSelect sets the selection flag of one record. It reports false if the
// id is unknown.
func (s *State) ToggleSelect(id ID, checked bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.base[i] = SetSelected(s.base[i], checked)
	s.recompute()
	return true
}

// ToggleSelectAllOnPage sets the selection flag of every record on the
// current page. Records on other pages are left alone.
func (s *State) ToggleSelectAllOnPage(checked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make(map[ID]Record, len(s.visible))
	for _, r := range SelectAll(s.visible, checked) {
		updated[r.ID] = r
	}
	for i, r := range s.base {
		if u, ok := updated[r.ID]; ok {
			s.base[i].Selected = u.Selected
		}
	}
	s.recompute()
}

// CheckedIDs returns the selected ids across the whole collection, so a
// selection survives paging and searching.
func (s *State) CheckedIDs() IDSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CheckedIDs(s.base)
}

// Records returns a copy of the whole collection.
func (s *State) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.base))
	copy(out, s.base)
	return out
}

// Snapshot returns the current presentation view.
func (s *State) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	visible := make([]Record, len(s.visible))
	copy(visible, s.visible)
	allSelected := len(visible) > 0
	for _, r := range visible {
		if !r.Selected {
			allSelected = false
			break
		}
	}
	return View{
		Visible:           visible,
		CurrentPage:       s.currentPage,
		Pages:             PageWindow(s.currentPage, s.lastPage, s.pagesToDisplay),
		LastPage:          s.lastPage,
		Total:             len(s.source()),
		PageSize:          s.pageSize,
		Term:              s.term,
		Searching:         s.term != "",
		NotFound:          s.notFound(),
		OutOfRange:        s.lastPage > 0 && s.currentPage > s.lastPage,
		Err:               s.loadErr,
		Selected:          len(CheckedIDs(s.base)),
		AllOnPageSelected: allSelected,
	}
}

// goTo must be called with the lock held.
func (s *State) goTo(n int) {
	if n < 1 {
		n = 1
	}
	s.currentPage = n
	s.visible = Slice(s.source(), s.currentPage, s.pageSize)
}

// stepBackIfEmptied moves to the new last page when the current page was the
// last one before a removal and has since disappeared.
func (s *State) stepBackIfEmptied(prevLast int) {
	if s.currentPage != prevLast || s.currentPage <= s.lastPage || s.notFound() {
		return
	}
	target := s.currentPage - 1
	if s.lastPage < target {
		target = s.lastPage
	}
	s.goTo(target)
}

// recompute rebuilds projection, page count and visible slice from base.
func (s *State) recompute() {
	if s.term != "" {
		s.projection = Filter(s.base, s.term)
	} else {
		s.projection = nil
	}
	src := s.source()
	s.lastPage = TotalPages(len(src), s.pageSize)
	s.visible = Slice(src, s.currentPage, s.pageSize)
}

func (s *State) source() []Record {
	if s.term != "" {
		return s.projection
	}
	return s.base
}

func (s *State) notFound() bool {
	return s.term != "" && len(s.projection) == 0
}

func (s *State) indexOf(id ID) int {
	for i, r := range s.base {
		if r.ID == id {
			return i
		}
	}
	return -1
}
