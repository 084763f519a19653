package members

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newLoaded(t *testing.T, n int) *State {
	t.Helper()
	s := New(Config{PageSize: 10, PagesToDisplay: 5}, nil)
	s.Load(makeRecords(n))
	return s
}

func visibleIDs(v View) []ID {
	ids := make([]ID, len(v.Visible))
	for i, r := range v.Visible {
		ids[i] = r.ID
	}
	return ids
}

func TestNewDefaults(t *testing.T) {
	s := New(Config{}, nil)
	v := s.Snapshot()
	assert.Equal(t, DefaultPageSize, v.PageSize)
	assert.Equal(t, 1, v.CurrentPage)
	assert.Equal(t, 0, v.LastPage)
	assert.Empty(t, v.Pages)
	assert.Empty(t, v.Visible)
	assert.False(t, v.NotFound)
	assert.False(t, v.OutOfRange)
}

func TestLoadClearsSelection(t *testing.T) {
	records := makeRecords(3)
	records[0].Selected = true
	s := New(Config{}, nil)
	s.Load(records)

	assert.Empty(t, s.CheckedIDs())
	v := s.Snapshot()
	assert.Equal(t, 3, v.Total)
	assert.Equal(t, 1, v.LastPage)
	assert.Equal(t, []int{1}, v.Pages)
}

func TestLoadFailed(t *testing.T) {
	s := newLoaded(t, 5)
	s.LoadFailed(errors.New("boom"))

	v := s.Snapshot()
	assert.Equal(t, "boom", v.Err)
	assert.Equal(t, 0, v.Total)
	assert.Empty(t, v.Visible)

	s.Load(makeRecords(2))
	assert.Empty(t, s.Snapshot().Err)
}

func TestProjectionMatchesFilter(t *testing.T) {
	records := []Record{
		{ID: "1", Name: "Aaron", Email: "aaron@x.com", Role: "member"},
		{ID: "2", Name: "Bea", Email: "bea@x.com", Role: "admin"},
		{ID: "3", Name: "Cal", Email: "cal@x.com", Role: "member"},
		{ID: "4", Name: "Dora", Email: "dora@x.com", Role: "admin"},
	}
	s := New(Config{PageSize: 10}, nil)
	s.Load(records)

	for _, term := range []string{"admin", "A", "x.com", "cal", "nothing"} {
		s.Search(term)
		v := s.Snapshot()
		assert.Equal(t, Filter(records, term), v.Visible, "term %q", term)
		assert.Equal(t, len(Filter(records, term)), v.Total)
	}
}

func TestSearchResetsPage(t *testing.T) {
	s := newLoaded(t, 30)
	s.GoToPage(3)
	require.Equal(t, 3, s.Snapshot().CurrentPage)

	s.Search("user 2")
	v := s.Snapshot()
	assert.Equal(t, 1, v.CurrentPage)
	// "user 2", "user 20".."user 29"
	assert.Equal(t, 11, v.Total)
	assert.Equal(t, 2, v.LastPage)

	s.GoToPage(2)
	s.Search("user 2")
	assert.Equal(t, 2, s.Snapshot().CurrentPage, "same term keeps the page")
}

func TestNotFoundThenClear(t *testing.T) {
	s := newLoaded(t, 3)

	s.Search("zzz")
	v := s.Snapshot()
	assert.True(t, v.NotFound)
	assert.True(t, v.Searching)
	assert.Empty(t, v.Visible)
	assert.Equal(t, 0, v.Total)
	assert.False(t, v.OutOfRange)

	s.Search("")
	v = s.Snapshot()
	assert.False(t, v.NotFound)
	assert.False(t, v.Searching)
	assert.Len(t, v.Visible, 3)
}

func TestGoToPageOutOfRange(t *testing.T) {
	s := newLoaded(t, 15)

	s.GoToPage(7)
	v := s.Snapshot()
	assert.Empty(t, v.Visible)
	assert.True(t, v.OutOfRange)
	assert.False(t, v.NotFound)

	s.GoToPage(-3)
	v = s.Snapshot()
	assert.Equal(t, 1, v.CurrentPage)
	assert.Len(t, v.Visible, 10)
}

func TestNavigation(t *testing.T) {
	s := newLoaded(t, 25)

	s.GoToPrevious()
	assert.Equal(t, 1, s.Snapshot().CurrentPage)

	s.GoToNext()
	s.GoToNext()
	assert.Equal(t, 3, s.Snapshot().CurrentPage)
	s.GoToNext()
	assert.Equal(t, 3, s.Snapshot().CurrentPage)

	s.GoToFirst()
	assert.Equal(t, 1, s.Snapshot().CurrentPage)

	s.GoToLast()
	v := s.Snapshot()
	assert.Equal(t, 3, v.CurrentPage)
	assert.Len(t, v.Visible, 5)

	s.GoToPrevious()
	assert.Equal(t, 2, s.Snapshot().CurrentPage)
}

func TestGoToLastWhenEmpty(t *testing.T) {
	s := New(Config{}, nil)
	s.GoToLast()
	assert.Equal(t, 1, s.Snapshot().CurrentPage)
}

func TestSelectionSurvivesNavigation(t *testing.T) {
	s := newLoaded(t, 25)
	require.True(t, s.ToggleSelect("3", true))

	s.GoToPage(2)
	s.GoToPage(1)

	v := s.Snapshot()
	assert.True(t, v.Visible[2].Selected)
	assert.Equal(t, 1, v.Selected)
	assert.Equal(t, NewIDSet("3"), s.CheckedIDs())
}

func TestSelectionSurvivesSearch(t *testing.T) {
	s := newLoaded(t, 25)
	s.ToggleSelect("12", true)
	s.Search("user 1")
	s.Search("")
	assert.Equal(t, NewIDSet("12"), s.CheckedIDs())
}

func TestToggleSelectUnknown(t *testing.T) {
	s := newLoaded(t, 2)
	assert.False(t, s.ToggleSelect("99", true))
	assert.Empty(t, s.CheckedIDs())
}

func TestSelectAllOnPageIsPageScoped(t *testing.T) {
	s := newLoaded(t, 25)
	s.GoToPage(2)
	s.ToggleSelectAllOnPage(true)

	v := s.Snapshot()
	assert.True(t, v.AllOnPageSelected)
	assert.Equal(t, 10, v.Selected)
	ids := s.CheckedIDs()
	assert.True(t, ids.Has("11"))
	assert.True(t, ids.Has("20"))
	assert.False(t, ids.Has("10"))
	assert.False(t, ids.Has("21"))

	s.GoToPage(1)
	assert.False(t, s.Snapshot().AllOnPageSelected)

	s.GoToPage(2)
	s.ToggleSelectAllOnPage(false)
	assert.Empty(t, s.CheckedIDs())
}

func TestSelectAllOnPageWithinSearch(t *testing.T) {
	s := newLoaded(t, 25)
	s.Search("user 2")
	s.ToggleSelectAllOnPage(true)
	// the whole projection fits on one page: "2", "20".."25"
	ids := s.CheckedIDs()
	assert.Len(t, ids, 7)
	assert.True(t, ids.Has("2"))
	assert.False(t, ids.Has("1"))
}

func TestDeleteLastRecordOnLastPageStepsBack(t *testing.T) {
	s := newLoaded(t, 11)
	s.GoToPage(2)
	require.Equal(t, []ID{"11"}, visibleIDs(s.Snapshot()))

	assert.Equal(t, 1, s.DeleteOne("11"))

	v := s.Snapshot()
	assert.Equal(t, 1, v.CurrentPage)
	assert.Equal(t, 1, v.LastPage)
	assert.Equal(t, visibleIDs(View{Visible: makeRecords(10)}), visibleIDs(v))
}

func TestDeleteFromEarlierPageKeepsPage(t *testing.T) {
	s := newLoaded(t, 30)
	s.GoToPage(2)
	ids := make(IDSet)
	for _, r := range s.Snapshot().Visible {
		ids[r.ID] = struct{}{}
	}
	assert.Equal(t, 10, s.DeleteRecords(ids))

	v := s.Snapshot()
	assert.Equal(t, 2, v.CurrentPage)
	assert.Equal(t, 2, v.LastPage)
	assert.Equal(t, ID("21"), v.Visible[0].ID)
}

func TestDeleteShrinksByMoreThanOnePage(t *testing.T) {
	s := newLoaded(t, 35)
	s.GoToLast()
	require.Equal(t, 4, s.Snapshot().CurrentPage)

	all := make(IDSet)
	for _, r := range makeRecords(35)[5:] {
		all[r.ID] = struct{}{}
	}
	s.DeleteRecords(all)

	v := s.Snapshot()
	assert.Equal(t, 1, v.CurrentPage)
	assert.Len(t, v.Visible, 5)
}

func TestDeleteSelected(t *testing.T) {
	s := newLoaded(t, 5)
	s.ToggleSelect("2", true)
	s.ToggleSelect("4", true)

	assert.Equal(t, 2, s.DeleteSelected())

	v := s.Snapshot()
	assert.Equal(t, 3, v.Total)
	assert.Empty(t, s.CheckedIDs())
	assert.Equal(t, []ID{"1", "3", "5"}, visibleIDs(v))
}

func TestDeleteKeepsOtherSelections(t *testing.T) {
	s := newLoaded(t, 5)
	s.ToggleSelect("2", true)
	s.DeleteOne("3")
	assert.Equal(t, NewIDSet("2"), s.CheckedIDs())
}

func TestDeleteWithinSearch(t *testing.T) {
	s := newLoaded(t, 12)
	s.Search("user 1")
	// "1", "10", "11", "12"
	require.Equal(t, 4, s.Snapshot().Total)

	s.DeleteOne("10")
	v := s.Snapshot()
	assert.Equal(t, 3, v.Total)
	assert.Equal(t, []ID{"1", "11", "12"}, visibleIDs(v))
	assert.Len(t, s.Records(), 11)
}

func TestDeleteEverythingInSearchIsNotFound(t *testing.T) {
	s := newLoaded(t, 12)
	s.Search("user 12")
	s.DeleteOne("12")

	v := s.Snapshot()
	assert.True(t, v.NotFound)
	assert.Equal(t, 1, v.CurrentPage)
}

func TestDeleteNothing(t *testing.T) {
	s := newLoaded(t, 3)
	assert.Equal(t, 0, s.DeleteSelected())
	assert.Equal(t, 0, s.DeleteOne("404"))
	assert.Len(t, s.Records(), 3)
}

func TestEdit(t *testing.T) {
	s := newLoaded(t, 3)
	ok := s.Edit("2", Fields{Name: "Zed", Email: "zed@example.com", Role: "admin"})
	require.True(t, ok)

	got := s.Records()[1]
	assert.Equal(t, Record{ID: "2", Name: "Zed", Email: "zed@example.com", Role: "admin"}, got)
}

func TestEditIdentityIsNoChange(t *testing.T) {
	s := newLoaded(t, 3)
	s.ToggleSelect("2", true)
	before := s.Records()

	require.True(t, s.Edit("2", before[1].Fields()))
	assert.Equal(t, before, s.Records())
}

func TestEditMissingIsNoop(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := New(Config{}, zap.New(core))
	s.Load(makeRecords(2))
	before := s.Records()

	assert.False(t, s.Edit("nope", Fields{Name: "x"}))
	assert.Equal(t, before, s.Records())
	assert.Equal(t, 1, logs.FilterMessage("edit target missing").Len())
}

func TestEditWithinSearchUpdatesProjection(t *testing.T) {
	s := newLoaded(t, 3)
	s.Search("user 2")
	s.Edit("2", Fields{Name: "User 2 Renamed", Email: "user2@example.com", Role: "member"})
	v := s.Snapshot()
	require.Len(t, v.Visible, 1)
	assert.Equal(t, "User 2 Renamed", v.Visible[0].Name)

	s.Edit("2", Fields{Name: "Someone", Email: "someone@example.com", Role: "member"})
	assert.True(t, s.Snapshot().NotFound)
	assert.Equal(t, "Someone", s.Records()[1].Name)
}

func TestSetPageSizeKeepsFirstVisibleRecord(t *testing.T) {
	s := newLoaded(t, 50)
	s.GoToPage(3) // records 21..30

	s.SetPageSize(5)
	v := s.Snapshot()
	assert.Equal(t, 5, v.CurrentPage)
	assert.Equal(t, ID("21"), v.Visible[0].ID)
	assert.Equal(t, 10, v.LastPage)

	s.SetPageSize(0)
	assert.Equal(t, 5, s.Snapshot().PageSize)

	s.SetPageSize(20)
	v = s.Snapshot()
	assert.Equal(t, 2, v.CurrentPage)
	assert.Equal(t, ID("21"), v.Visible[0].ID)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newLoaded(t, 3)
	v := s.Snapshot()
	v.Visible[0].Name = "mutated"
	assert.Equal(t, "User 1", s.Snapshot().Visible[0].Name)
}

func TestSnapshotPagesWindow(t *testing.T) {
	s := newLoaded(t, 120)
	s.GoToPage(6)
	assert.Equal(t, []int{4, 5, 6, 7, 8}, s.Snapshot().Pages)
}
