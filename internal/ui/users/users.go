package users

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"admintable/internal/client"
	"admintable/internal/members"
	"admintable/internal/ui/common"
	"admintable/internal/ui/search"
	"admintable/internal/ui/uiconst"
)

// Notices shown in the status bar.
const (
	LoadFailedNotice = "Failed to fetch user data, please try again later."
	NotFoundNotice   = "User doesn't exist"
)

type mode int

const (
	modeBrowse mode = iota
	modeEdit
	modeConfirm
	modeDetail
)

type membersLoadedMsg struct {
	records []members.Record
	err     error
}

// Options configures NewModel.
type Options struct {
	// Timeout bounds one fetch. Zero means no limit.
	Timeout time.Duration
	Logger  *zap.Logger
	KeyMap  *KeyMap
}

// Model is the members table: search bar, paged rows, pagination footer and
// the edit, confirm and detail overlays.
type Model struct {
	state   *members.State
	client  client.MembersClient
	log     *zap.Logger
	keys    KeyMap
	timeout time.Duration

	table   table.Model
	search  search.Model
	spinner spinner.Model
	status  common.StatusBar
	form    common.FormModel
	confirm common.ConfirmModel
	detail  common.DetailModel

	view     members.View
	mode     mode
	editID   members.ID
	pending  members.IDSet
	loading  bool
	notFound bool
	width    int
	height   int
}

// NewModel creates the members table over state. Records are fetched from mc
// when Init runs.
func NewModel(state *members.State, mc client.MembersClient, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	keys := DefaultKeyMap
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(uiconst.TableHeightDefault),
	)
	t.SetStyles(table.DefaultStyles())

	m := Model{
		state:   state,
		client:  mc,
		log:     opts.Logger.Named("ui"),
		keys:    keys,
		timeout: opts.Timeout,
		table:   t,
		search:  search.New(),
		spinner: s,
		status:  common.NewStatusBar(""),
		loading: true,
		width:   120,
		height:  30,
	}
	m.updateTableColumns()
	m.sync()
	return m
}

// Init starts the spinner and the first fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m Model) load() tea.Cmd {
	mc, timeout := m.client, m.timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		recs, err := mc.ListMembers(ctx)
		return membersLoadedMsg{records: recs, err: err}
	}
}

// CapturingInput reports whether keys are going to a text field or dialog,
// so global shortcuts such as q must not fire.
func (m Model) CapturingInput() bool {
	return m.search.Focused() || m.mode != modeBrowse
}

// KeyMap returns the bindings in use.
func (m Model) KeyMap() KeyMap { return m.keys }

// Snapshot returns the view last rendered.
func (m Model) Snapshot() members.View { return m.view }

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case membersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.state.LoadFailed(msg.err)
			m.sync()
			cmd := m.status.Flash(LoadFailedNotice, common.SeverityError, uiconst.ErrorNoticeDuration)
			return m, cmd
		}
		m.state.Load(msg.records)
		m.status.SetMessage("")
		cmd := m.syncTop()
		return m, cmd
	case search.QueryMsg:
		if !m.search.Current(msg) {
			return m, nil
		}
		m.state.Search(msg.Query)
		cmd := m.syncTop()
		return m, cmd
	case search.DoneMsg:
		if msg.Cleared {
			m.state.Search("")
			cmd := m.sync()
			return m, cmd
		}
		return m, nil
	case common.ClearStatusMsg:
		m.status.Clear(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(m.tableHeight())
		m.updateTableColumns()
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == modeEdit {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeEdit:
		return m.updateEdit(msg)
	case modeConfirm:
		return m.updateConfirm(msg)
	case modeDetail:
		switch msg.String() {
		case "esc", "enter", "backspace":
			m.mode = modeBrowse
		}
		return m, nil
	}

	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	if m.loading {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.ClearSearch):
		if m.view.Searching {
			m.search.Reset()
			m.state.Search("")
			cmd := m.sync()
			return m, cmd
		}
	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)
	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)
	case key.Matches(msg, m.keys.PrevPage):
		m.state.GoToPrevious()
		cmd := m.syncTop()
		return m, cmd
	case key.Matches(msg, m.keys.NextPage):
		m.state.GoToNext()
		cmd := m.syncTop()
		return m, cmd
	case key.Matches(msg, m.keys.FirstPage):
		m.state.GoToFirst()
		cmd := m.syncTop()
		return m, cmd
	case key.Matches(msg, m.keys.LastPage):
		m.state.GoToLast()
		cmd := m.syncTop()
		return m, cmd
	case key.Matches(msg, m.keys.JumpPage):
		i := int(msg.Runes[0] - '1')
		if i >= 0 && i < len(m.view.Pages) {
			m.state.GoToPage(m.view.Pages[i])
			cmd := m.syncTop()
			return m, cmd
		}
	case key.Matches(msg, m.keys.Toggle):
		if r, ok := m.current(); ok {
			m.state.ToggleSelect(r.ID, !r.Selected)
			cmd := m.sync()
			return m, cmd
		}
	case key.Matches(msg, m.keys.ToggleAll):
		m.state.ToggleSelectAllOnPage(!m.view.AllOnPageSelected)
		cmd := m.sync()
		return m, cmd
	case key.Matches(msg, m.keys.Detail):
		if r, ok := m.current(); ok {
			m.detail = common.NewDetail("User "+string(r.ID), []common.Field{
				{Name: "ID", Value: string(r.ID)},
				{Name: "Name", Value: r.Name},
				{Name: "Email", Value: r.Email},
				{Name: "Role", Value: r.Role},
				{Name: "Selected", Value: fmt.Sprintf("%t", r.Selected)},
			})
			m.mode = modeDetail
		}
	case key.Matches(msg, m.keys.Edit):
		if r, ok := m.current(); ok {
			m.editID = r.ID
			m.form = common.NewForm("Edit user "+string(r.ID),
				[]string{"Name", "Email", "Role"},
				[]string{r.Name, r.Email, r.Role})
			m.mode = modeEdit
			return m, m.form.Init()
		}
	case key.Matches(msg, m.keys.Delete):
		if r, ok := m.current(); ok {
			m.pending = members.NewIDSet(r.ID)
			m.confirm = common.NewConfirm(fmt.Sprintf("Delete %s?", r.Name))
			m.mode = modeConfirm
		}
	case key.Matches(msg, m.keys.DeleteSelected):
		ids := m.state.CheckedIDs()
		if len(ids) == 0 {
			cmd := m.status.Flash("No users selected", common.SeverityInfo, uiconst.InfoNoticeDuration)
			return m, cmd
		}
		m.pending = ids
		m.confirm = common.NewConfirm(fmt.Sprintf("Delete %s?", plural(len(ids), "selected user")))
		m.mode = modeConfirm
	case key.Matches(msg, m.keys.Bigger):
		m.state.SetPageSize(clampPageSize(m.view.PageSize + uiconst.PageSizeStep))
		cmd := m.syncTop()
		return m, cmd
	case key.Matches(msg, m.keys.Smaller):
		m.state.SetPageSize(clampPageSize(m.view.PageSize - uiconst.PageSizeStep))
		cmd := m.syncTop()
		return m, cmd
	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		m.status.SetMessage("Reloading users")
		return m, tea.Batch(m.spinner.Tick, m.load())
	case key.Matches(msg, m.keys.Refetch):
		m.client.Invalidate()
		m.loading = true
		m.status.SetMessage("Refetching users from " + m.client.Endpoint())
		return m, tea.Batch(m.spinner.Tick, m.load())
	}
	return m, nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	switch {
	case m.form.Cancelled():
		m.mode = modeBrowse
		return m, nil
	case m.form.Submitted():
		m.mode = modeBrowse
		v := m.form.Values()
		if !m.state.Edit(m.editID, members.Fields{Name: v[0], Email: v[1], Role: v[2]}) {
			cmd = tea.Batch(m.sync(), m.status.Flash(NotFoundNotice, common.SeverityError, uiconst.NotFoundNoticeDuration))
			return m, cmd
		}
		cmd = tea.Batch(m.sync(), m.status.Flash("Saved user "+string(m.editID), common.SeverityInfo, uiconst.InfoNoticeDuration))
		return m, cmd
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if !m.confirm.Done() {
		return m, cmd
	}
	m.mode = modeBrowse
	ids := m.pending
	m.pending = nil
	if !m.confirm.Confirmed() {
		return m, nil
	}
	n := m.state.DeleteRecords(ids)
	m.log.Debug("delete confirmed", zap.Int("requested", len(ids)), zap.Int("removed", n))
	cmd = tea.Batch(m.sync(), m.status.Flash("Deleted "+plural(n, "user"), common.SeverityInfo, uiconst.InfoNoticeDuration))
	return m, cmd
}

// current returns the record under the cursor.
func (m Model) current() (members.Record, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.view.Visible) {
		return members.Record{}, false
	}
	return m.view.Visible[c], true
}

// syncTop refreshes the rows and puts the cursor on the first one.
func (m *Model) syncTop() tea.Cmd {
	cmd := m.sync()
	m.table.SetCursor(0)
	return cmd
}

// sync copies the state's view into the table. It flashes the not-found
// notice when a search starts matching nothing.
func (m *Model) sync() tea.Cmd {
	m.view = m.state.Snapshot()
	rows := Rows(m.view.Visible)
	m.updateTableColumns()
	m.table.SetRows(rows)
	// SetCursor clamps against the rows, so it must follow SetRows.
	if c := m.table.Cursor(); len(rows) > 0 && (c < 0 || c >= len(rows)) {
		m.table.SetCursor(min(max(c, 0), len(rows)-1))
	}

	var cmd tea.Cmd
	if m.view.NotFound && !m.notFound {
		cmd = m.status.Flash(NotFoundNotice, common.SeverityError, uiconst.NotFoundNoticeDuration)
	}
	m.notFound = m.view.NotFound
	return cmd
}

func (m Model) tableHeight() int {
	h := m.height - uiconst.TableHeightOffset
	if h < uiconst.TableHeightMin {
		h = uiconst.TableHeightMin
	}
	return h
}

// updateTableColumns adjusts column widths based on the current width.
func (m *Model) updateTableColumns() {
	m.table.SetColumns(Columns(m.width, m.view.AllOnPageSelected))
}

// Columns returns the table columns for a terminal width. The name column
// takes the slack. The checkbox header is ticked when allSelected is set.
func Columns(width int, allSelected bool) []table.Column {
	checkW := uiconst.ColWidthCheckbox
	idW := uiconst.ColWidthID
	roleW := uiconst.ColWidthRole
	emailW := uiconst.ColWidthEmail
	nameW := width - checkW - idW - roleW - emailW - 10
	if nameW < uiconst.ColWidthName {
		nameW = uiconst.ColWidthName
	}
	return []table.Column{
		{Title: checkbox(allSelected), Width: checkW},
		{Title: "ID", Width: idW},
		{Title: "Name", Width: nameW},
		{Title: "Email", Width: emailW},
		{Title: "Role", Width: roleW},
	}
}

// Rows converts records to table rows in column order.
func Rows(records []members.Record) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{checkbox(r.Selected), string(r.ID), r.Name, r.Email, r.Role}
	}
	return rows
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// plural formats n with noun, adding an s unless n is 1.
func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func clampPageSize(n int) int {
	if n < 1 {
		return 1
	}
	if n > uiconst.PageSizeMax {
		return uiconst.PageSizeMax
	}
	return n
}

var _ tea.Model = (*Model)(nil)
