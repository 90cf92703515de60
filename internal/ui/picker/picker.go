// Package picker implements the interactive branch picker.
//
// The picker is a single-screen Bubble Tea model: a query input above a
// fuzzy-filtered branch list. Every query change triggers a full
// re-filter through the match package; no state is carried between
// filtering passes. The picker only gathers a selection — the git
// operation runs after the TUI has exited.
package picker

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/gb/internal/match"
)

const defaultMaxVisible = 10

// Action is the operation to run on the selected branch.
type Action int

const (
	// ActionSwitch switches to (or creates) the selected branch.
	ActionSwitch Action = iota
	// ActionPull pulls the selected branch from the remote.
	ActionPull
	// ActionPush pushes the selected branch to the remote.
	ActionPush
	// ActionFetch updates remote-tracking branches.
	ActionFetch
)

// Keymap binds picker action keys. Zero-value entries disable the
// binding.
type Keymap struct {
	Pull  string
	Push  string
	Fetch string
	Copy  string
}

// Options configures a picker run.
type Options struct {
	Title       string
	Candidates  []match.Candidate
	Keymap      Keymap
	AllowCreate bool // offer "+ Create" when the query matches nothing exactly
}

// Result is the picker outcome.
type Result struct {
	Branch    string
	Remote    bool // selection is a remote-tracking branch
	Create    bool // create a new branch named Branch
	Action    Action
	Cancelled bool
}

// state tracks where the picker is in its lifecycle.
type state int

const (
	stateIdle    state = iota // no query typed yet
	stateEditing              // query active, list filtered
	stateClosed               // confirmed or cancelled
)

type model struct {
	opts    Options
	input   textinput.Model
	query   string
	matches []match.Match
	cursor  int
	state   state
	status  string
	result  Result
	width   int
	height  int
}

func newModel(opts Options) *model {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.CharLimit = 128
	ti.SetWidth(40)
	ti.Focus()

	tiStyles := ti.Styles()
	tiStyles.Cursor.Shape = tea.CursorBar
	tiStyles.Cursor.Blink = true
	ti.SetStyles(tiStyles)

	m := &model{
		opts:  opts,
		input: ti,
	}
	m.applyFilter()
	return m
}

// Run opens the picker and blocks until a selection is made or the
// picker is cancelled. The TUI renders to stderr so stdout remains
// available for piping.
func Run(opts Options) (Result, error) {
	profile := colorprofile.Detect(os.Stderr, os.Environ())

	p := tea.NewProgram(newModel(opts),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	return finalModel.(*model).result, nil
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "ctrl+c":
		return m.cancel()
	case "esc":
		// Clear the query first; cancel only when there is nothing to
		// clear.
		if m.input.Value() != "" {
			m.input.SetValue("")
			m.refilter()
			return m, nil
		}
		return m.cancel()
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < m.view().rowCount()-1 {
			m.cursor++
		}
		return m, nil
	case "home", "pgup":
		m.cursor = 0
		return m, nil
	case "end", "pgdown":
		m.cursor = max(0, m.view().rowCount()-1)
		return m, nil
	case "enter":
		return m.confirm(ActionSwitch)
	}

	// Configured action keys.
	switch msg.String() {
	case m.opts.Keymap.Pull:
		return m.confirm(ActionPull)
	case m.opts.Keymap.Push:
		return m.confirm(ActionPush)
	case m.opts.Keymap.Fetch:
		m.result = Result{Action: ActionFetch}
		m.state = stateClosed
		return m, tea.Quit
	case m.opts.Keymap.Copy:
		m.copySelection()
		return m, nil
	}

	// Everything else edits the query.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.query {
		m.refilter()
	}
	return m, cmd
}

// cancel closes the picker without a selection.
func (m *model) cancel() (tea.Model, tea.Cmd) {
	m.result = Result{Cancelled: true}
	m.state = stateClosed
	return m, tea.Quit
}

// confirm closes the picker with the current selection and action.
// The create row only supports switching.
func (m *model) confirm(action Action) (tea.Model, tea.Cmd) {
	name, remote, create, ok := m.selection()
	if !ok {
		return m, nil
	}
	if create && action != ActionSwitch {
		return m, nil
	}

	m.result = Result{
		Branch: name,
		Remote: remote,
		Create: create,
		Action: action,
	}
	m.state = stateClosed
	return m, tea.Quit
}

// copySelection copies the selected branch name to the system clipboard.
func (m *model) copySelection() {
	name, _, create, ok := m.selection()
	if !ok || create {
		return
	}
	if err := clipboard.WriteAll(name); err != nil {
		m.status = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("copied %q", name)
}

// selection resolves the cursor to a branch name. ok is false when the
// list is empty.
func (m *model) selection() (name string, remote, create, ok bool) {
	v := m.view()
	if v.rowCount() == 0 || m.cursor >= v.rowCount() {
		return "", false, false, false
	}

	if v.ShowCreate && m.cursor == 0 {
		return m.query, false, true, true
	}

	idx := m.cursor
	if v.ShowCreate {
		idx--
	}
	c := m.matches[idx].Candidate
	return c.Name, c.Remote, false, true
}

// refilter re-runs the matcher after a query change and updates the
// editing state.
func (m *model) refilter() {
	m.query = m.input.Value()
	m.applyFilter()

	if m.state != stateClosed {
		if m.query == "" {
			m.state = stateIdle
		} else {
			m.state = stateEditing
		}
	}
}

func (m *model) applyFilter() {
	m.matches = match.Filter(m.opts.Candidates, m.query)

	if total := m.view().rowCount(); m.cursor >= total {
		m.cursor = max(0, total-1)
	}
}

// showCreate reports whether the "+ Create" row is shown: only with a
// non-empty query that matches no candidate exactly (case-insensitive).
func (m *model) showCreate() bool {
	if !m.opts.AllowCreate || m.query == "" {
		return false
	}
	query := strings.ToLower(m.query)
	for _, c := range m.opts.Candidates {
		if strings.ToLower(c.Name) == query {
			return false
		}
	}
	return true
}

func (m *model) view() listView {
	return listView{
		Matches:    m.matches,
		Query:      m.query,
		Cursor:     m.cursor,
		ShowCreate: m.showCreate(),
		MaxVisible: defaultMaxVisible,
	}
}

func (m *model) View() tea.View {
	if m.state == stateClosed {
		return tea.NewView("")
	}

	var b strings.Builder

	if m.opts.Title != "" {
		b.WriteString(TitleStyle().Render(m.opts.Title))
		b.WriteString("\n\n")
	}

	b.WriteString(FilterLabelStyle().Render("Branch: ") + m.input.View())
	b.WriteString("\n\n")

	b.WriteString(renderList(m.view()))

	if m.status != "" {
		b.WriteString("\n" + StatusStyle().Render(m.status))
	}

	b.WriteString("\n" + HelpStyle().Render(m.helpText()))

	return tea.NewView(BorderStyle().Render(b.String()))
}

func (m *model) helpText() string {
	parts := []string{"↑/↓ select", "type to filter", "enter switch"}
	k := m.opts.Keymap
	if k.Pull != "" {
		parts = append(parts, k.Pull+" pull")
	}
	if k.Push != "" {
		parts = append(parts, k.Push+" push")
	}
	if k.Fetch != "" {
		parts = append(parts, k.Fetch+" fetch")
	}
	if k.Copy != "" {
		parts = append(parts, k.Copy+" copy")
	}
	parts = append(parts, "esc cancel")
	return strings.Join(parts, " • ")
}
