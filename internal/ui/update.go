package ui

import (
	"context"

	"github.com/Cyclone1070/finch/internal/config"
	"github.com/Cyclone1070/finch/internal/rank"
	"github.com/Cyclone1070/finch/internal/session"
	"github.com/Cyclone1070/finch/internal/ui/models"
	"github.com/Cyclone1070/finch/internal/ui/services"
	"github.com/Cyclone1070/finch/internal/ui/views"
	"github.com/Cyclone1070/finch/internal/workspace"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model implements tea.Model for the interactive picker. Every keystroke in
// the query field submits a new search; the session supersedes the previous
// one, so stale results never land.
type Model struct {
	state    models.State
	searcher Searcher
	preview  *services.Preview
	changes  <-chan struct{}
	choice   *rank.Candidate
}

// Internal messages
type searchResultMsg session.Result
type searchSupersededMsg struct{}
type fsChangedMsg struct{}

// NewModel creates the picker model. changes may be nil to disable live
// refresh.
func NewModel(searcher Searcher, preview *services.Preview, cfg config.UIConfig, changes <-chan struct{}) Model {
	ti := textinput.New()
	ti.Placeholder = "Search files..."
	ti.Focus()

	return Model{
		state: models.State{
			Input:      ti,
			Root:       searcher.Root(),
			ListHeight: cfg.ListHeight,
		},
		searcher: searcher,
		preview:  preview,
		changes:  changes,
	}
}

// Choice returns the candidate picked with enter, or nil if the picker was
// dismissed.
func (m Model) Choice() *rank.Candidate {
	return m.choice
}

// Init starts the blink cycle, the initial empty-query search, and the
// change listener.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.search("")}
	if m.changes != nil {
		cmds = append(cmds, listenForChanges(m.changes))
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, nil

	case searchResultMsg:
		m.state.Searching = false
		if msg.Err != nil {
			m.state.Err = msg.Err
			return m, nil
		}
		m.state.Err = nil
		m.state.Results = msg.Candidates
		m.state.Selected = 0
		m.updatePreview()
		return m, nil

	case searchSupersededMsg:
		// A newer request is in flight; its result will arrive instead.
		return m, nil

	case fsChangedMsg:
		m.purgePreviews()
		cmds := []tea.Cmd{m.search(m.state.Input.Value())}
		if m.changes != nil {
			cmds = append(cmds, listenForChanges(m.changes))
		}
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		if sel := m.state.Selection(); sel != nil {
			m.choice = sel
			return m, tea.Quit
		}
		return m, nil

	case "up", "ctrl+k":
		if m.state.Selected > 0 {
			m.state.Selected--
			m.updatePreview()
		}
		return m, nil

	case "down", "ctrl+j":
		if m.state.Selected < len(m.state.Results)-1 {
			m.state.Selected++
			m.updatePreview()
		}
		return m, nil

	case "ctrl+g":
		gitRoot, err := workspace.DetectGitRoot(m.searcher.Root())
		if err != nil {
			m.state.Err = err
			return m, nil
		}
		root, err := m.searcher.SetRoot(gitRoot)
		if err != nil {
			m.state.Err = err
			return m, nil
		}
		m.state.Root = root
		m.purgePreviews()
		m.state.Searching = true
		return m, m.search(m.state.Input.Value())

	case "ctrl+r":
		m.purgePreviews()
		m.state.Searching = true
		return m, m.search(m.state.Input.Value())
	}

	before := m.state.Input.Value()
	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	if value := m.state.Input.Value(); value != before {
		m.state.Searching = true
		return m, tea.Batch(cmd, m.search(value))
	}
	return m, cmd
}

// View renders the picker.
func (m Model) View() string {
	return views.RenderRoot(m.state)
}

// search submits the request immediately so keystroke order matches
// submission order, and returns a command that waits for the outcome.
func (m Model) search(query string) tea.Cmd {
	ch := m.searcher.Search(context.Background(), session.Request{Query: query})
	return func() tea.Msg {
		res, ok := <-ch
		if !ok {
			return searchSupersededMsg{}
		}
		return searchResultMsg(res)
	}
}

func (m *Model) updatePreview() {
	sel := m.state.Selection()
	if sel == nil || m.preview == nil {
		m.state.Preview = ""
		return
	}
	m.state.Preview = m.preview.Render(sel.AbsPath, sel.IsDir)
}

func (m Model) purgePreviews() {
	if m.preview != nil {
		m.preview.Purge()
	}
}

func listenForChanges(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return fsChangedMsg{}
	}
}
