package ui

import (
	"context"
	"fmt"
	"testing"

	"github.com/Cyclone1070/finch/internal/config"
	"github.com/Cyclone1070/finch/internal/rank"
	"github.com/Cyclone1070/finch/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSearcher records submissions and answers them synchronously.
type stubSearcher struct {
	root     string
	queries  []string
	setRoots []string
	respond  func(query string) (session.Result, bool)
}

func (s *stubSearcher) Search(ctx context.Context, req session.Request) <-chan session.Result {
	s.queries = append(s.queries, req.Query)
	ch := make(chan session.Result, 1)
	if s.respond != nil {
		if res, ok := s.respond(req.Query); ok {
			ch <- res
		}
	}
	close(ch)
	return ch
}

func (s *stubSearcher) SetRoot(path string) (string, error) {
	s.setRoots = append(s.setRoots, path)
	s.root = path
	return path, nil
}

func (s *stubSearcher) Root() string { return s.root }

func newTestModel(searcher Searcher) Model {
	return NewModel(searcher, nil, config.UIConfig{ListHeight: 10}, nil)
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func resultMsg(paths ...string) searchResultMsg {
	var cs []rank.Candidate
	for _, p := range paths {
		cs = append(cs, rank.Candidate{AbsPath: "/" + p, DisplayPath: p})
	}
	return searchResultMsg{Candidates: cs}
}

func TestUpdate_TypingSubmitsSearch(t *testing.T) {
	searcher := &stubSearcher{root: "/proj"}
	m := newTestModel(searcher)

	next, _ := m.Update(keyRunes('r'))
	next, _ = next.Update(keyRunes('e'))

	assert.Equal(t, []string{"r", "re"}, searcher.queries)
	assert.True(t, next.(Model).state.Searching)
}

func TestUpdate_SearchResultPopulatesList(t *testing.T) {
	m := newTestModel(&stubSearcher{root: "/proj"})

	next, _ := m.Update(resultMsg("a.md", "b.md"))

	got := next.(Model)
	assert.False(t, got.state.Searching)
	require.Len(t, got.state.Results, 2)
	assert.Equal(t, 0, got.state.Selected)
	assert.NoError(t, got.state.Err)
}

func TestUpdate_SearchErrorKeepsPreviousResults(t *testing.T) {
	m := newTestModel(&stubSearcher{root: "/proj"})
	next, _ := m.Update(resultMsg("a.md"))

	next, _ = next.Update(searchResultMsg{Err: fmt.Errorf("fd not found")})

	got := next.(Model)
	assert.Error(t, got.state.Err)
	assert.Len(t, got.state.Results, 1)
}

func TestUpdate_SupersededMessageChangesNothing(t *testing.T) {
	m := newTestModel(&stubSearcher{root: "/proj"})
	next, _ := m.Update(resultMsg("a.md"))

	next, cmd := next.Update(searchSupersededMsg{})

	got := next.(Model)
	assert.Nil(t, cmd)
	assert.Len(t, got.state.Results, 1)
}

func TestUpdate_SelectionMovesWithinBounds(t *testing.T) {
	m := newTestModel(&stubSearcher{root: "/proj"})
	next, _ := m.Update(resultMsg("a.md", "b.md"))

	next, _ = next.Update(key(tea.KeyUp)) // already at top
	assert.Equal(t, 0, next.(Model).state.Selected)

	next, _ = next.Update(key(tea.KeyDown))
	assert.Equal(t, 1, next.(Model).state.Selected)

	next, _ = next.Update(key(tea.KeyDown)) // already at bottom
	assert.Equal(t, 1, next.(Model).state.Selected)
}

func TestUpdate_EnterPicksSelection(t *testing.T) {
	m := newTestModel(&stubSearcher{root: "/proj"})
	next, _ := m.Update(resultMsg("a.md", "b.md"))
	next, _ = next.Update(key(tea.KeyDown))

	next, cmd := next.Update(key(tea.KeyEnter))

	got := next.(Model)
	require.NotNil(t, got.Choice())
	assert.Equal(t, "b.md", got.Choice().DisplayPath)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_EnterWithoutResultsDoesNothing(t *testing.T) {
	m := newTestModel(&stubSearcher{root: "/proj"})

	next, cmd := m.Update(key(tea.KeyEnter))

	assert.Nil(t, next.(Model).Choice())
	assert.Nil(t, cmd)
}

func TestUpdate_EscQuitsWithoutChoice(t *testing.T) {
	m := newTestModel(&stubSearcher{root: "/proj"})

	next, cmd := m.Update(key(tea.KeyEsc))

	assert.Nil(t, next.(Model).Choice())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_CtrlGRebindsToGitRoot(t *testing.T) {
	repo := t.TempDir()
	_, err := git.PlainInit(repo, false)
	require.NoError(t, err)

	searcher := &stubSearcher{root: repo}
	m := newTestModel(searcher)

	next, cmd := m.Update(key(tea.KeyCtrlG))

	got := next.(Model)
	require.NoError(t, got.state.Err)
	require.Len(t, searcher.setRoots, 1)
	assert.NotNil(t, cmd)
	// Rebinding re-runs the live query.
	assert.Equal(t, []string{""}, searcher.queries)
}

func TestUpdate_CtrlGOutsideRepoSurfacesError(t *testing.T) {
	searcher := &stubSearcher{root: t.TempDir()}
	m := newTestModel(searcher)

	next, _ := m.Update(key(tea.KeyCtrlG))

	assert.Error(t, next.(Model).state.Err)
	assert.Empty(t, searcher.setRoots)
}

func TestUpdate_CtrlRRefreshesCurrentQuery(t *testing.T) {
	searcher := &stubSearcher{root: "/proj"}
	m := newTestModel(searcher)

	next, _ := m.Update(keyRunes('x'))
	next, _ = next.Update(key(tea.KeyCtrlR))

	assert.Equal(t, []string{"x", "x"}, searcher.queries)
	assert.True(t, next.(Model).state.Searching)
}

func TestSearch_ChannelOutcomesMapToMessages(t *testing.T) {
	delivered := &stubSearcher{
		root: "/proj",
		respond: func(query string) (session.Result, bool) {
			return session.Result{Candidates: []rank.Candidate{{DisplayPath: query + ".md"}}}, true
		},
	}
	m := newTestModel(delivered)
	msg := m.search("a")()
	res, ok := msg.(searchResultMsg)
	require.True(t, ok)
	assert.Equal(t, "a.md", res.Candidates[0].DisplayPath)

	superseded := &stubSearcher{root: "/proj"} // closes without a value
	m = newTestModel(superseded)
	msg = m.search("a")()
	assert.IsType(t, searchSupersededMsg{}, msg)
}
