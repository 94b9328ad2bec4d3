// Package models holds the picker's view state.
package models

import (
	"github.com/Cyclone1070/finch/internal/rank"
	"github.com/charmbracelet/bubbles/textinput"
)

// State is everything the views need to render one frame.
type State struct {
	Input textinput.Model

	// Results is the current candidate list in display order.
	Results  []rank.Candidate
	Selected int

	// Preview is the rendered preview of the selected candidate.
	Preview string

	// Root is the active search root shown in the status line.
	Root string

	// Err is the last search failure; cleared by the next successful search.
	Err error

	// Searching is true while a request is in flight.
	Searching bool

	Width      int
	Height     int
	ListHeight int
}

// Selection returns the selected candidate, or nil when there are no results.
func (s State) Selection() *rank.Candidate {
	if s.Selected < 0 || s.Selected >= len(s.Results) {
		return nil
	}
	c := s.Results[s.Selected]
	return &c
}
