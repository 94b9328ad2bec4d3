// Package ui is the interactive Bubble Tea picker. Typing drives live
// searches through a session; enter returns the selected candidate.
package ui

import (
	"fmt"

	"github.com/Cyclone1070/finch/internal/rank"
	tea "github.com/charmbracelet/bubbletea"
)

// Picker runs the picker model in an alt-screen Bubble Tea program.
type Picker struct {
	program *tea.Program
}

// NewPicker creates a picker around the given model.
func NewPicker(model Model) *Picker {
	return &Picker{
		program: tea.NewProgram(model, tea.WithAltScreen()),
	}
}

// Run blocks until the user picks a candidate or dismisses the picker. A
// dismissal returns (nil, nil).
func (p *Picker) Run() (*rank.Candidate, error) {
	final, err := p.program.Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected final model %T", final)
	}
	return m.Choice(), nil
}
