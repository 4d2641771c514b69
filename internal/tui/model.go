package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tazlab/tazgo/internal/calculation"
	"github.com/tazlab/tazgo/internal/domain"
)

// Field indices into Model.inputs.
const (
	fieldStartDate = iota
	fieldEndDate
	fieldSalary
	fieldTaxBase
	fieldBasisDays
	fieldCount
)

// Model is the interactive calculator form: a column of text inputs on top,
// the latest result (or error) rendered beneath.
type Model struct {
	engine *calculation.Engine
	inputs []textinput.Model
	focus  int

	result *domain.CalculationResult
	err    error

	width  int
	height int
}

// NewModel creates the form model around a calculation engine.
func NewModel(engine *calculation.Engine) Model {
	inputs := make([]textinput.Model, fieldCount)

	labels := []struct {
		placeholder string
		limit       int
	}{
		{"2020-01-01", 10},
		{"2025-01-01", 10},
		{"80000", 12},
		{"0", 12},
		{"30", 3},
	}
	for i, l := range labels {
		ti := textinput.New()
		ti.Placeholder = l.placeholder
		ti.CharLimit = l.limit
		ti.Width = 14
		inputs[i] = ti
	}
	inputs[fieldStartDate].Focus()

	return Model{
		engine: engine,
		inputs: inputs,
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
