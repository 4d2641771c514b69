package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tazlab/tazgo/internal/config"
	"github.com/tazlab/tazgo/internal/domain"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case "enter":
			if m.focus < fieldCount-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			m.calculate()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// calculate reads the form fields and runs the engine, storing either the
// result or the error on the model.
func (m *Model) calculate() {
	m.result = nil
	m.err = nil

	startY, startM, startD, err := parseDateField(m.inputs[fieldStartDate].Value())
	if err != nil {
		m.err = fmt.Errorf("start date: %w", err)
		return
	}
	endY, endM, endD, err := parseDateField(m.inputs[fieldEndDate].Value())
	if err != nil {
		m.err = fmt.Errorf("end date: %w", err)
		return
	}

	basisDays := 30
	if s := strings.TrimSpace(m.inputs[fieldBasisDays].Value()); s != "" {
		basisDays, err = strconv.Atoi(s)
		if err != nil {
			m.err = fmt.Errorf("basis days: %w", err)
			return
		}
	}

	input := domain.CalculationInput{
		WorkStartYear: startY, WorkStartMonth: startM, WorkStartDay: startD,
		WorkEndYear: endY, WorkEndMonth: endM, WorkEndDay: endD,
		MonthlyGrossSalary:   config.ParseAmount(m.inputs[fieldSalary].Value()),
		CumulativeTaxBase:    config.ParseAmount(m.inputs[fieldTaxBase].Value()),
		CalculationBasisDays: basisDays,
	}

	result, err := m.engine.Calculate(input)
	if err != nil {
		m.err = err
		return
	}
	m.result = result
}

// parseDateField accepts YYYY-MM-DD.
func parseDateField(s string) (year, month, day int, err error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("expected YYYY-MM-DD")
	}
	return t.Year(), int(t.Month()), t.Day(), nil
}
