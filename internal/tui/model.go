// Package tui implements the interactive dashboard: a form for the three
// sequence inputs and panels showing the generated sequence, its sum, and
// statistics, updated on every submission.
package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/numkit/seqcalc/internal/config"
	apperrors "github.com/numkit/seqcalc/internal/errors"
	"github.com/numkit/seqcalc/internal/format"
	"github.com/numkit/seqcalc/internal/sequence"
)

// Input field indices.
const (
	fieldFirst = iota
	fieldStep
	fieldTerms
	numFields
)

// reportMsg carries the outcome of one generation back into the update loop.
type reportMsg struct {
	report   sequence.Report
	duration time.Duration
	err      error
}

// Model is the root bubbletea model for the TUI dashboard.
type Model struct {
	kind   sequence.Kind
	inputs []textinput.Model
	focus  int

	report   *sequence.Report
	duration time.Duration
	inputErr error

	keymap KeyMap
	styles Styles

	width  int
	height int
}

// NewModel creates a new TUI model seeded from the application configuration.
func NewModel(cfg config.AppConfig) Model {
	kind := cfg.Kinds()[0]

	inputs := make([]textinput.Model, numFields)
	labels := []string{
		format.Number(cfg.FirstTerm),
		format.Number(cfg.Step),
		strconv.Itoa(cfg.Terms),
	}
	for i := range inputs {
		ti := textinput.New()
		ti.SetValue(labels[i])
		ti.CharLimit = 24
		ti.Width = 16
		inputs[i] = ti
	}
	inputs[fieldFirst].Focus()

	return Model{
		kind:   kind,
		inputs: inputs,
		keymap: DefaultKeyMap(),
		styles: newStyles(),
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keymap.ToggleKind):
			if m.kind == sequence.Arithmetic {
				m.kind = sequence.Geometric
			} else {
				m.kind = sequence.Arithmetic
			}
			return m, nil

		case key.Matches(msg, m.keymap.Next):
			return m.cycleFocus(1)

		case key.Matches(msg, m.keymap.Prev):
			return m.cycleFocus(-1)

		case key.Matches(msg, m.keymap.Submit):
			return m.submit()
		}

		// Delegate everything else to the focused text input.
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd

	case reportMsg:
		m.duration = msg.duration
		if msg.err != nil {
			m.report = nil
			m.inputErr = msg.err
			return m, nil
		}
		m.inputErr = nil
		report := msg.report
		m.report = &report
		return m, nil
	}

	return m, nil
}

// cycleFocus moves input focus by delta, wrapping around the fields.
func (m Model) cycleFocus(delta int) (tea.Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + numFields) % numFields
	cmd := m.inputs[m.focus].Focus()
	return m, cmd
}

// submit parses and validates the form, then launches the generation.
// Validation failures surface in the error line without any generator call.
func (m Model) submit() (tea.Model, tea.Cmd) {
	first, err := strconv.ParseFloat(m.inputs[fieldFirst].Value(), 64)
	if err != nil {
		m.inputErr = apperrors.ValidationError{Field: "first term", Message: "must be a number"}
		return m, nil
	}
	step, err := strconv.ParseFloat(m.inputs[fieldStep].Value(), 64)
	if err != nil {
		m.inputErr = apperrors.ValidationError{Field: m.kind.StepName(), Message: "must be a number"}
		return m, nil
	}
	terms, err := strconv.Atoi(m.inputs[fieldTerms].Value())
	if err != nil {
		m.inputErr = apperrors.ValidationError{Field: "terms", Message: "must be an integer"}
		return m, nil
	}
	if err := sequence.Validate(terms); err != nil {
		m.inputErr = err
		return m, nil
	}

	m.inputErr = nil
	params := sequence.Params{FirstTerm: first, Step: step, Terms: terms}
	return m, generateCmd(m.kind, params)
}

// generateCmd returns a tea.Cmd that computes the report off the UI loop.
func generateCmd(kind sequence.Kind, params sequence.Params) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		report, err := sequence.Compute(kind, params)
		return reportMsg{report: report, duration: time.Since(start), err: err}
	}
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, cfg config.AppConfig) int {
	model := NewModel(cfg)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if apperrors.IsContextError(err) {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
