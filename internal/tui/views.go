package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/numkit/seqcalc/internal/format"
	"github.com/numkit/seqcalc/internal/sequence"
)

// inlineViewLimit caps how many terms the results panel lists before
// switching to the edge view.
const inlineViewLimit = 20

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("🔢 Sequence Calculator"))
	b.WriteString("\n\n")
	b.WriteString(m.renderKindSelector())
	b.WriteString("\n\n")
	b.WriteString(m.renderForm())
	b.WriteString("\n")

	if m.inputErr != nil {
		b.WriteString(m.styles.ErrorText.Render("⚠ " + m.inputErr.Error()))
		b.WriteString("\n")
	} else if m.report != nil {
		b.WriteString(m.renderResults())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

// renderKindSelector renders the arithmetic/geometric toggle.
func (m Model) renderKindSelector() string {
	arith := m.styles.KindIdle.Render("○ Arithmetic")
	geo := m.styles.KindIdle.Render("○ Geometric")
	if m.kind == sequence.Arithmetic {
		arith = m.styles.KindActive.Render("● Arithmetic")
	} else {
		geo = m.styles.KindActive.Render("● Geometric")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, arith, "   ", geo)
}

// renderForm renders the three labeled input fields.
func (m Model) renderForm() string {
	labels := []string{"First Term (a₁)", stepFieldLabel(m.kind), "Number of Terms (n)"}
	rows := make([]string, numFields)
	for i := range m.inputs {
		label := m.styles.Label.Width(22).Render(labels[i] + ":")
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Center, label, m.inputs[i].View())
	}
	return strings.Join(rows, "\n")
}

func stepFieldLabel(kind sequence.Kind) string {
	if kind == sequence.Geometric {
		return "Common Ratio (r)"
	}
	return "Common Difference (d)"
}

// renderResults renders the report panels: formula, sequence, statistics,
// and the convergence hint.
func (m Model) renderResults() string {
	report := *m.report

	var sections []string
	sections = append(sections, m.renderFormulaPanel(report))
	sections = append(sections, m.renderSequencePanel(report))
	sections = append(sections, m.renderStatsPanel(report))

	if report.Kind == sequence.Geometric && report.InfiniteLimit != nil && report.Params.Step != 0 {
		hint := fmt.Sprintf("💡 Since |r| = %.3f < 1, the infinite series converges to %s",
			math.Abs(report.Params.Step), format.Number(*report.InfiniteLimit))
		sections = append(sections, m.styles.HintText.Render(hint))
	}

	if m.duration > 0 {
		sections = append(sections,
			m.styles.StatLabel.Render("Generated in "+format.ExecutionDuration(m.duration)))
	}

	return strings.Join(sections, "\n")
}

func (m Model) renderFormulaPanel(report sequence.Report) string {
	var formula string
	if report.Kind == sequence.Arithmetic {
		formula = "aₙ = a₁ + (n-1)·d"
	} else if report.Params.Step == 1 {
		formula = "aₙ = a₁ · r^(n-1)    Sₙ = n · a₁"
	} else {
		formula = "aₙ = a₁ · r^(n-1)    Sₙ = a₁ · (1 - rⁿ) / (1 - r)"
	}
	title := m.styles.BoxTitle.Render(report.Kind.Title())
	return m.styles.Box.Render(title + "\n" + formula)
}

func (m Model) renderSequencePanel(report sequence.Report) string {
	formatted := format.Terms(report.Terms)
	var body string
	if len(formatted) <= inlineViewLimit {
		body = m.styles.Value.Render(strings.Join(formatted, ", "))
	} else {
		head := strings.Join(formatted[:10], ", ")
		tail := strings.Join(formatted[len(formatted)-10:], ", ")
		body = m.styles.Value.Render(head) + "\n" +
			m.styles.StatLabel.Render(fmt.Sprintf("… %d terms omitted …", len(formatted)-20)) + "\n" +
			m.styles.Value.Render(tail)
	}
	title := m.styles.BoxTitle.Render("Generated Sequence")
	return m.styles.Box.Width(m.contentWidth()).Render(title + "\n" + body)
}

func (m Model) renderStatsPanel(report sequence.Report) string {
	stats := report.Stats
	cells := []struct {
		label string
		value string
	}{
		{"First Term", format.Number(stats.First)},
		{"Last Term", format.Number(stats.Last)},
		{"Series Sum", format.Number(stats.Sum)},
		{"Average", format.Number(stats.Average)},
	}

	rendered := make([]string, len(cells))
	for i, c := range cells {
		rendered[i] = m.styles.StatLabel.Render(c.label) + "\n" + m.styles.StatValue.Render(c.value)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		rendered[0], "    ", rendered[1], "    ", rendered[2], "    ", rendered[3])

	title := m.styles.BoxTitle.Render("Sequence Statistics")
	return m.styles.Box.Render(title + "\n" + row)
}

// renderHelp renders the footer help line from the keymap.
func (m Model) renderHelp() string {
	var parts []string
	for _, b := range m.keymap.ShortHelp() {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return m.styles.HelpText.Render(strings.Join(parts, " · "))
}

// contentWidth bounds panel width to the terminal.
func (m Model) contentWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}
