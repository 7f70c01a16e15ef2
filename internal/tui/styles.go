package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/numkit/seqcalc/internal/ui"
)

// Styles bundles the lipgloss styles used by the dashboard. They are rebuilt
// from the active ui theme when the TUI starts.
type Styles struct {
	Title       lipgloss.Style
	KindActive  lipgloss.Style
	KindIdle    lipgloss.Style
	Label       lipgloss.Style
	Box         lipgloss.Style
	BoxTitle    lipgloss.Style
	Value       lipgloss.Style
	ErrorText   lipgloss.Style
	HintText    lipgloss.Style
	HelpText    lipgloss.Style
	StatLabel   lipgloss.Style
	StatValue   lipgloss.Style
}

// newStyles builds the style set from the current TUI theme.
func newStyles() Styles {
	theme := ui.GetCurrentTUITheme()
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).
			Padding(0, 1),
		KindActive: lipgloss.NewStyle().Bold(true).Foreground(theme.Success),
		KindIdle:   lipgloss.NewStyle().Foreground(theme.Dim),
		Label:      lipgloss.NewStyle().Foreground(theme.Text).PaddingRight(1),
		Box: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).Padding(0, 1),
		BoxTitle:  lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		Value:     lipgloss.NewStyle().Foreground(theme.Success),
		ErrorText: lipgloss.NewStyle().Foreground(theme.Error),
		HintText:  lipgloss.NewStyle().Foreground(theme.Info),
		HelpText:  lipgloss.NewStyle().Foreground(theme.Dim),
		StatLabel: lipgloss.NewStyle().Foreground(theme.Dim),
		StatValue: lipgloss.NewStyle().Bold(true).Foreground(theme.Text),
	}
}
