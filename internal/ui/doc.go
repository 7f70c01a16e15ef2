// Package ui centralizes terminal color themes for the CLI and the lipgloss
// palette used by the TUI dashboard. The active theme is process-global and
// respects the NO_COLOR convention (https://no-color.org/).
package ui
