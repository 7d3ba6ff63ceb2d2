// internal/tui/styles.go
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/mwiater/llmcompare/internal/compare"
)

var (
	headerStyle   = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	labelStyle    = lipgloss.NewStyle().Background(lipgloss.Color("0")).Foreground(lipgloss.Color("255")).Padding(0, 1)
	badgeStyle    = lipgloss.NewStyle().Background(lipgloss.Color("229")).Foreground(lipgloss.Color("0")).Padding(0, 1).MarginLeft(1)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
	tableHeader   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(0, 1)
	tableCell     = lipgloss.NewStyle().Padding(0, 1)
	baselineStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	freeStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("40"))

	tierStyles = map[compare.Tier]lipgloss.Style{
		compare.TierAbove: lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		compare.TierNear:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		compare.TierBelow: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

func tierStyle(t compare.Tier) lipgloss.Style {
	if s, ok := tierStyles[t]; ok {
		return s
	}
	return mutedStyle
}

func categoryChip(c catalog.Category) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color())).Render("●") + " " + string(c)
}
