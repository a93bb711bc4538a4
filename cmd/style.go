package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kass/go-school-locator/pkg/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF79C6"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4"))

	statStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB86C"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BE9FD")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#BD93F9"))
)

// renderListing draws the ranked schools as a bordered table under a short summary
func renderListing(origin models.Location, total int, ranked []models.RankedSchool) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Nearest schools"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("from (%g, %g), showing ", origin.Lat, origin.Lon)))
	b.WriteString(statStyle.Render(fmt.Sprintf("%d", len(ranked))))
	b.WriteString(dimStyle.Render(fmt.Sprintf(" of %d", total)))
	b.WriteString("\n")

	if len(ranked) == 0 {
		b.WriteString(dimStyle.Render("no schools registered"))
		b.WriteString("\n")
		return b.String()
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("#", "ID", "NAME", "ADDRESS", "KM").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, r := range ranked {
		t.Row(
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.ID),
			r.Name,
			r.Address,
			fmt.Sprintf("%.2f", r.DistanceKm),
		)
	}

	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}
