package bubble_adapter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// dimStyle is applied to the background behind a popup. Existing ANSI codes
// are stripped first because faint does not combine reliably with colors.
var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

// compositeRow overlays popupLine onto bgLine at column startX.
func compositeRow(bgLine, popupLine string, startX, popupWidth, totalWidth int) string {
	var result strings.Builder

	stripped := ansi.Strip(bgLine)
	bgWidth := ansi.StringWidth(stripped)

	if startX > 0 {
		left := ansi.Truncate(stripped, startX, "")
		result.WriteString(dimStyle.Render(left))
		if w := ansi.StringWidth(left); w < startX {
			result.WriteString(strings.Repeat(" ", startX-w))
		}
	}

	result.WriteString(popupLine)

	rightStartX := startX + popupWidth
	if rightStartX < totalWidth && bgWidth > rightStartX {
		result.WriteString(dimStyle.Render(ansi.Cut(stripped, rightStartX, bgWidth)))
	}

	return result.String()
}

// overlay centers popup over a dimmed background of the given size.
func overlay(background, popup string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	popupLines := strings.Split(popup, "\n")

	popupWidth := lipgloss.Width(popup)
	startX := max((width-popupWidth)/2, 0)
	startY := max((height-len(popupLines))/2, 0)

	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	result := make([]string, 0, height)
	for y := range height {
		row := y - startY
		if row >= 0 && row < len(popupLines) {
			result = append(result, compositeRow(bgLines[y], popupLines[row], startX, popupWidth, width))
		} else {
			result = append(result, dimStyle.Render(ansi.Strip(bgLines[y])))
		}
	}

	return strings.Join(result, "\n")
}
