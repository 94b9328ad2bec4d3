package views

import (
	"github.com/Cyclone1070/finch/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderRoot renders the complete picker layout: query input on top, the
// result list beside the preview pane, status line at the bottom.
func RenderRoot(s models.State) string {
	body := RenderList(s)
	if preview := RenderPreview(s); preview != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", preview)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		InputStyle.Render(s.Input.View()),
		body,
		RenderStatus(s),
	)
}
