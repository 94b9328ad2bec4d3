package views

import "github.com/Cyclone1070/finch/internal/ui/models"

// RenderPreview renders the preview pane for the selected candidate.
func RenderPreview(s models.State) string {
	if s.Preview == "" {
		return ""
	}
	width := s.Width/2 - 4
	if width < 20 {
		width = 20
	}
	return PreviewStyle.Width(width).Render(s.Preview)
}
