package views

import (
	"strings"

	"github.com/Cyclone1070/finch/internal/ui/models"
)

// RenderList renders the visible window of the result list. The window
// scrolls so the selection stays on screen.
func RenderList(s models.State) string {
	if len(s.Results) == 0 {
		if s.Searching {
			return ItemStyle.Render("Searching...")
		}
		return ItemStyle.Render("No matches.")
	}

	height := s.ListHeight
	if height <= 0 {
		height = len(s.Results)
	}

	start := 0
	if s.Selected >= height {
		start = s.Selected - height + 1
	}
	end := min(start+height, len(s.Results))

	var lines []string
	for i := start; i < end; i++ {
		c := s.Results[i]
		label := c.DisplayPath
		if c.IsDir {
			label += DirSuffixStyle.Render("/")
		}
		if i == s.Selected {
			lines = append(lines, SelectedItemStyle.Render("> "+label))
		} else {
			lines = append(lines, ItemStyle.Render(label))
		}
	}
	return strings.Join(lines, "\n")
}
