package views

import (
	"fmt"

	"github.com/Cyclone1070/finch/internal/ui/models"
)

// RenderStatus renders the bottom status line: root, match count, the last
// error if any, and key hints.
func RenderStatus(s models.State) string {
	left := fmt.Sprintf("%s  (%d matches)", s.Root, len(s.Results))
	if s.Err != nil {
		left = ErrorStyle.Render(s.Err.Error())
	}

	hints := "enter: open  ctrl+g: git root  ctrl+r: refresh  esc: quit"
	return StatusStyle.Render(left) + "\n" + StatusStyle.Render(hints)
}
