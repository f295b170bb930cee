package views

import (
	"strings"
)

// RenderScrollbar produces a single-column scrollbar of the given height.
// Sizes are in rows: totalItems results, visibleItems of them in view,
// firstVisible the index of the top one.
func RenderScrollbar(styles *Styles, height, totalItems, visibleItems, firstVisible int) string {
	if height <= 0 {
		return ""
	}

	lines := make([]string, height)

	if totalItems <= visibleItems || totalItems <= 0 {
		for i := range lines {
			lines[i] = styles.ScrollThumb.Render("┃")
		}
		return strings.Join(lines, "\n")
	}

	thumbSize := max(height*visibleItems/totalItems, 1)

	scrollableRange := totalItems - visibleItems
	trackRange := height - thumbSize
	thumbOffset := 0
	if trackRange > 0 {
		thumbOffset = min(max(firstVisible, 0), scrollableRange) * trackRange / scrollableRange
	}
	thumbOffset = min(thumbOffset, height-thumbSize)

	for i := range lines {
		if i >= thumbOffset && i < thumbOffset+thumbSize {
			lines[i] = styles.ScrollThumb.Render("┃")
		} else {
			lines[i] = styles.ScrollTrack.Render("│")
		}
	}

	return strings.Join(lines, "\n")
}
