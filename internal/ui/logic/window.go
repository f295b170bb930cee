package logic

import (
	"starseek/internal/domain"
)

// Layout holds the fixed windowing constants
type Layout struct {
	ItemHeight     int // height of one result row
	ViewportHeight int // height of the visible result area
	RenderAhead    int // extra rows materialized beyond the viewport
}

// DefaultLayout returns the stock layout: 40-unit rows in a 280-unit viewport, 5 rows ahead
func DefaultLayout() Layout {
	return Layout{ItemHeight: 40, ViewportHeight: 280, RenderAhead: 5}
}

// VisibleRows is the number of rows that fit in the viewport, rounding up
func (l Layout) VisibleRows() int {
	return ceilDiv(max(l.ViewportHeight, 0), max(l.ItemHeight, 1))
}

// ContentExtent is the total height of totalItems rows
func (l Layout) ContentExtent(totalItems int) int {
	return max(totalItems, 0) * max(l.ItemHeight, 1)
}

// MaxOffset is the largest scroll offset that still fills the viewport
func (l Layout) MaxOffset(totalItems int) int {
	return max(l.ContentExtent(totalItems)-max(l.ViewportHeight, 0), 0)
}

// ClampOffset limits offset to [0, MaxOffset]
func (l Layout) ClampOffset(offset, totalItems int) int {
	return min(max(offset, 0), l.MaxOffset(totalItems))
}

// Window computes the range to materialize for a scroll offset
func (l Layout) Window(scrollOffset, totalItems int) domain.VisibleWindow {
	return ComputeWindow(scrollOffset, l.ItemHeight, l.ViewportHeight, l.RenderAhead, totalItems)
}

// ComputeWindow maps a scroll position to the half-open range of result
// indices that must be rendered. It is pure and total: out-of-range inputs
// are clamped, and the result always satisfies 0 <= Start <= End <= totalItems.
func ComputeWindow(scrollOffset, itemHeight, viewportHeight, renderAhead, totalItems int) domain.VisibleWindow {
	if totalItems <= 0 {
		return domain.VisibleWindow{}
	}
	itemHeight = max(itemHeight, 1)
	scrollOffset = max(scrollOffset, 0)
	viewportHeight = max(viewportHeight, 0)
	renderAhead = max(renderAhead, 0)

	start := min(scrollOffset/itemHeight, totalItems)

	// Compared by subtraction so huge counts cannot overflow
	end := totalItems
	visibleCount := ceilDiv(viewportHeight, itemHeight)
	if visibleCount < totalItems-start && renderAhead < totalItems-start-visibleCount {
		end = start + visibleCount + renderAhead
	}

	return domain.VisibleWindow{Start: start, End: end}
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}
