package tui

import "github.com/hay-kot/reviewdeck/internal/core/feed"

// span is the vertical extent of a row in content coordinates.
type span struct {
	top, bottom int
}

func (m Model) viewportHeight() int {
	return max(m.height-statusHeight, 1)
}

// spans returns the extent of each row and the total content height.
func (m Model) spans(rows []feed.Row) ([]span, int) {
	out := make([]span, len(rows))
	y := 0
	for i, r := range rows {
		h := r.Height(m.ctrl.Measurer(), m.ctrl.Metrics(), m.width)
		out[i] = span{top: y, bottom: y + h}
		y += h
	}
	return out, y
}

func (m Model) contentHeight() int {
	_, h := m.spans(m.ctrl.Rows())
	return h
}

func (m Model) maxOffset() int {
	return max(m.contentHeight()-m.viewportHeight(), 0)
}

func (m *Model) clampScroll() {
	n := len(m.ctrl.State().Items)
	m.cursor = min(max(m.cursor, 0), max(n-1, 0))
	m.offset = min(max(m.offset, 0), m.maxOffset())
}

// moveCursor selects the review delta positions away and scrolls it into
// view.
func (m *Model) moveCursor(delta int) {
	n := len(m.ctrl.State().Items)
	if n == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	rows := m.ctrl.Rows()
	if m.cursor >= len(rows) {
		return
	}
	spans, _ := m.spans(rows)
	s := spans[m.cursor]
	vh := m.viewportHeight()

	switch {
	case s.top < m.offset:
		m.offset = s.top
	case s.bottom > m.offset+vh:
		// rows taller than the viewport are pinned to their top
		m.offset = min(s.bottom-vh, s.top)
	}
	m.offset = min(max(m.offset, 0), m.maxOffset())
}

// scrollBy moves the viewport by delta lines and selects the first review
// that is still visible.
func (m *Model) scrollBy(delta int) {
	m.offset = min(max(m.offset+delta, 0), m.maxOffset())

	spans, _ := m.spans(m.ctrl.Rows())
	items := len(m.ctrl.State().Items)
	for i := 0; i < items; i++ {
		if spans[i].bottom > m.offset {
			m.cursor = i
			return
		}
	}
}

// scrollEnded reports the resting scroll position to the controller. Key
// driven scrolling has no momentum, so the projected offset is the offset.
func (m Model) scrollEnded() {
	vh := float64(m.viewportHeight())
	m.ctrl.ScrollEnded(m.ctx, vh, float64(m.contentHeight()), float64(m.offset))
}

// visibleItems returns the reviews that intersect the viewport.
func (m Model) visibleItems() []*feed.Item {
	rows := m.ctrl.Rows()
	spans, _ := m.spans(rows)
	end := m.offset + m.viewportHeight()

	var out []*feed.Item
	for i, r := range rows {
		if r.Kind != feed.RowReview {
			continue
		}
		if spans[i].bottom > m.offset && spans[i].top < end {
			out = append(out, r.Item)
		}
	}
	return out
}
