package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/hay-kot/reviewdeck/internal/core/content"
	"github.com/hay-kot/reviewdeck/internal/core/feed"
	"github.com/hay-kot/reviewdeck/internal/core/layout"
	"github.com/hay-kot/reviewdeck/internal/core/styles"
	"github.com/hay-kot/reviewdeck/internal/tui/components"
)

const cursorGlyph = "▌"

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full screen.
func (m Model) render() string {
	if m.quitting || m.width == 0 || m.height == 0 {
		return ""
	}

	out := lipgloss.JoinVertical(lipgloss.Left, m.renderList(), m.renderStatus())
	if m.showHelp {
		out = m.help.Overlay(out, m.width, m.height)
	}
	return out
}

// renderList renders exactly viewportHeight lines of the feed starting at
// the scroll offset.
func (m Model) renderList() string {
	vh := m.viewportHeight()
	rows := m.ctrl.Rows()

	if len(rows) == 0 {
		st := m.ctrl.State()
		msg := "No reviews"
		switch {
		case st.Load != feed.Loaded:
			msg = m.spinner.View() + " Loading reviews"
		case st.ShouldLoad:
			msg = "No reviews yet, press r to retry"
		}
		return lipgloss.Place(m.width, vh, lipgloss.Center, lipgloss.Center, styles.StatusStyle.Render(msg))
	}

	spans, _ := m.spans(rows)
	end := m.offset + vh

	lines := make([]string, 0, vh)
	for i, r := range rows {
		s := spans[i]
		if s.bottom <= m.offset || s.top >= end {
			continue
		}

		block := strings.Split(m.renderRow(r, i == m.cursor), "\n")
		from := max(m.offset-s.top, 0)
		to := min(len(block), end-s.top)
		if from < to {
			lines = append(lines, block[from:to]...)
		}
	}

	blank := components.Pad(m.width)
	for len(lines) < vh {
		lines = append(lines, blank)
	}
	return strings.Join(lines[:vh], "\n")
}

func (m Model) renderRow(r feed.Row, selected bool) string {
	switch r.Kind {
	case feed.RowReview:
		return m.renderReview(r.Item, selected)
	case feed.RowCount:
		return m.renderCount(r.CountText)
	default:
		panic(fmt.Sprintf("tui: unknown row kind %d", r.Kind))
	}
}

// renderReview composes one review by placing each element at its layout
// rectangle.
func (m Model) renderReview(it *feed.Item, selected bool) string {
	res := it.ComputeLayout(m.width)
	c := it.Content
	metrics := m.ctrl.Metrics()
	_, textW := metrics.TextColumn(m.width)

	layers := []*lipgloss.Layer{lipgloss.NewLayer(components.Blank(m.width, res.Height))}
	place := func(s string, r layout.Rect) {
		if s == "" || r.IsZero() {
			return
		}
		layers = append(layers, lipgloss.NewLayer(s).X(r.X).Y(r.Y).Z(1))
	}

	if img, ok := m.image(c.AvatarURL); ok {
		place(m.thumbs.render(c.AvatarURL, img, res.Avatar.W, res.Avatar.H), res.Avatar)
	} else {
		place(avatarPlaceholder(c.Author.Text, res.Avatar.W, res.Avatar.H), res.Avatar)
	}
	place(renderText(c.Author, textW, res.AuthorName.H), res.AuthorName)
	place(c.Rating.Glyph, res.Rating)
	for i, r := range res.Photos {
		place(m.renderImage(c.PhotoURLs[i], styles.GlyphPhoto, r), r)
	}
	place(renderText(c.Body, textW, res.Body.H), res.Body)
	if res.HasShowMore {
		place(styles.ShowMoreStyle.Render(ansi.Truncate(metrics.ShowMoreLabel, res.ShowMore.W, "…")), res.ShowMore)
	}
	place(renderText(c.CreatedAt, textW, res.CreatedAt.H), res.CreatedAt)

	if selected {
		top := metrics.Insets.Top
		h := max(res.CreatedAt.MaxY()-top, 1)
		bar := strings.TrimSuffix(strings.Repeat(cursorGlyph+"\n", h), "\n")
		layers = append(layers, lipgloss.NewLayer(styles.CursorStyle.Render(bar)).X(0).Y(top).Z(2))
	}

	return lipgloss.NewCompositor(layers...).Render()
}

func (m Model) renderCount(text content.StyledText) string {
	metrics := m.ctrl.Metrics()
	h := layout.CountHeight(m.ctrl.Measurer(), metrics, text, m.width)
	w := max(m.width-metrics.Insets.Left-metrics.Insets.Right, 1)

	body := renderText(text, w, h-metrics.Insets.Top-metrics.Insets.Bottom)
	return lipgloss.NewCompositor(
		lipgloss.NewLayer(components.Blank(m.width, h)),
		lipgloss.NewLayer(body).X(metrics.Insets.Left).Y(metrics.Insets.Top).Z(1),
	).Render()
}

// renderImage draws a loaded image, or a placeholder until it arrives.
func (m Model) renderImage(url, glyph string, r layout.Rect) string {
	if img, ok := m.image(url); ok {
		return m.thumbs.render(url, img, r.W, r.H)
	}
	return placeholder(glyph, r.W, r.H)
}

// renderText wraps t the same way the measurer does and keeps at most
// lines lines.
func renderText(t content.StyledText, width, lines int) string {
	if t.IsEmpty() || lines <= 0 {
		return ""
	}
	wrapped := layout.Wrap(t.Text, width)
	if len(wrapped) > lines {
		wrapped = wrapped[:lines]
	}
	return t.Style.Render(strings.Join(wrapped, "\n"))
}

func (m Model) renderStatus() string {
	st := m.ctrl.State()

	var left string
	switch st.Load {
	case feed.LoadingFirst, feed.LoadingNext:
		left = m.spinner.View() + " loading"
	case feed.Loaded:
		left = fmt.Sprintf("%d loaded", len(st.Items))
		if !st.ShouldLoad && len(st.Items) > 0 {
			left += ", end of feed"
		}
	}

	right := "? help"
	if st.Load == feed.Loaded && st.ShouldLoad && len(st.Items) == 0 {
		right = "r retry  " + right
	}
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return styles.StatusStyle.Render(ansi.Truncate(left+components.Pad(gap)+right, m.width, ""))
}
