package tui

import (
	"image"
	"image/color"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"golang.org/x/image/draw"

	"github.com/hay-kot/reviewdeck/internal/core/styles"
	"github.com/hay-kot/reviewdeck/pkg/kv"
)

// maxThumbs bounds the number of rendered thumbnails kept around.
const maxThumbs = 512

const halfBlock = "▀"

type thumbKey struct {
	url  string
	w, h int
}

// thumbs renders decoded images into cell blocks and memoizes the result
// per URL and size.
type thumbs struct {
	rendered *kv.Store[thumbKey, string]
}

func newThumbs() *thumbs {
	return &thumbs{rendered: kv.NewBounded[thumbKey, string](maxThumbs)}
}

// render returns img drawn into a w x h cell block.
func (t *thumbs) render(url string, img image.Image, w, h int) string {
	return t.rendered.GetOrSet(thumbKey{url: url, w: w, h: h}, func() string {
		return halfBlocks(img, w, h)
	})
}

// halfBlocks scales img to w x 2h pixels and draws two vertical pixels per
// cell: the foreground colors the upper half, the background the lower.
func halfBlocks(img image.Image, w, h int) string {
	if img == nil || w <= 0 || h <= 0 {
		return ""
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h*2))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	var b strings.Builder
	for y := range h {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range w {
			top := opaque(dst.RGBAAt(x, 2*y))
			bottom := opaque(dst.RGBAAt(x, 2*y+1))
			b.WriteString(lipgloss.NewStyle().Foreground(top).Background(bottom).Render(halfBlock))
		}
	}
	return b.String()
}

// opaque drops alpha so transparent pixels do not render as black.
func opaque(c color.RGBA) color.Color {
	if c.A == 0xff {
		return c
	}
	if c.A == 0 {
		return styles.CurrentPalette.Background
	}
	// RGBA is premultiplied
	straight := color.RGBA{
		R: uint8(uint32(c.R) * 0xff / uint32(c.A)),
		G: uint8(uint32(c.G) * 0xff / uint32(c.A)),
		B: uint8(uint32(c.B) * 0xff / uint32(c.A)),
		A: 0xff,
	}
	return styles.Blend(styles.CurrentPalette.Background, straight, float64(c.A)/0xff)
}

// avatarPlaceholder is the avatar glyph tinted with a color derived from the
// author so rows stay distinguishable before avatars load.
func avatarPlaceholder(author string, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	return styles.PlaceholderStyle.
		Foreground(styles.ColorForString(author)).
		Width(w).
		Height(h).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styles.GlyphAvatar)
}

// placeholder fills a w x h block with glyph centered on the surface color.
func placeholder(glyph string, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	return styles.PlaceholderStyle.
		Width(w).
		Height(h).
		Align(lipgloss.Center, lipgloss.Center).
		Render(glyph)
}
