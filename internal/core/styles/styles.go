package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/hay-kot/reviewdeck/internal/core/content"
)

// Glyphs drawn in place of images that have not loaded.
const (
	GlyphAvatar = "◉"
	GlyphPhoto  = "▨"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	// CLI status prefixes.
	SuccessStyle lipgloss.Style
	InfoStyle    lipgloss.Style
	ErrorStyle   lipgloss.Style

	// Review content.
	BodyStyle      lipgloss.Style
	AuthorStyle    lipgloss.Style
	CreatedAtStyle lipgloss.Style
	CountStyle     lipgloss.Style
	StarOnStyle    lipgloss.Style
	StarOffStyle   lipgloss.Style
	ShowMoreStyle  lipgloss.Style

	// TUI chrome.
	CursorStyle      lipgloss.Style
	PlaceholderStyle lipgloss.Style
	StatusStyle      lipgloss.Style
	SpinnerStyle     lipgloss.Style

	// Help overlay.
	ModalStyle      lipgloss.Style
	HelpTitleStyle  lipgloss.Style
	HelpKeyStyle    lipgloss.Style
	HelpDescStyle   lipgloss.Style
	HelpFooterStyle lipgloss.Style
)

// ColorPool is used for deterministic placeholder colors per author.
var ColorPool []color.Color

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Success)
	InfoStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)
	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Error)

	BodyStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	AuthorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)
	CreatedAtStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	CountStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Italic(true)
	StarOnStyle = lipgloss.NewStyle().
		Foreground(p.Rating)
	StarOffStyle = lipgloss.NewStyle().
		Foreground(p.Surface)
	ShowMoreStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Underline(true)

	CursorStyle = lipgloss.NewStyle().
		Foreground(p.Primary)
	PlaceholderStyle = lipgloss.NewStyle().
		Foreground(Blend(p.Surface, p.Muted, 0.5)).
		Background(p.Surface)
	StatusStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	SpinnerStyle = lipgloss.NewStyle().
		Foreground(p.Primary)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Background(p.Background).
		Padding(1, 2)
	HelpTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Foreground)
	HelpKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)
	HelpDescStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	HelpFooterStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	ColorPool = []color.Color{
		p.Primary,
		p.Secondary,
		p.Success,
		p.Warning,
		p.Rating,
		p.Error,
	}
}

// Content returns the styles applied to review content.
func Content() content.Styles {
	return content.Styles{
		Body:      BodyStyle,
		CreatedAt: CreatedAtStyle,
		Author:    AuthorStyle,
		Count:     CountStyle,
		StarOn:    StarOnStyle,
		StarOff:   StarOffStyle,
	}
}

// ColorForString returns a deterministic color for a given string.
// The same string always produces the same color.
func ColorForString(s string) color.Color {
	var hash uint32
	for _, c := range s {
		hash = hash*31 + uint32(c)
	}
	return ColorPool[hash%uint32(len(ColorPool))]
}

// Blend mixes a toward b in Lab space; t=0 is a, t=1 is b. Colors that
// cannot be converted yield a unchanged.
func Blend(a, b color.Color, t float64) color.Color {
	ca, ok := colorful.MakeColor(a)
	if !ok {
		return a
	}
	cb, ok := colorful.MakeColor(b)
	if !ok {
		return a
	}
	return ca.BlendLab(cb, t).Clamped()
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
