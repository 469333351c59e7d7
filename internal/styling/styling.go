// Package styling implements the color classification of entries and the
// rendering of styled text using [lipgloss]. Color application is a
// capability of the [Styler] rather than string concatenation of escape
// codes, so disabling color yields byte-identical plain text.
package styling

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color identifies one of the display colors an entry can classify as.
type Color int

const (
	// ColorNone leaves text unstyled.
	ColorNone Color = iota

	// ColorDirectory paints directories.
	ColorDirectory

	// ColorSymlink paints symbolic links.
	ColorSymlink

	// ColorExecutable paints entries with any execute bit set.
	ColorExecutable

	// ColorArchive paints archive extensions.
	ColorArchive

	// ColorImage paints image and video extensions.
	ColorImage

	// ColorAudio paints audio extensions.
	ColorAudio

	// ColorUnclassified paints names whose extension is in no table.
	ColorUnclassified

	// ColorMuted paints secondary text, such as child-count digits.
	ColorMuted
)

// Styler renders text in a [Color], or passes it through verbatim when
// styling is disabled.
type Styler struct {
	styles  map[Color]lipgloss.Style
	enabled bool
}

// NewStyler returns a pointer to a new [Styler] writing to w. The underlying
// [lipgloss.Renderer] is pinned to an explicit color profile, so the outcome
// does not depend on terminal detection.
func NewStyler(w io.Writer, enabled bool) *Styler {
	renderer := lipgloss.NewRenderer(w)
	if enabled {
		renderer.SetColorProfile(termenv.ANSI)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	styles := map[Color]lipgloss.Style{
		ColorDirectory:    renderer.NewStyle().Foreground(lipgloss.Color("14")),
		ColorSymlink:      renderer.NewStyle().Foreground(lipgloss.Color("1")),
		ColorExecutable:   renderer.NewStyle().Foreground(lipgloss.Color("10")),
		ColorArchive:      renderer.NewStyle().Foreground(lipgloss.Color("1")),
		ColorImage:        renderer.NewStyle().Foreground(lipgloss.Color("5")),
		ColorAudio:        renderer.NewStyle().Foreground(lipgloss.Color("6")),
		ColorUnclassified: renderer.NewStyle().Foreground(lipgloss.Color("11")),
		ColorMuted:        renderer.NewStyle().Foreground(lipgloss.Color("8")),
	}

	return &Styler{
		styles:  styles,
		enabled: enabled,
	}
}

// Enabled reports whether the styler applies any color.
func (s *Styler) Enabled() bool {
	return s.enabled
}

// Paint renders text in the given [Color]. With styling disabled, or for
// [ColorNone], the text is returned unchanged.
func (s *Styler) Paint(text string, c Color) string {
	if !s.enabled || c == ColorNone {
		return text
	}

	style, exists := s.styles[c]
	if !exists {
		return text
	}

	return style.Render(text)
}
