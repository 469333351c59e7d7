// Package render implements the terminal output stage, formatting ordered
// entry groups as either a compact grid or long detail lines.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lessw2020/Color-ls/internal/schema"
	"github.com/lessw2020/Color-ls/internal/styling"
)

// Options control the output format of a [Renderer].
type Options struct {
	// Long renders one detail line per entry instead of the grid.
	Long bool

	// HumanSizes scales sizes to K/M/G/... units.
	HumanSizes bool

	// ShowCounts annotates directory names with their child count; when
	// disabled, directories get a plain "/" suffix instead.
	ShowCounts bool
}

// Renderer writes ordered, grouped entries to a terminal.
type Renderer struct {
	w      io.Writer
	styler *styling.Styler
	opts   Options
}

// NewRenderer returns a pointer to a new [Renderer] writing to w.
func NewRenderer(w io.Writer, styler *styling.Styler, opts Options) *Renderer {
	return &Renderer{
		w:      w,
		styler: styler,
		opts:   opts,
	}
}

// Render writes one path's listing, directories group first.
func (r *Renderer) Render(dirs, files []*schema.Entry) {
	if r.opts.Long {
		r.renderLong(dirs, files)

		return
	}

	r.renderShort(dirs, files)
}

// renderShort writes the grid form: a leading spacer line, one row per
// non-empty group, and a trailing spacer line.
func (r *Renderer) renderShort(dirs, files []*schema.Entry) {
	fmt.Fprintln(r.w)

	if len(dirs) > 0 {
		for _, e := range dirs {
			fmt.Fprintf(r.w, "%s  ", r.decoratedName(e))
		}
		fmt.Fprintln(r.w)
	}

	if len(files) > 0 {
		for _, e := range files {
			fmt.Fprintf(r.w, "%s  ", r.decoratedName(e))
		}
		fmt.Fprintln(r.w)
	}

	fmt.Fprintln(r.w)
}

// renderLong writes one detail line per entry, with a blank line separating
// the groups when both are non-empty.
func (r *Renderer) renderLong(dirs, files []*schema.Entry) {
	for _, e := range dirs {
		r.longLine(e)
	}

	if len(dirs) > 0 && len(files) > 0 {
		fmt.Fprintln(r.w)
	}

	for _, e := range files {
		r.longLine(e)
	}
}

func (r *Renderer) longLine(e *schema.Entry) {
	var mode uint32
	var nlink uint64
	var size int64

	if e.Metadata != nil {
		mode = e.Metadata.Mode
		nlink = e.Metadata.Nlink
		size = e.Metadata.Size
	}

	fmt.Fprintf(r.w, "%s %3d %8s %s %s\n",
		FormatPermissions(mode),
		nlink,
		FormatSize(size, r.opts.HumanSizes),
		FormatTime(e.ModTime()),
		r.decoratedName(e),
	)
}

// decoratedName renders the colored name plus the directory suffix
// annotation: "(N)" for a known child count, "[?]" for an unknown one, or a
// plain "/" when counting is disabled. Non-directories get no suffix.
func (r *Renderer) decoratedName(e *schema.Entry) string {
	color := styling.Classify(e)
	name := r.styler.Paint(e.Name, color)

	if !e.IsDir() {
		return name
	}

	if !r.opts.ShowCounts {
		return name + r.styler.Paint("/", color)
	}

	if e.ChildCount != nil {
		return name +
			r.styler.Paint("(", color) +
			r.styler.Paint(strconv.FormatUint(*e.ChildCount, 10), styling.ColorMuted) +
			r.styler.Paint(")", color)
	}

	return name +
		r.styler.Paint("[", color) +
		r.styler.Paint("?", styling.ColorMuted) +
		r.styler.Paint("]", color)
}
