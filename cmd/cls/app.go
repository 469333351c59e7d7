package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/lessw2020/Color-ls/internal/filesystem"
	"github.com/lessw2020/Color-ls/internal/listing"
	"github.com/lessw2020/Color-ls/internal/render"
	"github.com/lessw2020/Color-ls/internal/schema"
	"github.com/lessw2020/Color-ls/internal/styling"
)

// App wires the collection, ordering and rendering stages for one
// invocation.
type App struct {
	stdout io.Writer
	stderr io.Writer

	fsHandler *filesystem.Handler
	renderer  *render.Renderer

	listOpts      listing.Options
	countChildren bool
}

// newApp returns a pointer to a new [App] for the given invocation options.
func newApp(stdout, stderr io.Writer, opts *options) *App {
	fsHandler := filesystem.NewHandler(&schema.OS{}, &schema.Unix{})

	styler := styling.NewStyler(stdout, opts.color.mode.Enabled())
	renderer := render.NewRenderer(stdout, styler, render.Options{
		Long:       opts.long,
		HumanSizes: opts.human,
		ShowCounts: !opts.noDirCounts,
	})

	return &App{
		stdout:    stdout,
		stderr:    stderr,
		fsHandler: fsHandler,
		renderer:  renderer,
		listOpts: listing.Options{
			ShowHidden: opts.all,
			ByModTime:  opts.byTime,
			Reverse:    opts.reverse,
		},
		countChildren: !opts.noDirCounts,
	}
}

// Run lists each path argument in sequence. Per-path failures are reported
// to the error stream and processing continues; no paths defaults to the
// current directory.
func (app *App) Run(paths []string) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	for i, path := range paths {
		if len(paths) > 1 {
			if i > 0 {
				fmt.Fprintln(app.stdout)
			}
			fmt.Fprintf(app.stdout, "%s:\n", path)
		}

		if err := app.listPath(path); err != nil {
			fmt.Fprintf(app.stderr, "%s: %s: %v\n", progName, path, err)
		}
	}
}

// listPath runs the pipeline for one path: collect, screen, partition, sort
// and render. The hidden-entry screen applies to scanned directory children
// only; a path argument naming a dot-file is always shown.
func (app *App) listPath(path string) error {
	collected, err := app.fsHandler.List(path, app.countChildren)
	if err != nil {
		return err
	}

	entries := collected.Entries
	if collected.FromDirectory {
		entries = listing.Screen(entries, app.listOpts.ShowHidden)
	}

	dirs, files := listing.Partition(entries)
	listing.Sort(dirs, app.listOpts)
	listing.Sort(files, app.listOpts)

	app.renderer.Render(dirs, files)

	slog.Debug("Listed path.",
		"path", path,
		"entries", len(entries),
		"total", humanize.IBytes(totalSize(entries)),
	)

	return nil
}

// totalSize sums entry sizes (with sizes < 0 counting as 0).
func totalSize(entries []*schema.Entry) uint64 {
	var total uint64

	for _, e := range entries {
		if e.Metadata != nil && e.Metadata.Size > 0 {
			total += uint64(e.Metadata.Size)
		}
	}

	return total
}
