// Package listing implements the display ordering stage: hidden-entry
// screening, partitioning into directories and files, and stable sorting of
// each group.
package listing

import (
	"slices"
	"strings"

	"github.com/lessw2020/Color-ls/internal/schema"
)

// Options control the screening and ordering of entries.
type Options struct {
	// ShowHidden includes entries whose name starts with a dot.
	ShowHidden bool

	// ByModTime sorts by modification time (oldest first) instead of name.
	ByModTime bool

	// Reverse fully reverses each ordered group.
	Reverse bool
}

// Screen drops hidden (dot-prefixed) entries unless showHidden is set. It
// applies to display only; directory child counts are collected beforehand
// and remain unaffected.
func Screen(entries []*schema.Entry, showHidden bool) []*schema.Entry {
	if showHidden {
		return entries
	}

	screened := make([]*schema.Entry, 0, len(entries))
	for _, e := range entries {
		if !strings.HasPrefix(e.Name, ".") {
			screened = append(screened, e)
		}
	}

	return screened
}

// Partition splits entries into a directories group and a files group,
// preserving enumeration order within each.
func Partition(entries []*schema.Entry) (dirs, files []*schema.Entry) {
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}

	return dirs, files
}

// Sort orders one group in place. The sort is stable, so equal keys keep
// their enumeration order; a missing modification time sorts as the oldest
// possible value.
func Sort(entries []*schema.Entry, opts Options) {
	if opts.ByModTime {
		slices.SortStableFunc(entries, func(a, b *schema.Entry) int {
			return a.ModTime().Compare(b.ModTime())
		})
	} else {
		slices.SortStableFunc(entries, func(a, b *schema.Entry) int {
			return strings.Compare(a.Name, b.Name)
		})
	}

	if opts.Reverse {
		slices.Reverse(entries)
	}
}

// Arrange applies the full ordering pipeline: screening, partitioning and
// the per-group sort. Directories are meant to render before files.
func Arrange(entries []*schema.Entry, opts Options) (dirs, files []*schema.Entry) {
	dirs, files = Partition(Screen(entries, opts.ShowHidden))

	Sort(dirs, opts)
	Sort(files, opts)

	return dirs, files
}
