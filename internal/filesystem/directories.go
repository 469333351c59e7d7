package filesystem

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"unicode/utf8"

	"github.com/lessw2020/Color-ls/internal/schema"
)

// Listing holds the collected entries for a single path argument.
type Listing struct {
	// Entries are the collected entries, in enumeration order.
	Entries []*schema.Entry

	// FromDirectory reports whether Entries are the scanned children of a
	// directory target (as opposed to the wrapped target path itself).
	FromDirectory bool
}

// List collects the [schema.Entry] elements for one path argument. A
// directory target is enumerated one level deep (never recursively); any
// other target is wrapped as a single entry. A stat failure on an individual
// child only skips that child, whereas an unreadable directory or an
// undecodable child name fails the whole listing.
func (f *Handler) List(path string, countChildren bool) (*Listing, error) {
	// The target probe follows symlinks, so a link to a directory given as
	// an argument lists that directory's contents.
	info, err := f.osHandler.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("(fs-list) %w", err)
	}

	if !info.IsDir() {
		entry, err := f.entryFromPath(path, countChildren)
		if err != nil {
			return nil, fmt.Errorf("(fs-list) %w", err)
		}

		return &Listing{Entries: []*schema.Entry{entry}}, nil
	}

	children, err := f.osHandler.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("(fs-list) failed to readdir: %w", err)
	}

	entries := make([]*schema.Entry, 0, len(children))

	for _, child := range children {
		name := child.Name()

		if !utf8.ValidString(name) {
			return nil, fmt.Errorf("(fs-list) %q: %w", name, ErrInvalidName)
		}

		entry, err := f.entryFromPath(filepath.Join(path, name), countChildren)
		if err != nil {
			slog.Warn("Skipped entry: failed to get metadata.",
				"err", err,
				"path", filepath.Join(path, name),
			)

			continue
		}

		entries = append(entries, entry)
	}

	return &Listing{Entries: entries, FromDirectory: true}, nil
}

// entryFromPath constructs a single [schema.Entry] from a path, attaching a
// child count for directory entries when counting is enabled.
func (f *Handler) entryFromPath(path string, countChildren bool) (*schema.Entry, error) {
	metadata, kind, err := f.getMetadata(path)
	if err != nil {
		return nil, err
	}

	entry := &schema.Entry{
		Name:     filepath.Base(path),
		FullPath: path,
		Kind:     kind,
		Metadata: metadata,
	}

	if kind == schema.KindDirectory && countChildren {
		entry.ChildCount = f.CountChildren(path)
	}

	return entry, nil
}

// CountChildren performs a shallow enumeration of a directory and returns the
// number of immediate children, hidden ones included (the count reflects true
// content, not the filtered view). It returns nil when the enumeration fails,
// so a single unreadable subdirectory never aborts the listing.
func (f *Handler) CountChildren(path string) *uint64 {
	children, err := f.osHandler.ReadDir(path)
	if err != nil {
		return nil
	}

	count := uint64(len(children))

	return &count
}
