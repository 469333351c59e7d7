// Package schema provides the principal schematics for all other packages. It
// defines the listed entry model, filesystem interfaces and provides
// implementations for handling (Unix-based) operating system syscalls. The
// package serves as a foundational layer for filesystem interactions
// throughout the codebase.
package schema

import "time"

// Kind classifies a filesystem [Entry] by its type.
type Kind int

const (
	// KindRegular is a regular file.
	KindRegular Kind = iota

	// KindDirectory is a directory.
	KindDirectory

	// KindSymlink is a symbolic link (never followed for classification).
	KindSymlink

	// KindSpecial is any other special file (block or character device,
	// FIFO or socket).
	KindSpecial
)

// Metadata holds the filesystem metadata of an [Entry], taken verbatim from
// the operating system at collection time.
type Metadata struct {
	Mode       uint32
	Nlink      uint64
	Size       int64
	ModifiedAt time.Time
}

// Entry is one filesystem object being listed. Entries are immutable once
// constructed; later pipeline stages only reorder and regroup them.
type Entry struct {
	// Name is the display name (the final path segment).
	Name string

	// FullPath is the resolved path used for metadata and further I/O.
	FullPath string

	// Kind is the classified type of the entry.
	Kind Kind

	// Metadata holds the raw filesystem metadata of the entry.
	Metadata *Metadata

	// ChildCount is the number of immediate children of a directory entry.
	// It is nil when counting is disabled, when the entry is not a
	// directory, or when the shallow enumeration failed.
	ChildCount *uint64
}

// IsDir reports whether the entry is a directory.
func (e *Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// ModTime returns the modification time of the entry, or the zero time when
// no metadata was collected (sorting treats that as the oldest value).
func (e *Entry) ModTime() time.Time {
	if e.Metadata == nil {
		return time.Time{}
	}

	return e.Metadata.ModifiedAt
}
