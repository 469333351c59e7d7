// Package filesystem implements the metadata collection layer. A [Handler]
// turns path arguments into [schema.Entry] lists, reading metadata through
// injected operating system providers and performing the shallow child
// counting for directory entries.
package filesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

// osProvider defines operating system methods needed for entry collection.
type osProvider interface {
	ReadDir(name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
}

// unixProvider defines Unix syscall methods needed for metadata extraction.
type unixProvider interface {
	Lstat(path string, stat *unix.Stat_t) error
}

// Handler is the principal implementation of a filesystem [Handler].
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new filesystem [Handler].
func NewHandler(osHandler osProvider, unixHandler unixProvider) *Handler {
	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
	}
}
