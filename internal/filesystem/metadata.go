package filesystem

import (
	"fmt"
	"time"

	"github.com/lessw2020/Color-ls/internal/schema"
	"golang.org/x/sys/unix"
)

// getMetadata extracts [schema.Metadata] and the [schema.Kind] for a path.
// Symbolic links are not followed, so a link to a directory classifies as
// [schema.KindSymlink].
func (f *Handler) getMetadata(path string) (*schema.Metadata, schema.Kind, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Lstat(path, &stat); err != nil {
		return nil, schema.KindRegular, fmt.Errorf("(fs-metadata) failed to lstat: %w", err)
	}

	metadata := &schema.Metadata{
		Mode:       uint32(stat.Mode),
		Nlink:      uint64(stat.Nlink),
		Size:       stat.Size,
		ModifiedAt: time.Unix(stat.Mtim.Unix()),
	}

	return metadata, kindFromMode(uint32(stat.Mode)), nil
}

// kindFromMode maps raw st_mode type bits to a [schema.Kind].
func kindFromMode(mode uint32) schema.Kind {
	switch mode & unix.S_IFMT {
	case unix.S_IFDIR:
		return schema.KindDirectory
	case unix.S_IFLNK:
		return schema.KindSymlink
	case unix.S_IFREG:
		return schema.KindRegular
	default:
		return schema.KindSpecial
	}
}
