package render

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sys/unix"
)

//nolint:gochecknoglobals
var sizeUnits = []string{"B", "K", "M", "G", "T", "P"}

// longTimeFormat is the timestamp layout of a long-format line.
const longTimeFormat = "Jan 02 15:04"

// FormatPermissions renders raw st_mode bits as the usual ten-character
// string: one type character followed by the rwx triplets for owner, group
// and other.
func FormatPermissions(mode uint32) string {
	b := make([]byte, 0, 10)

	switch mode & unix.S_IFMT {
	case unix.S_IFDIR:
		b = append(b, 'd')
	case unix.S_IFLNK:
		b = append(b, 'l')
	case unix.S_IFBLK:
		b = append(b, 'b')
	case unix.S_IFCHR:
		b = append(b, 'c')
	case unix.S_IFIFO:
		b = append(b, 'p')
	case unix.S_IFSOCK:
		b = append(b, 's')
	default:
		b = append(b, '-')
	}

	b = appendTriplet(b, mode, unix.S_IRUSR, unix.S_IWUSR, unix.S_IXUSR)
	b = appendTriplet(b, mode, unix.S_IRGRP, unix.S_IWGRP, unix.S_IXGRP)
	b = appendTriplet(b, mode, unix.S_IROTH, unix.S_IWOTH, unix.S_IXOTH)

	return string(b)
}

func appendTriplet(b []byte, mode uint32, read, write, execute uint32) []byte {
	for _, bit := range [3]struct {
		mask uint32
		char byte
	}{{read, 'r'}, {write, 'w'}, {execute, 'x'}} {
		if mode&bit.mask != 0 {
			b = append(b, bit.char)
		} else {
			b = append(b, '-')
		}
	}

	return b
}

// FormatSize renders a byte count. In human-readable mode the size is scaled
// by 1024 through B, K, M, G, T and P, stopping at the largest unit where the
// scaled value stays below 1024; the base unit renders with no decimals, all
// others with one.
func FormatSize(size int64, humanReadable bool) string {
	if !humanReadable {
		return strconv.FormatInt(size, 10)
	}

	value := float64(size)
	unit := 0

	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%.0f%s", value, sizeUnits[unit])
	}

	return fmt.Sprintf("%.1f%s", value, sizeUnits[unit])
}

// FormatTime renders a modification time for a long-format line.
func FormatTime(t time.Time) string {
	return t.Format(longTimeFormat)
}
