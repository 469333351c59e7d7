package styling

import (
	"strings"

	"github.com/lessw2020/Color-ls/internal/schema"
	"golang.org/x/sys/unix"
)

// anyExecBits are the owner, group and other execute permission bits.
const anyExecBits = unix.S_IXUSR | unix.S_IXGRP | unix.S_IXOTH

//nolint:gochecknoglobals
var (
	// archiveExtensions is the closed set of extensions painted as archives.
	archiveExtensions = extensionSet(
		"tar", "tgz", "arc", "arj", "taz", "lha", "lz4", "lzh", "lzma",
		"tlz", "txz", "tzo", "t7z", "zip", "z", "dz", "gz", "lrz", "lz",
		"lzo", "xz", "zst", "tzst", "bz2", "bz", "tbz", "tbz2", "tz",
		"deb", "rpm", "jar", "war", "ear", "sar", "rar", "alz", "ace",
		"zoo", "cpio", "7z", "rz", "cab", "wim", "swm", "dwm", "esd",
	)

	// imageExtensions is the closed set of extensions painted as images.
	imageExtensions = extensionSet(
		"jpg", "jpeg", "mjpg", "mjpeg", "gif", "bmp", "pbm", "pgm", "ppm",
		"tga", "xbm", "xpm", "tif", "tiff", "png", "svg", "svgz", "mng",
		"pcx", "mov", "mpg", "mpeg", "m2v", "mkv", "webm", "ogm", "mp4",
		"m4v", "mp4v", "vob", "qt", "nuv", "wmv", "asf", "rm", "rmvb",
		"flc", "avi", "fli", "flv", "gl", "dl", "xcf", "xwd", "yuv",
		"cgm", "emf", "ogv", "ogx",
	)

	// audioExtensions is the closed set of extensions painted as audio.
	audioExtensions = extensionSet(
		"aac", "au", "flac", "m4a", "mid", "midi", "mka", "mp3", "mpc",
		"ogg", "ra", "wav", "oga", "opus", "spx", "xspf",
	)
)

func extensionSet(extensions ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		set[ext] = struct{}{}
	}

	return set
}

// Classify maps a [schema.Entry] to its display [Color]. First match wins:
// directory, symlink, any executable bit, then the case-insensitive extension
// tables. A name with an extension outside every table classifies as
// [ColorUnclassified]; an extensionless name stays [ColorNone]. The function
// is pure and deterministic for identical input.
func Classify(e *schema.Entry) Color {
	switch e.Kind {
	case schema.KindDirectory:
		return ColorDirectory
	case schema.KindSymlink:
		return ColorSymlink
	}

	if e.Metadata != nil && e.Metadata.Mode&anyExecBits != 0 {
		return ColorExecutable
	}

	ext, ok := extension(e.Name)
	if !ok {
		return ColorNone
	}

	if _, found := archiveExtensions[ext]; found {
		return ColorArchive
	}
	if _, found := imageExtensions[ext]; found {
		return ColorImage
	}
	if _, found := audioExtensions[ext]; found {
		return ColorAudio
	}

	return ColorUnclassified
}

// extension returns the lowercased extension of a name. A leading dot marks a
// hidden name, not an extension, so ".bashrc" has none.
func extension(name string) (string, bool) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return "", false
	}

	return strings.ToLower(name[idx+1:]), true
}
