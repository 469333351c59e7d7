package configuration

import "errors"

// ErrUnknownColorMode is an error that occurs when a coloring policy string
// matches none of the known modes or their synonyms.
var ErrUnknownColorMode = errors.New("unknown color mode")
