package filesystem

import "errors"

// ErrInvalidName is an error that occurs when the raw name of a directory
// child cannot be decoded as valid text.
var ErrInvalidName = errors.New("name is not valid text")
