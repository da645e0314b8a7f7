package output

import "errors"

// ErrUnsupportedFormat is returned when no formatter matches the requested format name
var ErrUnsupportedFormat = errors.New("unsupported report format")
