package sanitize

import "errors"

var (
	// ErrInvalidButtonURL is returned by SanitizeBlock when a button's URL
	// fails protocol validation. A button without a destination is unusable,
	// so this path blocks instead of degrading silently.
	ErrInvalidButtonURL = errors.New("button url failed protocol validation")

	// ErrInvalidImageURL is returned by SanitizeBlock when an image's source
	// URL fails protocol validation.
	ErrInvalidImageURL = errors.New("image src failed protocol validation")
)
