package chromamatte

import "errors"

var (
	// ErrInvalidImage reports a degenerate input buffer: empty, or too
	// small to hold the requested border.
	ErrInvalidImage = errors.New("chromamatte: invalid image")

	// ErrInvalidParameter reports an out-of-range tuning knob. It is
	// returned before any pixel is processed.
	ErrInvalidParameter = errors.New("chromamatte: invalid parameter")

	// ErrLowConfidence reports that background detection produced a result
	// but the dominant cluster covers too little of the border. The
	// returned detection is still populated; the caller decides whether
	// to use it or force a target color.
	ErrLowConfidence = errors.New("chromamatte: low confidence detection")
)
