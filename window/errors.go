package window

import "errors"

var (
	// ErrInvalidConfig indicates a non-positive step or width, or an
	// inverted age range.
	ErrInvalidConfig = errors.New("window: invalid grid or window configuration")
	// ErrInsufficientData indicates a window with zero members, which
	// makes the common resample size meaningless.
	ErrInsufficientData = errors.New("window: window contains no observations")
)
