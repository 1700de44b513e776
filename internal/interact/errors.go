package interact

import (
	"errors"
	"fmt"

	"github.com/san-kum/grapher/internal/plot"
)

var (
	// ErrPersist wraps failures of the image writer.
	ErrPersist = errors.New("interact: failed to persist frame")
	// ErrInput is returned by Run once the key reader keeps failing.
	ErrInput = errors.New("interact: key input failed")
)

// RedrawError carries the key and viewport of the redraw that failed.
type RedrawError struct {
	Key     rune
	View    plot.Viewport
	Wrapped error
}

func (e *RedrawError) Error() string {
	return fmt.Sprintf("redraw after key %q (%v): %v", e.Key, e.View, e.Wrapped)
}

func (e *RedrawError) Unwrap() error {
	return e.Wrapped
}
