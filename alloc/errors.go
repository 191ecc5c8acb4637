package alloc

import "errors"

var (
	// ErrBoundReached indicates the buffer is already at its element-count
	// bound and no legal growth exists. No allocation was performed.
	ErrBoundReached = errors.New("alloc: capacity bound reached")
)
