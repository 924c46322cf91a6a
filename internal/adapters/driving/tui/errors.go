package tui

import "errors"

// ErrMissingRegistry is returned when the block registry is not provided.
var ErrMissingRegistry = errors.New("tui: block registry is required")

// ErrMissingInvoker is returned when the invoker is not provided.
var ErrMissingInvoker = errors.New("tui: block invoker is required")
