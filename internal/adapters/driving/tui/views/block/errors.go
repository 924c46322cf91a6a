package block

import "errors"

// ErrNoInvoker indicates that no block invoker was provided.
var ErrNoInvoker = errors.New("block invoker is required")

// ErrNoBlock indicates that the form has no block loaded.
var ErrNoBlock = errors.New("no block selected")
