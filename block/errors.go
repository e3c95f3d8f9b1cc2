package block

import "fmt"

// ErrValueBeyondLimit is returned by Set/Add when a value does not fit
// the block's current representation. It is recoverable: the block's
// state is left unchanged. Inflatable consumes this error internally to
// trigger widening; it only reaches a caller that uses a FixedWidth or
// Bit block directly.
var ErrValueBeyondLimit = fmt.Errorf("block: value beyond representable limit")

// ErrIndexOutOfBounds is the panic value for Get/Set calls outside the
// valid index range. It is a programmer error, not a recoverable
// condition.
var ErrIndexOutOfBounds = fmt.Errorf("block: index out of bounds")

// ErrInvariantBroken is the panic value raised when a block produced by
// an Inflatable factory still rejects a value after widening. It
// indicates a broken factory, not caller misuse.
var ErrInvariantBroken = fmt.Errorf("block: invariant broken after inflation")

// ValueBeyondLimitError wraps ErrValueBeyondLimit with the offending
// value so callers can report it.
type ValueBeyondLimitError struct {
	Value int64
}

func (e *ValueBeyondLimitError) Error() string {
	return fmt.Sprintf("block: value %d beyond representable limit", e.Value)
}

func (e *ValueBeyondLimitError) Unwrap() error { return ErrValueBeyondLimit }

func outOfRange(v int64) error { return &ValueBeyondLimitError{Value: v} }
