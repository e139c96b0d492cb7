package serde

import "errors"

/*
Errors shared by all wire format implementations.
*/

////////////////////////////////////////////////////////////////////////////////

// ErrShortInput is returned when the input ends before a value is complete.
var ErrShortInput = errors.New("input is too short")

// ErrDepthExceeded is returned when nested containers exceed the format's
// depth budget.
var ErrDepthExceeded = errors.New("maximum container depth exceeded")

// ErrInvalidBool is returned when a boolean byte is neither 0 nor 1.
var ErrInvalidBool = errors.New("invalid bool byte")

// ErrInvalidChar is returned when a char value is not a valid Unicode code
// point.
var ErrInvalidChar = errors.New("invalid char value")

// ErrNonCanonicalMapKeys is returned by canonical formats when map keys are
// not serialized in strictly increasing byte order.
var ErrNonCanonicalMapKeys = errors.New("map keys are not in strictly increasing byte order")
