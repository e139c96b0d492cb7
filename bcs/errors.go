package bcs

import "errors"

/*
Errors specific to the BCS wire format.
*/

////////////////////////////////////////////////////////////////////////////////

var ErrSequenceTooLong = errors.New("sequence length exceeds BCS maximum")

var ErrUlebOverflow = errors.New("ULEB128 value does not fit in a u32")

var ErrUlebNotMinimal = errors.New("ULEB128 encoding is not minimal")
