package stunpack

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies why a decompress operation failed. Decoders return an
// error wrapping a *Error that carries a Kind (recovered with AsError) so
// tests and callers can distinguish rejection reasons without parsing
// message text.
type Kind int

const (
	// InputTooLarge means the compressed file exceeds the 24-bit length cap.
	InputTooLarge Kind = iota
	// Truncated means a read would go past input end where more data is
	// required. It is also reported for a multi-pass header declaring zero
	// passes.
	Truncated
	// OverflowOutput means a write would go past the declared output length.
	OverflowOutput
	// UnderflowOutput means input was exhausted before output reached its declared length.
	UnderflowOutput
	// BadAlgorithmTag means the per-pass algorithm byte was neither 0x01 nor 0x02.
	BadAlgorithmTag
	// BadRLEEscapeTable means the escape count exceeded 10.
	BadRLEEscapeTable
	// BadVLEHeader means widths_lengths failed its high-bit/count validation.
	BadVLEHeader
	// BadVLECode means the escape loop ran away or produced an out-of-range index.
	BadVLECode
	// AllocationFailed means an intermediate or output buffer could not be allocated.
	AllocationFailed
)

func (k Kind) String() string {
	switch k {
	case InputTooLarge:
		return "InputTooLarge"
	case Truncated:
		return "Truncated"
	case OverflowOutput:
		return "OverflowOutput"
	case UnderflowOutput:
		return "UnderflowOutput"
	case BadAlgorithmTag:
		return "BadAlgorithmTag"
	case BadRLEEscapeTable:
		return "BadRLEEscapeTable"
	case BadVLEHeader:
		return "BadVLEHeader"
	case BadVLECode:
		return "BadVLECode"
	case AllocationFailed:
		return "AllocationFailed"
	default:
		return "Unknown"
	}
}

// Error is the failure type returned by every stunpack decode operation.
// It carries the byte offset at which the fault was detected, which is
// invaluable when diagnosing a truncated or hand-edited container.
type Error struct {
	Kind   Kind
	Offset int
	msg    string
}

func newError(kind Kind, offset int, msg string) error {
	return errors.WithStack(&Error{Kind: kind, Offset: offset, msg: msg})
}

func newErrorf(kind Kind, offset int, format string, args ...interface{}) error {
	return errors.WithStack(&Error{Kind: kind, Offset: offset, msg: fmt.Sprintf(format, args...)})
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.msg)
}

// AsError unwraps err (which may have been wrapped by errors.WithStack or
// errors.Wrap along the way) back to its originating *Error, if any.
func AsError(err error) (*Error, bool) {
	type causer interface {
		Cause() error
	}

	for err != nil {
		if se, ok := err.(*Error); ok {
			return se, true
		}
		c, ok := err.(causer)
		if !ok {
			return nil, false
		}
		err = c.Cause()
	}
	return nil, false
}
