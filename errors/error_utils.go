// Package errors provides utilities for categorizing and handling errors in txwire.
package errors

import "errors"

// IsInsufficientBytesError reports whether err (or anything it wraps) signals a truncated buffer.
// Stream readers use this to decide whether to wait for more bytes instead of failing.
func IsInsufficientBytesError(err error) bool {
	if err == nil {
		return false
	}

	return Is(err, ErrInsufficientBytes)
}

// IsInvalidFormatError reports whether err signals a structural problem other than length.
func IsInvalidFormatError(err error) bool {
	if err == nil {
		return false
	}

	return Is(err, ErrInvalidFormat)
}

// IsCodecError reports whether err belongs to the codec error kinds.
func IsCodecError(err error) bool {
	return IsInsufficientBytesError(err) || IsInvalidFormatError(err)
}

// Kind returns a short, stable label for err, suitable for metric labels.
func Kind(err error) string {
	if err == nil {
		return ""
	}

	var tErr *Error
	if As(err, &tErr) {
		return tErr.Code().String()
	}

	return ERR_UNKNOWN.String()
}

// NeededBytes returns the number of bytes an insufficient-bytes error asked for, if it carries it.
func NeededBytes(err error) (int, bool) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		tErr, ok := e.(*Error)
		if !ok || tErr == nil || tErr.code != ERR_INSUFFICIENT_BYTES {
			continue
		}

		needed, ok := tErr.GetData("needed").(int)

		return needed, ok
	}

	return 0, false
}
