package errors

import "strconv"

// ERR is the closed set of error codes carried by *Error.
//
//nolint:revive,stylecheck // upper case names are kept in line with the wire enum naming
type ERR int32

const (
	ERR_UNKNOWN          ERR = 0
	ERR_INVALID_ARGUMENT ERR = 1
	ERR_PROCESSING       ERR = 4
	ERR_CONFIGURATION    ERR = 5
	ERR_CONTEXT_CANCELED ERR = 6

	// codec errors
	ERR_INSUFFICIENT_BYTES ERR = 20
	ERR_INVALID_FORMAT     ERR = 21
)

var (
	ERR_name = map[int32]string{
		0:  "UNKNOWN",
		1:  "INVALID_ARGUMENT",
		4:  "PROCESSING",
		5:  "CONFIGURATION",
		6:  "CONTEXT_CANCELED",
		20: "INSUFFICIENT_BYTES",
		21: "INVALID_FORMAT",
	}

	ERR_value = map[string]int32{
		"UNKNOWN":            0,
		"INVALID_ARGUMENT":   1,
		"PROCESSING":         4,
		"CONFIGURATION":      5,
		"CONTEXT_CANCELED":   6,
		"INSUFFICIENT_BYTES": 20,
		"INVALID_FORMAT":     21,
	}
)

func (x ERR) Enum() *ERR {
	p := new(ERR)
	*p = x

	return p
}

func (x ERR) String() string {
	if name, ok := ERR_name[int32(x)]; ok {
		return name
	}

	return strconv.Itoa(int(x))
}
