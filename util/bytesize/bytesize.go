// Package bytesize parses and prints human readable byte counts such as "100KB" or "4 MB".
package bytesize

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bsv-blockchain/txwire/errors"
)

// ByteSize is a size in bytes
type ByteSize int

const (
	B  ByteSize = 1
	KB          = B * 1024
	MB          = KB * 1024
	GB          = MB * 1024
)

// Parse reads a number with an optional unit. A bare number is bytes.
func Parse(s string) (ByteSize, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, errors.NewInvalidArgumentError("empty byte size")
	}

	i := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})

	numPart, unit := s, "B"
	if i != -1 {
		numPart, unit = s[:i], strings.TrimSpace(s[i:])
	}

	num, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return 0, errors.NewInvalidArgumentError("invalid byte size %q", s, err)
	}

	var multiplier ByteSize

	switch unit {
	case "B":
		multiplier = B
	case "KB", "K":
		multiplier = KB
	case "MB", "M":
		multiplier = MB
	case "GB", "G":
		multiplier = GB
	default:
		return 0, errors.NewInvalidArgumentError("invalid byte size unit %q", unit)
	}

	size := num * float64(multiplier)

	// float64(math.MaxInt) rounds up to 2^63, which is already out of range
	if size >= float64(math.MaxInt) {
		return 0, errors.NewInvalidArgumentError("byte size %q is too large", s)
	}

	return ByteSize(size), nil
}

func (b ByteSize) String() string {
	switch {
	case b >= GB:
		return fmt.Sprintf("%.2f GB", float64(b)/float64(GB))
	case b >= MB:
		return fmt.Sprintf("%.2f MB", float64(b)/float64(MB))
	case b >= KB:
		return fmt.Sprintf("%.2f KB", float64(b)/float64(KB))
	default:
		return fmt.Sprintf("%d B", int(b))
	}
}

func (b ByteSize) Int() int {
	return int(b)
}
