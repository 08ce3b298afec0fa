package bytesize

import (
	"testing"

	"github.com/bsv-blockchain/txwire/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want ByteSize
	}{
		{"0", 0},
		{"520", 520},
		{"10KB", 10 * KB},
		{"10 kb", 10 * KB},
		{"1.5K", 1536},
		{"4MB", 4 * MB},
		{"1G", GB},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "10XB", "1.2.3KB", "9000000000G", "8589934592G"} {
		_, err := Parse(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, errors.ErrInvalidArgument), in)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "41 B", ByteSize(41).String())
	assert.Equal(t, "1.50 KB", ByteSize(1536).String())
	assert.Equal(t, "2.00 MB", (2 * MB).String())
	assert.Equal(t, "1.00 GB", GB.String())
	assert.Equal(t, 1024, KB.Int())
}
