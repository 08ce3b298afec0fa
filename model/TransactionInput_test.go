package model

import (
	"testing"

	"github.com/bsv-blockchain/txwire/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInput(t *testing.T, txidByte byte, vout uint32, script []byte, sequence uint32) *TransactionInput {
	t.Helper()

	var txid Txid
	for i := range txid {
		txid[i] = txidByte
	}

	return NewTransactionInput(NewOutPoint(txid, vout), NewScript(script), sequence)
}

func TestTransactionInputBytes(t *testing.T) {
	input := newTestInput(t, 0x11, 1, []byte{0x51, 0x52}, 0xfffffffe)

	b := input.Bytes()
	require.Len(t, b, 36+3+4)
	assert.Equal(t, input.Size(), len(b))

	assert.Equal(t, input.PreviousOutput.Bytes(), b[:36])
	assert.Equal(t, []byte{0x02, 0x51, 0x52}, b[36:39])
	assert.Equal(t, []byte{0xfe, 0xff, 0xff, 0xff}, b[39:])

	decoded, n, err := NewTransactionInputFromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, input, decoded)
	assert.Equal(t, len(b), n)
}

func TestNewTransactionInputFromBytes(t *testing.T) {
	encoded := newTestInput(t, 0x22, 3, []byte{0xaa, 0xbb, 0xcc}, 0xffffffff).Bytes()

	t.Run("trailing bytes are not consumed", func(t *testing.T) {
		input, n, err := NewTransactionInputFromBytes(append(append([]byte{}, encoded...), 0x01, 0x02))
		require.NoError(t, err)
		assert.Equal(t, len(encoded), n)
		assert.Equal(t, uint32(0xffffffff), input.Sequence)
	})

	// every truncation point must fail cleanly, whichever part it lands in
	for l := 0; l < len(encoded); l++ {
		input, n, err := NewTransactionInputFromBytes(encoded[:l])
		require.Error(t, err, "length %d", l)
		assert.Nil(t, input)
		assert.Equal(t, 0, n)
		assert.True(t, errors.Is(err, errors.ErrInsufficientBytes), "length %d", l)
	}
}

func TestTransactionInputNilParts(t *testing.T) {
	input := NewTransactionInput(nil, nil, 0)

	b := input.Bytes()
	assert.Len(t, b, minTransactionInputSize)
	assert.Equal(t, minTransactionInputSize, input.Size())

	decoded, n, err := NewTransactionInputFromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, minTransactionInputSize, n)
	assert.Equal(t, NewOutPoint(Txid{}, 0), decoded.PreviousOutput)
	assert.Equal(t, 0, decoded.ScriptSig.Len())
}
