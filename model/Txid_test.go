package model

import (
	"strings"
	"testing"

	"github.com/bsv-blockchain/txwire/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const txidHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestNewTxidFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		txid, err := NewTxidFromString(txidHex)
		require.NoError(t, err)

		// byte order is preserved
		assert.Equal(t, byte(0x00), txid[0])
		assert.Equal(t, byte(0x1f), txid[31])
		assert.Equal(t, txidHex, txid.String())
	})

	t.Run("upper case is normalised", func(t *testing.T) {
		txid, err := NewTxidFromString(strings.ToUpper(txidHex))
		require.NoError(t, err)
		assert.Equal(t, txidHex, txid.String())
	})

	t.Run("invalid", func(t *testing.T) {
		tests := []struct {
			name  string
			input string
		}{
			{"empty", ""},
			{"too short", txidHex[:62]},
			{"too long", txidHex + "00"},
			{"odd length", txidHex[:63]},
			{"not hex", strings.Repeat("zz", 32)},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewTxidFromString(tt.input)
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrInvalidFormat))
			})
		}
	})
}

func TestNewTxidFromBytes(t *testing.T) {
	b := make([]byte, TxidSize)
	b[0] = 0xab

	txid, err := NewTxidFromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, byte(0xab), txid[0])

	// the txid is a copy
	b[0] = 0x00
	assert.Equal(t, byte(0xab), txid[0])

	clone := txid.CloneBytes()
	clone[0] = 0x01
	assert.Equal(t, byte(0xab), txid[0])

	_, err = NewTxidFromBytes(b[:31])
	assert.True(t, errors.Is(err, errors.ErrInvalidFormat))
}

func TestTxidReverseString(t *testing.T) {
	txid, err := NewTxidFromString(txidHex)
	require.NoError(t, err)

	assert.Equal(t, "1f1e1d1c1b1a191817161514131211100f0e0d0c0b0a09080706050403020100", txid.ReverseString())
	assert.Equal(t, txidHex, txid.String())
}

func TestTxidIsEqual(t *testing.T) {
	a := Txid{1}
	b := Txid{1}
	c := Txid{2}

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestTxidJSON(t *testing.T) {
	txid, err := NewTxidFromString(txidHex)
	require.NoError(t, err)

	data, err := json.Marshal(txid)
	require.NoError(t, err)
	assert.Equal(t, `"`+txidHex+`"`, string(data))

	var decoded Txid
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, txid, decoded)

	err = json.Unmarshal([]byte(`"abcd"`), &decoded)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "txid must be 32 bytes")
	assert.Equal(t, txid, decoded)

	err = json.Unmarshal([]byte(`12`), &decoded)
	require.Error(t, err)
}
