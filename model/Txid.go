package model

import (
	"encoding/hex"

	"github.com/bsv-blockchain/go-bt/v2"
	"github.com/bsv-blockchain/txwire/errors"
)

// TxidSize is the width of a transaction identifier on the wire.
const TxidSize = 32

// Txid is an opaque 32 byte transaction identifier. Its text form is the lowercase hex of the
// bytes in wire order.
type Txid [TxidSize]byte

// NewTxidFromBytes copies b into a Txid. b must be exactly 32 bytes long.
func NewTxidFromBytes(b []byte) (Txid, error) {
	var txid Txid

	if len(b) != TxidSize {
		return txid, errors.NewInvalidFormatError("txid must be %d bytes, got %d", TxidSize, len(b))
	}

	copy(txid[:], b)

	return txid, nil
}

// NewTxidFromString parses the hex text form of a Txid.
func NewTxidFromString(s string) (Txid, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Txid{}, errors.NewInvalidFormatError("txid is not valid hex", err)
	}

	return NewTxidFromBytes(b)
}

func (t Txid) String() string {
	return hex.EncodeToString(t[:])
}

// ReverseString returns the hex of the reversed bytes, the order block explorers and RPC use.
func (t Txid) ReverseString() string {
	return hex.EncodeToString(bt.ReverseBytes(t[:]))
}

func (t Txid) CloneBytes() []byte {
	b := make([]byte, TxidSize)
	copy(b, t[:])

	return b
}

func (t Txid) IsEqual(other Txid) bool {
	return t == other
}

func (t Txid) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Txid) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.NewInvalidFormatError("txid must be a json string", err)
	}

	txid, err := NewTxidFromString(s)
	if err != nil {
		return err
	}

	*t = txid

	return nil
}
