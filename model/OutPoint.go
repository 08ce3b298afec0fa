package model

import (
	"encoding/binary"

	"github.com/bsv-blockchain/txwire/errors"
)

// OutPointSize is the fixed wire size of an OutPoint: txid followed by a 4 byte index.
const OutPointSize = TxidSize + 4

// OutPoint references a single output of a previous transaction.
type OutPoint struct {
	TxID Txid   `json:"txid"`
	Vout uint32 `json:"vout"`
}

func NewOutPoint(txid Txid, vout uint32) *OutPoint {
	return &OutPoint{
		TxID: txid,
		Vout: vout,
	}
}

func (o *OutPoint) Bytes() []byte {
	return o.appendBytes(make([]byte, 0, OutPointSize))
}

func (o *OutPoint) appendBytes(b []byte) []byte {
	if o == nil {
		return append(b, make([]byte, OutPointSize)...)
	}

	b = append(b, o.TxID[:]...)

	return binary.LittleEndian.AppendUint32(b, o.Vout)
}

// NewOutPointFromBytes decodes an OutPoint from the front of b. It always consumes 36 bytes.
func NewOutPointFromBytes(b []byte) (*OutPoint, int, error) {
	if len(b) < OutPointSize {
		return nil, 0, errors.NewInsufficientBytesError(OutPointSize, len(b), "outpoint needs %d bytes, got %d", OutPointSize, len(b))
	}

	o := &OutPoint{
		Vout: binary.LittleEndian.Uint32(b[TxidSize:OutPointSize]),
	}
	copy(o.TxID[:], b[:TxidSize])

	return o, OutPointSize, nil
}
