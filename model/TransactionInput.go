package model

import (
	"encoding/binary"

	"github.com/bsv-blockchain/txwire/errors"
)

// minTransactionInputSize is an outpoint, a one byte empty script and the sequence.
const minTransactionInputSize = OutPointSize + 1 + 4

type TransactionInput struct {
	PreviousOutput *OutPoint `json:"previous_output"`
	ScriptSig      *Script   `json:"script_sig"`
	Sequence       uint32    `json:"sequence"`
}

func NewTransactionInput(previousOutput *OutPoint, scriptSig *Script, sequence uint32) *TransactionInput {
	return &TransactionInput{
		PreviousOutput: previousOutput,
		ScriptSig:      scriptSig,
		Sequence:       sequence,
	}
}

// Size is the encoded length. A nil input encodes as an all zero input with an empty script.
func (i *TransactionInput) Size() int {
	if i == nil {
		return minTransactionInputSize
	}

	return OutPointSize + i.ScriptSig.Size() + 4
}

func (i *TransactionInput) Bytes() []byte {
	return i.appendBytes(make([]byte, 0, i.Size()))
}

func (i *TransactionInput) appendBytes(b []byte) []byte {
	if i == nil {
		return append(b, make([]byte, minTransactionInputSize)...)
	}

	b = i.PreviousOutput.appendBytes(b)
	b = i.ScriptSig.appendBytes(b)

	return binary.LittleEndian.AppendUint32(b, i.Sequence)
}

// NewTransactionInputFromBytes decodes an input from the front of b: outpoint, script_sig, then sequence.
// Nothing is returned unless all three parts are present.
func NewTransactionInputFromBytes(b []byte) (*TransactionInput, int, error) {
	previousOutput, consumed, err := NewOutPointFromBytes(b)
	if err != nil {
		return nil, 0, err
	}

	scriptSig, n, err := NewScriptFromBytes(b[consumed:])
	if err != nil {
		return nil, 0, err
	}

	consumed += n

	if len(b) < consumed+4 {
		return nil, 0, errors.NewInsufficientBytesError(consumed+4, len(b), "input sequence needs 4 bytes at offset %d, got %d", consumed, len(b)-consumed)
	}

	sequence := binary.LittleEndian.Uint32(b[consumed : consumed+4])
	consumed += 4

	return NewTransactionInput(previousOutput, scriptSig, sequence), consumed, nil
}
