package model

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/bsv-blockchain/txwire/errors"
)

// BitcoinTransaction is the top level unit of the wire format:
// version, input count, the inputs in order, and the lock time.
type BitcoinTransaction struct {
	Version  uint32              `json:"version"`
	Inputs   []*TransactionInput `json:"inputs"`
	LockTime uint32              `json:"lock_time"`
}

func NewBitcoinTransaction(version uint32, inputs []*TransactionInput, lockTime uint32) *BitcoinTransaction {
	if inputs == nil {
		inputs = []*TransactionInput{}
	}

	return &BitcoinTransaction{
		Version:  version,
		Inputs:   inputs,
		LockTime: lockTime,
	}
}

// Size returns the length of the encoded transaction without encoding it.
func (tx *BitcoinTransaction) Size() int {
	size := 4 + NewCompactSize(uint64(len(tx.Inputs))).Size() + 4
	for _, input := range tx.Inputs {
		size += input.Size()
	}

	return size
}

func (tx *BitcoinTransaction) Bytes() []byte {
	b := make([]byte, 0, tx.Size())

	b = binary.LittleEndian.AppendUint32(b, tx.Version)
	b = NewCompactSize(uint64(len(tx.Inputs))).appendBytes(b)

	for _, input := range tx.Inputs {
		b = input.appendBytes(b)
	}

	return binary.LittleEndian.AppendUint32(b, tx.LockTime)
}

// UnmarshalJSON rejects null entries in inputs, they have no wire form.
func (tx *BitcoinTransaction) UnmarshalJSON(data []byte) error {
	type transaction BitcoinTransaction

	var t transaction
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}

	for i, input := range t.Inputs {
		if input == nil {
			return errors.NewInvalidFormatError("transaction input %d is null", i)
		}
	}

	*tx = *NewBitcoinTransaction(t.Version, t.Inputs, t.LockTime)

	return nil
}

// NewBitcoinTransactionFromBytes decodes a transaction from the front of b.
//
// The returned count is the number of bytes the transaction occupies; bytes after it are left
// untouched so a transaction can be read out of a longer stream.
func NewBitcoinTransactionFromBytes(b []byte) (*BitcoinTransaction, int, error) {
	if len(b) < 4 {
		return nil, 0, errors.NewInsufficientBytesError(4, len(b), "transaction version needs 4 bytes, got %d", len(b))
	}

	version := binary.LittleEndian.Uint32(b[:4])
	consumed := 4

	inputCount, n, err := NewCompactSizeFromBytes(b[consumed:])
	if err != nil {
		return nil, 0, err
	}

	consumed += n

	// the count is untrusted, don't reserve more inputs than the buffer could possibly hold
	capacity := uint64((len(b) - consumed) / minTransactionInputSize)
	if inputCount.Value < capacity {
		capacity = inputCount.Value
	}

	inputs := make([]*TransactionInput, 0, capacity)

	for i := uint64(0); i < inputCount.Value; i++ {
		input, n, err := NewTransactionInputFromBytes(b[consumed:])
		if err != nil {
			return nil, 0, err
		}

		inputs = append(inputs, input)
		consumed += n
	}

	if len(b) < consumed+4 {
		return nil, 0, errors.NewInsufficientBytesError(consumed+4, len(b), "transaction lock time needs 4 bytes at offset %d, got %d", consumed, len(b)-consumed)
	}

	lockTime := binary.LittleEndian.Uint32(b[consumed : consumed+4])
	consumed += 4

	return NewBitcoinTransaction(version, inputs, lockTime), consumed, nil
}

// NewBitcoinTransactionFromString decodes a transaction from its hex encoding.
func NewBitcoinTransactionFromString(s string) (*BitcoinTransaction, int, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, 0, errors.NewInvalidFormatError("transaction is not valid hex", err)
	}

	return NewBitcoinTransactionFromBytes(b)
}
