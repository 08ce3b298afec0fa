package model

import (
	"encoding/hex"
	"math"

	"github.com/bsv-blockchain/txwire/errors"
)

// Script is an opaque, length prefixed byte string. Its contents are never interpreted.
type Script struct {
	payload []byte
}

// NewScript copies payload into a new Script.
func NewScript(payload []byte) *Script {
	p := make([]byte, len(payload))
	copy(p, payload)

	return &Script{payload: p}
}

// NewScriptFromString builds a Script from the hex of its payload.
func NewScriptFromString(s string) (*Script, error) {
	p, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.NewInvalidFormatError("script is not valid hex", err)
	}

	return NewScript(p), nil
}

// Len returns the payload length, without the length prefix.
func (s *Script) Len() int {
	if s == nil {
		return 0
	}

	return len(s.payload)
}

// Payload returns a copy of the raw script bytes.
func (s *Script) Payload() []byte {
	p := make([]byte, s.Len())
	if s != nil {
		copy(p, s.payload)
	}

	return p
}

// Size returns the encoded size, length prefix included.
func (s *Script) Size() int {
	return NewCompactSize(uint64(s.Len())).Size() + s.Len()
}

func (s *Script) Bytes() []byte {
	return s.appendBytes(make([]byte, 0, s.Size()))
}

func (s *Script) appendBytes(b []byte) []byte {
	b = NewCompactSize(uint64(s.Len())).appendBytes(b)
	if s == nil {
		return b
	}

	return append(b, s.payload...)
}

func (s *Script) String() string {
	if s == nil {
		return ""
	}

	return hex.EncodeToString(s.payload)
}

func (s *Script) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Script) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return errors.NewInvalidFormatError("script must be a json hex string", err)
	}

	script, err := NewScriptFromString(str)
	if err != nil {
		return err
	}

	s.payload = script.payload

	return nil
}

// NewScriptFromBytes decodes a length prefixed Script from the front of b.
//
// The declared length is only bounded by what b holds; any cap on script size is a caller policy.
func NewScriptFromBytes(b []byte) (*Script, int, error) {
	length, n, err := NewCompactSizeFromBytes(b)
	if err != nil {
		return nil, 0, err
	}

	// compare as uint64 so a huge declared length cannot overflow int
	available := uint64(len(b) - n)
	if length.Value > available {
		needed := -1
		if length.Value <= uint64(math.MaxInt-n) {
			needed = n + int(length.Value)
		}

		return nil, 0, errors.NewInsufficientBytesError(needed, len(b), "script declares %d bytes, only %d available", length.Value, available)
	}

	end := n + int(length.Value)

	return NewScript(b[n:end]), end, nil
}
