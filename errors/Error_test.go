package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test_NewCustomError tests the creation of custom errors.
func Test_NewCustomError(t *testing.T) {
	err := New(ERR_INSUFFICIENT_BYTES, "outpoint needs 36 bytes")
	require.NotNil(t, err)
	require.Equal(t, ERR_INSUFFICIENT_BYTES, err.Code())
	require.Equal(t, "outpoint needs 36 bytes", err.Message())

	secondErr := New(ERR_INVALID_ARGUMENT, "[decode][%s] failed to parse input: ", "_test_string_", err)
	thirdErr := New(ERR_INVALID_FORMAT, "[decode][%s] failed to parse tx: ", "_test_string_", secondErr)
	anotherErr := New(ERR_INVALID_FORMAT, "Another ERR, tx is invalid")
	fourthErr := New(ERR_PROCESSING, "older error: ", thirdErr)
	fifthErr := New(ERR_CONFIGURATION, "bad config", fourthErr)

	require.True(t, anotherErr.Is(thirdErr))
	require.True(t, fourthErr.Is(New(ERR_INVALID_FORMAT, "")))
	require.True(t, fourthErr.Is(ErrInvalidFormat))

	require.True(t, fourthErr.Is(err))
	require.True(t, fifthErr.Is(thirdErr))
	require.True(t, fifthErr.Is(err))

	require.False(t, anotherErr.Is(fourthErr))
	require.False(t, fifthErr.Is(ErrContextCanceled))
}

func Test_FmtErrorCustomError(t *testing.T) {
	err := New(ERR_INSUFFICIENT_BYTES, "script truncated")

	fmtError := fmt.Errorf("error: %w", err)
	require.NotNil(t, fmtError)

	secondErr := New(ERR_INVALID_ARGUMENT, "[decode][%s] failed: ", "_test_string_", fmtError)
	require.NotNil(t, secondErr)

	// the method only follows *Error links, the package level Is follows everything
	require.False(t, secondErr.Is(err))
	require.True(t, Is(secondErr, err))
	require.True(t, errors.Is(fmtError, ErrInsufficientBytes))
}

func Test_ErrorIs(t *testing.T) {
	codes := []ERR{
		ERR_UNKNOWN,
		ERR_INVALID_ARGUMENT,
		ERR_PROCESSING,
		ERR_CONFIGURATION,
		ERR_CONTEXT_CANCELED,
		ERR_INSUFFICIENT_BYTES,
		ERR_INVALID_FORMAT,
	}

	for _, code := range codes {
		t.Run(code.String(), func(t *testing.T) {
			err := New(code, "some error")
			assert.True(t, errors.Is(err, New(code, "")))
		})
	}
}

func Test_ErrorWrapWithAdditionalContext(t *testing.T) {
	originalErr := New(ERR_INSUFFICIENT_BYTES, "original error")
	wrappedErr := New(ERR_INVALID_FORMAT, "Some more additional context", originalErr)

	require.True(t, errors.Is(wrappedErr, originalErr))
	require.True(t, strings.Contains(wrappedErr.Error(), "Some more additional context"))
	require.True(t, strings.Contains(wrappedErr.Error(), "original error"))
}

func Test_ErrorWrapsStandardError(t *testing.T) {
	err := New(ERR_PROCESSING, "reading input", io.ErrUnexpectedEOF)

	require.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	require.Equal(t, io.ErrUnexpectedEOF, err.Unwrap())
	require.Equal(t, "reading input", err.Message())
}

func Test_InvalidErrorCode(t *testing.T) {
	err := New(ERR(999), "whatever")
	require.Equal(t, "invalid error code", err.Message())
	require.Equal(t, "999", err.Code().String())
}

func Test_NilError(t *testing.T) {
	var err *Error

	assert.Equal(t, "<nil>", err.Error())
	assert.Equal(t, ERR_UNKNOWN, err.Code())
	assert.Equal(t, "", err.Message())
	assert.Nil(t, err.Unwrap())
	assert.Nil(t, err.Data())
	assert.False(t, err.Is(ErrProcessing))
}

func Test_ErrorData(t *testing.T) {
	err := New(ERR_INSUFFICIENT_BYTES, "lock time")
	err.SetData("needed", 4)
	err.SetData("available", 1)

	assert.Equal(t, 4, err.GetData("needed"))
	assert.Equal(t, 1, err.GetData("available"))
	assert.Nil(t, err.GetData("missing"))
	assert.Contains(t, err.Error(), "needed:4")
}

func Test_ErrorAs(t *testing.T) {
	inner := New(ERR_INSUFFICIENT_BYTES, "inner")
	outer := fmt.Errorf("outer: %w", New(ERR_INVALID_FORMAT, "middle", inner))

	var tErr *Error
	require.True(t, As(outer, &tErr))
	require.Equal(t, ERR_INVALID_FORMAT, tErr.Code())

	var pathErr *customErr
	require.False(t, As(outer, &pathErr))
}

type customErr struct {
	msg string
}

func (c *customErr) Error() string { return c.msg }

func Test_ErrorCodes(t *testing.T) {
	require.Len(t, ERR_name, 7)
	require.Len(t, ERR_value, len(ERR_name))

	for code, name := range ERR_name {
		assert.Equal(t, code, ERR_value[name], name)
		assert.Equal(t, name, ERR(code).String())
	}
}
