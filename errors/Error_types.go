package errors

var (
	ErrInvalidArgument   = New(ERR_INVALID_ARGUMENT, "invalid argument")
	ErrProcessing        = New(ERR_PROCESSING, "error processing")
	ErrConfiguration     = New(ERR_CONFIGURATION, "configuration error")
	ErrContextCanceled   = New(ERR_CONTEXT_CANCELED, "context canceled")
	ErrInsufficientBytes = New(ERR_INSUFFICIENT_BYTES, "insufficient bytes")
	ErrInvalidFormat     = New(ERR_INVALID_FORMAT, "invalid format")
)

// errors initialization functions

func NewInvalidArgumentError(message string, params ...interface{}) error {
	return New(ERR_INVALID_ARGUMENT, message, params...)
}
func NewProcessingError(message string, params ...interface{}) error {
	return New(ERR_PROCESSING, message, params...)
}
func NewConfigurationError(message string, params ...interface{}) error {
	return New(ERR_CONFIGURATION, message, params...)
}
func NewContextCanceledError(message string, params ...interface{}) error {
	return New(ERR_CONTEXT_CANCELED, message, params...)
}
func NewInvalidFormatError(message string, params ...interface{}) error {
	return New(ERR_INVALID_FORMAT, message, params...)
}

// NewInsufficientBytesError reports a buffer that is shorter than the structure being parsed.
// needed and available are attached as error data so callers waiting on a stream can tell how
// many more bytes are required.
func NewInsufficientBytesError(needed, available int, message string, params ...interface{}) error {
	err := New(ERR_INSUFFICIENT_BYTES, message, params...)
	err.SetData("needed", needed)
	err.SetData("available", available)

	return err
}
