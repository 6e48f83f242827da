package errors

import (
	"errors"
)

// As is errors.As narrowed to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// GetCode returns the code of the outermost *Error in the chain. Nil is OK and
// plain errors are Internal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// GetMeta returns the meta of the outermost *Error, or nil
func GetMeta(err error) map[string]interface{} {
	var e *Error
	if err != nil && errors.As(err, &e) {
		return e.Meta
	}
	return nil
}

// GetMessage returns the caller-facing message, falling back to err.Error()
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

func hasCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool { return hasCode(err, CodeInvalidArgument) }

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool { return hasCode(err, CodeFailedPrecondition) }

// IsUnavailable checks if an error is an unavailable error
func IsUnavailable(err error) bool { return hasCode(err, CodeUnavailable) }

// IsDataLoss reports a stored record that could not be decoded
func IsDataLoss(err error) bool { return hasCode(err, CodeDataLoss) }

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool { return hasCode(err, CodeInternal) }
