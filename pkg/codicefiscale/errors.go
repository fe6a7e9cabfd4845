package codicefiscale

import (
	"errors"
	"fmt"
)

// ErrorCode classifies every way encoding or parsing can fail. All failures
// are immediate and non-retryable; nothing is recovered internally.
type ErrorCode string

const (
	// CodeInvalidBirthdate indicates an unparsable or non-existent calendar
	// date, either supplied to Encode or reconstructed during Parse.
	CodeInvalidBirthdate ErrorCode = "invalid-birthdate"

	// CodeInvalidBirthmonth indicates a month letter outside the fixed
	// twelve-letter registry table.
	CodeInvalidBirthmonth ErrorCode = "invalid-birthmonth"

	// CodeInvalidBirthyear indicates year digits that are not a two-digit
	// number.
	CodeInvalidBirthyear ErrorCode = "invalid-birthyear"

	// CodeInvalidBelfioreCode indicates a birthplace code the directory does
	// not know, or an Encode input without a birthplace.
	CodeInvalidBelfioreCode ErrorCode = "invalid-belfiore-code"

	// CodeInvalidLength indicates an input that is not exactly 16 characters.
	CodeInvalidLength ErrorCode = "invalid-length"

	// CodeInvalidCheckChar indicates a trailing character that does not match
	// the checksum of the code body.
	CodeInvalidCheckChar ErrorCode = "invalid-checkchar"

	// CodeInvalidSurname indicates a surname fragment that is not three
	// uppercase letters.
	CodeInvalidSurname ErrorCode = "invalid-surname"

	// CodeInvalidName indicates a name fragment that is not three uppercase
	// letters.
	CodeInvalidName ErrorCode = "invalid-name"

	// CodeInvalidSex indicates a sex value that is neither Male nor Female.
	CodeInvalidSex ErrorCode = "invalid-sex"
)

// Error is a codec failure: a machine-readable code plus a human message.
type Error struct {
	Code       ErrorCode
	Message    string
	Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Underlying }

// HasCode reports whether err is, or wraps, a codec Error with the given code.
func HasCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

func newErrorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}
