package payment

import "fmt"

// Kind classifies pipeline failures. Client kinds mean the caller must fix
// the request; everything else is a server-side fault.
type Kind int

const (
	KindInvalidIban Kind = iota
	KindInvalidSwift
	KindInvalidAmount
	KindMissingAccount
	KindFieldTooLong
	KindCompressionFailed
)

// Client reports whether the kind is caused by bad caller input.
func (k Kind) Client() bool {
	switch k {
	case KindInvalidIban, KindInvalidSwift, KindInvalidAmount, KindMissingAccount, KindFieldTooLong:
		return true
	}
	return false
}

// Error is a typed pipeline failure. Reason carries detail for validation
// kinds; Field/Max/Actual are set for KindFieldTooLong only.
type Error struct {
	Kind   Kind
	Reason string
	Field  string
	Max    int
	Actual int
	cause  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidIban:
		return "Invalid IBAN format: " + e.Reason
	case KindInvalidSwift:
		return "Invalid SWIFT/BIC format: " + e.Reason
	case KindInvalidAmount:
		return "Amount must be greater than 0"
	case KindMissingAccount:
		return "Missing required field: either 'iban' or 'bank_accounts' must be provided"
	case KindFieldTooLong:
		return fmt.Sprintf("Field too long: %s (max: %d, got: %d)", e.Field, e.Max, e.Actual)
	case KindCompressionFailed:
		return "Compression failed: " + e.Reason
	}
	return "Internal error"
}

func (e *Error) Unwrap() error {
	return e.cause
}

func invalidIban(reason string) *Error {
	return &Error{Kind: KindInvalidIban, Reason: reason}
}

func invalidSwift(reason string) *Error {
	return &Error{Kind: KindInvalidSwift, Reason: reason}
}

func fieldTooLong(field string, max, actual int) *Error {
	return &Error{Kind: KindFieldTooLong, Field: field, Max: max, Actual: actual}
}
