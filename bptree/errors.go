package bptree

import "fmt"

// ErrorCode classifies the precondition violations the engine and its
// facades can raise. None of these are recoverable inside the engine;
// invariants are assumed restored by never entering a mutator that would
// break them, so every code here denotes a caller-visible failure.
type ErrorCode int

const (
	// Unknown is the zero value and should not be produced by this package.
	Unknown ErrorCode = iota
	// KeyNotFound is raised by a read of an absent key.
	KeyNotFound
	// DuplicateKey is raised by an add with duplicates disabled when the key is present.
	DuplicateKey
	// IndexOutOfRange is raised by At/RemoveAt/SetValueAt with an invalid index.
	IndexOutOfRange
	// ImmutableMutation is raised by a write while IsReadOnly is set.
	ImmutableMutation
	// InvalidCapacity is raised by constructing a tree with C <= 2.
	InvalidCapacity
	// AllowDuplicatesTransition is raised by disabling duplicates on a non-empty container.
	AllowDuplicatesTransition
	// InvalidRange is raised by WhereInRange(lo, hi) with hi < lo.
	InvalidRange
	// Unsupported is raised by facade-view mutations the view forbids, and by
	// detecting a structural mutation underneath a live iterator.
	Unsupported
)

func (c ErrorCode) String() string {
	switch c {
	case KeyNotFound:
		return "KeyNotFound"
	case DuplicateKey:
		return "DuplicateKey"
	case IndexOutOfRange:
		return "IndexOutOfRange"
	case ImmutableMutation:
		return "ImmutableMutation"
	case InvalidCapacity:
		return "InvalidCapacity"
	case AllowDuplicatesTransition:
		return "AllowDuplicatesTransition"
	case InvalidRange:
		return "InvalidRange"
	case Unsupported:
		return "Unsupported"
	default:
		return "Unknown"
	}
}

// Error is the single error type this module raises. Code classifies the
// failure, UserData carries the offending key/index/argument, and Err
// optionally wraps an underlying cause.
type Error struct {
	Code     ErrorCode
	UserData any
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Errorf("bptree: %s: user data: %v: %w", e.Code, e.UserData, e.Err).Error()
	}
	return fmt.Sprintf("bptree: %s: user data: %v", e.Code, e.UserData)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// fail panics with a *Error of the given code and user data. Every fatal
// precondition violation in this module goes through this helper so the
// panic value is always a *Error, never a bare string.
func fail(code ErrorCode, userData any) {
	panic(&Error{Code: code, UserData: userData})
}

// Fail is the exported form of fail, for use by facade packages raising
// the same taxonomy of precondition violations.
func Fail(code ErrorCode, userData any) {
	fail(code, userData)
}
