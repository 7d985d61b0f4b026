package errors

import (
	"fmt"
	"runtime/debug"
)

// PanicError is an error built from a recovered panic. Rendering code that hands
// caller supplied arrays to third-party drawing libraries reports through it
// instead of crashing the pipeline.
type PanicError struct {
	// PanicValue is the value passed to panic().
	PanicValue interface{}

	// StackTrace is the goroutine stack at recovery time.
	StackTrace string

	// Operation names where the panic was recovered.
	Operation string
}

// Error implements the error interface for PanicError.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// String includes the stack trace.
func (e *PanicError) String() string {
	return fmt.Sprintf("panic in %s: %v\nStack trace:\n%s",
		e.Operation, e.PanicValue, e.StackTrace)
}

// NewPanicError creates a PanicError for operation, capturing the current stack.
func NewPanicError(operation string, panicValue interface{}) *PanicError {
	return &PanicError{
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
		Operation:  operation,
	}
}

// Recover converts a panic into an error. Use it with defer and a named error
// result:
//
//	func Render() (err error) {
//	    defer Recover(&err, "Render")
//	    ...
//	}
//
// An error already stored in *err is kept in the chain.
func Recover(err *error, operation string) {
	if r := recover(); r != nil {
		if *err != nil {
			*err = Wrapf(*err, "panic in %s: %v", operation, r)
			return
		}
		*err = NewPanicError(operation, r)
	}
}

// SafeExecute runs fn and turns any panic into a PanicError.
//
//	err := SafeExecute("scatter plot", func() error {
//	    return p.Save(w, h, path)
//	})
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
