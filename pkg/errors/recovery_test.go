package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRecover_WithPanic(t *testing.T) {
	testFunc := func() (err error) {
		defer Recover(&err, "ScatterPlot")
		panic("empty series")
	}

	err := testFunc()
	if err == nil {
		t.Fatal("Expected error from recovered panic, got nil")
	}

	var panicErr *PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("Expected PanicError, got %T", err)
	}
	if panicErr.Operation != "ScatterPlot" {
		t.Errorf("Expected operation 'ScatterPlot', got '%s'", panicErr.Operation)
	}
	if panicErr.StackTrace == "" {
		t.Error("Expected non-empty stack trace")
	}
	if panicErr.Error() != "panic in ScatterPlot: empty series" {
		t.Errorf("unexpected message %q", panicErr.Error())
	}
}

func TestRecover_WithoutPanic(t *testing.T) {
	testFunc := func() (err error) {
		defer Recover(&err, "ScatterPlot")
		return nil
	}

	if err := testFunc(); err != nil {
		t.Fatalf("Expected no error when no panic occurs, got: %v", err)
	}
}

func TestRecover_WithExistingError(t *testing.T) {
	originalErr := fmt.Errorf("original error")

	testFunc := func() (err error) {
		defer Recover(&err, "Mosaic")
		err = originalErr
		panic("panic after error")
	}

	err := testFunc()
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	msg := err.Error()
	if !strings.Contains(msg, "panic in Mosaic") {
		t.Errorf("Error message should contain panic info: %s", msg)
	}
	if !strings.Contains(msg, "original error") {
		t.Errorf("Error message should contain original error: %s", msg)
	}
	if !errors.Is(err, originalErr) {
		t.Error("Should be able to identify original error with errors.Is")
	}
}

func TestSafeExecute(t *testing.T) {
	if err := SafeExecute("noop", func() error { return nil }); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	fnErr := fmt.Errorf("function error")
	if err := SafeExecute("fails", func() error { return fnErr }); err != fnErr {
		t.Fatalf("Expected original error, got: %v", err)
	}

	err := SafeExecute("panics", func() error {
		var m map[string]int
		m["x"] = 1
		return nil
	})
	var panicErr *PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("Expected PanicError, got %T", err)
	}
	if !strings.Contains(panicErr.String(), "Stack trace:") {
		t.Error("String() should include stack trace information")
	}
}
