package log

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrFmtHandler decorates slog records that carry an error under ErrAttrKey.
// The driver logs fatal pipeline errors through it, so a failed load shows the
// typed error (ParseError, NotFoundError, ...) and where it was raised:
//
//	{"severity":"ERROR","message":"mlprep failed","error":"...",
//	 "error.type":"ParseError","stacktrace":"..."}
type ErrFmtHandler struct {
	next slog.Handler
}

// WrapByErrFmtHandler returns next decorated with error type and stack trace
// attributes.
func WrapByErrFmtHandler(next slog.Handler) slog.Handler {
	return &ErrFmtHandler{next: next}
}

// Enabled defers to the wrapped handler.
func (h *ErrFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return h.next.Enabled(ctx, l)
}

// Handle adds ErrorTypeKey and StacktraceAttrKey when the record has an error.
func (h *ErrFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key != ErrAttrKey {
			return true
		}
		err, _ = attr.Value.Any().(error)
		return false
	})
	if err == nil {
		return h.next.Handle(ctx, r)
	}

	r.AddAttrs(slog.String(ErrorTypeKey, ErrorType(err)))
	if st := stacktraceOf(err); st != "" {
		r.AddAttrs(slog.String(StacktraceAttrKey, st))
	}
	return h.next.Handle(ctx, r)
}

func (h *ErrFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrFmtHandler{next: h.next.WithAttrs(attrs)}
}

func (h *ErrFmtHandler) WithGroup(name string) slog.Handler {
	return &ErrFmtHandler{next: h.next.WithGroup(name)}
}

// ErrorType names the first error in the chain that is not a cockroachdb/errors
// wrapper, e.g. "ParseError" for a ParseError returned through errors.Wrapf.
func ErrorType(err error) string {
	if err == nil {
		return ""
	}
	for e := err; e != nil; e = errors.UnwrapOnce(e) {
		t := reflect.TypeOf(e)
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if strings.HasPrefix(t.PkgPath(), "github.com/cockroachdb/errors") {
			continue
		}
		if t.Name() != "" {
			return t.Name()
		}
	}
	return fmt.Sprintf("%T", err)
}

// stacktraceOf returns the first safe detail cockroachdb/errors recorded,
// which for WithStack errors is the formatted stack.
func stacktraceOf(err error) string {
	details := errors.GetSafeDetails(err).SafeDetails
	if len(details) == 0 {
		return ""
	}
	return details[0]
}
