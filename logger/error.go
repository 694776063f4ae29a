package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError attaches slog key-value pairs to err. When the error is
// later logged through a logger set up by ConfigureLoggingWithOptions, the
// pairs appear next to it. Returns nil if err is nil.
//
//	if err != nil {
//	    return AnnotateError(err, "arg", 1, "input", raw)
//	}
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	var errAttrs []slog.Attr

	r.Attrs(func(attr slog.Attr) bool {
		errAttrs = append(errAttrs, attr)

		return true
	})

	return &slogError{
		err:   err,
		attrs: errAttrs,
	}
}

type slogError struct {
	err   error
	attrs []slog.Attr
}

func (s *slogError) Error() string {
	return s.err.Error()
}

func (s *slogError) Unwrap() error {
	return s.err
}

var _ error = (*slogError)(nil)

// Attrs returns every attribute attached to err or to errors it wraps,
// outermost first. Joined errors contribute theirs in order.
func Attrs(err error) []slog.Attr {
	var attrs []slog.Attr

	collectAttrs(err, &attrs)

	return attrs
}

func collectAttrs(err error, attrs *[]slog.Attr) {
	switch e := err.(type) { //nolint:errorlint
	case nil:
		return
	case *slogError:
		*attrs = append(*attrs, e.attrs...)
		collectAttrs(e.err, attrs)
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			collectAttrs(inner, attrs)
		}
	default:
		collectAttrs(errors.Unwrap(err), attrs)
	}
}

// slogErrorLogger decorates a handler so that attributes attached with
// AnnotateError are logged alongside the error that carries them.
type slogErrorLogger struct {
	inner slog.Handler
}

var _ slog.Handler = (*slogErrorLogger)(nil)

func (s *slogErrorLogger) Enabled(ctx context.Context, level slog.Level) bool {
	return s.inner.Enabled(ctx, level)
}

func (s *slogErrorLogger) Handle(ctx context.Context, record slog.Record) error {
	var extra []slog.Attr

	record.Attrs(func(attr slog.Attr) bool {
		if err, ok := attr.Value.Any().(error); ok {
			extra = append(extra, Attrs(err)...)
		}

		return true
	})

	if len(extra) == 0 {
		return s.inner.Handle(ctx, record)
	}

	r := record.Clone()
	r.AddAttrs(extra...)

	return s.inner.Handle(ctx, r)
}

func (s *slogErrorLogger) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithAttrs(attrs)}
}

func (s *slogErrorLogger) WithGroup(name string) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithGroup(name)}
}
