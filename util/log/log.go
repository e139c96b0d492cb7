package log

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"
)

/*
Leveled logging helpers over the standard library structured logger. Tags
attached to a context with AddTags are included on every record logged with
that context.
*/

////////////////////////////////////////////////////////////////////////////////

type contextKey int

const (
	logTagKey contextKey = iota
)

func AddTags(ctx context.Context, kvs ...any) context.Context {
	if len(kvs)%2 != 0 {
		panic("log: AddTags requires an even number of arguments")
	}
	tags := ctx.Value(logTagKey)
	if tags == nil {
		tags = []any{}
	}
	return context.WithValue(
		ctx,
		logTagKey,
		append(tags.([]any), kvs...),
	)
}

func fromContext(ctx context.Context) []any {
	tags, _ := ctx.Value(logTagKey).([]any)
	return tags
}

func levelf(ctx context.Context, level slog.Level, format string, args ...any) {
	var pcs [1]uintptr
	runtime.Callers(2, pcs[:])
	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	tags := fromContext(ctx)
	for i := 0; i < len(tags); i += 2 {
		r.Add(tags[i].(string), tags[i+1])
	}
	handler := slog.Default().Handler()
	if handler.Enabled(ctx, level) {
		if err := handler.Handle(ctx, r); err != nil {
			slog.ErrorContext(ctx, "error handling log record", "error", err)
		}
	}
}

func Debugf(ctx context.Context, format string, args ...any) {
	levelf(ctx, slog.LevelDebug, format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	levelf(ctx, slog.LevelInfo, format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	levelf(ctx, slog.LevelWarn, format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	levelf(ctx, slog.LevelError, format, args...)
}
