package log

import (
	"context"
	"maps"
)

// Kv is the key-value set used for structured log fields.
type Kv = map[string]any

// Logger is the logger used across the chart renderer, the app services and the commands.
type Logger interface {
	Infof(format string, args ...any)
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)
	Debugf(format string, args ...any)
	WithValues(values Kv) Logger
	WithCtxValues(ctx context.Context) Logger
	SetValuesOnCtx(parent context.Context, values Kv) context.Context
}

// Noop logger discards everything.
const Noop = noop(0)

type noop int

func (n noop) Infof(string, ...any)                                        {}
func (n noop) Warningf(string, ...any)                                     {}
func (n noop) Errorf(string, ...any)                                       {}
func (n noop) Debugf(string, ...any)                                       {}
func (n noop) WithValues(Kv) Logger                                        { return n }
func (n noop) WithCtxValues(context.Context) Logger                        { return n }
func (n noop) SetValuesOnCtx(parent context.Context, _ Kv) context.Context { return parent }

type ctxKey struct{}

// CtxWithValues stores kv on a copy of parent, merged over any values already there.
func CtxWithValues(parent context.Context, kv Kv) context.Context {
	merged := Kv{}
	if old, ok := parent.Value(ctxKey{}).(Kv); ok {
		maps.Copy(merged, old)
	}
	maps.Copy(merged, kv)

	return context.WithValue(parent, ctxKey{}, merged)
}

// ValuesFromCtx returns the log values stored on ctx (never nil).
func ValuesFromCtx(ctx context.Context) Kv {
	values, ok := ctx.Value(ctxKey{}).(Kv)
	if !ok {
		return Kv{}
	}

	return values
}
