package logrus

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/slok/delorean/internal/log"
)

type logger struct {
	*logrus.Entry
}

// NewLogrus wraps a logrus entry as a log.Logger.
func NewLogrus(l *logrus.Entry) log.Logger {
	return logger{Entry: l}
}

func (l logger) WithValues(kv log.Kv) log.Logger {
	return NewLogrus(l.Entry.WithFields(kv))
}

func (l logger) WithCtxValues(ctx context.Context) log.Logger {
	return l.WithValues(log.ValuesFromCtx(ctx))
}

func (l logger) SetValuesOnCtx(parent context.Context, values log.Kv) context.Context {
	return log.CtxWithValues(parent, values)
}
