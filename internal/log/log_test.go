package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/delorean/internal/log"
)

func TestCtxValues(t *testing.T) {
	tests := map[string]struct {
		ctx       func() context.Context
		expValues log.Kv
	}{
		"A context without values should return an empty set.": {
			ctx:       context.Background,
			expValues: log.Kv{},
		},

		"Values set on the context should be returned.": {
			ctx: func() context.Context {
				return log.CtxWithValues(context.Background(), log.Kv{"chart": "c1"})
			},
			expValues: log.Kv{"chart": "c1"},
		},

		"Values set multiple times should be merged, newer ones taking precedence.": {
			ctx: func() context.Context {
				ctx := log.CtxWithValues(context.Background(), log.Kv{"chart": "c1", "points": 10})
				return log.CtxWithValues(ctx, log.Kv{"chart": "c2", "series": 2})
			},
			expValues: log.Kv{"chart": "c2", "points": 10, "series": 2},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expValues, log.ValuesFromCtx(test.ctx()))
		})
	}
}
