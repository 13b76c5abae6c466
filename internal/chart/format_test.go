package chart_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/delorean/internal/chart"
)

func TestDisplayValue(t *testing.T) {
	tests := map[string]struct {
		value     float64
		precision int
		exp       string
	}{
		"Values under a thousand should be shown as they are.": {
			value: 950,
			exp:   "950",
		},

		"Decimal values under a thousand should keep their decimals.": {
			value:     12.5,
			precision: 2,
			exp:       "12.5",
		},

		"Zero should be shown as zero.": {
			value: 0,
			exp:   "0",
		},

		"Thousands should be abbreviated with K.": {
			value:     1500,
			precision: 1,
			exp:       "1.5K",
		},

		"Thousands without precision should be rounded.": {
			value: 1500,
			exp:   "2K",
		},

		"Millions should be abbreviated with M.": {
			value:     2500000,
			precision: 2,
			exp:       "2.50M",
		},

		"Negative values should be abbreviated like positive ones.": {
			value:     -2500,
			precision: 1,
			exp:       "-2.5K",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.exp, chart.DisplayValue(test.value, test.precision))
		})
	}
}

func TestFormatDate(t *testing.T) {
	tests := map[string]struct {
		format string
		exp    string
		expErr bool
	}{
		"The default format should show month and day.": {
			format: "%m/%d",
			exp:    "03/07",
		},

		"Full dates should be formatted.": {
			format: "%Y-%m-%d %H:%M",
			exp:    "2011-03-07 14:05",
		},

		"Unknown verbs should fail.": {
			format: "%Q",
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			got, err := chart.FormatDate(time.Date(2011, time.March, 7, 14, 5, 0, 0, time.UTC), test.format)

			if test.expErr {
				assert.Error(err)
			} else if assert.NoError(err) {
				assert.Equal(test.exp, got)
			}
		})
	}
}

func TestFormatDateVerbs(t *testing.T) {
	got, err := chart.FormatDate(time.Date(2011, time.December, 31, 0, 0, 0, 0, time.UTC), "%b %e")
	require.NoError(t, err)
	assert.Equal(t, "Dec 31", got)
}
