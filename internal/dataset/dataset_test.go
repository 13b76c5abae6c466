package dataset_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/delorean/internal/dataset"
	commonerrors "github.com/slok/delorean/pkg/common/errors"
)

func day(d int) time.Time {
	return time.Date(2011, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestLoadJSON(t *testing.T) {
	tests := map[string]struct {
		data      string
		expKeys   []string
		expDates  []time.Time
		expSeries [][]float64
		expScalar bool
		expErrIs  error
		expErr    bool
	}{
		"An empty document should fail as an empty dataset.": {
			data:     ``,
			expErrIs: commonerrors.ErrEmptyDataset,
		},

		"An empty object should fail as an empty dataset.": {
			data:     `{}`,
			expErrIs: commonerrors.ErrEmptyDataset,
		},

		"A document that is not an object should fail.": {
			data:   `[1, 2, 3]`,
			expErr: true,
		},

		"Invalid JSON should fail.": {
			data:   `{"2011-01-01": }`,
			expErr: true,
		},

		"An unparsable date key should fail with an invalid date format error.": {
			data:     `{"2011-01-01": 1, "yesterday": 2}`,
			expErrIs: commonerrors.ErrInvalidDateFormat,
		},

		"Zero length series should fail as an empty dataset.": {
			data:     `{"2011-01-01": [], "2011-01-02": []}`,
			expErrIs: commonerrors.ErrEmptyDataset,
		},

		"Entries with different number of values should fail with an arity error.": {
			data:     `{"2011-01-01": [1, 2], "2011-01-02": [3]}`,
			expErrIs: commonerrors.ErrInconsistentSeriesArity,
		},

		"Mixing numbers and single value lists should fail with an arity error.": {
			data:     `{"2011-01-01": 5, "2011-01-02": [6]}`,
			expErrIs: commonerrors.ErrInconsistentSeriesArity,
		},

		"Mixing single value lists and numbers should fail with an arity error.": {
			data:     `{"2011-01-01": [5], "2011-01-02": [6], "2011-01-03": 7}`,
			expErrIs: commonerrors.ErrInconsistentSeriesArity,
		},

		"Repeated keys changing a number into a list should fail with an arity error.": {
			data:     `{"2011-01-01": 1, "2011-01-02": 2, "2011-01-01": [5]}`,
			expErrIs: commonerrors.ErrInconsistentSeriesArity,
		},

		"Repeated keys changing every number into a list should not be scalar.": {
			data:      `{"2011-01-01": 1, "2011-01-01": [5]}`,
			expKeys:   []string{"2011-01-01"},
			expDates:  []time.Time{day(1)},
			expSeries: [][]float64{{5}},
			expScalar: false,
		},

		"Null values should fail.": {
			data:   `{"2011-01-01": null}`,
			expErr: true,
		},

		"Null values inside a list should fail.": {
			data:   `{"2011-01-01": [1, null]}`,
			expErr: true,
		},

		"Scalar values should be loaded as single series.": {
			data:      `{"2011-01-01": 10, "2011-01-02": 20.5}`,
			expKeys:   []string{"2011-01-01", "2011-01-02"},
			expDates:  []time.Time{day(1), day(2)},
			expSeries: [][]float64{{10, 20.5}},
			expScalar: true,
		},

		"List values should be loaded as multiple series.": {
			data:      `{"2011-01-01": [10, 1], "2011-01-02": [20, 2], "2011-01-03": [30, 3]}`,
			expKeys:   []string{"2011-01-01", "2011-01-02", "2011-01-03"},
			expDates:  []time.Time{day(1), day(2), day(3)},
			expSeries: [][]float64{{10, 20, 30}, {1, 2, 3}},
		},

		"The document key order should be kept even if dates are not sorted.": {
			data:      `{"2011-01-03": 3, "2011-01-01": 1, "2011-01-02": 2}`,
			expKeys:   []string{"2011-01-03", "2011-01-01", "2011-01-02"},
			expDates:  []time.Time{day(3), day(1), day(2)},
			expSeries: [][]float64{{3, 1, 2}},
			expScalar: true,
		},

		"Repeated keys should keep the first position with the last value.": {
			data:      `{"2011-01-01": 1, "2011-01-02": 2, "2011-01-01": 5}`,
			expKeys:   []string{"2011-01-01", "2011-01-02"},
			expDates:  []time.Time{day(1), day(2)},
			expSeries: [][]float64{{5, 2}},
			expScalar: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			ds, err := dataset.LoadJSON([]byte(test.data))

			if test.expErrIs != nil {
				assert.ErrorIs(err, test.expErrIs)
				return
			}
			if test.expErr {
				assert.Error(err)
				return
			}
			require.NoError(err)

			keys := []string{}
			for i := 0; i < ds.Len(); i++ {
				keys = append(keys, ds.Entry(i).Key)
			}
			assert.Equal(test.expKeys, keys)
			assert.Equal(test.expDates, ds.Dates())
			assert.Equal(len(test.expSeries), ds.Arity())
			for j, exp := range test.expSeries {
				assert.Equal(exp, ds.Series(j))
			}
			assert.Equal(test.expScalar, ds.IsScalar())
		})
	}
}

func TestDatasetMax(t *testing.T) {
	tests := map[string]struct {
		entries []dataset.Entry
		expMax  float64
	}{
		"The max should be global across series.": {
			entries: []dataset.Entry{
				{Key: "a", Values: []float64{1, 50}},
				{Key: "b", Values: []float64{30, 2}},
			},
			expMax: 50,
		},

		"All negative values should return the highest one.": {
			entries: []dataset.Entry{
				{Key: "a", Values: []float64{-10}},
				{Key: "b", Values: []float64{-3}},
			},
			expMax: -3,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ds, err := dataset.New(test.entries)
			require.NoError(t, err)
			assert.Equal(t, test.expMax, ds.Max())
		})
	}
}

func TestNewCopiesEntries(t *testing.T) {
	values := []float64{1, 2}
	ds, err := dataset.New([]dataset.Entry{{Key: "a", Values: values}})
	require.NoError(t, err)

	values[0] = 99
	assert.Equal(t, []float64{1, 2}, ds.Entry(0).Values)
}

func TestDatasetValues(t *testing.T) {
	ds, err := dataset.LoadJSON([]byte(`{"2011-01-01": [1, 2], "2011-01-02": [3, -4]}`))
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2}, ds.Values(0))
	assert.Equal(t, []float64{3, -4}, ds.Values(1))
}
