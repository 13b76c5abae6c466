package dataset

import (
	"fmt"
	"time"

	commonerrors "github.com/slok/delorean/pkg/common/errors"
)

// Entry is a single time point of the dataset, one value per series.
type Entry struct {
	// Key is the original (unparsed) date key.
	Key    string
	Date   time.Time
	Values []float64
}

// Dataset is an ordered, time keyed set of values. The order of the entries is the
// temporal order used for the layout, it is never sorted.
type Dataset struct {
	entries []Entry
	arity   int
	scalar  bool
}

// New returns a dataset from already parsed entries. All the entries need the same
// number of values.
func New(entries []Entry) (*Dataset, error) {
	return newDataset(entries, false)
}

func newDataset(entries []Entry, scalar bool) (*Dataset, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("dataset without entries: %w", commonerrors.ErrEmptyDataset)
	}

	arity := len(entries[0].Values)
	if arity == 0 {
		return nil, fmt.Errorf("entry %q without values: %w", entries[0].Key, commonerrors.ErrEmptyDataset)
	}

	es := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if len(e.Values) == 0 {
			return nil, fmt.Errorf("entry %q without values: %w", e.Key, commonerrors.ErrEmptyDataset)
		}
		if len(e.Values) != arity {
			return nil, &commonerrors.ArityError{Key: e.Key, Expected: arity, Got: len(e.Values)}
		}

		vs := make([]float64, len(e.Values))
		copy(vs, e.Values)
		es = append(es, Entry{Key: e.Key, Date: e.Date, Values: vs})
	}

	return &Dataset{
		entries: es,
		arity:   arity,
		scalar:  scalar && arity == 1,
	}, nil
}

// Len returns the number of time points.
func (d *Dataset) Len() int { return len(d.entries) }

// Arity returns the number of series.
func (d *Dataset) Arity() int { return d.arity }

// IsScalar returns true when the source had a single number per date instead of a list.
func (d *Dataset) IsScalar() bool { return d.scalar }

// Entry returns the i-th entry.
func (d *Dataset) Entry(i int) Entry { return d.entries[i] }

// Values returns the values of every series at the i-th time point.
func (d *Dataset) Values(i int) []float64 { return d.entries[i].Values }

// Dates returns the ordered dates.
func (d *Dataset) Dates() []time.Time {
	ds := make([]time.Time, 0, len(d.entries))
	for _, e := range d.entries {
		ds = append(ds, e.Date)
	}
	return ds
}

// Series returns the values of the j-th series in temporal order.
func (d *Dataset) Series(j int) []float64 {
	vs := make([]float64, 0, len(d.entries))
	for _, e := range d.entries {
		vs = append(vs, e.Values[j])
	}
	return vs
}

// Max returns the global maximum across all the series and points.
func (d *Dataset) Max() float64 {
	max := d.entries[0].Values[0]
	for _, e := range d.entries {
		for _, v := range e.Values {
			if v > max {
				max = v
			}
		}
	}
	return max
}
