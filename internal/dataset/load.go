package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"

	commonerrors "github.com/slok/delorean/pkg/common/errors"
)

// LoadJSON loads a dataset from a JSON object of date keys to a number or a list of numbers:
//
//	{"2011-01-01": [10, 4], "2011-01-02": [12, 6]}
//
// The object is read as a token stream so the key order of the document is kept.
func LoadJSON(data []byte) (*Dataset, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("dataset document is required: %w", commonerrors.ErrEmptyDataset)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("could not read dataset document: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("dataset document must be a JSON object")
	}

	var (
		entries  []Entry
		scalars  []bool
		index    = map[string]int{}
		previous string
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("could not read dataset key after %q: %w", previous, err)
		}
		key, _ := tok.(string)
		previous = key

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("could not read %q value: %w", key, err)
		}

		values, scalar, err := decodeValues(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %q value: %w", key, err)
		}

		date, err := ParseDate(key)
		if err != nil {
			return nil, err
		}

		// Repeated keys replace the value but keep the first position.
		if i, ok := index[key]; ok {
			entries[i].Values = values
			scalars[i] = scalar
			continue
		}
		index[key] = len(entries)
		entries = append(entries, Entry{Key: key, Date: date, Values: values})
		scalars = append(scalars, scalar)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("could not read dataset document end: %w", err)
	}

	// Numbers and lists can't be mixed, even lists of a single number.
	for i := range entries {
		if scalars[i] != scalars[0] {
			return nil, &commonerrors.ArityError{
				Key:       entries[i].Key,
				Expected:  len(entries[0].Values),
				Got:       len(entries[i].Values),
				MixedForm: true,
			}
		}
	}

	return newDataset(entries, len(entries) > 0 && scalars[0])
}

func decodeValues(raw json.RawMessage) (values []float64, scalar bool, err error) {
	var n *float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n == nil {
			return nil, false, fmt.Errorf("value can't be null")
		}
		return []float64{*n}, true, nil
	}

	var ns []*float64
	if err := json.Unmarshal(raw, &ns); err != nil {
		return nil, false, fmt.Errorf("value must be a number or a list of numbers")
	}

	values = make([]float64, 0, len(ns))
	for i, n := range ns {
		if n == nil {
			return nil, false, fmt.Errorf("value %d can't be null", i)
		}
		values = append(values, *n)
	}

	return values, false, nil
}
