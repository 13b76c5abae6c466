package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	commonerrors "github.com/slok/delorean/pkg/common/errors"
)

// Date layouts accepted for the dataset keys, tried in order. Layouts without zone
// information are interpreted as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	time.RFC1123Z,
	time.RFC1123,
}

// ParseDate parses a dataset date key. Unknown formats return a *errors.DateParseError,
// the current time is never used as a fallback.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &commonerrors.DateParseError{Key: s, Err: fmt.Errorf("empty date")}
	}

	if isUnixTimestamp(s) {
		secs, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return time.Time{}, &commonerrors.DateParseError{Key: s, Err: err}
		}
		return time.Unix(secs, 0).UTC(), nil
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, &commonerrors.DateParseError{Key: s}
}

// isUnixTimestamp matches plain second timestamps (at least 9 digits, so small numbers
// like years are not taken as timestamps).
func isUnixTimestamp(s string) bool {
	if len(s) < 9 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
