package chart

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lestrrat-go/strftime"
)

// DisplayValue abbreviates a magnitude for the axis and tooltips: values under 1000 are
// shown as they are, thousands with a K suffix and millions with an M suffix, both with
// precision decimals.
func DisplayValue(value float64, precision int) string {
	switch {
	case value < 0:
		return "-" + DisplayValue(-value, precision)
	case value < 1000:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case value < 1000000:
		return strconv.FormatFloat(value/1000, 'f', precision, 64) + "K"
	default:
		return strconv.FormatFloat(value/1000000, 'f', precision, 64) + "M"
	}
}

// FormatDate formats t with a strftime format (e.g. `%m/%d`).
func FormatDate(t time.Time, format string) (string, error) {
	s, err := strftime.Format(format, t)
	if err != nil {
		return "", fmt.Errorf("invalid date format %q: %w", format, err)
	}
	return s, nil
}
