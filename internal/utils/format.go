package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	timestampLayout = "2006-01-02 15:04"
	sizeStep        = 1024
)

var sizeUnits = []string{"b", "kb", "mb", "gb", "tb", "pb"}

// FormatFileSize renders a byte count with a lower-case binary unit, keeping
// one decimal below ten units ("1.5kb", "10kb").
func FormatFileSize(byteCount int64) string {
	if byteCount < sizeStep {
		return fmt.Sprintf("%d%s", max(byteCount, 0), sizeUnits[0])
	}
	scaled := float64(byteCount)
	unitIndex := 0
	for scaled >= sizeStep && unitIndex < len(sizeUnits)-1 {
		scaled /= sizeStep
		unitIndex++
	}
	if scaled >= 10 {
		return fmt.Sprintf("%.0f%s", scaled, sizeUnits[unitIndex])
	}
	return strings.TrimSuffix(fmt.Sprintf("%.1f", scaled), ".0") + sizeUnits[unitIndex]
}

// FormatTimestamp renders value in local time with minute precision, as used
// in the document header. The zero time renders as an empty string.
func FormatTimestamp(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.In(time.Local).Format(timestampLayout)
}
