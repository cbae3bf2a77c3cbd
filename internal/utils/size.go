package utils

import (
	"fmt"
	"strings"
)

const sizeUnitBase = 1024

var sizeUnits = []string{"b", "kb", "mb", "gb", "tb", "pb"}

// FormatFileSize renders a byte count with a lower-case unit, keeping one
// decimal below ten units ("1.5kb") and none above ("12mb").
func FormatFileSize(byteCount int64) string {
	if byteCount < sizeUnitBase {
		if byteCount < 0 {
			byteCount = 0
		}
		return fmt.Sprintf("%d%s", byteCount, sizeUnits[0])
	}
	scaled := float64(byteCount)
	unit := 0
	for scaled >= sizeUnitBase && unit < len(sizeUnits)-1 {
		scaled /= sizeUnitBase
		unit++
	}
	if scaled >= 10 {
		return fmt.Sprintf("%.0f%s", scaled, sizeUnits[unit])
	}
	return strings.TrimSuffix(fmt.Sprintf("%.1f", scaled), ".0") + sizeUnits[unit]
}
