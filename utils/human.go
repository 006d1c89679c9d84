package utils

import "fmt"

// HumanBytes formats a byte count for status lines using binary units.
func HumanBytes(i int64) string {
	units := []string{"B", "KiB", "MiB", "GiB", "TiB"}

	f := float64(i)
	idx := 0
	for f > 512 && idx < len(units)-1 {
		f /= 1024
		idx++
	}
	if idx == 0 {
		return fmt.Sprintf("%d B", i)
	}
	return fmt.Sprintf("%.02f %s", f, units[idx])
}
