package utils

import (
	"fmt"
	"math"
)

// FormatRupiah renders an amount the way id-ID formats IDR with no fraction
// digits, e.g. "Rp 150.000".
func FormatRupiah(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	str := fmt.Sprintf("%d", n)
	count := len(str)

	result := ""
	for i, digit := range str {
		if i > 0 && (count-i)%3 == 0 {
			result += "."
		}
		result += string(digit)
	}
	return sign + "Rp " + result
}
