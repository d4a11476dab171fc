package utils

import (
	"math"
	"strconv"
)

var fileSizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// FormatFileSize renders a byte count in decimal (power of 1000) units,
// rounded to two decimals with trailing zeros dropped: 0 → "0 Bytes",
// 1500 → "1.5 KB", 2000000 → "2 MB".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	index := int(math.Floor(math.Log(float64(bytes)) / math.Log(1000)))
	if index >= len(fileSizeUnits) {
		index = len(fileSizeUnits) - 1
	}

	value := float64(bytes) / math.Pow(1000, float64(index))
	value = math.Round(value*100) / 100

	return strconv.FormatFloat(value, 'f', -1, 64) + " " + fileSizeUnits[index]
}
