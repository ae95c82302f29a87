package utils

import (
	"fmt"
	"math"
	"strings"
)

// Round2 rounds a currency amount to two decimal places
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatBRL renders a currency amount the way the storefront shows it
func FormatBRL(amount float64) string {
	s := fmt.Sprintf("%.2f", Round2(amount))
	return "R$ " + strings.Replace(s, ".", ",", 1)
}
