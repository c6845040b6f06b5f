package domain

import (
	"fmt"
	"strings"
)

// FormatBRL renders a value as Brazilian currency with two decimals and a
// comma separator ("R$ 12,34"). The on-screen totals and the composed order
// message must format through here so the two never diverge.
func FormatBRL(value float64) string {
	return "R$ " + FormatAmount(value)
}

// FormatAmount renders just the number ("12,34").
func FormatAmount(value float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", value), ".", ",", 1)
}
