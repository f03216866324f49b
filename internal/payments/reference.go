package payments

import (
	"fmt"
	"math"
	"time"
)

// Reference ids are time-derived, so repeated attempts by the same user
// always sign different canonical strings.

func orderReference(now time.Time) string {
	return fmt.Sprintf("ORD-%d", now.UnixMilli())
}

func txnReference(now time.Time) string {
	return fmt.Sprintf("TXN-%d", now.UnixMilli())
}

// paisa converts a rupee amount to integer paisa.
func paisa(amount float64) int {
	return int(math.Round(amount * 100))
}

// decimalAmount formats a rupee amount with exactly two decimals.
func decimalAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
