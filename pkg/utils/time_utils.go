package utils

import "time"

// NextMonthlyReset returns the unix timestamp one calendar month after from.
func NextMonthlyReset(from time.Time) int64 {
	return from.AddDate(0, 1, 0).Unix()
}
