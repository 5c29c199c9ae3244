package extract

import "time"

// DurationMinutes returns the signed delivery duration in minutes.
// Inverted timestamps yield a negative value; the engine deliberately
// does not reject them.
func DurationMinutes(orderTime, deliveryTime time.Time) float64 {
	return deliveryTime.Sub(orderTime).Minutes()
}
