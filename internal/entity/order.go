package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRecord is the validated output entity for one delivered order.
// It is constructed once per message by the extraction engine and is
// immutable afterwards; partially populated records are never built.
type OrderRecord struct {
	EmailID              string          `json:"email_id"`
	RestaurantName       string          `json:"restaurant_name"`
	OrderTime            time.Time       `json:"order_time"`
	DeliveryTime         time.Time       `json:"delivery_time"`
	DeliveryDurationMins float64         `json:"delivery_duration_mins"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	DiscountAmount       decimal.Decimal `json:"discount_amount"`
}
