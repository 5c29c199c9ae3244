package extract

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/orders-tracker/internal/common"
	"github.com/joseph-ayodele/orders-tracker/internal/entity"
)

// RejectionError reports which required fields were missing from an
// extraction. It is the only failure the pipeline sees from the engine.
type RejectionError struct {
	Missing []string
}

func (e *RejectionError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

func (e *RejectionError) Unwrap() error {
	return common.ErrValidation
}

// Validate enforces the required-field invariant: restaurant name, both
// timestamps, and a total (zero is a valid total). On success it builds
// the immutable record, including the derived delivery duration. A
// missing discount stays zero, never null.
func Validate(f Fields, emailID string) (*entity.OrderRecord, error) {
	var missing []string
	if f.RestaurantName == "" {
		missing = append(missing, "restaurant_name")
	}
	if f.OrderTime == nil {
		missing = append(missing, "order_time")
	}
	if f.DeliveryTime == nil {
		missing = append(missing, "delivery_time")
	}
	if f.Total == nil {
		missing = append(missing, "total_amount")
	}
	if len(missing) > 0 {
		return nil, &RejectionError{Missing: missing}
	}

	discount := f.Discount
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	return &entity.OrderRecord{
		EmailID:              emailID,
		RestaurantName:       f.RestaurantName,
		OrderTime:            *f.OrderTime,
		DeliveryTime:         *f.DeliveryTime,
		DeliveryDurationMins: DurationMinutes(*f.OrderTime, *f.DeliveryTime),
		TotalAmount:          *f.Total,
		DiscountAmount:       discount,
	}, nil
}
