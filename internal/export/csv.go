// Package export externalizes a run's records as a flat CSV dataset and
// an XLSX report workbook.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joseph-ayodele/orders-tracker/internal/entity"
)

// Header order is the flat dataset contract; downstream tooling depends
// on these exact columns.
var csvHeader = []string{
	"email_id",
	"restaurant_name",
	"order_time",
	"delivery_time",
	"delivery_duration_mins",
	"total_amount",
	"discount_amount",
}

const timeLayout = "2006-01-02 15:04:05"

// WriteCSV writes records as flat rows to w, header first.
func WriteCSV(w io.Writer, records []entity.OrderRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.EmailID,
			r.RestaurantName,
			r.OrderTime.Format(timeLayout),
			r.DeliveryTime.Format(timeLayout),
			strconv.FormatFloat(r.DeliveryDurationMins, 'f', -1, 64),
			r.TotalAmount.StringFixed(2),
			r.DiscountAmount.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile truncates and rewrites path; each run regenerates the
// whole dataset.
func WriteCSVFile(path string, records []entity.OrderRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, records); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
