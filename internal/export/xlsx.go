package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/orders-tracker/internal/entity"
	"github.com/joseph-ayodele/orders-tracker/internal/report"
)

// Service produces the XLSX report workbook: an Orders sheet mirroring
// the CSV dataset plus a Summary sheet of monthly and per-restaurant
// aggregates.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// WriteXLSX returns the workbook as bytes.
func (s *Service) WriteXLSX(records []entity.OrderRecord) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const ordersSheet = "Orders"
	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return nil, err
	}

	write := func(sheet string, col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	for i, h := range csvHeader {
		write(ordersSheet, i+1, 1, h)
	}
	for i, r := range records {
		row := i + 2
		write(ordersSheet, 1, row, r.EmailID)
		write(ordersSheet, 2, row, r.RestaurantName)
		write(ordersSheet, 3, row, r.OrderTime.Format(timeLayout))
		write(ordersSheet, 4, row, r.DeliveryTime.Format(timeLayout))
		write(ordersSheet, 5, row, r.DeliveryDurationMins)
		write(ordersSheet, 6, row, r.TotalAmount.StringFixed(2))
		write(ordersSheet, 7, row, r.DiscountAmount.StringFixed(2))
	}

	// Widen a few columns
	_ = f.SetColWidth(ordersSheet, "A", "A", 22) // email id
	_ = f.SetColWidth(ordersSheet, "B", "B", 32) // restaurant
	_ = f.SetColWidth(ordersSheet, "C", "D", 20) // timestamps
	_ = f.SetColWidth(ordersSheet, "E", "G", 16) // numbers

	if err := s.writeSummary(f, records); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	s.logger.Info("export.xlsx.done", "records", len(records), "took", time.Since(start))
	return buf.Bytes(), nil
}

func (s *Service) writeSummary(f *excelize.File, records []entity.OrderRecord) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	summary := report.Summarize(records)

	write(1, 1, "Month")
	write(2, 1, "Orders")
	write(3, 1, "Total Spent")
	write(4, 1, "Total Discount")
	row := 2
	for _, m := range summary.Monthly {
		write(1, row, m.Month)
		write(2, row, m.Orders)
		write(3, row, m.TotalSpent.StringFixed(2))
		write(4, row, m.TotalDiscount.StringFixed(2))
		row++
	}

	row++ // blank spacer line
	write(1, row, "Restaurant")
	write(2, row, "Orders")
	write(3, row, "Total Spent")
	row++
	for _, rs := range summary.Restaurants {
		write(1, row, rs.Name)
		write(2, row, rs.Orders)
		write(3, row, rs.TotalSpent.StringFixed(2))
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32)
	_ = f.SetColWidth(sheet, "B", "D", 16)
	return nil
}
