// Package report derives aggregate views from a run's order records for
// the summary sheet of the XLSX export.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/orders-tracker/internal/entity"
)

// MonthlyStat aggregates orders within one calendar month of order time.
type MonthlyStat struct {
	Month         string // YYYY-MM
	Orders        int
	TotalSpent    decimal.Decimal
	TotalDiscount decimal.Decimal
}

// RestaurantStat aggregates orders for one restaurant.
type RestaurantStat struct {
	Name       string
	Orders     int
	TotalSpent decimal.Decimal
}

// Summary holds the derived aggregates.
type Summary struct {
	Monthly     []MonthlyStat    // ascending by month
	Restaurants []RestaurantStat // descending by spend, then by name
}

func Summarize(records []entity.OrderRecord) Summary {
	months := make(map[string]*MonthlyStat)
	restaurants := make(map[string]*RestaurantStat)

	for _, r := range records {
		month := r.OrderTime.Format("2006-01")
		m, ok := months[month]
		if !ok {
			m = &MonthlyStat{Month: month}
			months[month] = m
		}
		m.Orders++
		m.TotalSpent = m.TotalSpent.Add(r.TotalAmount)
		m.TotalDiscount = m.TotalDiscount.Add(r.DiscountAmount)

		rs, ok := restaurants[r.RestaurantName]
		if !ok {
			rs = &RestaurantStat{Name: r.RestaurantName}
			restaurants[r.RestaurantName] = rs
		}
		rs.Orders++
		rs.TotalSpent = rs.TotalSpent.Add(r.TotalAmount)
	}

	var out Summary
	for _, m := range months {
		out.Monthly = append(out.Monthly, *m)
	}
	sort.Slice(out.Monthly, func(i, j int) bool {
		return out.Monthly[i].Month < out.Monthly[j].Month
	})

	for _, rs := range restaurants {
		out.Restaurants = append(out.Restaurants, *rs)
	}
	sort.Slice(out.Restaurants, func(i, j int) bool {
		a, b := out.Restaurants[i], out.Restaurants[j]
		if !a.TotalSpent.Equal(b.TotalSpent) {
			return a.TotalSpent.GreaterThan(b.TotalSpent)
		}
		return a.Name < b.Name
	})
	return out
}
