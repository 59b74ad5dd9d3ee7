// Package analytics aggregates stored orders into the spend
// breakdowns the CLI and the HTTP API report.
package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nikhilx/zomato-spend-analyzer/internal/core/port"
)

type Analytics struct {
	storage port.OrderStorage
}

func New(storage port.OrderStorage) *Analytics {
	return &Analytics{
		storage: storage,
	}
}

type Summary struct {
	TotalOrders       int             `json:"total_orders"`
	TotalSpend        decimal.Decimal `json:"total_spend"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	TotalDeliveryFees decimal.Decimal `json:"total_delivery_fees"`
	TotalDiscounts    decimal.Decimal `json:"total_discounts"`
}

type YearStats struct {
	Year   int             `json:"year"`
	Orders int             `json:"orders"`
	Spend  decimal.Decimal `json:"spend"`
}

type MonthStats struct {
	Month  time.Month      `json:"month"`
	Orders int             `json:"orders"`
	Spend  decimal.Decimal `json:"spend"`
}

type RestaurantStats struct {
	Name   string          `json:"restaurant"`
	Orders int             `json:"order_count"`
	Spend  decimal.Decimal `json:"total_spend"`
}

// SeriesPoint is one "YYYY-MM" bucket of the monthly series.
type SeriesPoint struct {
	Month  string          `json:"month"`
	Orders int             `json:"orders"`
	Spend  decimal.Decimal `json:"spend"`
}

// Summary reports totals across all stored orders. Spend is the sum
// of total amounts, as billed.
func (a *Analytics) Summary(ctx context.Context) (Summary, error) {
	orders, err := a.storage.GetAllOrders(ctx)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{TotalOrders: len(orders)}
	for _, o := range orders {
		s.TotalSpend = s.TotalSpend.Add(o.TotalAmount)
		s.TotalDeliveryFees = s.TotalDeliveryFees.Add(o.DeliveryFee)
		s.TotalDiscounts = s.TotalDiscounts.Add(o.Discount)
	}
	if s.TotalOrders > 0 {
		s.AverageOrderValue = s.TotalSpend.DivRound(decimal.NewFromInt(int64(s.TotalOrders)), 2)
	}
	return s, nil
}

// YearWise buckets orders and spend per calendar year, oldest first.
func (a *Analytics) YearWise(ctx context.Context) ([]YearStats, error) {
	orders, err := a.storage.GetAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	byYear := make(map[int]*YearStats)
	for _, o := range orders {
		stats, ok := byYear[o.Year()]
		if !ok {
			stats = &YearStats{Year: o.Year()}
			byYear[o.Year()] = stats
		}
		stats.Orders++
		stats.Spend = stats.Spend.Add(o.TotalAmount)
	}

	result := make([]YearStats, 0, len(byYear))
	for _, stats := range byYear {
		result = append(result, *stats)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Year < result[j].Year })
	return result, nil
}

// MonthWise buckets one year's orders per month, January first.
// Months with no orders are omitted.
func (a *Analytics) MonthWise(ctx context.Context, year int) ([]MonthStats, error) {
	orders, err := a.storage.GetOrdersByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[time.Month]*MonthStats)
	for _, o := range orders {
		stats, ok := byMonth[o.Month()]
		if !ok {
			stats = &MonthStats{Month: o.Month()}
			byMonth[o.Month()] = stats
		}
		stats.Orders++
		stats.Spend = stats.Spend.Add(o.TotalAmount)
	}

	result := make([]MonthStats, 0, len(byMonth))
	for month := time.January; month <= time.December; month++ {
		if stats, ok := byMonth[month]; ok {
			result = append(result, *stats)
		}
	}
	return result, nil
}

// MonthlySeries buckets all orders per "YYYY-MM" key, oldest first.
func (a *Analytics) MonthlySeries(ctx context.Context) ([]SeriesPoint, error) {
	orders, err := a.storage.GetAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]*SeriesPoint)
	for _, o := range orders {
		key := o.MonthYear()
		point, ok := byKey[key]
		if !ok {
			point = &SeriesPoint{Month: key}
			byKey[key] = point
		}
		point.Orders++
		point.Spend = point.Spend.Add(o.TotalAmount)
	}

	result := make([]SeriesPoint, 0, len(byKey))
	for _, point := range byKey {
		result = append(result, *point)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Month < result[j].Month })
	return result, nil
}

// TopRestaurants ranks restaurants by total spend, highest first.
func (a *Analytics) TopRestaurants(ctx context.Context, n int) ([]RestaurantStats, error) {
	orders, err := a.storage.GetAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*RestaurantStats)
	for _, o := range orders {
		stats, ok := byName[o.RestaurantName]
		if !ok {
			stats = &RestaurantStats{Name: o.RestaurantName}
			byName[o.RestaurantName] = stats
		}
		stats.Orders++
		stats.Spend = stats.Spend.Add(o.TotalAmount)
	}

	result := make([]RestaurantStats, 0, len(byName))
	for _, stats := range byName {
		result = append(result, *stats)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Spend.Equal(result[j].Spend) {
			return result[i].Spend.GreaterThan(result[j].Spend)
		}
		return result[i].Name < result[j].Name
	})
	if n > 0 && n < len(result) {
		result = result[:n]
	}
	return result, nil
}
