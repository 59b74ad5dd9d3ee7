package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IST is the provider's local offset. Zomato emails carry naive
// timestamps in Indian Standard Time, which has no DST.
var IST = time.FixedZone("IST", 5*3600+30*60)

type OrderStatus string

const (
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
	StatusRefunded  OrderStatus = "refunded"
)

// RawEmail is one message from the mailbox archive, already decoded
// from its transfer encoding. Date is nil when the archive message
// carried no parseable Date header.
type RawEmail struct {
	Subject string
	Sender  string
	Body    string
	Date    *time.Time
}

// Order is the persisted record extracted from a single confirmation
// email. OrderID is the unique business key; re-processing the same
// email recomputes the record and upserts by OrderID.
//
// Amount is the derived food amount: TotalAmount - DeliveryFee + Discount.
// A negative Amount means the extracted triple was inconsistent and
// should be treated as a data-quality signal, not an error.
type Order struct {
	OrderID          string          `json:"order_id" validate:"required"`
	OrderDate        time.Time       `json:"order_date" validate:"required"`
	RestaurantName   string          `json:"restaurant_name" validate:"required,min=3,max=119"`
	Amount           decimal.Decimal `json:"amount"`
	DeliveryFee      decimal.Decimal `json:"delivery_fee"`
	Discount         decimal.Decimal `json:"discount"`
	TotalAmount      decimal.Decimal `json:"total_amount" validate:"required"`
	Status           OrderStatus     `json:"status" validate:"required,oneof=completed cancelled refunded"`
	PaymentMethod    *string         `json:"payment_method,omitempty"`
	DeliveryLocation *string         `json:"delivery_location,omitempty"`
	OrderItems       *string         `json:"order_items,omitempty"`
	RawSnippet       string          `json:"-"`
	EmailDate        *time.Time      `json:"email_date,omitempty"`
}

// Year returns the calendar year the order was placed.
func (o Order) Year() int {
	return o.OrderDate.Year()
}

// Month returns the calendar month the order was placed.
func (o Order) Month() time.Month {
	return o.OrderDate.Month()
}

// MonthYear returns the order's month bucket as "YYYY-MM".
func (o Order) MonthYear() string {
	return o.OrderDate.Format("2006-01")
}

// UpsertStats reports the outcome of a bulk upsert.
type UpsertStats struct {
	Inserted int
	Updated  int
	Skipped  int
}

// ImportSummary is what an import run reports to the operator.
type ImportSummary struct {
	Inserted int
	Updated  int
	Skipped  int
}
