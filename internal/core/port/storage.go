package port

import (
	"context"
	"time"

	"github.com/nikhilx/zomato-spend-analyzer/internal/core/domain"
)

type OrderStorage interface {
	// UpsertOrder writes one order. When upsert is false an existing
	// order with the same OrderID is left untouched. Returns whether
	// the row was inserted (as opposed to updated or skipped).
	UpsertOrder(ctx context.Context, order domain.Order, upsert bool) (bool, error)

	// BulkUpsert writes a batch inside a single transaction. When
	// upsert is false, rows whose OrderID already exists are counted
	// as skipped instead of being rewritten.
	BulkUpsert(ctx context.Context, orders []domain.Order, upsert bool) (domain.UpsertStats, error)

	GetAllOrders(ctx context.Context) ([]domain.Order, error)
	GetOrdersByYear(ctx context.Context, year int) ([]domain.Order, error)
	GetOrdersByMonth(ctx context.Context, year int, month time.Month) ([]domain.Order, error)
	CountOrders(ctx context.Context) (int, error)
}

// WatermarkStore persists the "last synced" boundary between
// already-imported and not-yet-imported mail. Read reports absent
// (false) for a missing or unparsable value, which callers treat as
// "never synced".
type WatermarkStore interface {
	Read() (time.Time, bool)
	Write(t time.Time) error
}
