package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nikhilx/zomato-spend-analyzer/internal/core/domain"
)

type OrderStorage struct {
	db *PostgresDB
}

func NewOrderStorage(db *PostgresDB) *OrderStorage {
	return &OrderStorage{
		db: db,
	}
}

const orderColumns = `order_id, order_date, restaurant_name, amount, delivery_fee,
	discount, total_amount, status, payment_method, delivery_location,
	order_items, raw_email_body, email_date`

// upsertSQL rewrites an existing row; (xmax = 0) reports whether the
// row was freshly inserted.
const upsertSQL = `
	INSERT INTO orders (` + orderColumns + `, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
	ON CONFLICT (order_id) DO UPDATE SET
		order_date = EXCLUDED.order_date,
		restaurant_name = EXCLUDED.restaurant_name,
		amount = EXCLUDED.amount,
		delivery_fee = EXCLUDED.delivery_fee,
		discount = EXCLUDED.discount,
		total_amount = EXCLUDED.total_amount,
		status = EXCLUDED.status,
		payment_method = EXCLUDED.payment_method,
		delivery_location = EXCLUDED.delivery_location,
		order_items = EXCLUDED.order_items,
		raw_email_body = EXCLUDED.raw_email_body,
		email_date = EXCLUDED.email_date,
		updated_at = EXCLUDED.updated_at
	RETURNING (xmax = 0)
`

const insertOnlySQL = `
	INSERT INTO orders (` + orderColumns + `, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
	ON CONFLICT (order_id) DO NOTHING
`

func orderArgs(order domain.Order) []any {
	return []any{
		order.OrderID,
		order.OrderDate,
		order.RestaurantName,
		order.Amount,
		order.DeliveryFee,
		order.Discount,
		order.TotalAmount,
		string(order.Status),
		order.PaymentMethod,
		order.DeliveryLocation,
		order.OrderItems,
		order.RawSnippet,
		order.EmailDate,
		time.Now().UTC(),
	}
}

// UpsertOrder writes a single order. With upsert=false an existing
// row is left alone and false is returned.
func (s *OrderStorage) UpsertOrder(ctx context.Context, order domain.Order, upsert bool) (bool, error) {
	if !upsert {
		tag, err := s.db.Exec(ctx, insertOnlySQL, orderArgs(order)...)
		if err != nil {
			return false, fmt.Errorf("insert order %s: %w", order.OrderID, err)
		}
		return tag.RowsAffected() > 0, nil
	}

	var inserted bool
	if err := s.db.QueryRow(ctx, upsertSQL, orderArgs(order)...).Scan(&inserted); err != nil {
		return false, fmt.Errorf("upsert order %s: %w", order.OrderID, err)
	}
	return inserted, nil
}

// BulkUpsert writes a batch in one transaction so a partial failure
// persists nothing.
func (s *OrderStorage) BulkUpsert(ctx context.Context, orders []domain.Order, upsert bool) (domain.UpsertStats, error) {
	var stats domain.UpsertStats

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return stats, fmt.Errorf("begin bulk upsert: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, order := range orders {
		if upsert {
			var inserted bool
			if err := tx.QueryRow(ctx, upsertSQL, orderArgs(order)...).Scan(&inserted); err != nil {
				return domain.UpsertStats{}, fmt.Errorf("upsert order %s: %w", order.OrderID, err)
			}
			if inserted {
				stats.Inserted++
			} else {
				stats.Updated++
			}
			continue
		}

		tag, err := tx.Exec(ctx, insertOnlySQL, orderArgs(order)...)
		if err != nil {
			return domain.UpsertStats{}, fmt.Errorf("insert order %s: %w", order.OrderID, err)
		}
		if tag.RowsAffected() > 0 {
			stats.Inserted++
		} else {
			stats.Skipped++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.UpsertStats{}, fmt.Errorf("commit bulk upsert: %w", err)
	}
	return stats, nil
}

func (s *OrderStorage) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	return s.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY order_date DESC`)
}

func (s *OrderStorage) GetOrdersByYear(ctx context.Context, year int) ([]domain.Order, error) {
	return s.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE date_part('year', order_date) = $1
		 ORDER BY order_date DESC`, year)
}

func (s *OrderStorage) GetOrdersByMonth(ctx context.Context, year int, month time.Month) ([]domain.Order, error) {
	return s.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE date_part('year', order_date) = $1 AND date_part('month', order_date) = $2
		 ORDER BY order_date DESC`, year, int(month))
}

func (s *OrderStorage) CountOrders(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}

func (s *OrderStorage) queryOrders(ctx context.Context, sql string, args ...any) ([]domain.Order, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var order domain.Order
	var status string
	err := row.Scan(
		&order.OrderID,
		&order.OrderDate,
		&order.RestaurantName,
		&order.Amount,
		&order.DeliveryFee,
		&order.Discount,
		&order.TotalAmount,
		&status,
		&order.PaymentMethod,
		&order.DeliveryLocation,
		&order.OrderItems,
		&order.RawSnippet,
		&order.EmailDate,
	)
	if err != nil {
		return domain.Order{}, fmt.Errorf("scan order: %w", err)
	}
	order.Status = domain.OrderStatus(status)
	return order, nil
}
