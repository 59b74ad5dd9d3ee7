package extract

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nikhilx/zomato-spend-analyzer/internal/core/domain"
)

// rawSnippetLimit bounds the normalized-text excerpt kept on the
// order for auditing.
const rawSnippetLimit = 1000

// OrderExtractor assembles orders from raw confirmation emails. It is
// stateless apart from the validator and safe for concurrent use.
type OrderExtractor struct {
	validate *validator.Validate
}

func NewOrderExtractor() *OrderExtractor {
	return &OrderExtractor{
		validate: validator.New(),
	}
}

// ExtractOrder runs every field extractor against the email and
// assembles the result. The first missing required field fails the
// whole extraction: a partial order is worse than none, because
// downstream aggregation trusts every stored record. Failures are
// reported as errors, never panics.
func (e *OrderExtractor) ExtractOrder(subject, sender, body string, emailDate *time.Time) (*domain.Order, error) {
	text := Normalize(body)

	orderID, ok := extractOrderID(subject, text)
	if !ok {
		return nil, domain.ErrMissingOrderID
	}

	restaurant, ok := extractRestaurant(text, subject)
	if !ok {
		return nil, domain.ErrMissingRestaurant
	}

	total, ok := extractTotalAmount(text)
	if !ok {
		return nil, domain.ErrMissingTotalAmount
	}

	fee := extractDeliveryFee(text)
	discount := extractDiscount(text)
	amount := total.Sub(fee).Add(discount)

	orderDate, err := extractOrderDate(text, emailDate)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		OrderID:        orderID,
		OrderDate:      orderDate,
		RestaurantName: restaurant,
		Amount:         amount,
		DeliveryFee:    fee,
		Discount:       discount,
		TotalAmount:    total,
		Status:         domain.StatusCompleted,
		RawSnippet:     truncate(text, rawSnippetLimit),
		EmailDate:      emailDate,
	}

	if err := e.validate.Struct(order); err != nil {
		return nil, fmt.Errorf("invalid order %s: %w", orderID, err)
	}

	return order, nil
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
