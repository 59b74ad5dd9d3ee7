package extract

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nikhilx/zomato-spend-analyzer/internal/core/domain"
)

const confirmationBody = "Order ID: ORD123456 Restaurant: Dominoes Pizza " +
	"Total Amount: ₹440.00 Delivery Charges: ₹40.00 Promo Discount: -₹50.00"

func TestExtractOrderComplete(t *testing.T) {
	e := NewOrderExtractor()
	emailDate := time.Date(2021, time.June, 5, 14, 30, 0, 0, time.UTC)

	order, err := e.ExtractOrder(
		"Your Zomato order ORD123456 is confirmed",
		"noreply@zomato.com",
		confirmationBody,
		&emailDate,
	)
	assert.NoError(t, err)
	assert.Equal(t, "ORD123456", order.OrderID)
	assert.Equal(t, "Dominoes Pizza", order.RestaurantName)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("440.00")))
	assert.True(t, order.DeliveryFee.Equal(decimal.RequireFromString("40.00")))
	assert.True(t, order.Discount.Equal(decimal.RequireFromString("50.00")))
	// Food amount is total minus fee plus discount.
	assert.True(t, order.Amount.Equal(decimal.RequireFromString("450.00")))
	assert.Equal(t, domain.StatusCompleted, order.Status)
	assert.True(t, emailDate.Equal(order.OrderDate))
	assert.NotNil(t, order.EmailDate)
}

func TestExtractOrderDeterministic(t *testing.T) {
	e := NewOrderExtractor()
	emailDate := time.Date(2021, time.June, 5, 14, 30, 0, 0, time.UTC)

	first, err := e.ExtractOrder("Order ORD123456 confirmed", "noreply@zomato.com", confirmationBody, &emailDate)
	assert.NoError(t, err)
	second, err := e.ExtractOrder("Order ORD123456 confirmed", "noreply@zomato.com", confirmationBody, &emailDate)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExtractOrderPaidPrecedence(t *testing.T) {
	e := NewOrderExtractor()
	emailDate := time.Date(2022, time.January, 12, 9, 0, 0, 0, time.UTC)

	order, err := e.ExtractOrder(
		"Summary of your Pro Plus order from Behrouz Biryani",
		"order@zomato.in",
		"ORDER ID: 99881234 Total Amount: ₹500.00 Paid ₹300",
		&emailDate,
	)
	assert.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(300)),
		"paid amount must win, got %s", order.TotalAmount)
	assert.Equal(t, "Behrouz Biryani", order.RestaurantName)
}

func TestExtractOrderMissingFields(t *testing.T) {
	e := NewOrderExtractor()
	emailDate := time.Date(2021, time.June, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		subject string
		body    string
		wantErr error
	}{
		{
			name:    "no order id",
			subject: "Your meal is on the way",
			body:    "Restaurant: Pind Balluchi Total ₹400",
			wantErr: domain.ErrMissingOrderID,
		},
		{
			name:    "no restaurant",
			subject: "Your meal is confirmed",
			body:    "ORDER ID: 12345678 Total ₹400",
			wantErr: domain.ErrMissingRestaurant,
		},
		{
			name:    "no total amount",
			subject: "Order update",
			body:    "ORDER ID: 12345678 Restaurant: Pind Balluchi",
			wantErr: domain.ErrMissingTotalAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := e.ExtractOrder(tt.subject, "noreply@zomato.com", tt.body, &emailDate)
			assert.Nil(t, order)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExtractOrderNoDateAnywhere(t *testing.T) {
	e := NewOrderExtractor()

	order, err := e.ExtractOrder(
		"Order confirmed",
		"noreply@zomato.com",
		confirmationBody,
		nil,
	)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domain.ErrNoOrderDate)
}

func TestExtractOrderTruncatesSnippet(t *testing.T) {
	e := NewOrderExtractor()
	emailDate := time.Date(2021, time.June, 5, 14, 30, 0, 0, time.UTC)

	padding := strings.Repeat("menu item detail ", 200)
	order, err := e.ExtractOrder("Order confirmed", "noreply@zomato.com", confirmationBody+" "+padding, &emailDate)
	assert.NoError(t, err)
	assert.Len(t, []rune(order.RawSnippet), rawSnippetLimit)
}
