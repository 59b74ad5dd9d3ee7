package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nikhilx/zomato-spend-analyzer/internal/analytics"
	"github.com/nikhilx/zomato-spend-analyzer/internal/core/domain"
	"github.com/nikhilx/zomato-spend-analyzer/mocks"
)

func fixtureOrders() []domain.Order {
	return []domain.Order{
		{
			OrderID:        "A0001234",
			OrderDate:      time.Date(2021, time.March, 9, 0, 0, 0, 0, time.UTC),
			RestaurantName: "Biryani Blues",
			TotalAmount:    decimal.NewFromInt(600),
			Status:         domain.StatusCompleted,
		},
		{
			OrderID:        "B0001234",
			OrderDate:      time.Date(2020, time.March, 5, 0, 0, 0, 0, time.UTC),
			RestaurantName: "Pind Balluchi",
			TotalAmount:    decimal.NewFromInt(400),
			Status:         domain.StatusCompleted,
		},
	}
}

func serve(h echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	_ = h(e.NewContext(req, rec))
	return rec
}

func TestStatsEndpoint(t *testing.T) {
	storage := mocks.NewOrderStorage(t)
	storage.EXPECT().GetAllOrders(mock.Anything).Return(fixtureOrders(), nil)

	h := NewStatsHTTPHandler(analytics.New(storage), storage)
	rec := serve(h.Stats(), "/api/v1/stats")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Summary  analytics.Summary     `json:"summary"`
		YearWise []analytics.YearStats `json:"year_wise"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Summary.TotalOrders)
	assert.True(t, body.Summary.TotalSpend.Equal(decimal.NewFromInt(1000)))
	require.Len(t, body.YearWise, 2)
	assert.Equal(t, 2020, body.YearWise[0].Year)
}

func TestOrdersEndpointFiltersByYear(t *testing.T) {
	storage := mocks.NewOrderStorage(t)
	storage.EXPECT().GetOrdersByYear(mock.Anything, 2021).Return(fixtureOrders()[:1], nil)

	h := NewStatsHTTPHandler(analytics.New(storage), storage)
	rec := serve(h.Orders(), "/api/v1/orders?year=2021")

	require.Equal(t, http.StatusOK, rec.Code)

	var orders []domain.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "A0001234", orders[0].OrderID)
}

func TestOrdersEndpointRejectsBadYear(t *testing.T) {
	storage := mocks.NewOrderStorage(t)
	h := NewStatsHTTPHandler(analytics.New(storage), storage)

	rec := serve(h.Orders(), "/api/v1/orders?year=1900")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRestaurantsEndpointDefaultLimit(t *testing.T) {
	storage := mocks.NewOrderStorage(t)
	storage.EXPECT().GetAllOrders(mock.Anything).Return(fixtureOrders(), nil)

	h := NewStatsHTTPHandler(analytics.New(storage), storage)
	rec := serve(h.Restaurants(), "/api/v1/restaurants")

	require.Equal(t, http.StatusOK, rec.Code)

	var restaurants []analytics.RestaurantStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &restaurants))
	require.Len(t, restaurants, 2)
	assert.Equal(t, "Biryani Blues", restaurants[0].Name)
}
