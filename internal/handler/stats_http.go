package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/nikhilx/zomato-spend-analyzer/internal/analytics"
	"github.com/nikhilx/zomato-spend-analyzer/internal/core/domain"
	"github.com/nikhilx/zomato-spend-analyzer/internal/core/port"
)

// StatsHTTPHandler serves the read-only spend analytics API.
type StatsHTTPHandler struct {
	analytics *analytics.Analytics
	storage   port.OrderStorage
	validate  *validator.Validate
}

type ordersRequest struct {
	Year int `query:"year" validate:"omitempty,min=2008,max=2100"`
}

type restaurantsRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=500"`
}

func NewStatsHTTPHandler(a *analytics.Analytics, storage port.OrderStorage) *StatsHTTPHandler {
	return &StatsHTTPHandler{
		analytics: a,
		storage:   storage,
		validate:  validator.New(),
	}
}

func (h *StatsHTTPHandler) Stats() echo.HandlerFunc {
	return func(c echo.Context) error {
		summary, err := h.analytics.Summary(c.Request().Context())
		if err != nil {
			log.WithError(err).Error("Failed to compute summary")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "failed to compute summary",
			})
		}

		yearWise, err := h.analytics.YearWise(c.Request().Context())
		if err != nil {
			log.WithError(err).Error("Failed to compute year-wise stats")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "failed to compute year-wise stats",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"summary":   summary,
			"year_wise": yearWise,
		})
	}
}

func (h *StatsHTTPHandler) Orders() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req ordersRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid query"})
		}
		if err := h.validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		ctx := c.Request().Context()
		var (
			orders []domain.Order
			err    error
		)
		if req.Year != 0 {
			orders, err = h.storage.GetOrdersByYear(ctx, req.Year)
		} else {
			orders, err = h.storage.GetAllOrders(ctx)
		}
		if err != nil {
			log.WithError(err).Error("Failed to fetch orders")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "failed to fetch orders",
			})
		}
		return c.JSON(http.StatusOK, orders)
	}
}

func (h *StatsHTTPHandler) Restaurants() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req restaurantsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid query"})
		}
		if err := h.validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		if req.Limit == 0 {
			req.Limit = 15
		}

		restaurants, err := h.analytics.TopRestaurants(c.Request().Context(), req.Limit)
		if err != nil {
			log.WithError(err).Error("Failed to rank restaurants")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "failed to rank restaurants",
			})
		}
		return c.JSON(http.StatusOK, restaurants)
	}
}
