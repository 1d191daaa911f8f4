package dashboard

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	httperr "github.com/sellerpulse/sellerpulse/internal/core/errors"
	"github.com/sellerpulse/sellerpulse/internal/core/timewindow"
	"github.com/sellerpulse/sellerpulse/internal/export"
)

// RegisterRoutes registers all dashboard API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/meta", s.HandleMeta)
	r.GET("/v1/dashboard", s.HandleOverview)
	r.GET("/v1/dashboard/trend", s.HandleTrend)
	r.GET("/v1/dashboard/products", s.HandleProducts)
	r.GET("/v1/dashboard/marketplaces", s.HandleMarketplaces)
	r.GET("/v1/dashboard/categories", s.HandleCategories)
	r.GET("/v1/orders/recent", s.HandleRecentOrders)
	r.GET("/v1/export/best-sellers.csv", s.HandleBestSellersCSV)
	r.GET("/v1/export/recent-orders.csv", s.HandleRecentOrdersCSV)
}

// HandleMeta handles GET /v1/meta.
func (s *Service) HandleMeta(c *gin.Context) {
	c.JSON(http.StatusOK, s.Meta())
}

// HandleOverview handles GET /v1/dashboard.
func (s *Service) HandleOverview(c *gin.Context) {
	query, ok := bindQuery(c)
	if !ok {
		return
	}
	resp, err := s.Overview(c.Request.Context(), query)
	if err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleTrend handles GET /v1/dashboard/trend.
func (s *Service) HandleTrend(c *gin.Context) {
	query, ok := bindQuery(c)
	if !ok {
		return
	}
	resp, err := s.Trend(query)
	if err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleProducts handles GET /v1/dashboard/products.
func (s *Service) HandleProducts(c *gin.Context) {
	query, ok := bindQuery(c)
	if !ok {
		return
	}
	resp, err := s.TopProducts(query)
	if err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleMarketplaces handles GET /v1/dashboard/marketplaces.
func (s *Service) HandleMarketplaces(c *gin.Context) {
	query, ok := bindQuery(c)
	if !ok {
		return
	}
	resp, err := s.Marketplaces(query)
	if err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleCategories handles GET /v1/dashboard/categories.
func (s *Service) HandleCategories(c *gin.Context) {
	query, ok := bindQuery(c)
	if !ok {
		return
	}
	resp, err := s.Categories(query)
	if err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleRecentOrders handles GET /v1/orders/recent.
func (s *Service) HandleRecentOrders(c *gin.Context) {
	query, ok := bindQuery(c)
	if !ok {
		return
	}
	resp, err := s.RecentOrders(query)
	if err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleBestSellersCSV handles GET /v1/export/best-sellers.csv.
func (s *Service) HandleBestSellersCSV(c *gin.Context) {
	query, ok := bindQuery(c)
	if !ok {
		return
	}
	products, err := s.BestSellersExport(query)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	setCSVHeaders(c, "amazon_best_sellers.csv")
	if err := export.WriteBestSellers(c.Writer, products); err != nil {
		slog.Error("Failed to write best sellers CSV", "error", err)
	}
}

// HandleRecentOrdersCSV handles GET /v1/export/recent-orders.csv.
func (s *Service) HandleRecentOrdersCSV(c *gin.Context) {
	query, ok := bindQuery(c)
	if !ok {
		return
	}
	orders, err := s.RecentOrdersExport(query)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	setCSVHeaders(c, "recent_orders.csv")
	if err := export.WriteRecentOrders(c.Writer, orders); err != nil {
		slog.Error("Failed to write recent orders CSV", "error", err)
	}
}

func bindQuery(c *gin.Context) (Query, bool) {
	var query Query
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return Query{}, false
	}
	return query, true
}

func writeQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, timewindow.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRangeError,
			Message:   "Start date must not be after end date",
			Details:   err.Error(),
		})
	case errors.Is(err, ErrInvalidQuery):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid dashboard query",
			Details:   err.Error(),
		})
	default:
		slog.Error("Dashboard query failed", "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to compute dashboard",
			Details:   err.Error(),
		})
	}
}

func setCSVHeaders(c *gin.Context, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
}
