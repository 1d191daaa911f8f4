package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	httperr "github.com/sellerpulse/sellerpulse/internal/core/errors"
)

func fixtureRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	fixtureService(t).RegisterRoutes(router)
	return router
}

func doGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleOverview_Defaults(t *testing.T) {
	router := fixtureRouter(t)

	rec := doGet(t, router, "/v1/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp OverviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Last 30 days", resp.Window.Label)
	require.Equal(t, 5, resp.RecordCount)
	require.NotEmpty(t, resp.Trend)
	require.NotEmpty(t, resp.TopProducts)
}

func TestHandleOverview_CustomRangeWithFilters(t *testing.T) {
	router := fixtureRouter(t)

	rec := doGet(t, router, "/v1/dashboard?mode=custom&start=2025-03-01&end=2025-03-10&category=Books")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp OverviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Books", resp.Filters.Category)
	require.Equal(t, 2, resp.RecordCount)
}

func TestHandleOverview_InvertedRange(t *testing.T) {
	router := fixtureRouter(t)

	rec := doGet(t, router, "/v1/dashboard?mode=custom&start=2025-03-10&end=2025-03-01")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, httperr.HttpInvalidRangeError, resp.ErrorType)
}

func TestHandleOverview_UnknownMode(t *testing.T) {
	router := fixtureRouter(t)

	rec := doGet(t, router, "/v1/dashboard?mode=sideways")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, httperr.HttpInvalidQueryError, resp.ErrorType)
}

func TestHandleOverview_MalformedDate(t *testing.T) {
	router := fixtureRouter(t)

	rec := doGet(t, router, "/v1/dashboard?mode=custom&start=03/01/2025&end=2025-03-10")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, httperr.HttpInvalidQueryError, resp.ErrorType)
}

func TestHandleTrend(t *testing.T) {
	router := fixtureRouter(t)

	rec := doGet(t, router, "/v1/dashboard/trend?mode=quick&preset=Last+7+days")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TrendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "4h", resp.Granularity)
	require.NotEmpty(t, resp.Points)
}

func TestHandleRecentOrders(t *testing.T) {
	router := fixtureRouter(t)

	rec := doGet(t, router, "/v1/orders/recent?mode=quick&preset=All+time")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RecentOrdersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 3)
	require.Equal(t, "D", resp.Orders[0].OrderID)
}

func TestHandleMeta(t *testing.T) {
	router := fixtureRouter(t)

	rec := doGet(t, router, "/v1/meta")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MetaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 5, resp.RecordCount)
	require.Contains(t, resp.Presets, "Year to date")
}

func TestHandleBestSellersCSV(t *testing.T) {
	router := fixtureRouter(t)

	rec := doGet(t, router, "/v1/export/best-sellers.csv?mode=quick&preset=All+time")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "amazon_best_sellers.csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Equal(t, "Product,Units Sold,Revenue,Order Count", lines[0])
	require.Len(t, lines, 4) // header + three products
}

func TestHandleRecentOrdersCSV(t *testing.T) {
	router := fixtureRouter(t)

	rec := doGet(t, router, "/v1/export/recent-orders.csv?mode=quick&preset=All+time")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Disposition"), "recent_orders.csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Equal(t, "Date,Order ID,Product,Category,Quantity,Revenue,Marketplace", lines[0])
	require.Len(t, lines, 5) // header + exportLimit rows
}
