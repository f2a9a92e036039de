package handlers

import (
	"net/http"

	"github.com/brickfolio/property-portfolio-backend/internal/api/middleware"
	"github.com/brickfolio/property-portfolio-backend/internal/api/response"
	"github.com/brickfolio/property-portfolio-backend/internal/apperrors"
	"github.com/brickfolio/property-portfolio-backend/internal/service"
	"github.com/brickfolio/property-portfolio-backend/internal/validation"
)

// PortfolioHandler handles HTTP requests for portfolio-wide analytics:
// aggregate metrics, cash flow series, and valuation history.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
	snapshotService  *service.SnapshotService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependencies.
func NewPortfolioHandler(
	portfolioService *service.PortfolioService,
	snapshotService *service.SnapshotService,
) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		snapshotService:  snapshotService,
	}
}

// ownerScope resolves the owner scoping for a portfolio request. A verified
// session token wins; otherwise an explicit ownerId query parameter is
// accepted. An empty result means the whole portfolio.
func ownerScope(r *http.Request) (string, error) {
	if ownerID := middleware.OwnerIDFromContext(r.Context()); ownerID != "" {
		return ownerID, nil
	}
	ownerID := r.URL.Query().Get("ownerId")
	if ownerID == "" {
		return "", nil
	}
	if err := validation.ValidateUUID(ownerID); err != nil {
		return "", err
	}
	return ownerID, nil
}

// Metrics handles GET requests to compute the portfolio metrics block:
// total properties, total value, occupancy rate, monthly income, annual
// return, and value growth. The result covers active properties only.
//
// Endpoint: GET /api/portfolio/metrics
// Response: 200 OK with PortfolioMetrics
// Error: 400 Bad Request if the ownerId parameter is malformed
// Error: 500 Internal Server Error if computation fails
func (h *PortfolioHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerScope(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	portfolioMetrics, err := h.portfolioService.GetPortfolioMetrics(ownerID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeMetrics.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, portfolioMetrics)
}

// CashFlow handles GET requests to compute the dense monthly cash flow
// series for the portfolio over the requested date range.
//
// Endpoint: GET /api/portfolio/cashflow?start=&end=
// Response: 200 OK with array of CashFlowPoint
// Error: 400 Bad Request if the date range or ownerId parameter is malformed
// Error: 500 Internal Server Error if computation fails
func (h *PortfolioHandler) CashFlow(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerScope(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	start, end, err := parseDateRange(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid date range", err.Error())
		return
	}

	series, err := h.portfolioService.GetCashFlowSeries(r.Context(), ownerID, start, end)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeCashFlow.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, series)
}

// History handles GET requests to retrieve the portfolio valuation history.
// Stored daily snapshots back the series; when the range reaches the current
// day a live figure is computed so the chart never lags behind reality.
//
// Endpoint: GET /api/portfolio/history?start=&end=
// Response: 200 OK with array of ValuationSnapshot
// Error: 400 Bad Request if the date range is malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) History(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseDateRange(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid date range", err.Error())
		return
	}

	history, err := h.snapshotService.GetHistory(start, end)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetValuationHistory.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, history)
}
