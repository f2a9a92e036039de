package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brickfolio/property-portfolio-backend/internal/api/request"
	"github.com/brickfolio/property-portfolio-backend/internal/api/response"
	"github.com/brickfolio/property-portfolio-backend/internal/apperrors"
	"github.com/brickfolio/property-portfolio-backend/internal/service"
	"github.com/brickfolio/property-portfolio-backend/internal/validation"
)

// PropertyHandler handles HTTP requests for property endpoints, including
// the liquidation flow and per-property analytics.
type PropertyHandler struct {
	propertyService  *service.PropertyService
	portfolioService *service.PortfolioService
}

// NewPropertyHandler creates a new PropertyHandler with the provided service dependencies.
func NewPropertyHandler(
	propertyService *service.PropertyService,
	portfolioService *service.PortfolioService,
) *PropertyHandler {
	return &PropertyHandler{
		propertyService:  propertyService,
		portfolioService: portfolioService,
	}
}

// Properties handles GET requests to retrieve properties.
// By default only active properties are returned; pass includeLiquidated=true
// to include sold ones. The optional ownerId parameter scopes the result.
//
// Endpoint: GET /api/property?ownerId=&includeLiquidated=
// Response: 200 OK with array of Property
// Error: 500 Internal Server Error if retrieval fails
func (h *PropertyHandler) Properties(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("ownerId")

	var err error
	if ownerID != "" {
		if err = validation.ValidateUUID(ownerID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
			return
		}
	}

	var properties interface{}
	if r.URL.Query().Get("includeLiquidated") == "true" {
		properties, err = h.propertyService.GetAllProperties(ownerID)
	} else {
		properties, err = h.propertyService.GetProperties(ownerID)
	}
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveProperties.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, properties)
}

// GetProperty handles GET requests to retrieve a single property by ID.
//
// Endpoint: GET /api/property/{uuid}
// Response: 200 OK with Property
// Error: 400 Bad Request if property ID is invalid (validated by middleware)
// Error: 404 Not Found if property not found
// Error: 500 Internal Server Error if retrieval fails
func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "uuid")

	property, err := h.propertyService.GetProperty(propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPropertyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveProperty.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, property)
}

// CreateProperty handles POST requests to register a new property.
//
// Endpoint: POST /api/property
// Request Body: CreatePropertyRequest (ownerId, name, type, address, purchaseValue, ...)
// Response: 201 Created with Property
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreatePropertyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateProperty(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	property, err := h.propertyService.CreateProperty(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create property", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, property)
}

// UpdateProperty handles PUT requests to edit a property's mutable fields.
// The purchase value cannot be changed. Omitting currentValue or roi keeps
// the stored value; sending an explicit null clears it.
//
// Endpoint: PUT /api/property/{uuid}
// Request Body: UpdatePropertyRequest (all fields optional)
// Response: 200 OK with updated Property
// Error: 400 Bad Request if property ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if property not found
// Error: 409 Conflict if the property is already liquidated
// Error: 500 Internal Server Error if update fails
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdatePropertyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateProperty(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	property, err := h.propertyService.UpdateProperty(r.Context(), propertyID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPropertyNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPropertyNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrPropertyLiquidated):
			response.RespondError(w, http.StatusConflict, apperrors.ErrPropertyLiquidated.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to update property", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, property)
}

// DeleteProperty handles DELETE requests to remove a property.
// Historical transactions are retained.
//
// Endpoint: DELETE /api/property/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if property ID is invalid (validated by middleware)
// Error: 404 Not Found if property not found
// Error: 500 Internal Server Error if deletion fails
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "uuid")

	if err := h.propertyService.DeleteProperty(r.Context(), propertyID); err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPropertyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete property", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// Liquidate handles POST requests to sell a property. The sale result is
// computed from the property's cost basis, stored as a permanent liquidation
// record, and the property is marked liquidated in the same database
// transaction.
//
// Endpoint: POST /api/property/{uuid}/liquidate
// Request Body: LiquidatePropertyRequest (saleValue, saleDate, includeOperating)
// Response: 201 Created with Liquidation
// Error: 400 Bad Request if validation fails or the sale value is negative
// Error: 404 Not Found if property not found
// Error: 409 Conflict if the property is already liquidated
// Error: 500 Internal Server Error if the liquidation cannot be stored
func (h *PropertyHandler) Liquidate(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.LiquidatePropertyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateLiquidateProperty(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	liquidation, err := h.propertyService.Liquidate(r.Context(), propertyID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPropertyNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPropertyNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrPropertyLiquidated):
			response.RespondError(w, http.StatusConflict, apperrors.ErrPropertyLiquidated.Error(), err.Error())
		case errors.Is(err, apperrors.ErrInvalidSaleValue), errors.Is(err, apperrors.ErrMissingCostBasis):
			response.RespondError(w, http.StatusBadRequest, err.Error(), "")
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to liquidate property", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, liquidation)
}

// Liquidations handles GET requests to retrieve liquidation records for a property.
//
// Endpoint: GET /api/property/{uuid}/liquidations
// Response: 200 OK with array of Liquidation
// Error: 400 Bad Request if property ID is invalid (validated by middleware)
// Error: 500 Internal Server Error if retrieval fails
func (h *PropertyHandler) Liquidations(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "uuid")

	liquidations, err := h.propertyService.GetLiquidations(propertyID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve liquidations", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, liquidations)
}

// Metrics handles GET requests to compute metrics for a single property.
// The response treats the property as a one-element portfolio and adds a
// value growth figure when an appraisal exists.
//
// Endpoint: GET /api/property/{uuid}/metrics
// Response: 200 OK with PropertyMetrics
// Error: 400 Bad Request if property ID is invalid (validated by middleware)
// Error: 404 Not Found if property not found
// Error: 500 Internal Server Error if computation fails
func (h *PropertyHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "uuid")

	propertyMetrics, err := h.portfolioService.GetPropertyMetrics(propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPropertyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeMetrics.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, propertyMetrics)
}

// CashFlow handles GET requests to compute the dense monthly cash flow
// series for a single property over the requested date range. An optional
// kind parameter narrows the series to income or expense totals only.
//
// Endpoint: GET /api/property/{uuid}/cashflow?start=&end=&kind=
// Response: 200 OK with array of CashFlowPoint (or single-kind buckets)
// Error: 400 Bad Request if property ID, dates, or kind are invalid
// Error: 404 Not Found if property not found
// Error: 500 Internal Server Error if computation fails
func (h *PropertyHandler) CashFlow(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "uuid")

	start, end, err := parseDateRange(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid date range", err.Error())
		return
	}

	// kind narrows the series to one side of the ledger.
	if kind := r.URL.Query().Get("kind"); kind != "" {
		if !validation.ValidTransactionKind[kind] {
			response.RespondError(w, http.StatusBadRequest, "validation failed", "kind must be income or expense")
			return
		}

		series, err := h.portfolioService.GetMonthlySeries(propertyID, kind, start, end)
		if err != nil {
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeCashFlow.Error(), err.Error())
			return
		}

		response.RespondJSON(w, http.StatusOK, series)
		return
	}

	series, err := h.portfolioService.GetPropertyCashFlowSeries(propertyID, start, end)
	if err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPropertyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeCashFlow.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, series)
}
