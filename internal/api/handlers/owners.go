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

// OwnerHandler handles HTTP requests for owner endpoints.
type OwnerHandler struct {
	ownerService *service.OwnerService
}

// NewOwnerHandler creates a new OwnerHandler with the provided service dependency.
func NewOwnerHandler(ownerService *service.OwnerService) *OwnerHandler {
	return &OwnerHandler{
		ownerService: ownerService,
	}
}

// Owners handles GET requests to retrieve all owners.
//
// Endpoint: GET /api/owner
// Response: 200 OK with array of Owner
// Error: 500 Internal Server Error if retrieval fails
func (h *OwnerHandler) Owners(w http.ResponseWriter, _ *http.Request) {
	owners, err := h.ownerService.GetOwners()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveOwners.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, owners)
}

// GetOwner handles GET requests to retrieve a single owner by ID.
//
// Endpoint: GET /api/owner/{uuid}
// Response: 200 OK with Owner
// Error: 400 Bad Request if owner ID is invalid (validated by middleware)
// Error: 404 Not Found if owner not found
// Error: 500 Internal Server Error if retrieval fails
func (h *OwnerHandler) GetOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "uuid")

	owner, err := h.ownerService.GetOwner(ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrOwnerNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrOwnerNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveOwners.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, owner)
}

// CreateOwner handles POST requests to create a new owner.
//
// Endpoint: POST /api/owner
// Request Body: CreateOwnerRequest (name, email)
// Response: 201 Created with Owner
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *OwnerHandler) CreateOwner(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateOwnerRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateOwner(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	owner, err := h.ownerService.CreateOwner(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create owner", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, owner)
}
