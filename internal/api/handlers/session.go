package handlers

import (
	"errors"
	"net/http"

	"github.com/brickfolio/property-portfolio-backend/internal/api/request"
	"github.com/brickfolio/property-portfolio-backend/internal/api/response"
	"github.com/brickfolio/property-portfolio-backend/internal/apperrors"
	"github.com/brickfolio/property-portfolio-backend/internal/auth"
	"github.com/brickfolio/property-portfolio-backend/internal/service"
	"github.com/brickfolio/property-portfolio-backend/internal/validation"
)

// SessionHandler issues session tokens that scope subsequent portfolio
// requests to a single owner.
type SessionHandler struct {
	sessions     *auth.SessionManager
	ownerService *service.OwnerService
}

// NewSessionHandler creates a new SessionHandler with the provided dependencies.
func NewSessionHandler(sessions *auth.SessionManager, ownerService *service.OwnerService) *SessionHandler {
	return &SessionHandler{
		sessions:     sessions,
		ownerService: ownerService,
	}
}

// SessionResponse carries the issued token back to the client.
type SessionResponse struct {
	Token   string `json:"token"`
	OwnerID string `json:"ownerId"`
}

// CreateSession handles POST requests to issue a session token for an owner.
// The owner must exist; the token binds the owner ID and expires after the
// configured TTL.
//
// Endpoint: POST /api/session
// Request Body: CreateSessionRequest (ownerId)
// Response: 201 Created with SessionResponse
// Error: 400 Bad Request if the owner ID is missing or malformed
// Error: 404 Not Found if the owner does not exist
// Error: 500 Internal Server Error if token generation fails
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateSessionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUUID(req.OwnerID); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	owner, err := h.ownerService.GetOwner(req.OwnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrOwnerNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrOwnerNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create session", err.Error())
		return
	}

	token, err := h.sessions.IssueToken(owner.ID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create session", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, SessionResponse{
		Token:   token,
		OwnerID: owner.ID,
	})
}
