package request

type CreateSessionRequest struct {
	OwnerID string `json:"ownerId"`
}
