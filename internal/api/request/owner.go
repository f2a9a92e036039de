package request

type CreateOwnerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
