package request

type CreateTransactionRequest struct {
	PropertyID  string  `json:"propertyId"`
	Date        string  `json:"date"`
	Kind        string  `json:"kind"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type UpdateTransactionRequest struct {
	Date        *string  `json:"date,omitempty"`
	Kind        *string  `json:"kind,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Description *string  `json:"description,omitempty"`
}
