package model

import "time"

// Transaction kinds. Amounts are always stored positive; the kind decides
// whether an entry adds to or subtracts from net cash flow.
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// Transaction represents a dated income or expense entry linked to a property.
// Used internally for calculations and data processing.
type Transaction struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"propertyId"`
	Date        time.Time `json:"date"`
	Kind        string    `json:"kind"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// TransactionResponse represents a transaction with enriched data for API
// responses, including the property name it belongs to.
type TransactionResponse struct {
	ID           string    `json:"id"`
	PropertyID   string    `json:"propertyId"`
	PropertyName string    `json:"propertyName"`
	Date         time.Time `json:"date"`
	Kind         string    `json:"kind"`
	Amount       float64   `json:"amount"`
	Description  string    `json:"description,omitempty"`
}

// TransactionFilter for querying transactions.
type TransactionFilter struct {
	PropertyID string
	Kind       string
	StartDate  time.Time
	EndDate    time.Time
}
