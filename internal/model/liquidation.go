package model

import "time"

// Liquidation represents the recorded outcome of selling a property.
// The property itself is marked liquidated and leaves the active portfolio;
// its transactions are retained for record-keeping.
type Liquidation struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"propertyId"`
	SaleDate    time.Time `json:"saleDate"`
	SaleValue   float64   `json:"saleValue"`
	CostBasis   float64   `json:"costBasis"`
	GrossProfit float64   `json:"grossProfit"`
	NetProfit   float64   `json:"netProfit"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}
