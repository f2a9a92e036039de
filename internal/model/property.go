package model

import "time"

// Property represents a property in the portfolio inventory.
//
// CurrentValue and ROI are pointers because "no data" and "zero" carry
// different meanings for the metrics engine: a property that has never been
// appraised must be excluded from growth figures, not counted as worthless.
// RentAmount uses the plain zero value; a rent of 0 means the unit is vacant.
type Property struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"ownerId"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Address       string    `json:"address"`
	PurchaseValue float64   `json:"purchaseValue"`
	CurrentValue  *float64  `json:"currentValue,omitempty"`
	RentAmount    float64   `json:"rentAmount"`
	ROI           *float64  `json:"roi,omitempty"`
	IsLiquidated  bool      `json:"isLiquidated"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// Occupied reports whether the property currently generates rent.
func (p Property) Occupied() bool {
	return p.RentAmount > 0
}

// PropertyFilter for querying properties.
type PropertyFilter struct {
	OwnerID           string
	IncludeLiquidated bool
}
