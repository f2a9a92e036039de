package model

import "time"

// ValuationSnapshot is a pre-calculated portfolio state for a specific date.
// Snapshots back the asset-growth history endpoint so charts do not require
// recomputing metrics from raw records for every point in the range.
type ValuationSnapshot struct {
	ID              string    `json:"id"`
	Date            time.Time `json:"date"`
	TotalProperties int       `json:"totalProperties"`
	TotalValue      float64   `json:"totalValue"`   // Purchase cost basis on this date
	CurrentValue    float64   `json:"currentValue"` // Sum of appraised values on this date
	MonthlyIncome   float64   `json:"monthlyIncome"`
	OccupancyRate   float64   `json:"occupancyRate"`
	CalculatedAt    time.Time `json:"calculatedAt"`
}
