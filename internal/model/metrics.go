package model

// PortfolioMetrics is the derived statistics value object for a set of
// properties. It is never stored; it is recomputed from the current record
// set on every request. Percentages are expressed in percent units
// (OccupancyRate 66.7 means 66.7%).
type PortfolioMetrics struct {
	TotalProperties int     `json:"totalProperties"`
	TotalValue      float64 `json:"totalValue"`    // Sum of purchase values (historical cost basis)
	OccupancyRate   float64 `json:"occupancyRate"` // Always within [0, 100]
	MonthlyIncome   float64 `json:"monthlyIncome"` // Run-rate: sum of current rent amounts
	AnnualReturn    float64 `json:"annualReturn"`  // Mean ROI over properties with return data
	ValueGrowth     float64 `json:"valueGrowth"`   // Appraised growth over purchase basis
}

// PropertyMetrics combines the portfolio metrics of a single-property set
// with the per-property growth figure. HasGrowth is false when the property
// has no usable current value, in which case ValueGrowth must not be
// rendered as 0%.
type PropertyMetrics struct {
	PortfolioMetrics
	HasGrowth bool `json:"hasGrowth"`
}
