// Package metrics is the portfolio financial metrics engine. Every function
// is a pure computation over an immutable snapshot of property and
// transaction records supplied by the caller: no I/O, no hidden state, and
// no mutation of inputs. Callers own snapshot consistency; running the same
// function twice on an unmodified snapshot yields identical output.
//
// All percentage results are expressed in percent units (8.57 means 8.57%)
// and all divisions are guarded: degenerate input (an empty property set, a
// zero denominator) produces a defined zero value rather than an error,
// because these figures exist for reporting, not bookkeeping.
package metrics

import "github.com/brickfolio/property-portfolio-backend/internal/model"

// Aggregate computes the portfolio metrics value object for the given set of
// properties. The set may already be filtered (to one owner, or one
// property); Aggregate does not care how it was selected.
//
// Field semantics:
//   - TotalValue sums purchase values: the portfolio "size" metric is the
//     historical cost basis, not the market estimate. Market movement is
//     reported separately as ValueGrowth.
//   - MonthlyIncome is the run-rate signal, the sum of current rent amounts.
//     Historical transaction sums are served by the cash-flow series instead;
//     the two can diverge (e.g. a mid-month rent change) and this engine
//     never mixes them.
//   - AnnualReturn averages ROI only over properties that have a defined,
//     non-zero ROI. A property without return data is excluded from numerator
//     and denominator, not counted as a zero return.
//   - ValueGrowth is computed over paired sums restricted to properties with
//     a usable current value, so an unappraised property cannot drag the
//     figure toward zero.
func Aggregate(properties []model.Property) model.PortfolioMetrics {
	m := model.PortfolioMetrics{
		TotalProperties: len(properties),
	}
	if len(properties) == 0 {
		return m
	}

	var occupied int
	var roiSum float64
	var roiCount int
	var appraisedPurchase, appraisedCurrent float64

	for _, p := range properties {
		m.TotalValue += p.PurchaseValue
		m.MonthlyIncome += p.RentAmount

		if p.Occupied() {
			occupied++
		}

		if roi, ok := definedROI(p); ok {
			roiSum += roi
			roiCount++
		}

		if current, ok := appraisedValue(p); ok {
			appraisedPurchase += p.PurchaseValue
			appraisedCurrent += current
		}
	}

	m.OccupancyRate = 100 * float64(occupied) / float64(len(properties))

	if roiCount > 0 {
		m.AnnualReturn = roiSum / float64(roiCount)
	}

	if appraisedPurchase > 0 {
		m.ValueGrowth = 100 * (appraisedCurrent - appraisedPurchase) / appraisedPurchase
	}

	return m
}

// PropertyGrowth computes the value growth percentage of a single property.
// Returns ok=false when the property has no usable current value or no
// positive purchase value; in that case the property contributes no growth
// figure at all, which callers must distinguish from a growth of 0%.
func PropertyGrowth(p model.Property) (growth float64, ok bool) {
	current, ok := appraisedValue(p)
	if !ok || p.PurchaseValue <= 0 {
		return 0, false
	}
	return 100 * (current - p.PurchaseValue) / p.PurchaseValue, true
}

// ForProperty computes single-property metrics: the aggregate figures of a
// one-element set plus the per-property growth flag.
func ForProperty(p model.Property) model.PropertyMetrics {
	growthOK := false
	if _, ok := PropertyGrowth(p); ok {
		growthOK = true
	}
	return model.PropertyMetrics{
		PortfolioMetrics: Aggregate([]model.Property{p}),
		HasGrowth:        growthOK,
	}
}

// appraisedValue returns the property's current market estimate.
// A nil or zero current value means "never appraised" / "no data" and the
// property must be excluded from growth calculations, per the engine's
// missing-optional-data contract.
func appraisedValue(p model.Property) (float64, bool) {
	if p.CurrentValue == nil || *p.CurrentValue == 0 {
		return 0, false
	}
	return *p.CurrentValue, true
}

// definedROI returns the property's ROI when return data exists.
// Nil and zero are both "no return data", not "zero return".
func definedROI(p model.Property) (float64, bool) {
	if p.ROI == nil || *p.ROI == 0 {
		return 0, false
	}
	return *p.ROI, true
}
