package metrics

import (
	"fmt"
	"time"

	"github.com/brickfolio/property-portfolio-backend/internal/model"
)

// Month is a calendar bucketing key: year plus month, independent of
// day-of-month. It is the unit of the time series produced by this package.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the bucketing key for a point in time.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// String formats the month as "2006-01".
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// MarshalJSON encodes the month in its "2006-01" string form.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.String())), nil
}

// Next returns the following calendar month.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// After reports whether m is after other.
func (m Month) After(other Month) bool {
	return m.Year > other.Year || (m.Year == other.Year && m.Month > other.Month)
}

// Bucket is one entry of a monthly series: a period and the summed amount of
// all matching transactions within it.
type Bucket struct {
	Period Month   `json:"period"`
	Value  float64 `json:"value"`
}

// CashFlowBucket is one entry of a combined income/expense series.
// Net is always Income minus Expenses for the period.
type CashFlowBucket struct {
	Period   Month   `json:"period"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// MonthlySeries groups the given transactions into monthly buckets over the
// inclusive [from, to] range, keeping only transactions of the requested
// kind (empty kind keeps all).
//
// The series is dense: every month in the range is present, in chronological
// order, with 0 for months that have no matching transactions. Multiple
// transactions in the same month are summed, never overwritten. Transactions
// outside the range are ignored. If from is after to the series is empty.
func MonthlySeries(transactions []model.Transaction, kind string, from, to Month) []Bucket {
	if from.After(to) {
		return []Bucket{}
	}

	sums := make(map[Month]float64)
	for _, t := range transactions {
		if kind != "" && t.Kind != kind {
			continue
		}
		key := MonthOf(t.Date)
		if key.After(to) || from.After(key) {
			continue
		}
		sums[key] += t.Amount
	}

	series := []Bucket{}
	for m := from; !m.After(to); m = m.Next() {
		series = append(series, Bucket{Period: m, Value: sums[m]})
	}
	return series
}

// CashFlowSeries produces the combined monthly income/expense/net series over
// the inclusive [from, to] range. The output is dense and chronological, with
// the same guarantees as MonthlySeries.
func CashFlowSeries(transactions []model.Transaction, from, to Month) []CashFlowBucket {
	income := MonthlySeries(transactions, model.KindIncome, from, to)
	expenses := MonthlySeries(transactions, model.KindExpense, from, to)

	series := make([]CashFlowBucket, len(income))
	for i := range income {
		series[i] = CashFlowBucket{
			Period:   income[i].Period,
			Income:   income[i].Value,
			Expenses: expenses[i].Value,
			Net:      income[i].Value - expenses[i].Value,
		}
	}
	return series
}

// MonthlyROI converts a monthly net cash flow into a percentage of the given
// reference basis (typically the property's purchase value). The engine does
// not infer the basis; the caller supplies it. A non-positive basis yields 0.
func MonthlyROI(net, referenceBasis float64) float64 {
	if referenceBasis <= 0 {
		return 0
	}
	return 100 * net / referenceBasis
}

// NetTotal sums income minus expenses over all given transactions,
// irrespective of date. Used as the accumulated operating result of a
// property over its holding period.
func NetTotal(transactions []model.Transaction) float64 {
	var net float64
	for _, t := range transactions {
		switch t.Kind {
		case model.KindIncome:
			net += t.Amount
		case model.KindExpense:
			net -= t.Amount
		}
	}
	return net
}
