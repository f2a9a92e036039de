package service_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/brickfolio/property-portfolio-backend/internal/apperrors"
	"github.com/brickfolio/property-portfolio-backend/internal/model"
	"github.com/brickfolio/property-portfolio-backend/internal/testutil"
)

func closeTo(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", value, err)
	}
	return parsed
}

// TestPortfolioService_GetPortfolioMetrics tests the end-to-end metrics path
// from stored rows to the aggregate figures.
//
// WHY: The engine itself is covered by pure unit tests; this verifies the
// service feeds it the right property set, and in particular that liquidated
// properties and other owners' holdings never leak into the aggregate.
func TestPortfolioService_GetPortfolioMetrics(t *testing.T) {
	t.Run("computes the aggregate over an owner's active properties", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		owner := testutil.CreateOwner(t, db, "Alice")
		testutil.NewProperty(owner.ID).
			WithPurchaseValue(250000).WithRentAmount(2000).WithROI(5.2).
			Build(t, db)
		testutil.NewProperty(owner.ID).
			WithPurchaseValue(350000).WithRentAmount(2500).WithROI(8.1).
			WithCurrentValue(420000).
			Build(t, db)
		testutil.NewProperty(owner.ID).
			WithPurchaseValue(250000).WithRentAmount(1500).
			Build(t, db)

		m, err := svc.GetPortfolioMetrics(owner.ID)
		if err != nil {
			t.Fatalf("GetPortfolioMetrics() returned unexpected error: %v", err)
		}

		if m.TotalProperties != 3 {
			t.Errorf("Expected 3 properties, got %d", m.TotalProperties)
		}
		if !closeTo(m.TotalValue, 850000) {
			t.Errorf("Expected total value 850000, got %v", m.TotalValue)
		}
		if !closeTo(m.OccupancyRate, 100) {
			t.Errorf("Expected occupancy 100, got %v", m.OccupancyRate)
		}
		if !closeTo(m.MonthlyIncome, 6000) {
			t.Errorf("Expected monthly income 6000, got %v", m.MonthlyIncome)
		}
		// Mean over the two defined ROIs; the third property contributes nothing
		if !closeTo(m.AnnualReturn, 6.65) {
			t.Errorf("Expected annual return 6.65, got %v", m.AnnualReturn)
		}
		// Growth over the single appraised property: (420000-350000)/350000
		if !closeTo(m.ValueGrowth, 20) {
			t.Errorf("Expected value growth 20, got %v", m.ValueGrowth)
		}
	})

	t.Run("excludes liquidated properties and other owners", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		alice := testutil.CreateOwner(t, db, "Alice")
		bob := testutil.CreateOwner(t, db, "Bob")

		testutil.NewProperty(alice.ID).WithPurchaseValue(300000).WithRentAmount(2200).Build(t, db)
		testutil.NewProperty(alice.ID).WithPurchaseValue(500000).Liquidated().Build(t, db)
		testutil.NewProperty(bob.ID).WithPurchaseValue(900000).WithRentAmount(4000).Build(t, db)

		m, err := svc.GetPortfolioMetrics(alice.ID)
		if err != nil {
			t.Fatalf("GetPortfolioMetrics() returned unexpected error: %v", err)
		}

		if m.TotalProperties != 1 {
			t.Errorf("Expected 1 active property for Alice, got %d", m.TotalProperties)
		}
		if !closeTo(m.TotalValue, 300000) {
			t.Errorf("Expected total value 300000, got %v", m.TotalValue)
		}
	})

	t.Run("empty portfolio yields defined zero metrics", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		m, err := svc.GetPortfolioMetrics("")
		if err != nil {
			t.Fatalf("GetPortfolioMetrics() returned unexpected error: %v", err)
		}

		if m.TotalProperties != 0 || m.TotalValue != 0 || m.OccupancyRate != 0 ||
			m.MonthlyIncome != 0 || m.AnnualReturn != 0 || m.ValueGrowth != 0 {
			t.Errorf("Expected all-zero metrics for empty portfolio, got %+v", m)
		}
	})
}

// TestPortfolioService_GetPropertyMetrics tests the single-property view.
func TestPortfolioService_GetPropertyMetrics(t *testing.T) {
	t.Run("reports growth only when an appraisal exists", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		owner := testutil.CreateOwner(t, db, "Alice")
		appraised := testutil.NewProperty(owner.ID).
			WithPurchaseValue(350000).WithCurrentValue(420000).
			Build(t, db)
		unappraised := testutil.NewProperty(owner.ID).
			WithPurchaseValue(250000).
			Build(t, db)

		withGrowth, err := svc.GetPropertyMetrics(appraised.ID)
		if err != nil {
			t.Fatalf("GetPropertyMetrics() returned unexpected error: %v", err)
		}
		if !withGrowth.HasGrowth {
			t.Error("Expected growth flag for appraised property")
		}
		if !closeTo(withGrowth.ValueGrowth, 20) {
			t.Errorf("Expected growth 20, got %v", withGrowth.ValueGrowth)
		}

		withoutGrowth, err := svc.GetPropertyMetrics(unappraised.ID)
		if err != nil {
			t.Fatalf("GetPropertyMetrics() returned unexpected error: %v", err)
		}
		if withoutGrowth.HasGrowth {
			t.Error("Expected no growth flag without appraisal data")
		}
	})

	t.Run("returns not found for unknown property", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		_, err := svc.GetPropertyMetrics(testutil.MakeID())
		if !errors.Is(err, apperrors.ErrPropertyNotFound) {
			t.Errorf("Expected ErrPropertyNotFound, got %v", err)
		}
	})
}

// TestPortfolioService_GetCashFlowSeries tests the dense monthly series.
//
// WHY: Charts rely on every month in the range being present, on months with
// no activity reading as explicit zeros, and on owner scoping dropping both
// other owners' transactions and orphaned ones.
func TestPortfolioService_GetCashFlowSeries(t *testing.T) {
	t.Run("returns a dense zero-filled year with activity in place", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		owner := testutil.CreateOwner(t, db, "Alice")
		property := testutil.CreateProperty(t, db, owner.ID, 250000)
		testutil.CreateIncome(t, db, property.ID, "2024-06-10", 2500)
		testutil.CreateExpense(t, db, property.ID, "2024-06-20", 450)

		series, err := svc.GetCashFlowSeries(context.Background(), owner.ID,
			mustDate(t, "2024-01-01"), mustDate(t, "2024-12-31"))
		if err != nil {
			t.Fatalf("GetCashFlowSeries() returned unexpected error: %v", err)
		}

		if len(series) != 12 {
			t.Fatalf("Expected 12 monthly points, got %d", len(series))
		}
		if series[0].Period != "2024-01" || series[11].Period != "2024-12" {
			t.Errorf("Expected periods 2024-01..2024-12, got %s..%s",
				series[0].Period, series[11].Period)
		}

		june := series[5]
		if june.Period != "2024-06" {
			t.Fatalf("Expected June at index 5, got %s", june.Period)
		}
		if !closeTo(june.Income, 2500) || !closeTo(june.Expenses, 450) || !closeTo(june.Net, 2050) {
			t.Errorf("Expected June 2500/450/2050, got %v/%v/%v",
				june.Income, june.Expenses, june.Net)
		}
		// Monthly ROI relative to the 250000 cost basis
		if !closeTo(june.ROI, 100*2050.0/250000) {
			t.Errorf("Expected June ROI %.4f, got %v", 100*2050.0/250000, june.ROI)
		}

		// Every other month is an explicit zero point
		for i, point := range series {
			if i == 5 {
				continue
			}
			if point.Income != 0 || point.Expenses != 0 || point.Net != 0 || point.ROI != 0 {
				t.Errorf("Expected zero point for %s, got %+v", point.Period, point)
			}
		}
	})

	t.Run("owner scope drops foreign and orphaned transactions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		alice := testutil.CreateOwner(t, db, "Alice")
		bob := testutil.CreateOwner(t, db, "Bob")

		aliceProperty := testutil.CreateProperty(t, db, alice.ID, 250000)
		bobProperty := testutil.CreateProperty(t, db, bob.ID, 300000)

		testutil.CreateIncome(t, db, aliceProperty.ID, "2024-03-01", 2000)
		testutil.CreateIncome(t, db, bobProperty.ID, "2024-03-01", 9999)
		// Orphaned entry: its property row never existed
		testutil.CreateIncome(t, db, testutil.MakeID(), "2024-03-01", 5555)

		series, err := svc.GetCashFlowSeries(context.Background(), alice.ID,
			mustDate(t, "2024-03-01"), mustDate(t, "2024-03-31"))
		if err != nil {
			t.Fatalf("GetCashFlowSeries() returned unexpected error: %v", err)
		}

		if len(series) != 1 {
			t.Fatalf("Expected 1 monthly point, got %d", len(series))
		}
		if !closeTo(series[0].Income, 2000) {
			t.Errorf("Expected only Alice's 2000 income, got %v", series[0].Income)
		}
	})

	t.Run("inverted range yields an empty series", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		series, err := svc.GetCashFlowSeries(context.Background(), "",
			mustDate(t, "2024-06-01"), mustDate(t, "2024-01-01"))
		if err != nil {
			t.Fatalf("GetCashFlowSeries() returned unexpected error: %v", err)
		}
		if len(series) != 0 {
			t.Errorf("Expected empty series for inverted range, got %d points", len(series))
		}
	})
}

// TestPortfolioService_GetPropertyCashFlowSeries tests the per-property series.
func TestPortfolioService_GetPropertyCashFlowSeries(t *testing.T) {
	t.Run("scopes the series to one property", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		owner := testutil.CreateOwner(t, db, "Alice")
		first := testutil.CreateProperty(t, db, owner.ID, 250000)
		second := testutil.CreateProperty(t, db, owner.ID, 300000)

		testutil.CreateIncome(t, db, first.ID, "2024-02-01", 1800)
		testutil.CreateIncome(t, db, second.ID, "2024-02-01", 2400)

		series, err := svc.GetPropertyCashFlowSeries(first.ID,
			mustDate(t, "2024-02-01"), mustDate(t, "2024-02-29"))
		if err != nil {
			t.Fatalf("GetPropertyCashFlowSeries() returned unexpected error: %v", err)
		}

		if len(series) != 1 {
			t.Fatalf("Expected 1 monthly point, got %d", len(series))
		}
		if !closeTo(series[0].Income, 1800) {
			t.Errorf("Expected income 1800 for first property only, got %v", series[0].Income)
		}
		// ROI uses the property's own purchase value as basis
		if !closeTo(series[0].ROI, 100*1800.0/250000) {
			t.Errorf("Expected ROI %.4f, got %v", 100*1800.0/250000, series[0].ROI)
		}
	})

	t.Run("returns not found for unknown property", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		_, err := svc.GetPropertyCashFlowSeries(testutil.MakeID(),
			mustDate(t, "2024-01-01"), mustDate(t, "2024-12-31"))
		if !errors.Is(err, apperrors.ErrPropertyNotFound) {
			t.Errorf("Expected ErrPropertyNotFound, got %v", err)
		}
	})
}

// TestPortfolioService_GetMonthlySeries tests the single-kind series.
func TestPortfolioService_GetMonthlySeries(t *testing.T) {
	t.Run("sums only the requested kind", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		owner := testutil.CreateOwner(t, db, "Alice")
		property := testutil.CreateProperty(t, db, owner.ID, 250000)
		testutil.CreateIncome(t, db, property.ID, "2024-04-05", 2000)
		testutil.CreateIncome(t, db, property.ID, "2024-04-25", 500)
		testutil.CreateExpense(t, db, property.ID, "2024-04-12", 300)

		series, err := svc.GetMonthlySeries(property.ID, model.KindIncome,
			mustDate(t, "2024-04-01"), mustDate(t, "2024-04-30"))
		if err != nil {
			t.Fatalf("GetMonthlySeries() returned unexpected error: %v", err)
		}

		if len(series) != 1 {
			t.Fatalf("Expected 1 bucket, got %d", len(series))
		}
		if !closeTo(series[0].Value, 2500) {
			t.Errorf("Expected income total 2500, got %v", series[0].Value)
		}
	})
}
