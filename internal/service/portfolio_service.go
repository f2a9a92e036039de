package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/brickfolio/property-portfolio-backend/internal/metrics"
	"github.com/brickfolio/property-portfolio-backend/internal/model"
	"github.com/brickfolio/property-portfolio-backend/internal/repository"
)

// PortfolioService computes derived statistics over the portfolio. It loads
// consistent snapshots from the repositories and hands them to the metrics
// engine; all actual figures come out of that pure computation.
type PortfolioService struct {
	propertyRepo       *repository.PropertyRepository
	transactionService *TransactionService
}

// NewPortfolioService creates a new PortfolioService with the provided dependencies.
func NewPortfolioService(
	propertyRepo *repository.PropertyRepository,
	transactionService *TransactionService,
) *PortfolioService {
	return &PortfolioService{
		propertyRepo:       propertyRepo,
		transactionService: transactionService,
	}
}

// GetPortfolioMetrics computes portfolio metrics over the active property
// set, optionally scoped to a single owner (the session context decides).
func (s *PortfolioService) GetPortfolioMetrics(ownerID string) (model.PortfolioMetrics, error) {
	properties, err := s.propertyRepo.GetProperties(model.PropertyFilter{OwnerID: ownerID})
	if err != nil {
		return model.PortfolioMetrics{}, err
	}
	return metrics.Aggregate(properties), nil
}

// GetPropertyMetrics computes metrics for a single property, including the
// per-property growth flag so the caller can distinguish "0% growth" from
// "no appraisal data".
func (s *PortfolioService) GetPropertyMetrics(propertyID string) (model.PropertyMetrics, error) {
	property, err := s.propertyRepo.GetPropertyOnID(propertyID)
	if err != nil {
		return model.PropertyMetrics{}, err
	}
	return metrics.ForProperty(property), nil
}

// CashFlowPoint is one month of the cash-flow series as served over the API,
// with the period pre-formatted and an optional monthly ROI relative to the
// purchase basis of the property set in scope.
type CashFlowPoint struct {
	Period   string  `json:"period"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
	ROI      float64 `json:"roi"`
}

// GetCashFlowSeries produces the dense monthly income/expense/net series for
// the whole portfolio (or one owner's slice of it) over [start, end].
// Monthly ROI is net over the purchase cost basis of the properties in scope.
//
// Properties and transactions are loaded concurrently; each load is a
// consistent read and the engine itself never blocks.
func (s *PortfolioService) GetCashFlowSeries(ctx context.Context, ownerID string, start, end time.Time) ([]CashFlowPoint, error) {
	var properties []model.Property
	var transactions []model.Transaction

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		properties, err = s.propertyRepo.GetProperties(model.PropertyFilter{OwnerID: ownerID})
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = s.transactionService.loadTransactions(model.TransactionFilter{
			StartDate: start,
			EndDate:   end,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if ownerID != "" {
		transactions = filterByProperties(transactions, properties)
	}

	basis := metrics.Aggregate(properties).TotalValue
	return buildCashFlowPoints(transactions, basis, start, end), nil
}

// GetPropertyCashFlowSeries produces the dense monthly series for a single
// property, with monthly ROI relative to that property's purchase value.
func (s *PortfolioService) GetPropertyCashFlowSeries(propertyID string, start, end time.Time) ([]CashFlowPoint, error) {
	property, err := s.propertyRepo.GetPropertyOnID(propertyID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionService.loadTransactions(model.TransactionFilter{
		PropertyID: propertyID,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		return nil, err
	}

	return buildCashFlowPoints(transactions, property.PurchaseValue, start, end), nil
}

// GetMonthlySeries produces a dense single-kind monthly series (income or
// expense totals per month) for charts that plot one side of the ledger.
func (s *PortfolioService) GetMonthlySeries(propertyID, kind string, start, end time.Time) ([]metrics.Bucket, error) {
	transactions, err := s.transactionService.loadTransactions(model.TransactionFilter{
		PropertyID: propertyID,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		return nil, err
	}

	return metrics.MonthlySeries(transactions, kind, metrics.MonthOf(start), metrics.MonthOf(end)), nil
}

func buildCashFlowPoints(transactions []model.Transaction, basis float64, start, end time.Time) []CashFlowPoint {
	series := metrics.CashFlowSeries(transactions, metrics.MonthOf(start), metrics.MonthOf(end))

	points := make([]CashFlowPoint, len(series))
	for i, b := range series {
		points[i] = CashFlowPoint{
			Period:   b.Period.String(),
			Income:   b.Income,
			Expenses: b.Expenses,
			Net:      b.Net,
			ROI:      metrics.MonthlyROI(b.Net, basis),
		}
	}
	return points
}

// filterByProperties keeps only transactions whose property is present in
// the given set. Orphaned transactions (property deleted) and entries
// belonging to other owners drop out of scoped aggregation.
func filterByProperties(transactions []model.Transaction, properties []model.Property) []model.Transaction {
	ids := make(map[string]bool, len(properties))
	for _, p := range properties {
		ids[p.ID] = true
	}

	kept := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if ids[t.PropertyID] {
			kept = append(kept, t)
		}
	}
	return kept
}
