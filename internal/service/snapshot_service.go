package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/brickfolio/property-portfolio-backend/internal/metrics"
	"github.com/brickfolio/property-portfolio-backend/internal/model"
	"github.com/brickfolio/property-portfolio-backend/internal/repository"
)

// SnapshotService maintains the materialized valuation snapshots that back
// the asset-growth history endpoint. Snapshots are regenerated on a schedule
// (and after writes if the host wires that up); reads fall back to a live
// computation when the table has no data for the requested range.
type SnapshotService struct {
	snapshotRepo *repository.SnapshotRepository
	propertyRepo *repository.PropertyRepository
}

// NewSnapshotService creates a new SnapshotService with the provided repository dependencies.
func NewSnapshotService(
	snapshotRepo *repository.SnapshotRepository,
	propertyRepo *repository.PropertyRepository,
) *SnapshotService {
	return &SnapshotService{
		snapshotRepo: snapshotRepo,
		propertyRepo: propertyRepo,
	}
}

// CaptureSnapshot computes today's portfolio state from the live property
// set and upserts it as the snapshot for today's date. Running it multiple
// times a day overwrites the same row.
func (s *SnapshotService) CaptureSnapshot(ctx context.Context) (*model.ValuationSnapshot, error) {
	snapshot, err := s.computeSnapshot(time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.snapshotRepo.UpsertSnapshot(ctx, snapshot); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// RunScheduled is the cron entrypoint. Scheduler callbacks have nowhere to
// return an error to, so failures are logged and the next run tries again.
func (s *SnapshotService) RunScheduled() {
	snapshot, err := s.CaptureSnapshot(context.Background())
	if err != nil {
		log.Printf("scheduled valuation snapshot failed: %v", err)
		return
	}
	log.Printf("valuation snapshot captured for %s (total value %.2f)",
		snapshot.Date.Format("2006-01-02"), snapshot.TotalValue)
}

// GetHistory retrieves the valuation history for the inclusive date range.
//
// The materialized snapshots are the fast path. When the range has no
// snapshots at all (table never populated, or being rebuilt), a single live
// snapshot of the current state is computed as a fallback so the endpoint
// still answers; only dates with data are returned, never interpolations.
func (s *SnapshotService) GetHistory(startDate, endDate time.Time) ([]model.ValuationSnapshot, error) {
	snapshots, err := s.snapshotRepo.GetSnapshots(startDate, endDate)
	if err == nil && len(snapshots) > 0 {
		return snapshots, nil
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if now.Before(startDate) || now.After(endDate.AddDate(0, 0, 1)) {
		// Requested range is entirely in the past (or future); there is
		// nothing the live state can say about it.
		return []model.ValuationSnapshot{}, nil
	}

	live, err := s.computeSnapshot(now)
	if err != nil {
		return nil, err
	}
	return []model.ValuationSnapshot{*live}, nil
}

func (s *SnapshotService) computeSnapshot(date time.Time) (*model.ValuationSnapshot, error) {
	properties, err := s.propertyRepo.GetProperties(model.PropertyFilter{})
	if err != nil {
		return nil, err
	}

	m := metrics.Aggregate(properties)

	// Current market estimate of the whole set: appraised value where one
	// exists, purchase value otherwise. This is the chart's "asset value"
	// line, distinct from the cost-basis TotalValue metric.
	var currentValue float64
	for _, p := range properties {
		if p.CurrentValue != nil && *p.CurrentValue > 0 {
			currentValue += *p.CurrentValue
		} else {
			currentValue += p.PurchaseValue
		}
	}

	return &model.ValuationSnapshot{
		ID:              uuid.New().String(),
		Date:            time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		TotalProperties: m.TotalProperties,
		TotalValue:      round(m.TotalValue),
		CurrentValue:    round(currentValue),
		MonthlyIncome:   round(m.MonthlyIncome),
		OccupancyRate:   m.OccupancyRate,
		CalculatedAt:    date,
	}, nil
}
