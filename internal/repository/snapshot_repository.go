package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/brickfolio/property-portfolio-backend/internal/model"
)

// SnapshotRepository provides data access methods for the valuation_snapshot
// table, the materialized daily portfolio states that back the asset-growth
// history endpoint.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// GetSnapshots retrieves snapshots within the inclusive date range, sorted by
// date ascending. Returns an empty slice when no snapshots exist in the range.
func (r *SnapshotRepository) GetSnapshots(startDate, endDate time.Time) ([]model.ValuationSnapshot, error) {
	query := `
		SELECT id, date, total_properties, total_value, current_value, monthly_income, occupancy_rate, calculated_at
		FROM valuation_snapshot
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC
	`

	rows, err := r.db.Query(query, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query valuation_snapshot table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.ValuationSnapshot{}

	for rows.Next() {
		var s model.ValuationSnapshot
		var dateStr, calculatedAtStr string

		err := rows.Scan(
			&s.ID,
			&dateStr,
			&s.TotalProperties,
			&s.TotalValue,
			&s.CurrentValue,
			&s.MonthlyIncome,
			&s.OccupancyRate,
			&calculatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan valuation_snapshot table results: %w", err)
		}

		s.Date, err = ParseTime(dateStr)
		if err != nil || s.Date.IsZero() {
			return nil, fmt.Errorf("failed to parse snapshot date: %w", err)
		}
		if s.CalculatedAt, err = parseTimestamp(calculatedAtStr); err != nil {
			if s.CalculatedAt, err = ParseTime(calculatedAtStr); err != nil {
				return nil, fmt.Errorf("failed to parse calculated_at: %w", err)
			}
		}

		snapshots = append(snapshots, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating valuation_snapshot table: %w", err)
	}

	return snapshots, nil
}

// UpsertSnapshot writes the snapshot for its date, replacing any existing
// snapshot for the same date. Regeneration must be idempotent so the cron
// schedule can run as often as configured.
func (r *SnapshotRepository) UpsertSnapshot(ctx context.Context, s *model.ValuationSnapshot) error {
	query := `
		INSERT INTO valuation_snapshot (id, date, total_properties, total_value, current_value, monthly_income, occupancy_rate, calculated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			total_properties = excluded.total_properties,
			total_value = excluded.total_value,
			current_value = excluded.current_value,
			monthly_income = excluded.monthly_income,
			occupancy_rate = excluded.occupancy_rate,
			calculated_at = excluded.calculated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Date.Format("2006-01-02"),
		s.TotalProperties,
		s.TotalValue,
		s.CurrentValue,
		s.MonthlyIncome,
		s.OccupancyRate,
		s.CalculatedAt.Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert valuation snapshot: %w", err)
	}

	return nil
}
