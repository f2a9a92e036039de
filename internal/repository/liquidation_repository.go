package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/brickfolio/property-portfolio-backend/internal/model"
)

// LiquidationRepository provides data access methods for the liquidation table,
// the permanent record of realized sale results.
type LiquidationRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewLiquidationRepository creates a new LiquidationRepository with the provided database connection.
func NewLiquidationRepository(db *sql.DB) *LiquidationRepository {
	return &LiquidationRepository{db: db}
}

// WithTx returns a copy of the repository that runs its statements inside the given transaction.
func (r *LiquidationRepository) WithTx(tx *sql.Tx) *LiquidationRepository {
	return &LiquidationRepository{db: r.db, tx: tx}
}

func (r *LiquidationRepository) getQuerier() interface {
	Query(query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// GetLiquidations retrieves liquidation records, optionally scoped to one
// property, sorted by sale date ascending.
func (r *LiquidationRepository) GetLiquidations(propertyID string) ([]model.Liquidation, error) {
	query := `
		SELECT id, property_id, sale_date, sale_value, cost_basis, gross_profit, net_profit, created_at
		FROM liquidation
	`
	var args []any

	if propertyID != "" {
		query += " WHERE property_id = ?"
		args = append(args, propertyID)
	}

	query += " ORDER BY sale_date ASC"

	rows, err := r.getQuerier().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query liquidation table: %w", err)
	}
	defer rows.Close()

	liquidations := []model.Liquidation{}

	for rows.Next() {
		var l model.Liquidation
		var saleDateStr, createdAtStr string

		err := rows.Scan(
			&l.ID,
			&l.PropertyID,
			&saleDateStr,
			&l.SaleValue,
			&l.CostBasis,
			&l.GrossProfit,
			&l.NetProfit,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan liquidation table results: %w", err)
		}

		l.SaleDate, err = ParseTime(saleDateStr)
		if err != nil || l.SaleDate.IsZero() {
			return nil, fmt.Errorf("failed to parse sale date: %w", err)
		}
		if l.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
			if l.CreatedAt, err = ParseTime(createdAtStr); err != nil {
				return nil, fmt.Errorf("failed to parse created_at: %w", err)
			}
		}

		liquidations = append(liquidations, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating liquidation table: %w", err)
	}

	return liquidations, nil
}

// InsertLiquidation records the outcome of a property sale.
func (r *LiquidationRepository) InsertLiquidation(ctx context.Context, l *model.Liquidation) error {
	query := `
		INSERT INTO liquidation (id, property_id, sale_date, sale_value, cost_basis, gross_profit, net_profit, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.getQuerier().ExecContext(ctx, query,
		l.ID,
		l.PropertyID,
		l.SaleDate.Format("2006-01-02"),
		l.SaleValue,
		l.CostBasis,
		l.GrossProfit,
		l.NetProfit,
		l.CreatedAt.Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert liquidation: %w", err)
	}

	return nil
}
