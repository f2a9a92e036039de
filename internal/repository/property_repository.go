package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/brickfolio/property-portfolio-backend/internal/apperrors"
	"github.com/brickfolio/property-portfolio-backend/internal/model"
)

// PropertyRepository provides data access methods for the property table.
type PropertyRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewPropertyRepository creates a new PropertyRepository with the provided database connection.
func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// WithTx returns a copy of the repository that runs its statements inside the given transaction.
func (r *PropertyRepository) WithTx(tx *sql.Tx) *PropertyRepository {
	return &PropertyRepository{db: r.db, tx: tx}
}

func (r *PropertyRepository) getQuerier() interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// GetProperties retrieves properties from the database based on filter criteria.
// The filter allows scoping to a single owner and controls whether liquidated
// properties are included. Returns an empty slice if nothing matches.
func (r *PropertyRepository) GetProperties(filter model.PropertyFilter) ([]model.Property, error) {
	query := `
		SELECT id, owner_id, name, type, address, purchase_value, current_value, rent_amount, roi, is_liquidated, created_at
		FROM property
		WHERE 1=1
	`
	var args []any

	if filter.OwnerID != "" {
		query += " AND owner_id = ?"
		args = append(args, filter.OwnerID)
	}

	if !filter.IncludeLiquidated {
		query += " AND is_liquidated = ?"
		args = append(args, 0)
	}

	rows, err := r.getQuerier().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query property table: %w", err)
	}
	defer rows.Close()

	properties := []model.Property{}

	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property table: %w", err)
	}

	return properties, nil
}

// GetPropertyOnID retrieves a single property by its ID.
func (r *PropertyRepository) GetPropertyOnID(propertyID string) (model.Property, error) {
	query := `
		SELECT id, owner_id, name, type, address, purchase_value, current_value, rent_amount, roi, is_liquidated, created_at
		FROM property
		WHERE id = ?
	`

	row := r.getQuerier().QueryRow(query, propertyID)
	p, err := scanPropertyRow(row)
	if err == sql.ErrNoRows {
		return model.Property{}, apperrors.ErrPropertyNotFound
	}
	if err != nil {
		return model.Property{}, fmt.Errorf("failed to query property: %w", err)
	}

	return p, nil
}

// InsertProperty creates a new property row.
func (r *PropertyRepository) InsertProperty(ctx context.Context, p *model.Property) error {
	query := `
		INSERT INTO property (id, owner_id, name, type, address, purchase_value, current_value, rent_amount, roi, is_liquidated, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.getQuerier().ExecContext(ctx, query,
		p.ID,
		p.OwnerID,
		p.Name,
		p.Type,
		p.Address,
		p.PurchaseValue,
		nullableFloat(p.CurrentValue),
		p.RentAmount,
		nullableFloat(p.ROI),
		p.IsLiquidated,
		p.CreatedAt.Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert property: %w", err)
	}

	return nil
}

// UpdateProperty updates the mutable fields of a property. The purchase value
// is fixed at acquisition and never updated here.
func (r *PropertyRepository) UpdateProperty(ctx context.Context, p *model.Property) error {
	query := `
		UPDATE property
		SET name = ?, type = ?, address = ?, current_value = ?, rent_amount = ?, roi = ?
		WHERE id = ?
	`

	result, err := r.getQuerier().ExecContext(ctx, query,
		p.Name,
		p.Type,
		p.Address,
		nullableFloat(p.CurrentValue),
		p.RentAmount,
		nullableFloat(p.ROI),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrPropertyNotFound
	}

	return nil
}

// MarkLiquidated flags the property as sold, removing it from the active
// portfolio while keeping the row (and its transactions) for record-keeping.
func (r *PropertyRepository) MarkLiquidated(ctx context.Context, propertyID string) error {
	result, err := r.getQuerier().ExecContext(ctx,
		"UPDATE property SET is_liquidated = 1 WHERE id = ?", propertyID)
	if err != nil {
		return fmt.Errorf("failed to mark property liquidated: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check liquidation result: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrPropertyNotFound
	}

	return nil
}

// DeleteProperty removes a property row. Its transactions are deliberately
// not cascade-deleted; historical entries outlive the property.
func (r *PropertyRepository) DeleteProperty(ctx context.Context, propertyID string) error {
	result, err := r.getQuerier().ExecContext(ctx, "DELETE FROM property WHERE id = ?", propertyID)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrPropertyNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(rows *sql.Rows) (model.Property, error) {
	p, err := scanPropertyRow(rows)
	if err != nil {
		return model.Property{}, fmt.Errorf("failed to scan property table results: %w", err)
	}
	return p, nil
}

func scanPropertyRow(row rowScanner) (model.Property, error) {
	var p model.Property
	var currentValue, roi sql.NullFloat64
	var createdAtStr string

	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Type,
		&p.Address,
		&p.PurchaseValue,
		&currentValue,
		&p.RentAmount,
		&roi,
		&p.IsLiquidated,
		&createdAtStr,
	)
	if err != nil {
		return model.Property{}, err
	}

	if currentValue.Valid {
		v := currentValue.Float64
		p.CurrentValue = &v
	}
	if roi.Valid {
		v := roi.Float64
		p.ROI = &v
	}

	p.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		// created_at may carry a "2006-01-02 15:04:05" timestamp from SQLite defaults.
		t, err2 := parseTimestamp(createdAtStr)
		if err2 != nil {
			return model.Property{}, err
		}
		p.CreatedAt = t
	}

	return p, nil
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
