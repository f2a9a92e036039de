package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/brickfolio/property-portfolio-backend/internal/apperrors"
	"github.com/brickfolio/property-portfolio-backend/internal/model"
)

// OwnerRepository provides data access methods for the owner table.
type OwnerRepository struct {
	db *sql.DB
}

// NewOwnerRepository creates a new OwnerRepository with the provided database connection.
func NewOwnerRepository(db *sql.DB) *OwnerRepository {
	return &OwnerRepository{db: db}
}

// GetOwners retrieves all owners.
func (r *OwnerRepository) GetOwners() ([]model.Owner, error) {
	rows, err := r.db.Query("SELECT id, name, email, created_at FROM owner ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query owner table: %w", err)
	}
	defer rows.Close()

	owners := []model.Owner{}

	for rows.Next() {
		var o model.Owner
		var createdAtStr string

		if err := rows.Scan(&o.ID, &o.Name, &o.Email, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan owner table results: %w", err)
		}
		if o.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
			if o.CreatedAt, err = ParseTime(createdAtStr); err != nil {
				return nil, fmt.Errorf("failed to parse created_at: %w", err)
			}
		}

		owners = append(owners, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating owner table: %w", err)
	}

	return owners, nil
}

// GetOwnerOnID retrieves a single owner by ID.
func (r *OwnerRepository) GetOwnerOnID(ownerID string) (model.Owner, error) {
	var o model.Owner
	var createdAtStr string

	err := r.db.QueryRow("SELECT id, name, email, created_at FROM owner WHERE id = ?", ownerID).
		Scan(&o.ID, &o.Name, &o.Email, &createdAtStr)
	if err == sql.ErrNoRows {
		return model.Owner{}, apperrors.ErrOwnerNotFound
	}
	if err != nil {
		return model.Owner{}, fmt.Errorf("failed to query owner: %w", err)
	}

	if o.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		if o.CreatedAt, err = ParseTime(createdAtStr); err != nil {
			return model.Owner{}, fmt.Errorf("failed to parse created_at: %w", err)
		}
	}

	return o, nil
}

// InsertOwner creates a new owner row.
func (r *OwnerRepository) InsertOwner(ctx context.Context, o *model.Owner) error {
	query := "INSERT INTO owner (id, name, email, created_at) VALUES (?, ?, ?, ?)"

	_, err := r.db.ExecContext(ctx, query, o.ID, o.Name, o.Email, o.CreatedAt.Format("2006-01-02 15:04:05"))
	if err != nil {
		return fmt.Errorf("failed to insert owner: %w", err)
	}

	return nil
}
