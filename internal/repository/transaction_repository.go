package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/brickfolio/property-portfolio-backend/internal/apperrors"
	"github.com/brickfolio/property-portfolio-backend/internal/model"
)

// TransactionRepository provides data access methods for the property_transaction table.
// It handles retrieving and querying property income/expense entries within
// specified date ranges.
type TransactionRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// WithTx returns a copy of the repository that runs its statements inside the given transaction.
func (r *TransactionRepository) WithTx(tx *sql.Tx) *TransactionRepository {
	return &TransactionRepository{db: r.db, tx: tx}
}

func (r *TransactionRepository) getQuerier() interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// GetTransactions retrieves transactions matching the filter, sorted by date
// ascending. All filter fields are optional; zero dates disable the range
// bounds. Returns an empty slice if nothing matches.
func (r *TransactionRepository) GetTransactions(filter model.TransactionFilter) ([]model.Transaction, error) {
	query := `
		SELECT id, property_id, date, kind, amount, description, created_at
		FROM property_transaction
		WHERE 1=1
	`
	var args []any

	if filter.PropertyID != "" {
		query += " AND property_id = ?"
		args = append(args, filter.PropertyID)
	}
	if filter.Kind != "" {
		query += " AND kind = ?"
		args = append(args, filter.Kind)
	}
	if !filter.StartDate.IsZero() {
		query += " AND date >= ?"
		args = append(args, filter.StartDate.Format("2006-01-02"))
	}
	if !filter.EndDate.IsZero() {
		query += " AND date <= ?"
		args = append(args, filter.EndDate.Format("2006-01-02"))
	}

	query += " ORDER BY date ASC"

	rows, err := r.getQuerier().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query property_transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}

	for rows.Next() {
		var t model.Transaction
		var dateStr, createdAtStr string
		var description sql.NullString

		err := rows.Scan(
			&t.ID,
			&t.PropertyID,
			&dateStr,
			&t.Kind,
			&t.Amount,
			&description,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property_transaction table results: %w", err)
		}

		t.Date, err = ParseTime(dateStr)
		if err != nil || t.Date.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		if description.Valid {
			t.Description = description.String
		}
		if t.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
			if t.CreatedAt, err = ParseTime(createdAtStr); err != nil {
				return nil, fmt.Errorf("failed to parse created_at: %w", err)
			}
		}

		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property_transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransactionsPerProperty retrieves transactions enriched with the
// property name. An empty propertyID returns all transactions across the
// portfolio. The join drops orphaned entries whose property row no longer
// exists; record-keeping reads go through GetTransactions instead.
func (r *TransactionRepository) GetTransactionsPerProperty(propertyID string) ([]model.TransactionResponse, error) {
	query := `
		SELECT t.id, t.property_id, p.name, t.date, t.kind, t.amount, t.description
		FROM property_transaction t
		JOIN property p ON t.property_id = p.id
	`
	var args []any

	if propertyID != "" {
		query += " WHERE t.property_id = ?"
		args = append(args, propertyID)
	}

	query += " ORDER BY t.date ASC"

	rows, err := r.getQuerier().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query property_transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.TransactionResponse{}

	for rows.Next() {
		var t model.TransactionResponse
		var dateStr string
		var description sql.NullString

		err := rows.Scan(
			&t.ID,
			&t.PropertyID,
			&t.PropertyName,
			&dateStr,
			&t.Kind,
			&t.Amount,
			&description,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property_transaction table results: %w", err)
		}

		t.Date, err = ParseTime(dateStr)
		if err != nil || t.Date.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		if description.Valid {
			t.Description = description.String
		}

		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property_transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a single transaction by its ID.
func (r *TransactionRepository) GetTransaction(transactionID string) (model.Transaction, error) {
	query := `
		SELECT id, property_id, date, kind, amount, description, created_at
		FROM property_transaction
		WHERE id = ?
	`

	var t model.Transaction
	var dateStr, createdAtStr string
	var description sql.NullString

	err := r.getQuerier().QueryRow(query, transactionID).Scan(
		&t.ID,
		&t.PropertyID,
		&dateStr,
		&t.Kind,
		&t.Amount,
		&description,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to query transaction: %w", err)
	}

	t.Date, err = ParseTime(dateStr)
	if err != nil || t.Date.IsZero() {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}
	if description.Valid {
		t.Description = description.String
	}
	if t.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		if t.CreatedAt, err = ParseTime(createdAtStr); err != nil {
			return model.Transaction{}, fmt.Errorf("failed to parse created_at: %w", err)
		}
	}

	return t, nil
}

// InsertTransaction creates a new transaction row.
func (r *TransactionRepository) InsertTransaction(ctx context.Context, t *model.Transaction) error {
	query := `
		INSERT INTO property_transaction (id, property_id, date, kind, amount, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.getQuerier().ExecContext(ctx, query,
		t.ID,
		t.PropertyID,
		t.Date.Format("2006-01-02"),
		t.Kind,
		t.Amount,
		t.Description,
		t.CreatedAt.Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// UpdateTransaction updates an existing transaction row.
func (r *TransactionRepository) UpdateTransaction(ctx context.Context, t *model.Transaction) error {
	query := `
		UPDATE property_transaction
		SET date = ?, kind = ?, amount = ?, description = ?
		WHERE id = ?
	`

	result, err := r.getQuerier().ExecContext(ctx, query,
		t.Date.Format("2006-01-02"),
		t.Kind,
		t.Amount,
		t.Description,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

// DeleteTransaction removes a transaction row.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	result, err := r.getQuerier().ExecContext(ctx,
		"DELETE FROM property_transaction WHERE id = ?", transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}
