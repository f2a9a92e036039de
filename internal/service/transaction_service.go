package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brickfolio/property-portfolio-backend/internal/api/request"
	"github.com/brickfolio/property-portfolio-backend/internal/model"
	"github.com/brickfolio/property-portfolio-backend/internal/repository"
)

// TransactionService handles income/expense entry business logic operations.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	propertyRepo    *repository.PropertyRepository
}

// NewTransactionService creates a new TransactionService with the provided repository dependencies.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
	propertyRepo *repository.PropertyRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		propertyRepo:    propertyRepo,
	}
}

// loadTransactions retrieves raw transactions matching the filter, sorted by
// date. This is the snapshot feed for the metrics engine.
func (s *TransactionService) loadTransactions(filter model.TransactionFilter) ([]model.Transaction, error) {
	return s.transactionRepo.GetTransactions(filter)
}

// GetTransactionsPerProperty retrieves transactions for a specific property,
// or all transactions if propertyID is empty. Results are enriched with
// property names for display.
func (s *TransactionService) GetTransactionsPerProperty(propertyID string) ([]model.TransactionResponse, error) {
	return s.transactionRepo.GetTransactionsPerProperty(propertyID)
}

// GetTransaction retrieves a single transaction by its ID.
func (s *TransactionService) GetTransaction(transactionID string) (model.Transaction, error) {
	return s.transactionRepo.GetTransaction(transactionID)
}

// CreateTransaction records a rent payment or expense against a property.
// The referenced property must exist at creation time.
func (s *TransactionService) CreateTransaction(ctx context.Context, req request.CreateTransactionRequest) (*model.Transaction, error) {
	if _, err := s.propertyRepo.GetPropertyOnID(req.PropertyID); err != nil {
		return nil, err
	}

	transactionDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transaction date: %w", err)
	}

	transaction := &model.Transaction{
		ID:          uuid.New().String(),
		PropertyID:  req.PropertyID,
		Date:        transactionDate,
		Kind:        req.Kind,
		Amount:      round(req.Amount),
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.transactionRepo.InsertTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, nil
}

// UpdateTransaction applies an edit to an existing transaction. Omitted
// fields keep their stored values.
func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID string, req request.UpdateTransactionRequest) (*model.Transaction, error) {
	transaction, err := s.transactionRepo.GetTransaction(transactionID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		transactionDate, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse transaction date: %w", err)
		}
		transaction.Date = transactionDate
	}
	if req.Kind != nil {
		transaction.Kind = *req.Kind
	}
	if req.Amount != nil {
		transaction.Amount = round(*req.Amount)
	}
	if req.Description != nil {
		transaction.Description = *req.Description
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, &transaction); err != nil {
		return nil, err
	}

	return &transaction, nil
}

// DeleteTransaction removes a transaction.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if _, err := s.transactionRepo.GetTransaction(transactionID); err != nil {
		return err
	}
	return s.transactionRepo.DeleteTransaction(ctx, transactionID)
}
