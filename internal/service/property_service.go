package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brickfolio/property-portfolio-backend/internal/api/request"
	"github.com/brickfolio/property-portfolio-backend/internal/apperrors"
	"github.com/brickfolio/property-portfolio-backend/internal/metrics"
	"github.com/brickfolio/property-portfolio-backend/internal/model"
	"github.com/brickfolio/property-portfolio-backend/internal/repository"
)

// PropertyService handles property-related business logic operations,
// including registration, edits, and the liquidation flow that turns an
// active property into a permanent sale record.
type PropertyService struct {
	db              *sql.DB
	propertyRepo    *repository.PropertyRepository
	transactionRepo *repository.TransactionRepository
	liquidationRepo *repository.LiquidationRepository
}

// NewPropertyService creates a new PropertyService with the provided repository dependencies.
func NewPropertyService(
	db *sql.DB,
	propertyRepo *repository.PropertyRepository,
	transactionRepo *repository.TransactionRepository,
	liquidationRepo *repository.LiquidationRepository,
) *PropertyService {
	return &PropertyService{
		db:              db,
		propertyRepo:    propertyRepo,
		transactionRepo: transactionRepo,
		liquidationRepo: liquidationRepo,
	}
}

// GetProperties retrieves the active (non-liquidated) property set,
// optionally scoped to a single owner.
func (s *PropertyService) GetProperties(ownerID string) ([]model.Property, error) {
	return s.propertyRepo.GetProperties(model.PropertyFilter{OwnerID: ownerID})
}

// GetAllProperties retrieves all properties including liquidated ones.
func (s *PropertyService) GetAllProperties(ownerID string) ([]model.Property, error) {
	return s.propertyRepo.GetProperties(model.PropertyFilter{
		OwnerID:           ownerID,
		IncludeLiquidated: true,
	})
}

// GetProperty retrieves a single property by its ID.
func (s *PropertyService) GetProperty(propertyID string) (model.Property, error) {
	return s.propertyRepo.GetPropertyOnID(propertyID)
}

// CreateProperty registers a new property. The purchase value is fixed at
// this point and cannot be changed by later edits.
func (s *PropertyService) CreateProperty(ctx context.Context, req request.CreatePropertyRequest) (*model.Property, error) {
	property := &model.Property{
		ID:            uuid.New().String(),
		OwnerID:       req.OwnerID,
		Name:          req.Name,
		Type:          req.Type,
		Address:       req.Address,
		PurchaseValue: req.PurchaseValue,
		CurrentValue:  req.CurrentValue,
		RentAmount:    req.RentAmount,
		ROI:           req.ROI,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.propertyRepo.InsertProperty(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	return property, nil
}

// UpdateProperty applies an edit to the property's mutable fields. Omitted
// request fields leave the stored values untouched; an explicit null on
// currentValue or roi clears the stored data.
func (s *PropertyService) UpdateProperty(ctx context.Context, propertyID string, req request.UpdatePropertyRequest) (*model.Property, error) {
	property, err := s.propertyRepo.GetPropertyOnID(propertyID)
	if err != nil {
		return nil, err
	}
	if property.IsLiquidated {
		return nil, apperrors.ErrPropertyLiquidated
	}

	if req.Name != nil {
		property.Name = *req.Name
	}
	if req.Type != nil {
		property.Type = *req.Type
	}
	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.RentAmount != nil {
		property.RentAmount = *req.RentAmount
	}
	if req.CurrentValueSet {
		property.CurrentValue = req.CurrentValue
	}
	if req.ROISet {
		property.ROI = req.ROI
	}

	if err := s.propertyRepo.UpdateProperty(ctx, &property); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	return &property, nil
}

// DeleteProperty removes a property from the portfolio. Its transactions are
// retained; property-scoped aggregation simply no longer reaches them.
func (s *PropertyService) DeleteProperty(ctx context.Context, propertyID string) error {
	return s.propertyRepo.DeleteProperty(ctx, propertyID)
}

// Liquidate sells a property: it computes the sale result from the
// property's cost basis and accumulated operating cash flow, stores a
// liquidation record, and marks the property liquidated. The record insert
// and the property flag are committed atomically; historical transactions
// are retained for record-keeping.
func (s *PropertyService) Liquidate(ctx context.Context, propertyID string, req request.LiquidatePropertyRequest) (*model.Liquidation, error) {
	property, err := s.propertyRepo.GetPropertyOnID(propertyID)
	if err != nil {
		return nil, err
	}
	if property.IsLiquidated {
		return nil, apperrors.ErrPropertyLiquidated
	}

	saleDate, err := time.Parse("2006-01-02", req.SaleDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sale date: %w", err)
	}

	transactions, err := s.transactionRepo.GetTransactions(model.TransactionFilter{PropertyID: propertyID})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for liquidation: %w", err)
	}

	result, err := metrics.Liquidate(
		property.PurchaseValue,
		req.SaleValue,
		metrics.NetTotal(transactions),
		req.IncludeOperating,
	)
	if err != nil {
		return nil, err
	}

	liquidation := &model.Liquidation{
		ID:          uuid.New().String(),
		PropertyID:  property.ID,
		SaleDate:    saleDate,
		SaleValue:   round(req.SaleValue),
		CostBasis:   round(property.PurchaseValue),
		GrossProfit: round(result.GrossProfit),
		NetProfit:   round(result.NetProfit),
		CreatedAt:   time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin liquidation transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if err := s.liquidationRepo.WithTx(tx).InsertLiquidation(ctx, liquidation); err != nil {
		return nil, err
	}
	if err := s.propertyRepo.WithTx(tx).MarkLiquidated(ctx, property.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit liquidation: %w", err)
	}

	return liquidation, nil
}

// GetLiquidations retrieves liquidation records, optionally scoped to one property.
func (s *PropertyService) GetLiquidations(propertyID string) ([]model.Liquidation, error) {
	return s.liquidationRepo.GetLiquidations(propertyID)
}
