package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/brickfolio/property-portfolio-backend/internal/api/request"
	"github.com/brickfolio/property-portfolio-backend/internal/apperrors"
	"github.com/brickfolio/property-portfolio-backend/internal/testutil"
)

// TestPropertyService_Liquidate tests the liquidation flow.
//
// WHY: Liquidation is the one irreversible operation in the system. It must
// compute the sale result correctly, persist a permanent record, flip the
// property flag atomically, and never run twice for the same property.
func TestPropertyService_Liquidate(t *testing.T) {
	t.Run("computes gross profit from cost basis", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPropertyService(t, db)

		owner := testutil.CreateOwner(t, db, "Seller")
		property := testutil.CreateProperty(t, db, owner.ID, 350000)

		liquidation, err := svc.Liquidate(context.Background(), property.ID, request.LiquidatePropertyRequest{
			SaleValue: 420000,
			SaleDate:  "2024-06-30",
		})
		if err != nil {
			t.Fatalf("Liquidate() returned unexpected error: %v", err)
		}

		if liquidation.GrossProfit != 70000 {
			t.Errorf("Expected gross profit 70000, got %v", liquidation.GrossProfit)
		}
		if liquidation.NetProfit != 70000 {
			t.Errorf("Expected net profit 70000 without operating flow, got %v", liquidation.NetProfit)
		}
		if liquidation.CostBasis != 350000 {
			t.Errorf("Expected cost basis 350000, got %v", liquidation.CostBasis)
		}
	})

	t.Run("includes operating cash flow when requested", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPropertyService(t, db)

		owner := testutil.CreateOwner(t, db, "Seller")
		property := testutil.CreateProperty(t, db, owner.ID, 350000)
		testutil.CreateIncome(t, db, property.ID, "2024-01-15", 20000)
		testutil.CreateExpense(t, db, property.ID, "2024-02-15", 5000)

		liquidation, err := svc.Liquidate(context.Background(), property.ID, request.LiquidatePropertyRequest{
			SaleValue:        420000,
			SaleDate:         "2024-06-30",
			IncludeOperating: true,
		})
		if err != nil {
			t.Fatalf("Liquidate() returned unexpected error: %v", err)
		}

		// 70000 sale gain + 15000 net operating flow
		if liquidation.NetProfit != 85000 {
			t.Errorf("Expected net profit 85000, got %v", liquidation.NetProfit)
		}
		if liquidation.GrossProfit != 70000 {
			t.Errorf("Expected gross profit 70000, got %v", liquidation.GrossProfit)
		}
	})

	t.Run("marks property liquidated and keeps its transactions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPropertyService(t, db)
		transactionService := testutil.NewTestTransactionService(t, db)

		owner := testutil.CreateOwner(t, db, "Seller")
		property := testutil.CreateProperty(t, db, owner.ID, 250000)
		testutil.CreateIncome(t, db, property.ID, "2024-03-01", 2000)
		testutil.CreateIncome(t, db, property.ID, "2024-04-01", 2000)

		_, err := svc.Liquidate(context.Background(), property.ID, request.LiquidatePropertyRequest{
			SaleValue: 260000,
			SaleDate:  "2024-05-01",
		})
		if err != nil {
			t.Fatalf("Liquidate() returned unexpected error: %v", err)
		}

		updated, err := svc.GetProperty(property.ID)
		if err != nil {
			t.Fatalf("GetProperty() returned unexpected error: %v", err)
		}
		if !updated.IsLiquidated {
			t.Error("Expected property to be marked liquidated")
		}

		// Historical transactions survive the sale
		transactions, err := transactionService.GetTransactionsPerProperty(property.ID)
		if err != nil {
			t.Fatalf("GetTransactionsPerProperty() returned unexpected error: %v", err)
		}
		if len(transactions) != 2 {
			t.Errorf("Expected 2 retained transactions, got %d", len(transactions))
		}

		// Active property listing no longer includes it
		active, err := svc.GetProperties(owner.ID)
		if err != nil {
			t.Fatalf("GetProperties() returned unexpected error: %v", err)
		}
		if len(active) != 0 {
			t.Errorf("Expected no active properties, got %d", len(active))
		}
	})

	t.Run("rejects a second liquidation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPropertyService(t, db)

		owner := testutil.CreateOwner(t, db, "Seller")
		property := testutil.CreateProperty(t, db, owner.ID, 250000)

		req := request.LiquidatePropertyRequest{SaleValue: 260000, SaleDate: "2024-05-01"}
		if _, err := svc.Liquidate(context.Background(), property.ID, req); err != nil {
			t.Fatalf("Liquidate() returned unexpected error: %v", err)
		}

		_, err := svc.Liquidate(context.Background(), property.ID, req)
		if !errors.Is(err, apperrors.ErrPropertyLiquidated) {
			t.Errorf("Expected ErrPropertyLiquidated, got %v", err)
		}
	})

	t.Run("rejects negative sale value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPropertyService(t, db)

		owner := testutil.CreateOwner(t, db, "Seller")
		property := testutil.CreateProperty(t, db, owner.ID, 250000)

		_, err := svc.Liquidate(context.Background(), property.ID, request.LiquidatePropertyRequest{
			SaleValue: -1,
			SaleDate:  "2024-05-01",
		})
		if !errors.Is(err, apperrors.ErrInvalidSaleValue) {
			t.Errorf("Expected ErrInvalidSaleValue, got %v", err)
		}
	})

	t.Run("returns not found for unknown property", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPropertyService(t, db)

		_, err := svc.Liquidate(context.Background(), testutil.MakeID(), request.LiquidatePropertyRequest{
			SaleValue: 100000,
			SaleDate:  "2024-05-01",
		})
		if !errors.Is(err, apperrors.ErrPropertyNotFound) {
			t.Errorf("Expected ErrPropertyNotFound, got %v", err)
		}
	})
}

// TestPropertyService_UpdateProperty tests partial property edits.
//
// WHY: The update semantics distinguish three cases for the optional
// currentValue and roi fields: omitted keeps the stored data, explicit null
// clears it, and a value replaces it. The purchase value must never change.
func TestPropertyService_UpdateProperty(t *testing.T) {
	currentValue := 420000.0
	newRent := 2750.0

	t.Run("updates provided fields only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPropertyService(t, db)

		owner := testutil.CreateOwner(t, db, "Landlord")
		property := testutil.NewProperty(owner.ID).
			WithPurchaseValue(350000).
			WithRentAmount(2500).
			Build(t, db)

		updated, err := svc.UpdateProperty(context.Background(), property.ID, request.UpdatePropertyRequest{
			RentAmount: &newRent,
		})
		if err != nil {
			t.Fatalf("UpdateProperty() returned unexpected error: %v", err)
		}

		if updated.RentAmount != 2750 {
			t.Errorf("Expected rent 2750, got %v", updated.RentAmount)
		}
		if updated.Name != property.Name {
			t.Errorf("Expected name unchanged, got %q", updated.Name)
		}
		if updated.PurchaseValue != 350000 {
			t.Errorf("Expected purchase value unchanged at 350000, got %v", updated.PurchaseValue)
		}
	})

	t.Run("sets and clears the appraised value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPropertyService(t, db)

		owner := testutil.CreateOwner(t, db, "Landlord")
		property := testutil.CreateProperty(t, db, owner.ID, 350000)

		updated, err := svc.UpdateProperty(context.Background(), property.ID, request.UpdatePropertyRequest{
			CurrentValue:    &currentValue,
			CurrentValueSet: true,
		})
		if err != nil {
			t.Fatalf("UpdateProperty() returned unexpected error: %v", err)
		}
		if updated.CurrentValue == nil || *updated.CurrentValue != 420000 {
			t.Fatalf("Expected current value 420000, got %v", updated.CurrentValue)
		}

		// Explicit null clears the appraisal
		cleared, err := svc.UpdateProperty(context.Background(), property.ID, request.UpdatePropertyRequest{
			CurrentValue:    nil,
			CurrentValueSet: true,
		})
		if err != nil {
			t.Fatalf("UpdateProperty() returned unexpected error: %v", err)
		}
		if cleared.CurrentValue != nil {
			t.Errorf("Expected current value cleared, got %v", *cleared.CurrentValue)
		}
	})

	t.Run("rejects edits to a liquidated property", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPropertyService(t, db)

		owner := testutil.CreateOwner(t, db, "Landlord")
		property := testutil.NewProperty(owner.ID).Liquidated().Build(t, db)

		_, err := svc.UpdateProperty(context.Background(), property.ID, request.UpdatePropertyRequest{
			RentAmount: &newRent,
		})
		if !errors.Is(err, apperrors.ErrPropertyLiquidated) {
			t.Errorf("Expected ErrPropertyLiquidated, got %v", err)
		}
	})
}

// TestPropertyService_CreateProperty tests property registration.
func TestPropertyService_CreateProperty(t *testing.T) {
	t.Run("persists the full property record", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPropertyService(t, db)

		owner := testutil.CreateOwner(t, db, "Landlord")

		roi := 5.2
		created, err := svc.CreateProperty(context.Background(), request.CreatePropertyRequest{
			OwnerID:       owner.ID,
			Name:          "Elm Street Duplex",
			Type:          "residential",
			Address:       "12 Elm Street",
			PurchaseValue: 250000,
			RentAmount:    2000,
			ROI:           &roi,
		})
		if err != nil {
			t.Fatalf("CreateProperty() returned unexpected error: %v", err)
		}

		stored, err := svc.GetProperty(created.ID)
		if err != nil {
			t.Fatalf("GetProperty() returned unexpected error: %v", err)
		}

		if stored.Name != "Elm Street Duplex" {
			t.Errorf("Expected name Elm Street Duplex, got %q", stored.Name)
		}
		if stored.PurchaseValue != 250000 {
			t.Errorf("Expected purchase value 250000, got %v", stored.PurchaseValue)
		}
		if stored.ROI == nil || *stored.ROI != 5.2 {
			t.Errorf("Expected roi 5.2, got %v", stored.ROI)
		}
		if !stored.Occupied() {
			t.Error("Expected property with rent to be occupied")
		}
		if stored.IsLiquidated {
			t.Error("Expected new property to not be liquidated")
		}
	})

	t.Run("vacant property has zero rent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPropertyService(t, db)

		owner := testutil.CreateOwner(t, db, "Landlord")

		created, err := svc.CreateProperty(context.Background(), request.CreatePropertyRequest{
			OwnerID:       owner.ID,
			Name:          "Vacant Lot",
			Type:          "land",
			Address:       "99 Field Road",
			PurchaseValue: 80000,
		})
		if err != nil {
			t.Fatalf("CreateProperty() returned unexpected error: %v", err)
		}

		if created.Occupied() {
			t.Error("Expected zero-rent property to be vacant")
		}
	})
}

// TestPropertyService_DeleteProperty tests removal and transaction retention.
//
// WHY: Deleting a property must not cascade into its transaction history;
// orphaned entries simply fall out of property-scoped reads.
func TestPropertyService_DeleteProperty(t *testing.T) {
	t.Run("removes the property but not its transactions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPropertyService(t, db)

		owner := testutil.CreateOwner(t, db, "Landlord")
		property := testutil.CreateProperty(t, db, owner.ID, 250000)
		testutil.CreateIncome(t, db, property.ID, "2024-01-15", 2000)

		if err := svc.DeleteProperty(context.Background(), property.ID); err != nil {
			t.Fatalf("DeleteProperty() returned unexpected error: %v", err)
		}

		if _, err := svc.GetProperty(property.ID); !errors.Is(err, apperrors.ErrPropertyNotFound) {
			t.Errorf("Expected ErrPropertyNotFound after delete, got %v", err)
		}

		// Raw row is still there even though no property references it
		var count int
		if err := db.QueryRow(
			"SELECT COUNT(*) FROM property_transaction WHERE property_id = ?", property.ID,
		).Scan(&count); err != nil {
			t.Fatalf("Failed to count transactions: %v", err)
		}
		if count != 1 {
			t.Errorf("Expected orphaned transaction to be retained, got %d rows", count)
		}
	})

	t.Run("returns not found for unknown property", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPropertyService(t, db)

		err := svc.DeleteProperty(context.Background(), testutil.MakeID())
		if !errors.Is(err, apperrors.ErrPropertyNotFound) {
			t.Errorf("Expected ErrPropertyNotFound, got %v", err)
		}
	})
}
