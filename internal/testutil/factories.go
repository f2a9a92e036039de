package testutil

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/brickfolio/property-portfolio-backend/internal/model"
)

// OwnerBuilder provides a fluent interface for creating test owners.
//
// Example usage:
//
//	// Simple creation with defaults
//	owner := testutil.NewOwner().Build(t, db)
//
//	// Customized owner
//	owner := testutil.NewOwner().
//	    WithName("Alice Tan").
//	    WithEmail("alice@example.com").
//	    Build(t, db)
type OwnerBuilder struct {
	ID    string
	Name  string
	Email string
}

// NewOwner creates an OwnerBuilder with sensible defaults.
func NewOwner() *OwnerBuilder {
	id := MakeID()
	return &OwnerBuilder{
		ID:    id,
		Name:  "Test Owner",
		Email: fmt.Sprintf("owner-%s@example.com", id[:8]),
	}
}

// WithID sets a custom ID.
func (b *OwnerBuilder) WithID(id string) *OwnerBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *OwnerBuilder) WithName(name string) *OwnerBuilder {
	b.Name = name
	return b
}

// WithEmail sets a custom email.
func (b *OwnerBuilder) WithEmail(email string) *OwnerBuilder {
	b.Email = email
	return b
}

// Build creates the owner in the database and returns it.
func (b *OwnerBuilder) Build(t *testing.T, db *sql.DB) model.Owner {
	t.Helper()

	query := `
		INSERT INTO owner (id, name, email)
		VALUES (?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.Email)
	if err != nil {
		t.Fatalf("Failed to create test owner: %v", err)
	}

	return model.Owner{
		ID:    b.ID,
		Name:  b.Name,
		Email: b.Email,
	}
}

// PropertyBuilder provides a fluent interface for creating test properties.
//
// Example usage:
//
//	property := testutil.NewProperty(owner.ID).
//	    WithPurchaseValue(350000).
//	    WithRentAmount(2500).
//	    WithCurrentValue(420000).
//	    Build(t, db)
type PropertyBuilder struct {
	ID            string
	OwnerID       string
	Name          string
	Type          string
	Address       string
	PurchaseValue float64
	CurrentValue  *float64
	RentAmount    float64
	ROI           *float64
	IsLiquidated  bool
}

// NewProperty creates a PropertyBuilder with sensible defaults for the given owner.
func NewProperty(ownerID string) *PropertyBuilder {
	return &PropertyBuilder{
		ID:            MakeID(),
		OwnerID:       ownerID,
		Name:          "Test Property",
		Type:          "residential",
		Address:       "1 Test Street",
		PurchaseValue: 250000,
		RentAmount:    0,
	}
}

// WithID sets a custom ID.
func (b *PropertyBuilder) WithID(id string) *PropertyBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *PropertyBuilder) WithName(name string) *PropertyBuilder {
	b.Name = name
	return b
}

// WithType sets a custom property type.
func (b *PropertyBuilder) WithType(propertyType string) *PropertyBuilder {
	b.Type = propertyType
	return b
}

// WithPurchaseValue sets the purchase value.
func (b *PropertyBuilder) WithPurchaseValue(value float64) *PropertyBuilder {
	b.PurchaseValue = value
	return b
}

// WithCurrentValue sets an appraised current value.
func (b *PropertyBuilder) WithCurrentValue(value float64) *PropertyBuilder {
	b.CurrentValue = &value
	return b
}

// WithRentAmount sets the monthly rent. Zero means vacant.
func (b *PropertyBuilder) WithRentAmount(rent float64) *PropertyBuilder {
	b.RentAmount = rent
	return b
}

// WithROI sets an annual return figure.
func (b *PropertyBuilder) WithROI(roi float64) *PropertyBuilder {
	b.ROI = &roi
	return b
}

// Liquidated marks the property as already sold.
func (b *PropertyBuilder) Liquidated() *PropertyBuilder {
	b.IsLiquidated = true
	return b
}

// Build creates the property in the database and returns it.
func (b *PropertyBuilder) Build(t *testing.T, db *sql.DB) model.Property {
	t.Helper()

	query := `
		INSERT INTO property (id, owner_id, name, type, address, purchase_value, current_value, rent_amount, roi, is_liquidated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.OwnerID, b.Name, b.Type, b.Address,
		b.PurchaseValue, b.CurrentValue, b.RentAmount, b.ROI, b.IsLiquidated,
	)
	if err != nil {
		t.Fatalf("Failed to create test property: %v", err)
	}

	return model.Property{
		ID:            b.ID,
		OwnerID:       b.OwnerID,
		Name:          b.Name,
		Type:          b.Type,
		Address:       b.Address,
		PurchaseValue: b.PurchaseValue,
		CurrentValue:  b.CurrentValue,
		RentAmount:    b.RentAmount,
		ROI:           b.ROI,
		IsLiquidated:  b.IsLiquidated,
	}
}

// TransactionBuilder provides a fluent interface for creating test transactions.
//
// Example usage:
//
//	tx := testutil.NewTransaction(property.ID).
//	    WithKind(model.KindExpense).
//	    WithAmount(450).
//	    WithDate("2024-06-15").
//	    Build(t, db)
type TransactionBuilder struct {
	ID          string
	PropertyID  string
	Date        time.Time
	Kind        string
	Amount      float64
	Description string
}

// NewTransaction creates a TransactionBuilder with sensible defaults for the given property.
func NewTransaction(propertyID string) *TransactionBuilder {
	return &TransactionBuilder{
		ID:          MakeID(),
		PropertyID:  propertyID,
		Date:        time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		Kind:        model.KindIncome,
		Amount:      1000,
		Description: "Test transaction",
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// WithDate sets the transaction date from a YYYY-MM-DD string.
func (b *TransactionBuilder) WithDate(date string) *TransactionBuilder {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(fmt.Sprintf("invalid test date %q: %v", date, err))
	}
	b.Date = parsed
	return b
}

// WithKind sets the transaction kind (income or expense).
func (b *TransactionBuilder) WithKind(kind string) *TransactionBuilder {
	b.Kind = kind
	return b
}

// WithAmount sets the transaction amount.
func (b *TransactionBuilder) WithAmount(amount float64) *TransactionBuilder {
	b.Amount = amount
	return b
}

// WithDescription sets a custom description.
func (b *TransactionBuilder) WithDescription(desc string) *TransactionBuilder {
	b.Description = desc
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	query := `
		INSERT INTO property_transaction (id, property_id, date, kind, amount, description)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.PropertyID, b.Date.Format("2006-01-02"), b.Kind, b.Amount, b.Description,
	)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return model.Transaction{
		ID:          b.ID,
		PropertyID:  b.PropertyID,
		Date:        b.Date,
		Kind:        b.Kind,
		Amount:      b.Amount,
		Description: b.Description,
	}
}

// Convenience functions

// CreateOwner creates an owner with the given name and default values.
func CreateOwner(t *testing.T, db *sql.DB, name string) model.Owner {
	t.Helper()
	return NewOwner().WithName(name).Build(t, db)
}

// CreateProperty creates a property for the owner with the given purchase value.
func CreateProperty(t *testing.T, db *sql.DB, ownerID string, purchaseValue float64) model.Property {
	t.Helper()
	return NewProperty(ownerID).WithPurchaseValue(purchaseValue).Build(t, db)
}

// CreateIncome records an income transaction against the property.
func CreateIncome(t *testing.T, db *sql.DB, propertyID, date string, amount float64) model.Transaction {
	t.Helper()
	return NewTransaction(propertyID).WithDate(date).WithAmount(amount).Build(t, db)
}

// CreateExpense records an expense transaction against the property.
func CreateExpense(t *testing.T, db *sql.DB, propertyID, date string, amount float64) model.Transaction {
	t.Helper()
	return NewTransaction(propertyID).
		WithKind(model.KindExpense).
		WithDate(date).
		WithAmount(amount).
		Build(t, db)
}
