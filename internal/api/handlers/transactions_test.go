package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brickfolio/property-portfolio-backend/internal/api/request"
	"github.com/brickfolio/property-portfolio-backend/internal/model"
	"github.com/brickfolio/property-portfolio-backend/internal/testutil"
)

func setupTransactionHandler(t *testing.T) (*TransactionHandler, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewTransactionHandler(testutil.NewTestTransactionService(t, db)), db
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("creates a transaction", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)

		owner := testutil.CreateOwner(t, db, "Alice")
		property := testutil.CreateProperty(t, db, owner.ID, 250000)

		req := testutil.NewRequestWithBody(t,
			http.MethodPost,
			"/api/transaction",
			request.CreateTransactionRequest{
				PropertyID:  property.ID,
				Date:        "2024-06-15",
				Kind:        model.KindIncome,
				Amount:      2500,
				Description: "June rent",
			},
			nil,
		)
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var transaction model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&transaction)

		if transaction.Amount != 2500 {
			t.Errorf("Expected amount 2500, got %v", transaction.Amount)
		}
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)

		owner := testutil.CreateOwner(t, db, "Alice")
		property := testutil.CreateProperty(t, db, owner.ID, 250000)

		req := testutil.NewRequestWithBody(t,
			http.MethodPost,
			"/api/transaction",
			request.CreateTransactionRequest{
				PropertyID: property.ID,
				Date:       "2024-06-15",
				Kind:       "dividend",
				Amount:     100,
			},
			nil,
		)
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 404 for a missing property", func(t *testing.T) {
		handler, _ := setupTransactionHandler(t)

		req := testutil.NewRequestWithBody(t,
			http.MethodPost,
			"/api/transaction",
			request.CreateTransactionRequest{
				PropertyID: testutil.MakeID(),
				Date:       "2024-06-15",
				Kind:       model.KindIncome,
				Amount:     2500,
			},
			nil,
		)
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestTransactionHandler_TransactionsPerProperty(t *testing.T) {
	t.Run("lists the property's transactions with its name", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)

		owner := testutil.CreateOwner(t, db, "Alice")
		property := testutil.NewProperty(owner.ID).WithName("Elm Street Duplex").Build(t, db)
		testutil.CreateIncome(t, db, property.ID, "2024-01-10", 2000)
		testutil.CreateExpense(t, db, property.ID, "2024-01-20", 300)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/transaction/property/"+property.ID,
			map[string]string{"uuid": property.ID},
		)
		w := httptest.NewRecorder()

		handler.TransactionsPerProperty(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var transactions []model.TransactionResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&transactions)

		if len(transactions) != 2 {
			t.Fatalf("Expected 2 transactions, got %d", len(transactions))
		}
		if transactions[0].PropertyName != "Elm Street Duplex" {
			t.Errorf("Expected property name Elm Street Duplex, got %q", transactions[0].PropertyName)
		}
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("deletes and returns 204", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)

		owner := testutil.CreateOwner(t, db, "Alice")
		property := testutil.CreateProperty(t, db, owner.ID, 250000)
		tx := testutil.CreateIncome(t, db, property.ID, "2024-01-10", 2000)

		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/transaction/"+tx.ID,
			map[string]string{"uuid": tx.ID},
		)
		w := httptest.NewRecorder()

		handler.DeleteTransaction(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 404 for unknown transaction", func(t *testing.T) {
		handler, _ := setupTransactionHandler(t)

		missing := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/transaction/"+missing,
			map[string]string{"uuid": missing},
		)
		w := httptest.NewRecorder()

		handler.DeleteTransaction(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}
