package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrOwnerNotFound indicates that an owner with the given ID does not exist.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrPropertyNotFound indicates that a property with the given ID does not exist.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrLiquidationNotFound indicates that a liquidation record does not exist.
	ErrLiquidationNotFound = errors.New("liquidation not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidSaleValue indicates that a liquidation was requested with a negative sale value.
	ErrInvalidSaleValue = errors.New("sale value cannot be negative")

	// ErrMissingCostBasis indicates that a liquidation cannot be computed because
	// the property has no positive cost basis on record.
	ErrMissingCostBasis = errors.New("missing cost basis")

	// ErrPropertyLiquidated indicates that an operation targeted a property that
	// has already been sold and removed from the active portfolio.
	ErrPropertyLiquidated = errors.New("property already liquidated")

	// ErrInvalidTransactionKind indicates that a transaction kind is not one of
	// the supported values (income, expense).
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
// These errors indicate that an operation failed, but not due to missing entities or validation issues.
var (
	ErrFailedToRetrieveOwners       = errors.New("failed to retrieve owners")
	ErrFailedToRetrieveProperties   = errors.New("failed to retrieve properties")
	ErrFailedToRetrieveProperty     = errors.New("failed to retrieve property")
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveTransaction  = errors.New("failed to retrieve transaction")
	ErrFailedToComputeMetrics       = errors.New("failed to compute portfolio metrics")
	ErrFailedToComputeCashFlow      = errors.New("failed to compute cash flow series")
	ErrFailedToGetValuationHistory  = errors.New("failed to get valuation history")
	ErrFailedToGetVersionInfo       = errors.New("failed to get version information")
)

// Authentication errors represent session token failures.
var (
	// ErrInvalidSessionToken indicates that a session token is missing, expired,
	// or failed verification.
	ErrInvalidSessionToken = errors.New("invalid session token")
)
