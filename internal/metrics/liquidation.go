package metrics

import (
	"github.com/brickfolio/property-portfolio-backend/internal/apperrors"
)

// LiquidationResult holds the computed financial outcome of a property sale.
// GrossProfit is the sale-only figure; NetProfit additionally folds in the
// accumulated operating result when the caller asked for it. Both figures
// are returned so the caller can present either view.
type LiquidationResult struct {
	GrossProfit float64 `json:"grossProfit"`
	NetProfit   float64 `json:"netProfit"`
}

// Liquidate computes the profit of selling a property.
//
// costBasis is the cumulative acquisition cost (purchase value plus any
// recorded registration costs). operatingNet is the accumulated net rental
// cash flow over the holding period; it is added to the net figure only when
// includeOperating is set, since sale-only and sale-plus-operations are both
// meaningful results.
//
// Unlike the aggregate reporting functions, invalid input here is rejected
// rather than coerced: a negative sale value or a missing (non-positive)
// cost basis returns an error. The engine only computes; removing the sold
// property from the active set and retaining its transactions is the
// caller's contract.
func Liquidate(costBasis, saleValue, operatingNet float64, includeOperating bool) (LiquidationResult, error) {
	if saleValue < 0 {
		return LiquidationResult{}, apperrors.ErrInvalidSaleValue
	}
	if costBasis <= 0 {
		return LiquidationResult{}, apperrors.ErrMissingCostBasis
	}

	gross := saleValue - costBasis
	net := gross
	if includeOperating {
		net += operatingNet
	}

	return LiquidationResult{GrossProfit: gross, NetProfit: net}, nil
}
