package brickfolio

import "testing"

// baseAssumptions returns the reference property scenario used across
// tests: one 500k property bought every year up to ten, fully financed
// at 4% over 30 years, 3% appreciation and an 8% rental yield.
func baseAssumptions(t *testing.T) PropertyAssumptions {
	t.Helper()
	return PropertyAssumptions{
		PurchasePrice:    500_000,
		MarketValue:      500_000,
		LoanAmount:       500_000,
		InterestRate:     4,
		AppreciationRate: 3,
		RentalYield:      8,
		PurchaseInterval: 1,
		MaxProperties:    10,
		LoanTenureYears:  30,
		StartYear:        2025,
		Currency:         "USD",
	}
}

// baseStockAssumptions returns the reference overlay scenario: a DRIP
// position bought at a 10% discount, 4% dividend yield, 7% growth, and
// a 600k approved mortgage releasing 100k cashback per property.
func baseStockAssumptions(t *testing.T) StockAssumptions {
	t.Helper()
	return StockAssumptions{
		DividendYield:      4,
		PurchaseDiscount:   10,
		AppreciationRate:   7,
		DRIP:               true,
		ApprovedLoanAmount: 600_000,
	}
}

// near reports whether two floats are equal within tolerance.
func near(a, b, tolerance float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
