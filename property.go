package brickfolio

// PropertyAssumptions is the immutable input of a property projection.
// Rate fields are percentages at the boundary (3 means 3%); they are
// converted to decimal fractions inside the engine via Percent.Rate.
type PropertyAssumptions struct {
	// PurchasePrice is the price paid per property.
	PurchasePrice float64 `json:"purchasePrice"`
	// MarketValue is the assessed value per property. Zero means it is
	// derived: from BMVDiscount when set, from PurchasePrice otherwise.
	MarketValue float64 `json:"marketValue,omitempty"`
	// BMVDiscount is the below-market-value discount on the purchase.
	// A 20% discount on a 400k purchase means a 500k market value:
	// appreciation compounds from true market value while the loan is
	// sized off the purchase price, producing instant paper equity.
	BMVDiscount Percent `json:"bmvDiscount,omitempty"`
	// LoanAmount is the principal borrowed per property.
	LoanAmount float64 `json:"loanAmount"`

	InterestRate     Percent `json:"interestRate"`
	AppreciationRate Percent `json:"appreciationRate"`
	// RentalYield applies to the purchase price, never to the
	// appreciated market value (fixed-lease assumption).
	RentalYield Percent `json:"rentalYield"`

	// PurchaseInterval is the number of years between acquisitions (>= 1).
	PurchaseInterval int `json:"purchaseInterval"`
	// MaxProperties caps how many properties are ever acquired.
	MaxProperties int `json:"maxProperties"`
	// LoanTenureYears is the mortgage tenure per property (> 0).
	LoanTenureYears int `json:"loanTenureYears"`

	// ExpenseAmount is a fixed annual operating expense per property.
	// ExpenseRate, when non-zero, replaces it with a percentage of the
	// purchase price.
	ExpenseAmount float64 `json:"expenseAmount,omitempty"`
	ExpenseRate   Percent `json:"expenseRate,omitempty"`

	// StartYear is the calendar year of the simulation baseline.
	StartYear int `json:"startYear"`
	// Currency is used for display only; the engine is unit-agnostic.
	Currency string `json:"currency,omitempty"`
}

// DerivedMarketValue resolves the effective market value per property.
// An explicit MarketValue wins; otherwise a below-market-value discount
// derives it as purchasePrice / (1 - discount); otherwise the property
// is assumed bought at market value.
func (a PropertyAssumptions) DerivedMarketValue() float64 {
	if a.MarketValue > 0 {
		return a.MarketValue
	}
	if d := a.BMVDiscount.Rate(); d > 0 && d < 1 {
		return a.PurchasePrice / (1 - d)
	}
	return a.PurchasePrice
}

// AnnualRentalIncome is fixed at purchasePrice * rentalYield. It does
// not scale with appreciation: the yield applies to what was paid, not
// to the appraised value.
func (a PropertyAssumptions) AnnualRentalIncome() float64 {
	return a.PurchasePrice * a.RentalYield.Rate()
}

// AnnualExpensePerProperty resolves the per-property operating expense:
// the fixed amount, unless a percentage of the purchase price is set.
func (a PropertyAssumptions) AnnualExpensePerProperty() float64 {
	if a.ExpenseRate > 0 {
		return a.PurchasePrice * a.ExpenseRate.Rate()
	}
	return a.ExpenseAmount
}

// MonthlyPayment is the fixed monthly mortgage installment per property.
func (a PropertyAssumptions) MonthlyPayment() float64 {
	return MonthlyPayment(a.LoanAmount, a.InterestRate.Rate(), a.LoanTenureYears)
}

// AnnualPayment is the yearly mortgage outflow per property.
func (a PropertyAssumptions) AnnualPayment() float64 {
	return a.MonthlyPayment() * 12
}
