package brickfolio

// StockAssumptions is the immutable input of the stock-reinvestment
// overlay. Rate fields are percentages at the boundary, like
// PropertyAssumptions.
type StockAssumptions struct {
	DividendYield Percent `json:"dividendYield"`
	// PurchaseDiscount is the discount below the current market price
	// at which every purchase executes.
	PurchaseDiscount Percent `json:"purchaseDiscount"`
	AppreciationRate Percent `json:"appreciationRate"`
	// DRIP reinvests dividends into more shares; otherwise dividends
	// are recorded as income and left uninvested.
	DRIP bool `json:"drip"`
	// ApprovedLoanAmount is the mortgage amount approved per property.
	// The excess over the purchase price is released as investable
	// cashback at each acquisition.
	ApprovedLoanAmount float64 `json:"approvedLoanAmount"`
}

// CashbackPerProperty is the cash released at each property purchase:
// the approved mortgage amount in excess of the purchase price, never
// negative.
func (s StockAssumptions) CashbackPerProperty(p PropertyAssumptions) float64 {
	if cb := s.ApprovedLoanAmount - p.PurchasePrice; cb > 0 {
		return cb
	}
	return 0
}

// StockYearlySnapshot is the state of the stock overlay for one
// simulated year. Share count and cost basis are monotonically
// non-decreasing across the series: no sales are ever modeled.
type StockYearlySnapshot struct {
	Year                int     `json:"year"`
	SharePrice          float64 `json:"sharePrice"`
	CashFlowInvested    float64 `json:"cashFlowInvested"`
	CashbackInvested    float64 `json:"cashbackInvested"`
	DividendReinvested  float64 `json:"dividendReinvested"`
	Shares              float64 `json:"shares"`
	StockValue          float64 `json:"stockValue"`
	CostBasis           float64 `json:"costBasis"`
	UnrealizedGain      float64 `json:"unrealizedGain"`
	DividendIncome      float64 `json:"dividendIncome"`
	CumulativeDividends float64 `json:"cumulativeDividends"`
	// CombinedNetWorth is the property net equity of the same year plus
	// the stock value.
	CombinedNetWorth float64 `json:"combinedNetWorth"`
}

// StockMilestone is the overlay state read from a milestone year.
type StockMilestone struct {
	Year                int     `json:"year"`
	StockValue          float64 `json:"stockValue"`
	CumulativeDividends float64 `json:"cumulativeDividends"`
	TotalInvested       float64 `json:"totalInvested"`
}

// StockSimulationResult is the full output of the overlay.
type StockSimulationResult struct {
	CashbackPerProperty float64 `json:"cashbackPerProperty"`

	Year10 StockMilestone `json:"year10"`
	Year20 StockMilestone `json:"year20"`
	Year30 StockMilestone `json:"year30"`

	Years []StockYearlySnapshot `json:"years"`
}

// At returns the overlay snapshot at the given year offset.
func (r *StockSimulationResult) At(year int) StockYearlySnapshot {
	return r.Years[year]
}

// SimulateStock runs the stock-reinvestment overlay on top of a
// property projection. The overlay is funded by two one-way capital
// sources tied to the property series: the cashback released when new
// properties are acquired, and each year's positive cash flow (negative
// cash flow is never drawn down from the stock account).
//
// The share price is normalized to 1.0 at year 0 and stays flat through
// year 1: the first year only captures the purchase discount, growth
// kicks in from year 2. Dividends lag by one year: they are declared
// on the previous year's closing value.
func SimulateStock(s StockAssumptions, p PropertyAssumptions, full *FullSimulationResult) *StockSimulationResult {
	appreciation := s.AppreciationRate.Rate()
	discount := s.PurchaseDiscount.Rate()
	yield := s.DividendYield.Rate()
	cashback := s.CashbackPerProperty(p)

	price := 1.0
	shares := 0.0
	basis := 0.0
	value := 0.0
	cumulativeDividends := 0.0

	years := make([]StockYearlySnapshot, 0, len(full.Years))
	for year := 0; year < len(full.Years); year++ {
		if year > 1 {
			price *= 1 + appreciation
		}
		buyPrice := price * (1 - discount)

		snap := StockYearlySnapshot{Year: full.Years[year].Year, SharePrice: price}

		// cashback released by this year's acquisitions
		newProperties := full.Years[year].PropertiesOwned
		if year > 0 {
			newProperties -= full.Years[year-1].PropertiesOwned
		}
		if newProperties > 0 && cashback > 0 {
			amount := float64(newProperties) * cashback
			shares += amount / buyPrice
			basis += amount
			snap.CashbackInvested = amount
		}

		// positive property cash flow redeployed into the overlay
		if cf := full.Years[year].CashFlow; cf > 0 {
			shares += cf / buyPrice
			basis += cf
			snap.CashFlowInvested = cf
		}

		// dividend on the previous year's closing value
		dividend := value * yield
		if dividend > 0 {
			snap.DividendIncome = dividend
			cumulativeDividends += dividend
			if s.DRIP {
				shares += dividend / buyPrice
				basis += dividend
				snap.DividendReinvested = dividend
			}
		}

		value = shares * price
		snap.Shares = shares
		snap.StockValue = value
		snap.CostBasis = basis
		snap.UnrealizedGain = value - basis
		snap.CumulativeDividends = cumulativeDividends
		snap.CombinedNetWorth = full.Years[year].NetEquity + value
		years = append(years, snap)
	}

	milestone := func(h int) StockMilestone {
		return StockMilestone{
			Year:                h,
			StockValue:          years[h].StockValue,
			CumulativeDividends: years[h].CumulativeDividends,
			TotalInvested:       years[h].CostBasis,
		}
	}
	return &StockSimulationResult{
		CashbackPerProperty: cashback,
		Year10:              milestone(10),
		Year20:              milestone(20),
		Year30:              milestone(30),
		Years:               years,
	}
}
