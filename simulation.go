package brickfolio

import "math"

// SeriesYears is the horizon of the full yearly series, year 0 included.
const SeriesYears = 30

// YearlySnapshot is the state of the property portfolio for one
// simulated year. Cumulative fields depend on every prior year, so
// snapshots are only meaningful as part of the series that produced
// them.
type YearlySnapshot struct {
	// Year is the calendar year (StartYear + offset).
	Year               int     `json:"year"`
	PropertiesOwned    int     `json:"propertiesOwned"`
	AssetValue         float64 `json:"assetValue"`
	LoanBalance        float64 `json:"loanBalance"`
	NetEquity          float64 `json:"netEquity"`
	CashFlow           float64 `json:"cashFlow"`
	CumulativeCashFlow float64 `json:"cumulativeCashFlow"`
	RentalIncome       float64 `json:"rentalIncome"`
	MortgagePayment    float64 `json:"mortgagePayment"`
	Expenses           float64 `json:"expenses"`
}

// SimulationResult is the aggregate state of the portfolio at a single
// horizon.
type SimulationResult struct {
	// Year is the horizon in years from the simulation start.
	Year               int     `json:"year"`
	PropertiesOwned    int     `json:"propertiesOwned"`
	TotalAssetValue    float64 `json:"totalAssetValue"`
	TotalLoanBalance   float64 `json:"totalLoanBalance"`
	CumulativeCashFlow float64 `json:"cumulativeCashFlow"`
	NetEquity          float64 `json:"netEquity"`
}

// FullSimulationResult carries the derived scalars, the year-0..30
// series and the conventional 10/20/30-year milestones of one property
// projection.
type FullSimulationResult struct {
	MonthlyPayment           float64 `json:"monthlyPayment"`
	LoanAmount               float64 `json:"loanAmount"`
	MarketValue              float64 `json:"marketValue"`
	AnnualRentalIncome       float64 `json:"annualRentalIncome"`
	AnnualExpensePerProperty float64 `json:"annualExpensePerProperty"`
	Currency                 string  `json:"currency,omitempty"`

	Year10 SimulationResult `json:"year10"`
	Year20 SimulationResult `json:"year20"`
	Year30 SimulationResult `json:"year30"`

	Years []YearlySnapshot `json:"years"`
}

// At returns the series snapshot at the given year offset.
func (r *FullSimulationResult) At(year int) YearlySnapshot {
	return r.Years[year]
}

// Milestones returns the 10/20/30-year aggregates in order.
func (r *FullSimulationResult) Milestones() [3]SimulationResult {
	return [3]SimulationResult{r.Year10, r.Year20, r.Year30}
}

// Simulate runs the full property projection: derived scalars, the
// year-0..30 series, and the milestone aggregates. It is a pure
// function of the assumptions and shares no state across calls.
func Simulate(a PropertyAssumptions) *FullSimulationResult {
	series := run(a, SeriesYears)
	return &FullSimulationResult{
		MonthlyPayment:           a.MonthlyPayment(),
		LoanAmount:               a.LoanAmount,
		MarketValue:              a.DerivedMarketValue(),
		AnnualRentalIncome:       a.AnnualRentalIncome(),
		AnnualExpensePerProperty: a.AnnualExpensePerProperty(),
		Currency:                 a.Currency,
		Year10:                   toResult(series[10], 10),
		Year20:                   toResult(series[20], 20),
		Year30:                   toResult(series[30], 30),
		Years:                    series,
	}
}

// SimulateHorizon returns the aggregate portfolio state at a single
// horizon. It is a view over the same year loop as Simulate, so a
// horizon aggregate always equals the series snapshot at that year.
func SimulateHorizon(a PropertyAssumptions, years int) SimulationResult {
	series := run(a, years)
	return toResult(series[years], years)
}

func toResult(s YearlySnapshot, horizon int) SimulationResult {
	return SimulationResult{
		Year:               horizon,
		PropertiesOwned:    s.PropertiesOwned,
		TotalAssetValue:    s.AssetValue,
		TotalLoanBalance:   s.LoanBalance,
		CumulativeCashFlow: s.CumulativeCashFlow,
		NetEquity:          s.NetEquity,
	}
}

// run is the reference algorithm: one sequential pass over years 0..N,
// recomputing the portfolio totals from scratch each year rather than
// carrying forward deltas. Year 0 is the baseline before the first
// purchase; the cumulative cash flow is the only state carried across
// years.
func run(a PropertyAssumptions, years int) []YearlySnapshot {
	series := make([]YearlySnapshot, 0, years+1)
	series = append(series, YearlySnapshot{Year: a.StartYear})

	owned := 0
	cumulative := 0.0
	for year := 1; year <= years; year++ {
		if onPurchaseBoundary(year, a.PurchaseInterval) && owned < a.MaxProperties {
			owned++
		}
		s := aggregate(a, year, owned)
		cumulative += s.CashFlow
		s.Year = a.StartYear + year
		s.CumulativeCashFlow = cumulative
		s.NetEquity = s.AssetValue - s.LoanBalance + cumulative
		series = append(series, s)
	}
	return series
}

// onPurchaseBoundary reports whether a new property is acquired this
// year: every year when the interval is 1, otherwise on years that fall
// one past an interval multiple.
func onPurchaseBoundary(year, interval int) bool {
	return interval == 1 || year%interval == 1
}

// aggregate recomputes the portfolio totals for one year by summing
// over every owned cohort. Cohort i was acquired at elapsed time
// i*interval, so its age this year is year - i*interval; it contributes
// only once age > 0, since the year of purchase has no operating
// history.
func aggregate(a PropertyAssumptions, year, owned int) YearlySnapshot {
	marketValue := a.DerivedMarketValue()
	appreciation := a.AppreciationRate.Rate()
	rate := a.InterestRate.Rate()
	payment := a.MonthlyPayment()
	rental := a.AnnualRentalIncome()
	expense := a.AnnualExpensePerProperty()

	annualPayment := payment * 12
	s := YearlySnapshot{PropertiesOwned: owned}
	for i := 0; i < owned; i++ {
		age := year - i*a.PurchaseInterval
		if age <= 0 {
			continue
		}
		s.AssetValue += marketValue * math.Pow(1+appreciation, float64(age))
		s.LoanBalance += LoanBalance(a.LoanAmount, payment, rate, age, a.LoanTenureYears)
		s.RentalIncome += rental
		s.MortgagePayment += annualPayment
		s.Expenses += expense
		s.CashFlow += rental - annualPayment - expense
	}
	return s
}
