package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/brickfolio"
)

// propertyFlags holds the property assumption flags shared by every
// projection command.
type propertyFlags struct {
	price     float64
	value     float64
	discount  float64
	loan      float64
	rate      float64
	growth    float64
	yield     float64
	interval  int
	max       int
	tenure    int
	expense   float64
	expenseP  float64
	startYear int
	currency  string
}

func (p *propertyFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&p.price, "price", 500_000, "Purchase price per property")
	f.Float64Var(&p.value, "value", 0, "Market value per property (0 derives it from -discount or -price)")
	f.Float64Var(&p.discount, "discount", 0, "Below-market-value discount in percent")
	f.Float64Var(&p.loan, "loan", 500_000, "Loan principal per property")
	f.Float64Var(&p.rate, "rate", 4, "Mortgage interest rate in percent")
	f.Float64Var(&p.growth, "growth", 3, "Property appreciation rate in percent")
	f.Float64Var(&p.yield, "yield", 8, "Rental yield in percent of the purchase price")
	f.IntVar(&p.interval, "interval", 1, "Years between acquisitions")
	f.IntVar(&p.max, "max", 10, "Maximum number of properties")
	f.IntVar(&p.tenure, "tenure", 30, "Mortgage tenure in years")
	f.Float64Var(&p.expense, "expense", 0, "Fixed annual expense per property")
	f.Float64Var(&p.expenseP, "expense-rate", 0, "Annual expense in percent of the purchase price (overrides -expense)")
	f.IntVar(&p.startYear, "start-year", 2025, "Calendar year of the baseline")
	f.StringVar(&p.currency, "currency", "USD", "Display currency code")
}

// Validate rejects inputs the engine's contract assumes well-formed.
func (p *propertyFlags) Validate() error {
	if p.price <= 0 {
		return fmt.Errorf("-price must be positive")
	}
	if p.tenure <= 0 {
		return fmt.Errorf("-tenure must be positive")
	}
	if p.interval < 1 {
		return fmt.Errorf("-interval must be at least 1")
	}
	if p.max < 1 {
		return fmt.Errorf("-max must be at least 1")
	}
	if p.discount < 0 || p.discount >= 100 {
		return fmt.Errorf("-discount must be within [0, 100)")
	}
	return nil
}

func (p *propertyFlags) Assumptions() brickfolio.PropertyAssumptions {
	return brickfolio.PropertyAssumptions{
		PurchasePrice:    p.price,
		MarketValue:      p.value,
		BMVDiscount:      brickfolio.Percent(p.discount),
		LoanAmount:       p.loan,
		InterestRate:     brickfolio.Percent(p.rate),
		AppreciationRate: brickfolio.Percent(p.growth),
		RentalYield:      brickfolio.Percent(p.yield),
		PurchaseInterval: p.interval,
		MaxProperties:    p.max,
		LoanTenureYears:  p.tenure,
		ExpenseAmount:    p.expense,
		ExpenseRate:      brickfolio.Percent(p.expenseP),
		StartYear:        p.startYear,
		Currency:         p.currency,
	}
}

// stockFlags holds the overlay assumption flags.
type stockFlags struct {
	dividendYield float64
	discount      float64
	growth        float64
	drip          bool
	approved      float64
}

func (s *stockFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&s.dividendYield, "dividend-yield", 4, "Dividend yield in percent")
	f.Float64Var(&s.discount, "stock-discount", 0, "Purchase discount below market price in percent")
	f.Float64Var(&s.growth, "stock-growth", 7, "Stock price appreciation in percent")
	f.BoolVar(&s.drip, "drip", true, "Reinvest dividends into more shares")
	f.Float64Var(&s.approved, "approved", 0, "Approved mortgage per property; the excess over -price is invested as cashback")
}

func (s *stockFlags) Assumptions() brickfolio.StockAssumptions {
	return brickfolio.StockAssumptions{
		DividendYield:      brickfolio.Percent(s.dividendYield),
		PurchaseDiscount:   brickfolio.Percent(s.discount),
		AppreciationRate:   brickfolio.Percent(s.growth),
		DRIP:               s.drip,
		ApprovedLoanAmount: s.approved,
	}
}
