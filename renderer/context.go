package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/brickfolio"
)

// ContextSummary writes a compact plain-text digest of a scenario's
// inputs and results. It is the context handed to the advisory agent,
// and the summary stored alongside a saved scenario.
func ContextSummary(sc *brickfolio.Scenario) string {
	var b strings.Builder
	a := sc.Property

	fmt.Fprintf(&b, "Scenario %q: up to %d properties, one every %d year(s), starting %d.\n",
		sc.Name, a.MaxProperties, a.PurchaseInterval, a.StartYear)
	fmt.Fprintf(&b, "Each property: purchase price %s, market value %s, loan %s at %s over %d years.\n",
		fm(a.PurchasePrice, a.Currency), fm(a.DerivedMarketValue(), a.Currency),
		fm(a.LoanAmount, a.Currency), a.InterestRate, a.LoanTenureYears)
	fmt.Fprintf(&b, "Appreciation %s per year, rental yield %s on the purchase price, annual expense %s.\n",
		a.AppreciationRate, a.RentalYield, fm(a.AnnualExpensePerProperty(), a.Currency))

	if r := sc.Results; r != nil {
		fmt.Fprintf(&b, "Monthly mortgage payment: %s.\n", fm(r.MonthlyPayment, r.Currency))
		for _, m := range r.Milestones() {
			fmt.Fprintf(&b, "Year %d: %d properties, assets %s, loans %s, cumulative cash flow %s, net equity %s.\n",
				m.Year, m.PropertiesOwned, fm(m.TotalAssetValue, r.Currency), fm(m.TotalLoanBalance, r.Currency),
				fm(m.CumulativeCashFlow, r.Currency), fm(m.NetEquity, r.Currency))
		}
	}

	if s := sc.Stock; s != nil {
		drip := "dividends paid out"
		if s.DRIP {
			drip = "dividends reinvested"
		}
		fmt.Fprintf(&b, "Stock overlay: %s yield, bought at a %s discount, %s growth, %s.\n",
			s.DividendYield, s.PurchaseDiscount, s.AppreciationRate, drip)
	}
	if r := sc.StockResults; r != nil {
		if r.CashbackPerProperty > 0 {
			fmt.Fprintf(&b, "Cashback per property purchase: %s.\n", fm(r.CashbackPerProperty, sc.Property.Currency))
		}
		for _, m := range []brickfolio.StockMilestone{r.Year10, r.Year20, r.Year30} {
			fmt.Fprintf(&b, "Stock year %d: value %s, invested %s, cumulative dividends %s.\n",
				m.Year, fm(m.StockValue, sc.Property.Currency), fm(m.TotalInvested, sc.Property.Currency),
				fm(m.CumulativeDividends, sc.Property.Currency))
		}
		last := r.At(brickfolio.SeriesYears)
		fmt.Fprintf(&b, "Combined net worth at year %d: %s.\n", brickfolio.SeriesYears, fm(last.CombinedNetWorth, sc.Property.Currency))
	}
	return b.String()
}
