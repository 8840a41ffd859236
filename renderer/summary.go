package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/brickfolio"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the derived scalars and the milestone
// aggregates of a property projection.
func SummaryMarkdown(r *brickfolio.FullSimulationResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Property Portfolio Projection")
	doc.PlainText(fmt.Sprintf("Monthly payment: %s (loan %s on a market value of %s)",
		fm(r.MonthlyPayment, r.Currency), fm(r.LoanAmount, r.Currency), fm(r.MarketValue, r.Currency)))
	doc.PlainText(fmt.Sprintf("Annual rental income per property: %s, annual expense: %s",
		fm(r.AnnualRentalIncome, r.Currency), fm(r.AnnualExpensePerProperty, r.Currency)))

	doc.H2("Milestones")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Horizon", "Properties", "Asset Value", "Loan Balance", "Cumulative Cash Flow", "Net Equity"},
		Rows:   [][]string{},
	}
	for _, m := range r.Milestones() {
		table.Rows = append(table.Rows, []string{
			fy(m.Year),
			fmt.Sprintf("%d", m.PropertiesOwned),
			fm(m.TotalAssetValue, r.Currency),
			fm(m.TotalLoanBalance, r.Currency),
			fm(m.CumulativeCashFlow, r.Currency),
			fm(m.NetEquity, r.Currency),
		})
	}
	doc.Table(table)

	return doc.String()
}
