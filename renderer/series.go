package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/brickfolio"
	md "github.com/nao1215/markdown"
)

// SeriesMarkdown renders the full yearly series of a property
// projection as one table, a row per year.
func SeriesMarkdown(r *brickfolio.FullSimulationResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Yearly Projection")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Year", "Properties", "Asset Value", "Loan Balance", "Cash Flow", "Cumulative", "Net Equity"},
		Rows:   [][]string{},
	}
	for _, s := range r.Years {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", s.Year),
			fmt.Sprintf("%d", s.PropertiesOwned),
			fm(s.AssetValue, r.Currency),
			fm(s.LoanBalance, r.Currency),
			fm(s.CashFlow, r.Currency),
			fm(s.CumulativeCashFlow, r.Currency),
			fm(s.NetEquity, r.Currency),
		})
	}
	doc.Table(table)

	return doc.String()
}
