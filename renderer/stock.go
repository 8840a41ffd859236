package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/brickfolio"
	md "github.com/nao1215/markdown"
)

// StockMarkdown renders the stock-reinvestment overlay: milestone
// metrics first, then the yearly detail.
func StockMarkdown(r *brickfolio.StockSimulationResult, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Stock Reinvestment Overlay")
	if r.CashbackPerProperty > 0 {
		doc.PlainText(fmt.Sprintf("Cashback per property: %s", fm(r.CashbackPerProperty, currency)))
	}

	doc.H2("Milestones")
	milestones := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Horizon", "Stock Value", "Total Invested", "Cumulative Dividends"},
		Rows:   [][]string{},
	}
	for _, m := range []brickfolio.StockMilestone{r.Year10, r.Year20, r.Year30} {
		milestones.Rows = append(milestones.Rows, []string{
			fy(m.Year),
			fm(m.StockValue, currency),
			fm(m.TotalInvested, currency),
			fm(m.CumulativeDividends, currency),
		})
	}
	doc.Table(milestones)

	doc.H2("Yearly Detail")
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
		Header: []string{"Year", "Invested", "Dividends", "Stock Value", "Cost Basis", "Unrealized Gain", "Combined Net Worth"},
		Rows:   [][]string{},
	}
	for _, s := range r.Years {
		invested := s.CashFlowInvested + s.CashbackInvested + s.DividendReinvested
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", s.Year),
			fm(invested, currency),
			fm(s.DividendIncome, currency),
			fm(s.StockValue, currency),
			fm(s.CostBasis, currency),
			fm(s.UnrealizedGain, currency),
			fm(s.CombinedNetWorth, currency),
		})
	}
	doc.Table(table)

	return doc.String()
}
