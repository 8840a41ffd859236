package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/brickfolio"
	"github.com/yuin/goldmark"
)

func setupScenario(t *testing.T) *brickfolio.Scenario {
	t.Helper()
	sc := &brickfolio.Scenario{
		Owner: "alice",
		Name:  "ten-units",
		Property: brickfolio.PropertyAssumptions{
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
		},
		Stock: &brickfolio.StockAssumptions{
			DividendYield:      4,
			PurchaseDiscount:   10,
			AppreciationRate:   7,
			DRIP:               true,
			ApprovedLoanAmount: 600_000,
		},
	}
	sc.Recompute()
	return sc
}

// mustBeMarkdown fails the test when the report is not parseable
// markdown.
func mustBeMarkdown(t *testing.T, report string) {
	t.Helper()
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(report), &buf); err != nil {
		t.Fatalf("report is not valid markdown: %v\n%s", err, report)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	sc := setupScenario(t)
	report := SummaryMarkdown(sc.Results)
	mustBeMarkdown(t, report)

	for _, want := range []string{
		"Property Portfolio Projection",
		"Milestones",
		"Year 10",
		"Year 20",
		"Year 30",
		"Net Equity",
		"$2,387.08",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("summary report is missing %q:\n%s", want, report)
		}
	}
}

func TestSeriesMarkdown(t *testing.T) {
	sc := setupScenario(t)
	report := SeriesMarkdown(sc.Results)
	mustBeMarkdown(t, report)

	// one row per year 0..30, plus header and separator
	rows := strings.Count(report, "\n|")
	if rows < brickfolio.SeriesYears+1 {
		t.Errorf("series report has %d table rows, want at least %d:\n%s", rows, brickfolio.SeriesYears+1, report)
	}
	for _, want := range []string{"2025", "2055", "Cumulative"} {
		if !strings.Contains(report, want) {
			t.Errorf("series report is missing %q", want)
		}
	}
}

func TestStockMarkdown(t *testing.T) {
	sc := setupScenario(t)
	report := StockMarkdown(sc.StockResults, sc.Property.Currency)
	mustBeMarkdown(t, report)

	for _, want := range []string{
		"Stock Reinvestment Overlay",
		"Cashback per property: $100,000.00",
		"Milestones",
		"Yearly Detail",
		"Combined Net Worth",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("stock report is missing %q:\n%s", want, report)
		}
	}
}

func TestContextSummary(t *testing.T) {
	sc := setupScenario(t)
	digest := ContextSummary(sc)

	for _, want := range []string{
		`Scenario "ten-units"`,
		"up to 10 properties",
		"4.00%",
		"dividends reinvested",
		"Cashback per property purchase: $100,000.00",
		"Combined net worth at year 30",
	} {
		if !strings.Contains(digest, want) {
			t.Errorf("context summary is missing %q:\n%s", want, digest)
		}
	}
}
