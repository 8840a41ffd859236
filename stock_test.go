package brickfolio

import "testing"

func setupOverlay(t *testing.T, mutate func(*PropertyAssumptions, *StockAssumptions)) (*FullSimulationResult, *StockSimulationResult) {
	t.Helper()
	p := baseAssumptions(t)
	s := baseStockAssumptions(t)
	if mutate != nil {
		mutate(&p, &s)
	}
	full := Simulate(p)
	return full, SimulateStock(s, p, full)
}

func TestCashbackPerProperty(t *testing.T) {
	p := baseAssumptions(t)
	testCases := []struct {
		name     string
		approved float64
		want     float64
	}{
		{"approved above price", 600_000, 100_000},
		{"approved at price", 500_000, 0},
		{"approved below price", 450_000, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := StockAssumptions{ApprovedLoanAmount: tc.approved}
			if got := s.CashbackPerProperty(p); got != tc.want {
				t.Errorf("CashbackPerProperty() = %v, want %v", got, tc.want)
			}
		})
	}
}

// With a 600k approved mortgage on a 500k purchase, each of the ten
// acquisitions releases exactly 100k into the overlay, in the calendar
// year the ownership count increments.
func TestSimulateStock_CashbackSchedule(t *testing.T) {
	full, res := setupOverlay(t, nil)

	total := 0.0
	for year, snap := range res.Years {
		newProperties := full.At(year).PropertiesOwned
		if year > 0 {
			newProperties -= full.At(year - 1).PropertiesOwned
		}
		want := float64(newProperties) * 100_000
		if snap.CashbackInvested != want {
			t.Errorf("CashbackInvested at year %d = %v, want %v", year, snap.CashbackInvested, want)
		}
		total += snap.CashbackInvested
	}
	if total != 1_000_000 {
		t.Errorf("total cashback invested = %v, want 1000000 across ten properties", total)
	}
}

// The share price is flat through year 1 (only the purchase discount
// applies in the first year) and compounds from year 2 onward.
func TestSimulateStock_YearOnePriceFlat(t *testing.T) {
	_, res := setupOverlay(t, nil)

	if got := res.At(0).SharePrice; got != 1.0 {
		t.Errorf("SharePrice at year 0 = %v, want the normalized 1.0", got)
	}
	if got := res.At(1).SharePrice; got != 1.0 {
		t.Errorf("SharePrice at year 1 = %v, want 1.0 (no appreciation yet)", got)
	}
	if got, want := res.At(2).SharePrice, 1.07; !near(got, want, 1e-9) {
		t.Errorf("SharePrice at year 2 = %v, want %v", got, want)
	}
	if got, want := res.At(3).SharePrice, 1.07*1.07; !near(got, want, 1e-9) {
		t.Errorf("SharePrice at year 3 = %v, want %v", got, want)
	}
}

// Dividends are declared on the previous year's closing value, never
// the current one.
func TestSimulateStock_DividendLag(t *testing.T) {
	_, res := setupOverlay(t, nil)

	if got := res.At(0).DividendIncome; got != 0 {
		t.Errorf("DividendIncome at year 0 = %v, want 0 (nothing owned before)", got)
	}
	for year := 1; year <= 30; year++ {
		want := res.At(year - 1).StockValue * 0.04
		if got := res.At(year).DividendIncome; !near(got, want, 1e-6) {
			t.Errorf("DividendIncome at year %d = %v, want %v (4%% of the previous close)", year, got, want)
		}
	}
}

func TestSimulateStock_MonotonicCostBasis(t *testing.T) {
	_, res := setupOverlay(t, nil)

	for year := 1; year <= 30; year++ {
		current, previous := res.At(year), res.At(year-1)
		if current.CostBasis < previous.CostBasis {
			t.Errorf("CostBasis decreased at year %d: %v -> %v (no sales are modeled)", year, previous.CostBasis, current.CostBasis)
		}
		if current.Shares < previous.Shares {
			t.Errorf("Shares decreased at year %d: %v -> %v", year, previous.Shares, current.Shares)
		}
	}
}

// Negative property cash flow is never drawn down from the stock
// account: the capital policy is strictly one-way.
func TestSimulateStock_NegativeCashFlowIgnored(t *testing.T) {
	full, res := setupOverlay(t, func(p *PropertyAssumptions, s *StockAssumptions) {
		// expenses sized to sink every year's cash flow
		p.ExpenseAmount = 50_000
	})

	for year := 1; year <= 30; year++ {
		if cf := full.At(year).CashFlow; cf >= 0 {
			t.Fatalf("setup error: cash flow at year %d = %v, want negative", year, cf)
		}
		if got := res.At(year).CashFlowInvested; got != 0 {
			t.Errorf("CashFlowInvested at year %d = %v, want 0 for negative cash flow", year, got)
		}
	}
}

// Without DRIP, dividends are recorded as income but never buy shares.
func TestSimulateStock_NoDRIP(t *testing.T) {
	_, res := setupOverlay(t, func(p *PropertyAssumptions, s *StockAssumptions) {
		s.DRIP = false
	})

	sawIncome := false
	for year := 0; year <= 30; year++ {
		snap := res.At(year)
		if snap.DividendReinvested != 0 {
			t.Errorf("DividendReinvested at year %d = %v, want 0 without DRIP", year, snap.DividendReinvested)
		}
		if snap.DividendIncome > 0 {
			sawIncome = true
		}
	}
	if !sawIncome {
		t.Error("expected dividend income to be recorded even without DRIP")
	}
}

func TestSimulateStock_ValueAndMilestones(t *testing.T) {
	full, res := setupOverlay(t, nil)

	for year := 0; year <= 30; year++ {
		snap := res.At(year)
		if want := snap.Shares * snap.SharePrice; !near(snap.StockValue, want, 1e-6) {
			t.Errorf("StockValue at year %d = %v, want shares*price = %v", year, snap.StockValue, want)
		}
		if want := snap.StockValue - snap.CostBasis; !near(snap.UnrealizedGain, want, 1e-6) {
			t.Errorf("UnrealizedGain at year %d = %v, want %v", year, snap.UnrealizedGain, want)
		}
		if want := full.At(year).NetEquity + snap.StockValue; !near(snap.CombinedNetWorth, want, 1e-6) {
			t.Errorf("CombinedNetWorth at year %d = %v, want %v", year, snap.CombinedNetWorth, want)
		}
	}

	for _, m := range []StockMilestone{res.Year10, res.Year20, res.Year30} {
		snap := res.At(m.Year)
		if m.StockValue != snap.StockValue || m.CumulativeDividends != snap.CumulativeDividends || m.TotalInvested != snap.CostBasis {
			t.Errorf("milestone at year %d = %+v, want values read from the series snapshot %+v", m.Year, m, snap)
		}
	}
}
