package brickfolio

import "testing"

func TestMonthlyPayment(t *testing.T) {
	testCases := []struct {
		name      string
		principal float64
		rate      float64
		years     int
		want      float64
		tolerance float64
	}{
		{
			name:      "500k at 4% over 30 years",
			principal: 500_000,
			rate:      0.04,
			years:     30,
			want:      2387.08,
			tolerance: 0.01,
		},
		{
			name:      "100k at 6% over 15 years",
			principal: 100_000,
			rate:      0.06,
			years:     15,
			want:      843.86,
			tolerance: 0.01,
		},
		{
			name:      "zero principal",
			principal: 0,
			rate:      0.05,
			years:     20,
			want:      0,
			tolerance: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MonthlyPayment(tc.principal, tc.rate, tc.years)
			if !near(got, tc.want, tc.tolerance) {
				t.Errorf("MonthlyPayment(%v, %v, %d) = %v, want %v", tc.principal, tc.rate, tc.years, got, tc.want)
			}
		})
	}
}

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	// with no interest the installment degenerates to straight-line
	// repayment, exactly.
	got := MonthlyPayment(120_000, 0, 10)
	want := 120_000.0 / (10 * 12)
	if got != want {
		t.Errorf("MonthlyPayment(120000, 0, 10) = %v, want exactly %v", got, want)
	}
}

func TestLoanBalance_Floor(t *testing.T) {
	principal := 500_000.0
	rate := 0.04
	tenure := 30
	payment := MonthlyPayment(principal, rate, tenure)

	for elapsed := 0; elapsed <= 40; elapsed++ {
		balance := LoanBalance(principal, payment, rate, elapsed, tenure)
		if balance < 0 {
			t.Errorf("LoanBalance at year %d = %v, must never be negative", elapsed, balance)
		}
		if elapsed >= tenure && balance != 0 {
			t.Errorf("LoanBalance at year %d = %v, want exactly 0 once the loan is retired", elapsed, balance)
		}
	}
}

func TestLoanBalance_Decreasing(t *testing.T) {
	principal := 500_000.0
	rate := 0.04
	tenure := 30
	payment := MonthlyPayment(principal, rate, tenure)

	previous := LoanBalance(principal, payment, rate, 0, tenure)
	if !near(previous, principal, 1e-6) {
		t.Fatalf("LoanBalance at year 0 = %v, want the full principal %v", previous, principal)
	}
	for elapsed := 1; elapsed <= tenure; elapsed++ {
		balance := LoanBalance(principal, payment, rate, elapsed, tenure)
		if balance >= previous {
			t.Errorf("LoanBalance at year %d = %v, want less than previous year's %v", elapsed, balance, previous)
		}
		previous = balance
	}
}

func TestLoanBalance_ZeroRate(t *testing.T) {
	principal := 120_000.0
	payment := MonthlyPayment(principal, 0, 10)

	testCases := []struct {
		name    string
		elapsed int
		want    float64
	}{
		{"half way", 5, 60_000},
		{"fully repaid", 10, 0},
		{"beyond tenure", 15, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := LoanBalance(principal, payment, 0, tc.elapsed, 10)
			if !near(got, tc.want, 1e-9) {
				t.Errorf("LoanBalance(elapsed=%d) = %v, want %v", tc.elapsed, got, tc.want)
			}
		})
	}
}
