package brickfolio

import "math"

// This file holds the amortization math used by the simulator. Rates
// here are decimal fractions (0.04 for 4%), not boundary percentages.

// MonthlyPayment computes the fixed monthly installment of a loan using
// the standard annuity formula P*r*(1+r)^n / ((1+r)^n - 1), with r the
// monthly rate and n the number of monthly payments.
//
// A zero rate degenerates to straight-line repayment P/n rather than a
// division by zero.
func MonthlyPayment(principal, annualRate float64, years int) float64 {
	n := float64(years * 12)
	if n == 0 {
		return 0
	}
	r := annualRate / 12
	if r == 0 {
		return principal / n
	}
	growth := math.Pow(1+r, n)
	return principal * r * growth / (growth - 1)
}

// LoanBalance computes the remaining principal after yearsElapsed years
// of fixed payments on a loan of tenureYears. Elapsed time beyond the
// tenure keeps the balance at zero: the loan is fully retired and stays
// retired.
//
// The result is clamped to be non-negative, so floating-point drift
// past the final payment never yields a negative balance.
func LoanBalance(principal, payment, annualRate float64, yearsElapsed, tenureYears int) float64 {
	if yearsElapsed > tenureYears {
		yearsElapsed = tenureYears
	}
	k := float64(yearsElapsed * 12)
	r := annualRate / 12
	if r == 0 {
		return math.Max(0, principal-payment*k)
	}
	bigN := float64(tenureYears * 12)
	total := math.Pow(1+r, bigN)
	elapsed := math.Pow(1+r, k)
	balance := principal * (total - elapsed) / (total - 1)
	return math.Max(0, balance)
}
