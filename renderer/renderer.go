// Package renderer turns simulation results into markdown reports for
// the terminal, and into the plain-text digest consumed by the advisory
// agent.
package renderer

import (
	"fmt"

	"github.com/etnz/brickfolio"
)

// fm formats a float amount as money in the result's display currency.
func fm(value float64, currency string) string {
	if currency == "" {
		currency = "USD"
	}
	return brickfolio.M(value, currency).String()
}

// fy formats a year offset as a column label.
func fy(year int) string {
	return fmt.Sprintf("Year %d", year)
}
