package brickfolio

import "fmt"

// Percent is a rate expressed as a percentage at the boundary: a value
// of 3 means 3%. Rate converts it to the decimal fraction the engine
// computes with.
type Percent float64

// Rate returns the percentage as a decimal fraction (3% -> 0.03).
func (p Percent) Rate() float64 { return float64(p) / 100 }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
