// Package seed generates the randomization seeds sent with magic-sorted
// discovery queries, backed by nanoid.
package seed

import (
	"fmt"
	"strconv"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Digits is the alphabet for every position after the first.
var Digits = "0123456789"

// Length is the number of decimal digits in a seed.
var Length = 9

// Generate returns a new positive seed of Length digits.
func Generate() (int, error) {
	lead, err := nanoid.Generate(Digits[1:], 1)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	rest, err := nanoid.Generate(Digits, Length-1)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	n, err := strconv.Atoi(lead + rest)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	return n, nil
}
