package strategy

import "github.com/mcq-strategy/backend/internal/models"

// Parameters describes a test's scoring scheme.
// K is the number of options per question, P the points for a correct answer
// and Q the points for an incorrect one (non-positive by convention).
type Parameters struct {
	K int
	P float64
	Q float64
}

// Result pairs the expected-value table with its threshold.
// Table[j] is the expected value of a random guess after eliminating j options.
type Result struct {
	Params    Parameters
	Table     []float64
	Threshold int
}

// ComputeExpectedValues returns the expected value of guessing at every
// elimination level j = 0..k-1, and the smallest j whose value is strictly
// positive (k when none is).
func ComputeExpectedValues(k int, p, q float64) ([]float64, int) {
	table := make([]float64, 0, max(k, 0))
	for j := 0; j < k; j++ {
		remaining := k - j
		if remaining == 1 {
			// Only the correct option is left.
			table = append(table, p)
			continue
		}
		table = append(table, GeneralExpectedValue(remaining, p, q))
	}
	return table, Threshold(table)
}

// Evaluate runs ComputeExpectedValues for params.
func Evaluate(params Parameters) Result {
	table, threshold := ComputeExpectedValues(params.K, params.P, params.Q)
	return Result{Params: params, Table: table, Threshold: threshold}
}

// GeneralExpectedValue is the weighted formula for a guess among remaining
// options: p with probability 1/remaining, q otherwise.
func GeneralExpectedValue(remaining int, p, q float64) float64 {
	n := float64(remaining)
	probCorrect := 1 / n
	probWrong := (n - 1) / n
	return p*probCorrect + q*probWrong
}

// Threshold returns the first index holding a strictly positive value,
// or len(table) if there is none.
func Threshold(table []float64) int {
	for j, ev := range table {
		if ev > 0 {
			return j
		}
	}
	return len(table)
}

// Classify derives the regime from the blind-guess value table[0].
func Classify(table []float64) models.Regime {
	if len(table) == 0 {
		return models.RegimeIndifferent
	}
	switch {
	case table[0] > 0:
		return models.RegimeAlwaysGuess
	case table[0] < 0:
		return models.RegimeRisk
	default:
		return models.RegimeIndifferent
	}
}

// PenaltyTooSmall reports whether q is so mild relative to p that leaving a
// question blank is never preferable: q >= p/(k-1).
func PenaltyTooSmall(k int, p, q float64) bool {
	return k > 1 && q >= PenaltyCutoff(k, p)
}

// PenaltyCutoff is p/(k-1). Only meaningful for k > 1.
func PenaltyCutoff(k int, p float64) float64 {
	return p / float64(k-1)
}
