package strategy

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrOutOfRange       = errors.New("parameter out of range")
)

// ValidateParameters rejects inputs the engine cannot give a meaningful
// answer for. Range policy lives in Limits.
func ValidateParameters(params Parameters) error {
	if params.K < 1 {
		return fmt.Errorf("%w: k must be a positive integer, got %d", ErrInvalidParameter, params.K)
	}
	if math.IsNaN(params.P) || math.IsInf(params.P, 0) {
		return fmt.Errorf("%w: p must be finite", ErrInvalidParameter)
	}
	if math.IsNaN(params.Q) || math.IsInf(params.Q, 0) {
		return fmt.Errorf("%w: q must be finite", ErrInvalidParameter)
	}
	return nil
}

// Limits bounds the parameters accepted from callers.
type Limits struct {
	MinK int     `json:"min_k"`
	MaxK int     `json:"max_k"`
	MinP float64 `json:"min_p"`
	MaxP float64 `json:"max_p"`
	MinQ float64 `json:"min_q"`
	MaxQ float64 `json:"max_q"`
}

// DefaultLimits mirrors the input ranges offered to test-takers:
// 2-10 options, 0.1-10 points per correct answer, a penalty between -10 and 0.
func DefaultLimits() Limits {
	return Limits{
		MinK: 2,
		MaxK: 10,
		MinP: 0.1,
		MaxP: 10,
		MinQ: -10,
		MaxQ: 0,
	}
}

// DefaultParameters are the values a fresh form starts with.
func DefaultParameters() Parameters {
	return Parameters{K: 4, P: 1.0, Q: -0.5}
}

func (l Limits) Check(params Parameters) error {
	if params.K < l.MinK || params.K > l.MaxK {
		return fmt.Errorf("%w: k must be between %d and %d", ErrOutOfRange, l.MinK, l.MaxK)
	}
	if params.P < l.MinP || params.P > l.MaxP {
		return fmt.Errorf("%w: p must be between %g and %g", ErrOutOfRange, l.MinP, l.MaxP)
	}
	if params.Q < l.MinQ || params.Q > l.MaxQ {
		return fmt.Errorf("%w: q must be between %g and %g", ErrOutOfRange, l.MinQ, l.MaxQ)
	}
	return nil
}
