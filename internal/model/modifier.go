package model

import (
	"fmt"
	"math"
	"strconv"
)

// Modifier is an exact rational multiplier Num/Den.
// All damage arithmetic goes through Apply so that every multiplication
// floors exactly once, without float64 rounding drift.
//
// The zero value (Den == 0) behaves as the neutral multiplier 1.
type Modifier struct {
	Num int
	Den int
}

// Common multipliers used by the damage pipeline.
var (
	ModNeutral    = Modifier{Num: 1, Den: 1}
	ModImmune     = Modifier{Num: 0, Den: 1}
	ModHalf       = Modifier{Num: 1, Den: 2}
	ModOneAndHalf = Modifier{Num: 3, Den: 2}
	ModDouble     = Modifier{Num: 2, Den: 1}
)

// NewModifier returns num/den reduced to lowest terms.
// Den must be positive.
func NewModifier(num, den int) Modifier {
	if den <= 0 {
		panic(fmt.Sprintf("model: modifier denominator must be positive, got %d", den))
	}
	return Modifier{Num: num, Den: den}.reduce()
}

// Apply returns floor(v * Num / Den) for non-negative v.
func (m Modifier) Apply(v int) int {
	if m.Den == 0 {
		return v
	}
	return v * m.Num / m.Den
}

// Mul returns the exact product m*o.
func (m Modifier) Mul(o Modifier) Modifier {
	return Modifier{Num: m.normalized().Num * o.normalized().Num, Den: m.normalized().Den * o.normalized().Den}.reduce()
}

// IsZero reports whether the multiplier is 0 (immunity).
func (m Modifier) IsZero() bool {
	return m.Den != 0 && m.Num == 0
}

// IsNeutral reports whether the multiplier equals 1.
func (m Modifier) IsNeutral() bool {
	n := m.normalized()
	return n.Num == n.Den
}

// Cmp compares m with o: -1 if m < o, 0 if equal, +1 if m > o.
func (m Modifier) Cmp(o Modifier) int {
	a := m.normalized()
	b := o.normalized()
	l := a.Num * b.Den
	r := b.Num * a.Den
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// Float64 returns the multiplier as float64, for reporting only.
func (m Modifier) Float64() float64 {
	n := m.normalized()
	return float64(n.Num) / float64(n.Den)
}

func (m Modifier) String() string {
	return strconv.FormatFloat(m.Float64(), 'g', -1, 64)
}

// MarshalJSON encodes the multiplier as a plain JSON number (1.5, 0.25, ...).
func (m Modifier) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number with at most four decimal places.
func (m *Modifier) UnmarshalJSON(b []byte) error {
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("parsing modifier %s: %w", b, err)
	}
	mod, err := ModifierFromFloat(v)
	if err != nil {
		return err
	}
	*m = mod
	return nil
}

// UnmarshalText lets yaml.v3 decode modifiers from plain numbers.
func (m *Modifier) UnmarshalText(b []byte) error {
	return m.UnmarshalJSON(b)
}

// MaxModifier caps caller-supplied multipliers so the damage arithmetic
// stays within int range.
const MaxModifier = 64

// ModifierFromFloat converts a decimal multiplier such as 1.3 or 0.75 into an
// exact rational with denominator 10000. Values must be finite and in
// [0, MaxModifier].
func ModifierFromFloat(v float64) (Modifier, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Modifier{}, &ValidationError{Field: "modifier", Value: v, Reason: "must be a finite number"}
	}
	if v < 0 {
		return Modifier{}, &ValidationError{Field: "modifier", Value: v, Reason: "must not be negative"}
	}
	if v > MaxModifier {
		return Modifier{}, &ValidationError{Field: "modifier", Value: v, Reason: fmt.Sprintf("must not exceed %d", MaxModifier)}
	}
	const den = 10000
	num := int(v*den + 0.5)
	return NewModifier(num, den), nil
}

func (m Modifier) normalized() Modifier {
	if m.Den == 0 {
		return ModNeutral
	}
	return m
}

func (m Modifier) reduce() Modifier {
	n := m.normalized()
	g := gcd(abs(n.Num), n.Den)
	if g <= 1 {
		return n
	}
	return Modifier{Num: n.Num / g, Den: n.Den / g}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
