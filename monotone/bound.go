// Package monotone: the Bound arithmetic lattice.
package monotone

import "fmt"

type boundKind uint8

const (
	kindExact boundKind = iota
	kindAtLeast
	kindAtMost
	kindUnknown
)

// Bound is an abstract integer: an exact value, a one-sided bound, or
// nothing at all. Addition and subtraction are total; precision decays
// toward Unknown. The zero Bound is Exact(0).
type Bound struct {
	kind boundKind
	v    int64
}

// Exact returns the bound holding exactly v.
func Exact(v int64) Bound { return Bound{kind: kindExact, v: v} }

// AtLeast returns the bound "≥ v".
func AtLeast(v int64) Bound { return Bound{kind: kindAtLeast, v: v} }

// AtMost returns the bound "≤ v".
func AtMost(v int64) Bound { return Bound{kind: kindAtMost, v: v} }

// Unknown returns the bottom-precision bound.
func Unknown() Bound { return Bound{kind: kindUnknown} }

// Exact reports the exact value, if the bound holds one.
func (b Bound) Exact() (int64, bool) { return b.v, b.kind == kindExact }

// Lower reports the lower bound, if one is known (exact or at-least).
func (b Bound) Lower() (int64, bool) {
	return b.v, b.kind == kindExact || b.kind == kindAtLeast
}

// Upper reports the upper bound, if one is known (exact or at-most).
func (b Bound) Upper() (int64, bool) {
	return b.v, b.kind == kindExact || b.kind == kindAtMost
}

// String renders the bound for diagnostics.
func (b Bound) String() string {
	switch b.kind {
	case kindExact:
		return fmt.Sprintf("%d", b.v)
	case kindAtLeast:
		return fmt.Sprintf("≥%d", b.v)
	case kindAtMost:
		return fmt.Sprintf("≤%d", b.v)
	default:
		return "?"
	}
}

// Add returns the abstract sum. Exact values combine with one-sided
// bounds; bounds of the same sense combine with each other; everything
// else is Unknown.
func (b Bound) Add(o Bound) Bound {
	switch {
	case b.kind == kindExact && o.kind == kindExact:
		return Exact(b.v + o.v)
	case b.kind == kindExact && o.kind == kindAtLeast,
		b.kind == kindAtLeast && o.kind == kindExact,
		b.kind == kindAtLeast && o.kind == kindAtLeast:
		return AtLeast(b.v + o.v)
	case b.kind == kindExact && o.kind == kindAtMost,
		b.kind == kindAtMost && o.kind == kindExact,
		b.kind == kindAtMost && o.kind == kindAtMost:
		return AtMost(b.v + o.v)
	default:
		return Unknown()
	}
}

// Sub returns the abstract difference; subtracting flips the sense of
// the subtrahend's bound.
func (b Bound) Sub(o Bound) Bound {
	switch {
	case b.kind == kindExact && o.kind == kindExact:
		return Exact(b.v - o.v)
	case b.kind == kindExact && o.kind == kindAtLeast:
		return AtMost(b.v - o.v)
	case b.kind == kindExact && o.kind == kindAtMost:
		return AtLeast(b.v - o.v)
	case b.kind == kindAtLeast && o.kind == kindExact,
		b.kind == kindAtLeast && o.kind == kindAtMost:
		return AtLeast(b.v - o.v)
	case b.kind == kindAtMost && o.kind == kindExact,
		b.kind == kindAtMost && o.kind == kindAtLeast:
		return AtMost(b.v - o.v)
	default:
		return Unknown()
	}
}

// Join returns an upper bound of b and o in precision order: a bound
// admitting every value either admits.
func (b Bound) Join(o Bound) Bound {
	if b.kind == kindUnknown || o.kind == kindUnknown {
		return Unknown()
	}
	if b.kind == kindExact && o.kind == kindExact && b.v == o.v {
		return b
	}
	lo1, okLo1 := b.Lower()
	lo2, okLo2 := o.Lower()
	if okLo1 && okLo2 {
		return AtLeast(min(lo1, lo2))
	}
	hi1, okHi1 := b.Upper()
	hi2, okHi2 := o.Upper()
	if okHi1 && okHi2 {
		return AtMost(max(hi1, hi2))
	}

	return Unknown()
}

// Positive reports whether the bound is strictly positive; known is
// false when the bound cannot decide.
func (b Bound) Positive() (positive, known bool) {
	switch b.kind {
	case kindExact:
		return b.v > 0, true
	case kindAtLeast:
		if b.v > 0 {
			return true, true
		}
		return false, false
	case kindAtMost:
		if b.v <= 0 {
			return false, true
		}
		return false, false
	default:
		return false, false
	}
}

// FromStatus seeds a free variable's initial bound from its
// monotonicity: a nondecreasing variable must start at or below zero, a
// nonincreasing one at or above, a constant exactly at zero.
func FromStatus(nondecreasing, nonincreasing bool) Bound {
	switch {
	case nondecreasing && nonincreasing:
		return Exact(0)
	case nondecreasing:
		return AtMost(0)
	case nonincreasing:
		return AtLeast(0)
	default:
		return Unknown()
	}
}
