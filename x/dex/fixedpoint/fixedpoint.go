// Package fixedpoint implements the deterministic 128-bit fixed-point
// rational kernel the dex module's pricing and share-accounting math is
// built on. Every value is a ratio n/D with a fixed denominator
// D = 10^18; only the numerator n is stored, as an unsigned integer bounded
// to 128 bits.
//
// Every path here either returns a value or reports failure explicitly —
// nothing panics on overflow, underflow, or division by zero. Saturation
// (as opposed to failure) is reserved for MulInt, which narrows back to a
// ledger balance: see its doc comment.
package fixedpoint

import (
	"math/big"

	sdkmath "cosmossdk.io/math"
)

// Decimals is the number of decimal digits the kernel's denominator carries.
const Decimals = 18

var (
	// denom is D = 10^18.
	denom = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)

	// maxNumerator is the largest value a kernel numerator (or a narrowed
	// ledger balance) may take: 2^128 - 1.
	maxNumerator = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
)

// MaxBalance is the saturation ceiling for ledger balances entering or
// leaving the kernel, matching the reference u128 balance type.
var MaxBalance = sdkmath.NewIntFromBigInt(maxNumerator)

// Q is a fixed-point rational n/D, D = 10^18, n in [0, 2^128).
// The zero value represents 0.
type Q struct {
	n *big.Int
}

// Zero is the additive identity.
var Zero = Q{n: big.NewInt(0)}

func inBounds(n *big.Int) bool {
	return n.Sign() >= 0 && n.Cmp(maxNumerator) <= 0
}

func fromBig(n *big.Int) (Q, bool) {
	if !inBounds(n) {
		return Q{}, false
	}
	return Q{n: new(big.Int).Set(n)}, true
}

// bigIntOf narrows a math.Int down into the kernel's 128-bit universe with
// saturation, per the kernel's conversion discipline: balances wider than
// 128 bits never enter the kernel verbatim.
func bigIntOf(v sdkmath.Int) *big.Int {
	if v.IsNil() || v.IsNegative() {
		return big.NewInt(0)
	}
	b := v.BigInt()
	if b.Cmp(maxNumerator) > 0 {
		return new(big.Int).Set(maxNumerator)
	}
	return b
}

// FromNatural returns k * D as a Q, i.e. the fixed-point representation of
// the natural number k. Fails if the scaled value would not fit in 128 bits.
func FromNatural(k sdkmath.Int) (Q, bool) {
	n := new(big.Int).Mul(bigIntOf(k), denom)
	return fromBig(n)
}

// FromRational returns (num * D) / denom, truncated. Fails if denom == 0 or
// the scaled numerator would not fit in 128 bits.
func FromRational(num, den sdkmath.Int) (Q, bool) {
	d := bigIntOf(den)
	if d.Sign() == 0 {
		return Q{}, false
	}
	scaled := new(big.Int).Mul(bigIntOf(num), denom)
	q := new(big.Int).Quo(scaled, d)
	return fromBig(q)
}

// CheckedAdd returns x + y, or false on overflow past 128 bits.
func (x Q) CheckedAdd(y Q) (Q, bool) {
	return fromBig(new(big.Int).Add(x.numerator(), y.numerator()))
}

// CheckedSub returns x - y, or false on underflow (y > x).
func (x Q) CheckedSub(y Q) (Q, bool) {
	r := new(big.Int).Sub(x.numerator(), y.numerator())
	if r.Sign() < 0 {
		return Q{}, false
	}
	return fromBig(r)
}

// CheckedMul returns x * y, or false on overflow past 128 bits.
func (x Q) CheckedMul(y Q) (Q, bool) {
	// x and y are both scaled by D; the raw product is scaled by D^2, so
	// divide once to bring it back to a single D scale.
	product := new(big.Int).Mul(x.numerator(), y.numerator())
	product.Quo(product, denom)
	return fromBig(product)
}

// CheckedDiv returns x / y, or false if y is zero or the result overflows.
func (x Q) CheckedDiv(y Q) (Q, bool) {
	if y.numerator().Sign() == 0 {
		return Q{}, false
	}
	scaled := new(big.Int).Mul(x.numerator(), denom)
	q := new(big.Int).Quo(scaled, y.numerator())
	return fromBig(q)
}

// MulInt multiplies the fixed-point value by a ledger balance and floors,
// returning floor(n * balance / D) as a math.Int.
//
// This is the one place the kernel saturates instead of failing: per the
// kernel's design, overflow here clamps to MaxBalance rather than
// propagating an error, and callers are expected to reject the saturated
// result via an explicit validity check before committing any state.
func (x Q) MulInt(balance sdkmath.Int) sdkmath.Int {
	product := new(big.Int).Mul(x.numerator(), bigIntOf(balance))
	product.Quo(product, denom)
	if product.Cmp(maxNumerator) > 0 {
		return MaxBalance
	}
	return sdkmath.NewIntFromBigInt(product)
}

// IsZero reports whether x represents the value 0.
func (x Q) IsZero() bool {
	return x.numerator().Sign() == 0
}

// GT reports whether x > y.
func (x Q) GT(y Q) bool {
	return x.numerator().Cmp(y.numerator()) > 0
}

// LTE reports whether x <= y.
func (x Q) LTE(y Q) bool {
	return x.numerator().Cmp(y.numerator()) <= 0
}

func (x Q) numerator() *big.Int {
	if x.n == nil {
		return big.NewInt(0)
	}
	return x.n
}

// String renders the numerator for debugging/logging.
func (x Q) String() string {
	return x.numerator().String()
}

// Bytes returns the big-endian encoding of x's numerator, for storing a Q
// inside a KVStore record.
func (x Q) Bytes() []byte {
	return x.numerator().Bytes()
}

// FromBytes reconstructs a Q from the big-endian numerator encoding Bytes
// produces. Fails if the numerator does not fit in 128 bits.
func FromBytes(bz []byte) (Q, bool) {
	return fromBig(new(big.Int).SetBytes(bz))
}
