// File: numtheory.go
// Title: Number Theory and Combinatorics
// Description: Greatest common divisor, least common multiple, factorial,
//              combinations and permutations over integer-valued Decimals.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package mathx

import (
	"math/big"

	"github.com/msto63/gauss/foundation/core/errors"
)

// MaxCombinatoricTerms bounds the number of factors multiplied by Factorial,
// Combination and Permutation.
const MaxCombinatoricTerms = 1_000_000

func integerArg(d Decimal, op string) (*big.Int, error) {
	if !d.IsInteger() {
		return nil, errors.IntegerRequired(errors.ModuleMathx, op, d.String())
	}
	c, _ := d.coefficient()
	return c, nil
}

// GCD returns the greatest common divisor of a and b using the Euclidean
// algorithm. The result is non-negative; GCD(0, 0) is 0.
func GCD(a, b Decimal) (Decimal, error) {
	x, err := integerArg(a, "gcd")
	if err != nil {
		return Decimal{}, err
	}
	y, err := integerArg(b, "gcd")
	if err != nil {
		return Decimal{}, err
	}
	return fromBig(euclid(x, y), 0, a), nil
}

func euclid(x, y *big.Int) *big.Int {
	x = new(big.Int).Abs(x)
	y = new(big.Int).Abs(y)
	for y.Sign() != 0 {
		x, y = y, x.Rem(x, y)
	}
	return x
}

// LCM returns the least common multiple of a and b. The result is
// non-negative; LCM with a zero operand is 0.
func LCM(a, b Decimal) (Decimal, error) {
	x, err := integerArg(a, "lcm")
	if err != nil {
		return Decimal{}, err
	}
	y, err := integerArg(b, "lcm")
	if err != nil {
		return Decimal{}, err
	}
	if x.Sign() == 0 || y.Sign() == 0 {
		return fromBig(new(big.Int), 0, a), nil
	}

	g := euclid(x, y)
	l := new(big.Int).Quo(new(big.Int).Abs(x), g)
	l.Mul(l, new(big.Int).Abs(y))
	return fromBig(l, 0, a), nil
}

// Factorial returns n!. Negative n is an invalid argument.
func Factorial(n Decimal) (Decimal, error) {
	v, err := integerArg(n, "factorial")
	if err != nil {
		return Decimal{}, err
	}
	if v.Sign() < 0 {
		return Decimal{}, errors.InvalidArgument(errors.ModuleMathx, "factorial", n.String(), "negative factorial")
	}
	if !v.IsInt64() || v.Int64() > MaxCombinatoricTerms {
		return Decimal{}, errors.InvalidArgument(errors.ModuleMathx, "factorial", n.String(), "argument too large")
	}
	return fromBig(new(big.Int).MulRange(1, v.Int64()), 0, n), nil
}

// combinatoricArgs validates 0 <= k <= n and returns both as big integers
func combinatoricArgs(n, k Decimal, op string) (*big.Int, *big.Int, error) {
	nv, err := integerArg(n, op)
	if err != nil {
		return nil, nil, err
	}
	kv, err := integerArg(k, op)
	if err != nil {
		return nil, nil, err
	}
	if kv.Sign() < 0 || nv.Sign() < 0 || kv.Cmp(nv) > 0 {
		return nil, nil, errors.InvalidRange(errors.ModuleMathx, op, n.String(), k.String())
	}
	return nv, kv, nil
}

// Combination returns C(n, k), the number of k-element subsets of an
// n-element set. It multiplies and divides one term at a time so
// intermediate values stay within C(n, k) * k.
func Combination(n, k Decimal) (Decimal, error) {
	nv, kv, err := combinatoricArgs(n, k, "combination")
	if err != nil {
		return Decimal{}, err
	}

	// C(n, k) == C(n, n-k); iterate over the smaller one
	rest := new(big.Int).Sub(nv, kv)
	if rest.Cmp(kv) < 0 {
		kv = rest
	}
	if !kv.IsInt64() || kv.Int64() > MaxCombinatoricTerms {
		return Decimal{}, errors.InvalidArgument(errors.ModuleMathx, "combination", k.String(), "too many terms")
	}

	result := big.NewInt(1)
	term := new(big.Int).Sub(nv, kv)
	for i := int64(1); i <= kv.Int64(); i++ {
		term.Add(term, big.NewInt(1))
		result.Mul(result, term)
		result.Quo(result, big.NewInt(i))
	}
	return fromBig(result, 0, n), nil
}

// Permutation returns P(n, k) = n! / (n-k)!, the number of ordered
// k-element arrangements.
func Permutation(n, k Decimal) (Decimal, error) {
	nv, kv, err := combinatoricArgs(n, k, "permutation")
	if err != nil {
		return Decimal{}, err
	}
	if !kv.IsInt64() || kv.Int64() > MaxCombinatoricTerms {
		return Decimal{}, errors.InvalidArgument(errors.ModuleMathx, "permutation", k.String(), "too many terms")
	}

	result := big.NewInt(1)
	term := new(big.Int).Set(nv)
	for i := int64(0); i < kv.Int64(); i++ {
		result.Mul(result, term)
		term.Sub(term, big.NewInt(1))
	}
	return fromBig(result, 0, n), nil
}
