package domain

import (
	"math/bits"
	"strconv"
)

// Amount is a quantity of the campaign asset or of vault shares, expressed
// in the smallest indivisible unit of the asset.
type Amount uint64

// Identity names a principal: a ledger account, a contributor, a beneficiary
// or the controller module.
type Identity string

func (a Amount) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

// Add returns a+b or ErrAmountOverflow.
func (a Amount) Add(b Amount) (Amount, error) {
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 {
		return 0, ErrAmountOverflow
	}
	return Amount(sum), nil
}

// Sub returns a-b. Callers check b <= a beforehand.
func (a Amount) Sub(b Amount) (Amount, error) {
	diff, borrow := bits.Sub64(uint64(a), uint64(b), 0)
	if borrow != 0 {
		return 0, ErrAmountOverflow
	}
	return Amount(diff), nil
}

// mulDivDown computes floor(x*y/d) with a 128-bit intermediate product.
func mulDivDown(x, y, d Amount) (Amount, error) {
	q, _, err := mulDiv(x, y, d)
	return q, err
}

// mulDivUp computes ceil(x*y/d) with a 128-bit intermediate product.
func mulDivUp(x, y, d Amount) (Amount, error) {
	q, rem, err := mulDiv(x, y, d)
	if err != nil {
		return 0, err
	}
	if rem > 0 {
		return q.Add(1)
	}
	return q, nil
}

func mulDiv(x, y, d Amount) (Amount, uint64, error) {
	if d == 0 {
		return 0, 0, ErrAmountOverflow
	}
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	// bits.Div64 panics when the quotient does not fit in 64 bits.
	if hi >= uint64(d) {
		return 0, 0, ErrAmountOverflow
	}
	q, rem := bits.Div64(hi, lo, uint64(d))
	return Amount(q), rem, nil
}
