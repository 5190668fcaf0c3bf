package pricing

import "strconv"

// Money is an amount in the smallest currency unit.
type Money int64

func NewMoney(minor int64) Money { return Money(minor) }

func (m Money) Int64() int64        { return int64(m) }
func (m Money) Add(o Money) Money   { return m + o }
func (m Money) Sub(o Money) Money   { return m - o }
func (m Money) Times(n int64) Money { return Money(int64(m) * n) }
func (m Money) IsNegative() bool    { return m < 0 }
func (m Money) String() string      { return strconv.FormatInt(int64(m), 10) }
func (m Money) MulRatio(num, den int64) Money {
	return Money(DivRoundHalfAway(int64(m)*num, den))
}

// DivRoundHalfAway divides num by den (den > 0), rounding half away from zero.
func DivRoundHalfAway(num, den int64) int64 {
	q := num / den
	r := num % den
	if r < 0 {
		r = -r
	}
	if 2*r >= den {
		if num < 0 {
			q--
		} else {
			q++
		}
	}
	return q
}
