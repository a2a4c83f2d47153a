package finplan

import "github.com/shopspring/decimal"

var twelve = decimal.NewFromInt(12)

// Rate represents a fractional rate, e.g. 0.07 for a 7% annual return or
// 0.25 for a 25% tax rate. Whether a Rate is annual or monthly is a matter
// of convention at the point of use.
type Rate struct {
	value decimal.Decimal
}

func R[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Rate {
	return Rate{value: newDecimal(value)}
}

// Monthly returns the naive monthly fraction of an annual rate, i.e. r/12.
func (r Rate) Monthly() Rate { return Rate{value: r.value.Div(twelve)} }

func (r Rate) Add(p Rate) Rate         { return Rate{value: r.value.Add(p.value)} }
func (r Rate) Sub(p Rate) Rate         { return Rate{value: r.value.Sub(p.value)} }
func (r Rate) Mul(p Rate) Rate         { return Rate{value: r.value.Mul(p.value)} }
func (r Rate) Div(p Rate) Rate         { return Rate{value: r.value.Div(p.value)} }
func (r Rate) Neg() Rate               { return Rate{value: r.value.Neg()} }
func (r Rate) Equal(p Rate) bool       { return r.value.Equal(p.value) }
func (r Rate) LessThan(p Rate) bool    { return r.value.LessThan(p.value) }
func (r Rate) GreaterThan(p Rate) bool { return r.value.GreaterThan(p.value) }
func (r Rate) IsZero() bool            { return r.value.IsZero() }
func (r Rate) IsPositive() bool        { return r.value.IsPositive() }
func (r Rate) IsNegative() bool        { return r.value.IsNegative() }
func (r Rate) String() string          { return r.value.String() }

// Float64 returns the rate as a float64, losing exactness. Reserved for
// computations that are inherently floating point, like fractional powers.
func (r Rate) Float64() float64 { return r.value.InexactFloat64() }

// Percent returns the rate as a display percentage, e.g. R(0.07).Percent()
// renders as "7.0%".
func (r Rate) Percent() Percent { return Percent(r.value.InexactFloat64() * 100) }

// MarshalJSON implements the json.Marshaler interface.
func (r Rate) MarshalJSON() ([]byte, error) {
	return r.value.MarshalJSON()
}
func (r *Rate) UnmarshalJSON(decimalBytes []byte) error {
	return r.value.UnmarshalJSON(decimalBytes)
}
