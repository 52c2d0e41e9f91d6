package ledger

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Weight is a quantity of goods in kilograms. Net inventory weight may go
// negative when sales are recorded before the matching purchase.
type Weight struct {
	value decimal.Decimal
}

func W[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Weight {
	return Weight{value: newDecimal(value)}
}

func (t Weight) Equal(p Weight) bool       { return t.value.Equal(p.value) }
func (t Weight) LessThan(p Weight) bool    { return t.value.LessThan(p.value) }
func (t Weight) GreaterThan(p Weight) bool { return t.value.GreaterThan(p.value) }
func (t Weight) Add(p Weight) Weight       { return Weight{value: t.value.Add(p.value)} }
func (t Weight) Sub(p Weight) Weight       { return Weight{value: t.value.Sub(p.value)} }
func (t Weight) IsNegative() bool          { return t.value.IsNegative() }
func (t Weight) IsPositive() bool          { return t.value.IsPositive() }
func (t Weight) IsZero() bool              { return t.value.IsZero() }
func (t Weight) String() string            { return t.value.String() }

func (t Weight) MarshalJSON() ([]byte, error) {
	return t.value.MarshalJSON()
}
func (t *Weight) UnmarshalJSON(decimalBytes []byte) error {
	return t.value.UnmarshalJSON(decimalBytes)
}
