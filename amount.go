package revue

import (
	"encoding/json"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount represents an exact monetary value in the reporting currency.
type Amount struct {
	value decimal.Decimal
}

// A builds an Amount from any numeric value.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
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
	case decimal.Decimal:
		return v
	}
	return decimal.Decimal{}
}

func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount         { return Amount{value: a.value.Neg()} }
func (a Amount) Abs() Amount         { return Amount{value: a.value.Abs()} }

func (a Amount) IsZero() bool                { return a.value.IsZero() }
func (a Amount) IsPositive() bool            { return a.value.IsPositive() }
func (a Amount) IsNegative() bool            { return a.value.IsNegative() }
func (a Amount) Equal(b Amount) bool         { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool      { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool   { return a.value.GreaterThan(b.value) }
func (a Amount) LessOrEqual(b Amount) bool   { return a.value.LessThanOrEqual(b.value) }
func (a Amount) Cmp(b Amount) int            { return a.value.Cmp(b.value) }
func (a Amount) Div(b Amount) decimal.Decimal {
	return a.value.Div(b.value)
}

// formatter renders amounts the way French accounting exports do:
// space-separated thousands, comma decimal, two digits.
var formatter = money.NewFormatter(2, ",", " ", "", "1")

// String returns the amount rounded to the cent, e.g. "1 234,56".
func (a Amount) String() string {
	cents := a.value.Shift(2).Round(0).IntPart()
	return formatter.Format(cents)
}

// SignedString is like String but with an explicit sign; zero is "-".
func (a Amount) SignedString() string {
	if a.value.IsZero() {
		return "-"
	}
	if a.value.IsPositive() {
		return "+" + a.String()
	}
	return a.String()
}

func (a Amount) MarshalJSON() ([]byte, error) { return a.value.MarshalJSON() }

func (a *Amount) UnmarshalJSON(b []byte) error { return a.value.UnmarshalJSON(b) }

var _ json.Marshaler = Amount{}

// thousands separators commonly found in accounting exports (narrow no-break
// space, no-break space, regular space).
var thousandSeps = []string{" ", " ", " "}

// ParseAmount normalizes a raw numeric token into an exact Amount.
//
// Recognized forms: blank (zero), leading sign, parenthesized negatives,
// space-like thousands separators, and either "." or "," as decimal
// separator. When both appear, the last one used is the decimal separator.
func ParseAmount(token string) (Amount, error) {
	value := strings.TrimSpace(token)
	if value == "" {
		return Amount{}, nil
	}

	negative := false
	if strings.HasPrefix(value, "(") && strings.HasSuffix(value, ")") {
		negative = true
		value = value[1 : len(value)-1]
	}
	if strings.HasPrefix(value, "-") {
		negative = true
		value = value[1:]
	} else if strings.HasPrefix(value, "+") {
		value = value[1:]
	}

	for _, sep := range thousandSeps {
		value = strings.ReplaceAll(value, sep, "")
	}

	commas := strings.Count(value, ",")
	dots := strings.Count(value, ".")
	switch {
	case commas == 1 && dots == 0:
		value = strings.Replace(value, ",", ".", 1)
	case commas > 1 && dots == 0:
		// repeated commas can only be thousands separators
		value = strings.ReplaceAll(value, ",", "")
	case dots > 1 && commas == 0:
		value = strings.ReplaceAll(value, ".", "")
	case commas >= 1 && dots >= 1:
		// the decimal separator is the last one used
		if strings.LastIndex(value, ",") > strings.LastIndex(value, ".") {
			value = strings.ReplaceAll(value, ".", "")
			value = strings.Replace(value, ",", ".", 1)
		} else {
			value = strings.ReplaceAll(value, ",", "")
		}
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, &ParseError{Kind: "amount", Token: token}
	}
	if negative {
		d = d.Neg()
	}
	return Amount{value: d}, nil
}
