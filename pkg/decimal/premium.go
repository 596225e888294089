package decimal

import (
	"github.com/shopspring/decimal"
)

// DisplayPlaces is the number of decimal places used when a premium is printed.
const DisplayPlaces = 4

// Premium represents an option price with fixed-point display semantics
type Premium struct {
	decimal.Decimal
}

// NewPremium creates a new Premium from a float64. The value must be finite.
func NewPremium(value float64) Premium {
	return Premium{decimal.NewFromFloat(value)}
}

// NewPremiumFromDecimal creates a new Premium from a decimal.Decimal
func NewPremiumFromDecimal(d decimal.Decimal) Premium {
	return Premium{d}
}

// NewPremiumFromString creates a new Premium from a string
func NewPremiumFromString(value string) (Premium, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Premium{}, err
	}
	return Premium{d}, nil
}

// Round rounds the premium to the given number of places
func (p Premium) Round(places int32) Premium {
	return Premium{p.Decimal.Round(places)}
}

// Add adds another premium
func (p Premium) Add(other Premium) Premium {
	return Premium{p.Decimal.Add(other.Decimal)}
}

// Sub subtracts another premium
func (p Premium) Sub(other Premium) Premium {
	return Premium{p.Decimal.Sub(other.Decimal)}
}

// Abs returns the absolute value
func (p Premium) Abs() Premium {
	return Premium{p.Decimal.Abs()}
}

// PercentChange returns the change from base to p in percent. A zero base yields zero.
func (p Premium) PercentChange(base Premium) decimal.Decimal {
	if base.IsZero() {
		return decimal.Zero
	}
	return p.Decimal.Sub(base.Decimal).Div(base.Decimal).Mul(decimal.NewFromInt(100))
}

// Equal checks if this premium equals another
func (p Premium) Equal(other Premium) bool {
	return p.Decimal.Equal(other.Decimal)
}

// Zero returns a zero premium
func Zero() Premium {
	return Premium{decimal.Zero}
}

// String returns the premium with DisplayPlaces decimals
func (p Premium) String() string {
	return p.Decimal.StringFixed(DisplayPlaces)
}

// Format formats the premium with a currency sign
func (p Premium) Format() string {
	if p.IsNegative() {
		return "-$" + p.Abs().String()
	}
	return "$" + p.String()
}
