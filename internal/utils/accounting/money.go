package accounting

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of fractional digits kept on every monetary output.
const MoneyPlaces int32 = 2

// RatePrecision is the number of fractional digits kept on intermediate rate arithmetic.
const RatePrecision int32 = 16

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
	two     = decimal.NewFromInt(2)
)

// RoundMoney rounds half-up (away from zero) to MoneyPlaces.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// NonNegative maps a nil amount to zero and reports whether the amount is usable.
func NonNegative(d *decimal.Decimal) (decimal.Decimal, bool) {
	if d == nil {
		return decimal.Zero, true
	}
	return *d, !d.IsNegative()
}

// MonthlyRate converts an annual percentage rate into a per-month fraction.
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.DivRound(hundred, RatePrecision).DivRound(twelve, RatePrecision)
}

// Percent returns amount * percent / 100 without rounding.
func Percent(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).DivRound(hundred, RatePrecision)
}
