package calc

import "github.com/shopspring/decimal"

// DiscountedPrice applies a percentage discount to price, rounded to two
// decimal places. A zero or negative discount leaves the price unchanged.
func DiscountedPrice(price, discountPercent float64) float64 {
	if discountPercent <= 0 {
		return price
	}
	p := decimal.NewFromFloat(price)
	cut := p.Mul(decimal.NewFromFloat(discountPercent)).Div(decimal.NewFromInt(100))
	result, _ := p.Sub(cut).Round(2).Float64()
	return result
}
