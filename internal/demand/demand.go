// Package demand computes the derived residual valuation of a product
// after subtracting accumulated bids from its discounted base price.
package demand

import "math"

// Value returns the demand value for a product:
//
//	base = price - initialBid   when the item is a market item with a
//	                            positive initial bid, else price
//	value = max(0, base - sum(bids))
//
// An initialBid of 0 means unset. The result is clamped at zero and
// rounded to 2 decimal places; rounding happens nowhere else. Callers
// must validate price > 0 and initialBid < price before getting here.
func Value(price float64, isMarketItem bool, initialBid float64, bids []float64) float64 {
	base := price
	if isMarketItem && initialBid > 0 {
		base = price - initialBid
	}

	var total float64
	for _, b := range bids {
		total += b
	}

	return round2(math.Max(0, base-total))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
