package demand

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name         string
		price        float64
		isMarketItem bool
		initialBid   float64
		bids         []float64
		want         float64
	}{
		{name: "plain_item_no_bids", price: 100, want: 100},
		{name: "plain_item_ignores_initial_bid", price: 100, initialBid: 20, want: 100},
		{name: "market_item_discounted_base", price: 100, isMarketItem: true, initialBid: 20, want: 80},
		{name: "market_item_unset_initial_bid", price: 100, isMarketItem: true, want: 100},
		{name: "single_bid", price: 100, isMarketItem: true, initialBid: 20, bids: []float64{30}, want: 50},
		{name: "bids_exceed_base_clamped", price: 100, isMarketItem: true, initialBid: 20, bids: []float64{30, 60}, want: 0},
		{name: "bids_exactly_base", price: 100, isMarketItem: true, initialBid: 20, bids: []float64{80}, want: 0},
		{name: "plain_item_with_bids", price: 200, bids: []float64{50, 25}, want: 125},
		{name: "empty_ledger", price: 100, isMarketItem: true, initialBid: 20, bids: []float64{}, want: 80},
		{name: "fractional_amounts_rounded", price: 10, bids: []float64{0.1, 0.2}, want: 9.7},
		{name: "rounds_to_two_decimals", price: 1, bids: []float64{0.333}, want: 0.67},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Value(tc.price, tc.isMarketItem, tc.initialBid, tc.bids)
			require.Equal(t, tc.want, got)
		})
	}
}

// The derived value must never go negative, whatever the ledger holds.
func TestValue_NeverNegative(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		price := rnd.Float64() * 1000
		initialBid := rnd.Float64() * price
		bids := make([]float64, rnd.Intn(20))
		for j := range bids {
			bids[j] = rnd.Float64() * 500
		}

		got := Value(price, rnd.Intn(2) == 0, initialBid, bids)
		require.GreaterOrEqual(t, got, 0.0)
	}
}

func TestValue_Accumulation(t *testing.T) {
	// Sequence from a market item at price=100, initialBid=20.
	bids := []float64{}
	require.Equal(t, 80.0, Value(100, true, 20, bids))

	bids = append(bids, 30)
	require.Equal(t, 50.0, Value(100, true, 20, bids))

	bids = append(bids, 60)
	require.Equal(t, 0.0, Value(100, true, 20, bids))

	// Removing the first bid recovers the residual.
	require.Equal(t, 20.0, Value(100, true, 20, bids[1:]))
}
