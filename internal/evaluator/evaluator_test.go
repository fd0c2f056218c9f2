package evaluator

import (
	"auction-settlement/internal/auctionerrors"
	model "auction-settlement/internal/models"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func auctionWithBids(amounts ...float64) *model.Auction {
	auction := &model.Auction{AuctionID: "auction1", Description: "Video game"}
	for i, amount := range amounts {
		auction.Bids = append(auction.Bids, model.Bid{
			BidID:  string(rune('a' + i)),
			UserID: string(rune('A' + i)),
			Amount: amount,
		})
	}
	return auction
}

func TestEvaluator_Evaluate(t *testing.T) {
	tests := []struct {
		name     string
		auction  *model.Auction
		expected float64
	}{
		{name: "ascending_bids", auction: auctionWithBids(2000, 2500), expected: 2500},
		{name: "descending_bids", auction: auctionWithBids(400, 300, 250), expected: 400},
		{name: "random_order", auction: auctionWithBids(200, 450, 120, 700, 630, 230), expected: 700},
		{name: "single_bid", auction: auctionWithBids(1000), expected: 1000},
		{name: "max_float", auction: auctionWithBids(100, math.MaxFloat64), expected: math.MaxFloat64},
	}

	e := NewEvaluator()
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			amount, err := e.Evaluate(tc.auction)
			require.NoError(t, err)
			require.Equal(t, tc.expected, amount)
		})
	}
}

func TestEvaluator_Winner_TieKeepsFirstSeen(t *testing.T) {
	auction := auctionWithBids(300, 500, 500)

	winner, err := NewEvaluator().Winner(auction)
	require.NoError(t, err)
	require.Equal(t, "B", winner.UserID)
	require.Equal(t, 500.0, winner.Amount)
}

func TestEvaluator_NoBids(t *testing.T) {
	e := NewEvaluator()

	_, err := e.Evaluate(auctionWithBids())
	require.True(t, errors.Is(err, auctionerrors.ErrNoBids), "expected ErrNoBids, got: %v", err)

	_, err = e.Winner(nil)
	require.True(t, errors.Is(err, auctionerrors.ErrNoBids), "expected ErrNoBids, got: %v", err)
}
