package evaluator

import (
	"auction-settlement/internal/auctionerrors"
	model "auction-settlement/internal/models"
	"fmt"
)

// Evaluator computes the winning bid of an auction. It holds no state.
type Evaluator struct{}

// NewEvaluator creates a new Evaluator
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate returns the highest bid amount of the auction
func (e *Evaluator) Evaluate(auction *model.Auction) (float64, error) {
	winner, err := e.Winner(auction)
	if err != nil {
		return 0, err
	}
	return winner.Amount, nil
}

// Winner returns the highest bid. On equal amounts the earliest submitted bid wins.
func (e *Evaluator) Winner(auction *model.Auction) (model.Bid, error) {
	if auction == nil || len(auction.Bids) == 0 {
		id := ""
		if auction != nil {
			id = auction.AuctionID
		}
		return model.Bid{}, fmt.Errorf("evaluate auction %s: %w", id, auctionerrors.ErrNoBids)
	}

	winning := auction.Bids[0]
	for _, b := range auction.Bids[1:] {
		if b.Amount > winning.Amount {
			winning = b
		}
	}
	return winning, nil
}
