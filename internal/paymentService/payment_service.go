package payment

import (
	"auction-settlement/internal/auctionerrors"
	"auction-settlement/internal/clock"
	"auction-settlement/internal/evaluator"
	"auction-settlement/internal/models"
	"auction-settlement/internal/repository"
	"auction-settlement/utils"
	"errors"
	"fmt"
	"time"
)

// PaymentGenerator creates payment records for closed auctions
type PaymentGenerator struct {
	auctions  repository.AuctionRepository
	payments  repository.PaymentRepository
	evaluator *evaluator.Evaluator
	clock     clock.Clock
}

// NewPaymentGenerator creates a new PaymentGenerator. A nil clock falls back to the system clock.
func NewPaymentGenerator(auctions repository.AuctionRepository, payments repository.PaymentRepository, e *evaluator.Evaluator, c clock.Clock) *PaymentGenerator {
	if e == nil {
		e = evaluator.NewEvaluator()
	}
	if c == nil {
		c = clock.SystemClock{}
	}
	return &PaymentGenerator{
		auctions:  auctions,
		payments:  payments,
		evaluator: e,
		clock:     c,
	}
}

// Generate saves one payment per closed auction and returns how many were saved.
// Auctions without bids and failed saves are logged and skipped.
func (g *PaymentGenerator) Generate() (int, error) {
	closed, err := g.auctions.ClosedAuctions()
	if err != nil {
		return 0, fmt.Errorf("service: failed to fetch closed auctions: %w", err)
	}

	dueDate := NextBusinessDay(g.clock.Today())

	saved := 0
	for _, auction := range closed {
		amount, err := g.evaluator.Evaluate(auction)
		if err != nil {
			utils.Warn("PaymentGenerator: skipping auction", map[string]any{
				"auction_id": auction.AuctionID,
				"error":      err.Error(),
			})
			continue
		}

		p := models.Payment{
			PaymentID: utils.GenerateID(),
			AuctionID: auction.AuctionID,
			Amount:    amount,
			DueDate:   dueDate,
		}

		if err := g.payments.Save(p); err != nil {
			if errors.Is(err, auctionerrors.ErrPaymentExists) {
				utils.Debug("PaymentGenerator: payment already generated", map[string]any{"auction_id": auction.AuctionID})
				continue
			}
			utils.Error("PaymentGenerator: failed to save payment", map[string]any{
				"auction_id": auction.AuctionID,
				"error":      err.Error(),
			})
			continue
		}
		saved++
	}

	utils.Info("PaymentGenerator: run finished", map[string]any{
		"closed":    len(closed),
		"generated": saved,
		"due_date":  dueDate.Format(time.DateOnly),
	})
	return saved, nil
}

// NextBusinessDay pushes a date falling on a weekend forward to the following Monday
func NextBusinessDay(date time.Time) time.Time {
	for date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		date = date.AddDate(0, 0, 1)
	}
	return date
}
