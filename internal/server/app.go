package server

import (
	auction "auction-settlement/internal/auctionService"
	"auction-settlement/internal/clock"
	closing "auction-settlement/internal/closingService"
	"auction-settlement/internal/evaluator"
	"auction-settlement/internal/notifier"
	payment "auction-settlement/internal/paymentService"
	"auction-settlement/internal/repository"
	"time"
)

// App bundles the repositories and services of a running settlement server
type App struct {
	Auctions  *repository.MemoryRepo
	Payments  *repository.MemoryPaymentRepo
	Closer    *closing.AuctionCloser
	Generator *payment.PaymentGenerator
	Service   *auction.AuctionService
}

// NewApp wires in-memory repositories, the settlement services and the auction service.
// closeAfter <= 0 keeps the default one week threshold.
func NewApp(c clock.Clock, sender notifier.EmailSender, closeAfter time.Duration) *App {
	auctions := repository.NewMemoryRepo()
	payments := repository.NewMemoryPaymentRepo()

	closer := closing.NewAuctionCloser(auctions, sender, closing.WithClock(c), closing.WithThreshold(closeAfter))
	generator := payment.NewPaymentGenerator(auctions, payments, evaluator.NewEvaluator(), c)

	return &App{
		Auctions:  auctions,
		Payments:  payments,
		Closer:    closer,
		Generator: generator,
		Service:   auction.NewAuctionService(auctions, payments, closer, generator, c),
	}
}
