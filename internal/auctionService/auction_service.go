package auction

import (
	"auction-settlement/internal/auctionerrors"
	"auction-settlement/internal/clock"
	"auction-settlement/internal/evaluator"
	"auction-settlement/internal/models"
	"auction-settlement/utils"
	"errors"
	"fmt"
	"strings"
	"time"
)

// AuctionStore is the storage the auction service needs beyond the settlement repositories
type AuctionStore interface {
	AddAuction(auction models.Auction)
	GetAuction(auctionID string) (*models.Auction, error)
	RecordBid(auctionID string, bid models.Bid) error
}

// PaymentLister lists generated payments
type PaymentLister interface {
	ListPayments() []models.Payment
}

//go:generate mockgen -destination=mock_auction_service.go -package=auction auction-settlement/internal/auctionService Closer,Generator

// Closer runs the auction closing job
type Closer interface {
	Close() int
}

// Generator runs the payment generation job
type Generator interface {
	Generate() (int, error)
}

// AuctionService exposes auction management and the settlement jobs to the HTTP layer
type AuctionService struct {
	store     AuctionStore
	payments  PaymentLister
	closer    Closer
	generator Generator
	evaluator *evaluator.Evaluator
	clock     clock.Clock
}

// NewAuctionService creates a new AuctionService instance. A nil clock falls back to the system clock.
func NewAuctionService(store AuctionStore, payments PaymentLister, closer Closer, generator Generator, c clock.Clock) *AuctionService {
	if c == nil {
		c = clock.SystemClock{}
	}
	return &AuctionService{
		store:     store,
		payments:  payments,
		closer:    closer,
		generator: generator,
		evaluator: evaluator.NewEvaluator(),
		clock:     c,
	}
}

// CreateAuction opens a new auction. A zero createdAt means now.
func (s *AuctionService) CreateAuction(description string, createdAt time.Time) (models.Auction, error) {
	if strings.TrimSpace(description) == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty description", auctionerrors.ErrInvalidAuction)
	}
	if createdAt.IsZero() {
		createdAt = s.clock.Now()
	}

	auction := models.Auction{
		AuctionID:   utils.GenerateID(),
		Description: description,
		CreatedAt:   createdAt,
		Bids:        []models.Bid{},
	}
	s.store.AddAuction(auction)
	return auction, nil
}

// GetAuction returns a single auction
func (s *AuctionService) GetAuction(auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidAuction)
	}

	auction, err := s.store.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return *auction, nil
}

// PlaceBid validates and records a user's bid on an open auction
func (s *AuctionService) PlaceBid(auctionID, userID string, amount float64) (models.Bid, error) {
	if err := s.validateBid(auctionID, userID, amount); err != nil {
		return models.Bid{}, err
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		UserID:    userID,
		Amount:    amount,
		CreatedAt: s.clock.Now(),
	}

	if err := s.store.RecordBid(auctionID, bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for auction %s by user %s: %w", auctionID, userID, err)
	}
	return bid, nil
}

// validateBid checks input validity and that the bid beats the current highest one
func (s *AuctionService) validateBid(auctionID, userID string, amount float64) error {
	if auctionID == "" || userID == "" {
		return fmt.Errorf("service: %w - missing auctionID or userID", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	auction, err := s.store.GetAuction(auctionID)
	if err != nil {
		return fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if auction.Closed {
		return fmt.Errorf("service: %w", auctionerrors.ErrAuctionClosed)
	}

	highest, err := s.evaluator.Evaluate(auction)
	if err == nil {
		if amount <= highest {
			return fmt.Errorf("service: %w - current highest bid is %.2f", auctionerrors.ErrBidTooLow, highest)
		}
	} else if !errors.Is(err, auctionerrors.ErrNoBids) {
		return fmt.Errorf("service: failed to evaluate auction: %w", err)
	}
	return nil
}

// CloseExpired runs the closing job and returns the number of auctions closed
func (s *AuctionService) CloseExpired() int {
	return s.closer.Close()
}

// GeneratePayments runs the payment job and returns the number of payments generated
func (s *AuctionService) GeneratePayments() (int, error) {
	n, err := s.generator.Generate()
	if err != nil {
		return 0, fmt.Errorf("service: failed to generate payments: %w", err)
	}
	return n, nil
}

// ListPayments returns all generated payments
func (s *AuctionService) ListPayments() []models.Payment {
	return s.payments.ListPayments()
}
