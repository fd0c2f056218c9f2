package closing

import (
	"auction-settlement/internal/clock"
	model "auction-settlement/internal/models"
	"auction-settlement/internal/notifier"
	"auction-settlement/internal/repository"
	"auction-settlement/utils"
	"sync"
	"time"
)

// DefaultThreshold is the minimum auction age before it gets closed
const DefaultThreshold = 7 * 24 * time.Hour

// AuctionCloser closes expired auctions and notifies their winners
type AuctionCloser struct {
	mu          sync.Mutex
	repo        repository.AuctionRepository
	sender      notifier.EmailSender
	clock       clock.Clock
	threshold   time.Duration
	totalClosed int
}

// Option customizes an AuctionCloser
type Option func(*AuctionCloser)

// WithClock sets the time source used to decide which auctions expired
func WithClock(c clock.Clock) Option {
	return func(s *AuctionCloser) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithThreshold overrides the age an auction must reach before being closed
func WithThreshold(d time.Duration) Option {
	return func(s *AuctionCloser) {
		if d > 0 {
			s.threshold = d
		}
	}
}

// NewAuctionCloser creates a new AuctionCloser instance
func NewAuctionCloser(repo repository.AuctionRepository, sender notifier.EmailSender, opts ...Option) *AuctionCloser {
	s := &AuctionCloser{
		repo:      repo,
		sender:    sender,
		clock:     clock.SystemClock{},
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close closes every current auction older than the threshold and returns how many
// were closed and persisted. A failed update skips that auction and moves on.
func (s *AuctionCloser) Close() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalClosed = 0

	auctions, err := s.repo.CurrentAuctions()
	if err != nil {
		utils.Error("AuctionCloser: failed to fetch current auctions", map[string]any{"error": err.Error()})
		return 0
	}

	now := s.clock.Now()
	for _, auction := range auctions {
		if !s.expired(auction, now) {
			continue
		}
		if s.closeOne(auction) {
			s.totalClosed++
		}
	}

	utils.Info("AuctionCloser: run finished", map[string]any{
		"current": len(auctions),
		"closed":  s.totalClosed,
	})
	return s.totalClosed
}

// TotalClosed returns the number of auctions closed by the last Close call
func (s *AuctionCloser) TotalClosed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalClosed
}

// expired reports whether the auction reached the threshold age; exactly on the threshold counts
func (s *AuctionCloser) expired(auction *model.Auction, now time.Time) bool {
	return !auction.CreatedAt.After(now.Add(-s.threshold))
}

func (s *AuctionCloser) closeOne(auction *model.Auction) bool {
	if err := auction.Close(); err != nil {
		utils.Warn("AuctionCloser: skipping auction", map[string]any{
			"auction_id": auction.AuctionID,
			"error":      err.Error(),
		})
		return false
	}

	if err := s.repo.Update(auction); err != nil {
		utils.Warn("AuctionCloser: failed to update auction", map[string]any{
			"auction_id": auction.AuctionID,
			"error":      err.Error(),
		})
		return false
	}

	if err := s.sender.Send(auction); err != nil {
		utils.Warn("AuctionCloser: failed to notify winner", map[string]any{
			"auction_id": auction.AuctionID,
			"error":      err.Error(),
		})
	}
	return true
}
