package repository

import (
	"auction-settlement/internal/auctionerrors"
	model "auction-settlement/internal/models"
	"fmt"
	"sort"
	"sync"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionRepository defines the auction storage interface used by the settlement services
type AuctionRepository interface {
	CurrentAuctions() ([]*model.Auction, error)
	ClosedAuctions() ([]*model.Auction, error)
	Update(auction *model.Auction) error
}

// PaymentRepository defines the payment storage interface
type PaymentRepository interface {
	Save(payment model.Payment) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionRepository
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions map[string]*model.Auction // key: auctionID -> value: auction
}

// NewMemoryRepo creates a new in-memory auction repository
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions: make(map[string]*model.Auction),
	}
}

// AddAuction stores an auction, replacing any auction with the same ID
func (r *MemoryRepo) AddAuction(auction model.Auction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[auction.AuctionID] = cloneAuction(&auction)
}

// GetAuction returns a copy of a single auction
func (r *MemoryRepo) GetAuction(auctionID string) (*model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return nil, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return cloneAuction(auction), nil
}

// RecordBid appends a bid to an open auction
func (r *MemoryRepo) RecordBid(auctionID string, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return fmt.Errorf("record bid for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if auction.Closed {
		return fmt.Errorf("record bid for auction %s: %w", auctionID, auctionerrors.ErrAuctionClosed)
	}

	auction.Bids = append(auction.Bids, bid)
	return nil
}

// CurrentAuctions returns all open auctions ordered by creation time
func (r *MemoryRepo) CurrentAuctions() ([]*model.Auction, error) {
	return r.filter(false), nil
}

// ClosedAuctions returns all closed auctions ordered by creation time
func (r *MemoryRepo) ClosedAuctions() ([]*model.Auction, error) {
	return r.filter(true), nil
}

// Update persists the closed state of an existing auction. Bids are owned by RecordBid
// and are never overwritten from the caller's copy.
func (r *MemoryRepo) Update(auction *model.Auction) error {
	if auction == nil {
		return fmt.Errorf("update auction: %w", auctionerrors.ErrInvalidAuction)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.auctions[auction.AuctionID]
	if !ok {
		return fmt.Errorf("update auction %s: %w", auction.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	stored.Closed = auction.Closed
	return nil
}

func (r *MemoryRepo) filter(closed bool) []*model.Auction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]*model.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		if a.Closed == closed {
			auctions = append(auctions, cloneAuction(a))
		}
	}
	sort.Slice(auctions, func(i, j int) bool {
		if auctions[i].CreatedAt.Equal(auctions[j].CreatedAt) {
			return auctions[i].AuctionID < auctions[j].AuctionID
		}
		return auctions[i].CreatedAt.Before(auctions[j].CreatedAt)
	})
	return auctions
}

// cloneAuction copies an auction so callers never share the stored bids slice
func cloneAuction(a *model.Auction) *model.Auction {
	c := *a
	c.Bids = append([]model.Bid(nil), a.Bids...)
	return &c
}

// MemoryPaymentRepo is a concurrency-safe in-memory implementation of PaymentRepository
type MemoryPaymentRepo struct {
	mu       sync.RWMutex
	payments []model.Payment
}

// NewMemoryPaymentRepo creates a new in-memory payment repository
func NewMemoryPaymentRepo() *MemoryPaymentRepo {
	return &MemoryPaymentRepo{}
}

// Save stores a payment
func (r *MemoryPaymentRepo) Save(payment model.Payment) error {
	if payment.AuctionID == "" {
		return fmt.Errorf("save payment %s: %w", payment.PaymentID, auctionerrors.ErrInvalidAuction)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.payments {
		if p.AuctionID == payment.AuctionID {
			return fmt.Errorf("save payment for auction %s: %w", payment.AuctionID, auctionerrors.ErrPaymentExists)
		}
	}
	r.payments = append(r.payments, payment)
	return nil
}

// ListPayments returns all saved payments in insertion order
func (r *MemoryPaymentRepo) ListPayments() []model.Payment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Payment(nil), r.payments...)
}
