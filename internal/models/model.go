package models

import (
	"auction-settlement/internal/auctionerrors"
	"fmt"
	"time"
)

// User represents a participant in the auction
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Bid represents a user's bid on an auction
type Bid struct {
	BidID     string    `json:"bid_id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// Auction represents an item open for bidding. Bids are kept in submission order.
type Auction struct {
	AuctionID   string    `json:"auction_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	Closed      bool      `json:"closed"`
	Bids        []Bid     `json:"bids"`
}

// Close moves the auction from open to closed. It fails if the auction is already closed.
func (a *Auction) Close() error {
	if a.Closed {
		return fmt.Errorf("close auction %s: %w", a.AuctionID, auctionerrors.ErrAuctionClosed)
	}
	a.Closed = true
	return nil
}

// Payment is the settlement record generated for a closed auction
type Payment struct {
	PaymentID string    `json:"payment_id"`
	AuctionID string    `json:"auction_id"`
	Amount    float64   `json:"amount"`
	DueDate   time.Time `json:"due_date"`
}
