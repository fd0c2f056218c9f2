package helpers

import "time"

// Request/Response DTOs
type CreateAuctionRequest struct {
	Description string    `json:"description" binding:"required"`
	CreatedAt   time.Time `json:"created_at"`
}

type PlaceBidRequest struct {
	UserID string  `json:"user_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	AuctionID string  `json:"auction_id"`
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type AuctionResponse struct {
	AuctionID   string        `json:"auction_id"`
	Description string        `json:"description"`
	CreatedAt   string        `json:"created_at"`
	Closed      bool          `json:"closed"`
	Bids        []BidResponse `json:"bids"`
}

type PaymentResponse struct {
	PaymentID string  `json:"payment_id"`
	AuctionID string  `json:"auction_id"`
	Amount    float64 `json:"amount"`
	DueDate   string  `json:"due_date"`
}

type CloseJobResponse struct {
	Closed int `json:"closed"`
}

type PaymentJobResponse struct {
	Generated int `json:"generated"`
}
