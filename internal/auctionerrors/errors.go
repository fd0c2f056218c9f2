package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrNoBids          = errors.New("no bids found for auction")
	ErrPaymentExists   = errors.New("payment already generated for auction")
)

// business logic errors
var (
	ErrAuctionClosed  = errors.New("auction already closed")
	ErrInvalidAuction = errors.New("invalid auction")
	ErrInvalidBid     = errors.New("invalid bid")
	ErrBidTooLow      = errors.New("bid amount too low")
)
