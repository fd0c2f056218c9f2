package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-settlement/internal/auctionerrors"
	model "auction-settlement/internal/models"
	"auction-settlement/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid auction details"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction already closed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToBidResponse converts a bid into its response DTO
func ToBidResponse(auctionID string, bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		AuctionID: auctionID,
		UserID:    bid.UserID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToAuctionResponse converts an auction into its response DTO
func ToAuctionResponse(auction model.Auction) AuctionResponse {
	bids := make([]BidResponse, 0, len(auction.Bids))
	for _, b := range auction.Bids {
		bids = append(bids, ToBidResponse(auction.AuctionID, b))
	}
	return AuctionResponse{
		AuctionID:   auction.AuctionID,
		Description: auction.Description,
		CreatedAt:   auction.CreatedAt.UTC().Format(time.RFC3339),
		Closed:      auction.Closed,
		Bids:        bids,
	}
}

// ToPaymentResponse converts a payment into its response DTO; the due date is rendered as a plain date
func ToPaymentResponse(p model.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID: p.PaymentID,
		AuctionID: p.AuctionID,
		Amount:    p.Amount,
		DueDate:   p.DueDate.Format(time.DateOnly),
	}
}
