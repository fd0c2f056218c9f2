package handler

import (
	"fmt"
	"net/http"
	"time"

	model "auction-settlement/internal/models"
	"auction-settlement/services/auction/helpers"
	"auction-settlement/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_auction_handler.go -package=handler

type AuctionServiceInterface interface {
	CreateAuction(description string, createdAt time.Time) (model.Auction, error)
	GetAuction(auctionID string) (model.Auction, error)
	PlaceBid(auctionID, userID string, amount float64) (model.Bid, error)
	CloseExpired() int
	GeneratePayments() (int, error)
	ListPayments() []model.Payment
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	auction, err := h.service.CreateAuction(req.Description, req.CreatedAt)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"handler": "CreateAuctionHandler",
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToAuctionResponse(auction), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.AuctionID,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	auction, err := h.service.GetAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(auction), "auction retrieved successfully")
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(auctionID, req.UserID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to record bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"auction_id": auctionID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(auctionID, bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": auctionID,
		"user_id":    bid.UserID,
		"amount":     bid.Amount,
	})
}

// CloseAuctionsHandler handles POST /jobs/close
func (h *AuctionHandler) CloseAuctionsHandler(c *gin.Context) {
	closed := h.service.CloseExpired()

	utils.JSONResponse(c, http.StatusOK, helpers.CloseJobResponse{Closed: closed}, "auctions closed successfully")
	helpers.LogSuccess("CloseAuctionsHandler", "auctions closed successfully", map[string]any{"closed": closed})
}

// GeneratePaymentsHandler handles POST /jobs/payments
func (h *AuctionHandler) GeneratePaymentsHandler(c *gin.Context) {
	generated, err := h.service.GeneratePayments()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("GeneratePaymentsHandler: failed to generate payments", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.PaymentJobResponse{Generated: generated}, "payments generated successfully")
	helpers.LogSuccess("GeneratePaymentsHandler", "payments generated successfully", map[string]any{"generated": generated})
}

// ListPaymentsHandler handles GET /payments
func (h *AuctionHandler) ListPaymentsHandler(c *gin.Context) {
	payments := h.service.ListPayments()

	resp := make([]helpers.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, helpers.ToPaymentResponse(p))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "payments retrieved successfully")
	helpers.LogSuccess("ListPaymentsHandler", "payments retrieved successfully", map[string]any{"count": len(resp)})
}
