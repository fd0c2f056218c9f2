package notifier

import (
	"auction-settlement/internal/evaluator"
	model "auction-settlement/internal/models"
	"auction-settlement/utils"
	"fmt"
)

//go:generate mockgen -source=notifier.go -destination=mock_notifier.go -package=notifier

// EmailSender notifies the winning bidder of a closed auction
type EmailSender interface {
	Send(auction *model.Auction) error
}

// LogEmailSender writes the winner notification to the structured log instead of a mail server
type LogEmailSender struct {
	from      string
	evaluator *evaluator.Evaluator
}

// NewLogEmailSender creates a LogEmailSender using from as the sender address
func NewLogEmailSender(from string) *LogEmailSender {
	return &LogEmailSender{
		from:      from,
		evaluator: evaluator.NewEvaluator(),
	}
}

// Send logs a notification addressed to the auction's winning bidder
func (s *LogEmailSender) Send(auction *model.Auction) error {
	if auction == nil {
		return fmt.Errorf("notifier: nil auction")
	}

	fields := map[string]any{
		"from":        s.from,
		"auction_id":  auction.AuctionID,
		"description": auction.Description,
	}

	winner, err := s.evaluator.Winner(auction)
	if err != nil {
		utils.Info("auction closed without bids", fields)
		return nil
	}

	fields["to"] = winner.UserID
	fields["amount"] = winner.Amount
	utils.Info("winner notified", fields)
	return nil
}
