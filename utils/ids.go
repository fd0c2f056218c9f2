package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new random identifier for auctions, bids and payments
func GenerateID() string {
	return uuid.NewString()
}
