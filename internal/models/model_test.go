package models

import (
	"auction-settlement/internal/auctionerrors"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuction_Close(t *testing.T) {
	auction := &Auction{AuctionID: "a1", Description: "Tv"}

	require.NoError(t, auction.Close())
	require.True(t, auction.Closed)

	err := auction.Close()
	require.True(t, errors.Is(err, auctionerrors.ErrAuctionClosed), "expected ErrAuctionClosed, got: %v", err)
	require.True(t, auction.Closed)
}
