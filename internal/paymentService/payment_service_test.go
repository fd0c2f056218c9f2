package payment

import (
	"auction-settlement/internal/auctionerrors"
	"auction-settlement/internal/clock"
	"auction-settlement/internal/evaluator"
	model "auction-settlement/internal/models"
	"auction-settlement/internal/repository"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Helper to create a closed auction with one bid per amount
func closedAuction(id string, amounts ...float64) *model.Auction {
	auction := &model.Auction{AuctionID: id, Description: "Video game", Closed: true}
	for i, amount := range amounts {
		auction.Bids = append(auction.Bids, model.Bid{
			BidID:  fmt.Sprintf("%s-bid-%d", id, i),
			UserID: fmt.Sprintf("user%d", i),
			Amount: amount,
		})
	}
	return auction
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Tests Generate saves the winning amount
func TestPaymentGenerator_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auctions := repository.NewMockAuctionRepository(ctrl)
	payments := repository.NewMockPaymentRepository(ctrl)
	wednesday := date(2012, time.April, 4)

	auctions.EXPECT().ClosedAuctions().Return([]*model.Auction{closedAuction("a1", 2000.0, 2500.0)}, nil)

	var saved model.Payment
	payments.EXPECT().Save(gomock.Any()).DoAndReturn(func(p model.Payment) error {
		saved = p
		return nil
	}).Times(1)

	generator := NewPaymentGenerator(auctions, payments, evaluator.NewEvaluator(), clock.Fixed{At: wednesday})
	count, err := generator.Generate()

	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.InDelta(t, 2500.0, saved.Amount, 0.00001)
	require.Equal(t, "a1", saved.AuctionID)
	require.Equal(t, wednesday, saved.DueDate)
	_, parseErr := uuid.Parse(saved.PaymentID)
	require.NoError(t, parseErr, "PaymentID should be a valid UUID")
}

// Tests the due date is pushed to the next business day
func TestPaymentGenerator_DueDate(t *testing.T) {
	tests := []struct {
		name     string
		today    time.Time
		expected time.Time
	}{
		{name: "saturday_to_monday", today: date(2012, time.April, 7), expected: date(2012, time.April, 9)},
		{name: "sunday_to_monday", today: date(2012, time.April, 8), expected: date(2012, time.April, 9)},
		{name: "monday_unchanged", today: date(2012, time.April, 9), expected: date(2012, time.April, 9)},
		{name: "friday_unchanged", today: date(2012, time.April, 13), expected: date(2012, time.April, 13)},
		{name: "saturday_across_month", today: date(2012, time.March, 31), expected: date(2012, time.April, 2)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auctions := repository.NewMockAuctionRepository(ctrl)
			payments := repository.NewMockPaymentRepository(ctrl)
			mockClock := clock.NewMockClock(ctrl)

			auctions.EXPECT().ClosedAuctions().Return([]*model.Auction{closedAuction("a1", 2000.0, 2500.0)}, nil)
			mockClock.EXPECT().Today().Return(tc.today)

			var saved model.Payment
			payments.EXPECT().Save(gomock.Any()).DoAndReturn(func(p model.Payment) error {
				saved = p
				return nil
			})

			_, err := NewPaymentGenerator(auctions, payments, evaluator.NewEvaluator(), mockClock).Generate()
			require.NoError(t, err)

			require.Equal(t, tc.expected, saved.DueDate)
			require.True(t, time.Monday <= saved.DueDate.Weekday() && saved.DueDate.Weekday() <= time.Friday)
		})
	}
}

// One payment per closed auction, skipping auctions that cannot be paid
func TestPaymentGenerator_MultipleAuctions(t *testing.T) {
	tests := []struct {
		name        string
		auctions    []*model.Auction
		saveErrs    map[string]error
		expectCount int
		expectSaves []string
	}{
		{
			name:        "one_payment_each",
			auctions:    []*model.Auction{closedAuction("a1", 100), closedAuction("a2", 300, 200), closedAuction("a3", 50)},
			expectCount: 3,
			expectSaves: []string{"a1", "a2", "a3"},
		},
		{
			name:        "skips_auction_without_bids",
			auctions:    []*model.Auction{closedAuction("a1"), closedAuction("a2", 300)},
			expectCount: 1,
			expectSaves: []string{"a2"},
		},
		{
			name:        "save_failure_skips_auction",
			auctions:    []*model.Auction{closedAuction("a1", 100), closedAuction("a2", 300)},
			saveErrs:    map[string]error{"a1": errors.New("disk full")},
			expectCount: 1,
			expectSaves: []string{"a1", "a2"},
		},
		{
			name:        "already_generated",
			auctions:    []*model.Auction{closedAuction("a1", 100)},
			saveErrs:    map[string]error{"a1": auctionerrors.ErrPaymentExists},
			expectCount: 0,
			expectSaves: []string{"a1"},
		},
		{
			name:        "no_closed_auctions",
			auctions:    nil,
			expectCount: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auctions := repository.NewMockAuctionRepository(ctrl)
			payments := repository.NewMockPaymentRepository(ctrl)
			auctions.EXPECT().ClosedAuctions().Return(tc.auctions, nil)

			var saves []string
			payments.EXPECT().Save(gomock.Any()).DoAndReturn(func(p model.Payment) error {
				saves = append(saves, p.AuctionID)
				return tc.saveErrs[p.AuctionID]
			}).Times(len(tc.expectSaves))

			count, err := NewPaymentGenerator(auctions, payments, nil, clock.Fixed{At: date(2012, time.April, 4)}).Generate()
			require.NoError(t, err)
			require.Equal(t, tc.expectCount, count)
			require.Equal(t, tc.expectSaves, saves)
		})
	}
}

func TestPaymentGenerator_FetchFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auctions := repository.NewMockAuctionRepository(ctrl)
	payments := repository.NewMockPaymentRepository(ctrl)
	fetchErr := errors.New("db failure")
	auctions.EXPECT().ClosedAuctions().Return(nil, fetchErr)

	count, err := NewPaymentGenerator(auctions, payments, nil, nil).Generate()
	require.Error(t, err)
	require.True(t, errors.Is(err, fetchErr))
	require.Zero(t, count)
}

// A nil clock uses the current date
func TestPaymentGenerator_DefaultsToSystemClock(t *testing.T) {
	auctions := repository.NewMemoryRepo()
	auctions.AddAuction(*closedAuction("a1", 10, 20))
	payments := repository.NewMemoryPaymentRepo()

	before := clock.SystemClock{}.Today()
	count, err := NewPaymentGenerator(auctions, payments, nil, nil).Generate()
	require.NoError(t, err)
	require.Equal(t, 1, count)
	after := clock.SystemClock{}.Today()

	saved := payments.ListPayments()
	require.Len(t, saved, 1)
	// the run may straddle midnight
	require.Contains(t, []time.Time{NextBusinessDay(before), NextBusinessDay(after)}, saved[0].DueDate)

	// running again does not duplicate the payment
	count, err = NewPaymentGenerator(auctions, payments, nil, nil).Generate()
	require.NoError(t, err)
	require.Zero(t, count)
	require.Len(t, payments.ListPayments(), 1)
}

func TestNextBusinessDay(t *testing.T) {
	for day := 1; day <= 14; day++ {
		in := date(2012, time.April, day)
		out := NextBusinessDay(in)

		require.NotEqual(t, time.Saturday, out.Weekday())
		require.NotEqual(t, time.Sunday, out.Weekday())
		require.False(t, out.Before(in))
		require.LessOrEqual(t, out.Sub(in), 48*time.Hour)
	}
}
