package auction

import (
	"fmt"
	"strings"
	"time"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/utils"

	"github.com/shopspring/decimal"
)

// Item is a single auction lot. It owns its bid state; the only mutation
// after construction is PlaceBid. Item is not safe for concurrent use, callers
// serialize access (see catalogService).
type Item struct {
	id              string
	name            string
	startingPrice   decimal.Decimal
	reservePrice    decimal.Decimal
	highestBid      decimal.Decimal
	highestBidder   *User
	endTime         time.Time
	minBidIncrement decimal.Decimal
	now             func() time.Time
}

// NewItem validates the listing parameters and returns an open item whose
// highest bid starts at the starting price.
func NewItem(name string, startingPrice, reservePrice, minBidIncrement decimal.Decimal, endTime time.Time) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("auction: %w - empty item name", auctionerrors.ErrInvalidItem)
	}
	if startingPrice.IsNegative() || reservePrice.IsNegative() {
		return nil, fmt.Errorf("auction: %w - negative price", auctionerrors.ErrInvalidItem)
	}
	if !minBidIncrement.IsPositive() {
		return nil, fmt.Errorf("auction: %w - bid increment must be positive", auctionerrors.ErrInvalidItem)
	}

	return &Item{
		id:              utils.GenerateID(),
		name:            name,
		startingPrice:   startingPrice,
		reservePrice:    reservePrice,
		highestBid:      startingPrice,
		endTime:         endTime,
		minBidIncrement: minBidIncrement,
		now:             time.Now,
	}, nil
}

// WithClock replaces the time source used by IsOpen
func (i *Item) WithClock(now func() time.Time) *Item {
	if now != nil {
		i.now = now
	}
	return i
}

func (i *Item) ID() string                       { return i.id }
func (i *Item) Name() string                     { return i.name }
func (i *Item) StartingPrice() decimal.Decimal   { return i.startingPrice }
func (i *Item) ReservePrice() decimal.Decimal    { return i.reservePrice }
func (i *Item) HighestBid() decimal.Decimal      { return i.highestBid }
func (i *Item) HighestBidder() *User             { return i.highestBidder }
func (i *Item) EndTime() time.Time               { return i.endTime }
func (i *Item) MinBidIncrement() decimal.Decimal { return i.minBidIncrement }

// IsOpen reports whether the current time is strictly before the end time
func (i *Item) IsOpen() bool {
	return i.now().Before(i.endTime)
}

// IsReserveMet reports whether the highest bid reaches the reserve price
func (i *Item) IsReserveMet() bool {
	return i.highestBid.GreaterThanOrEqual(i.reservePrice)
}

// MinimumBid is the smallest amount the next bid must reach
func (i *Item) MinimumBid() decimal.Decimal {
	return i.highestBid.Add(i.minBidIncrement)
}

// PlaceBid accepts amount from bidder when the auction is open and amount is
// at least MinimumBid. On success the bid is also recorded in the bidder's
// ledger. A rejected bid leaves the item untouched.
func (i *Item) PlaceBid(bidder *User, amount decimal.Decimal) (models.Bid, error) {
	if !i.IsOpen() {
		return models.Bid{}, fmt.Errorf("auction: item %q: %w", i.name, auctionerrors.ErrAuctionClosed)
	}

	minimum := i.MinimumBid()
	if amount.LessThan(minimum) {
		return models.Bid{}, fmt.Errorf("auction: item %q: %w", i.name, &auctionerrors.BidTooLowError{Minimum: minimum})
	}

	i.highestBid = amount
	i.highestBidder = bidder
	bidder.addBid(i, amount)

	return models.Bid{
		BidID:     utils.GenerateID(),
		ItemID:    i.id,
		ItemName:  i.name,
		Username:  bidder.Username(),
		Amount:    amount,
		CreatedAt: i.now().UTC(),
	}, nil
}

// View returns a snapshot of the item's current state
func (i *Item) View() models.ItemView {
	v := models.ItemView{
		ItemID:          i.id,
		Name:            i.name,
		StartingPrice:   i.startingPrice,
		ReservePrice:    i.reservePrice,
		HighestBid:      i.highestBid,
		MinBidIncrement: i.minBidIncrement,
		EndTime:         i.endTime,
		Open:            i.IsOpen(),
	}
	if i.highestBidder != nil {
		v.HighestBidder = i.highestBidder.Username()
	}
	return v
}

// HistoryEntry describes the item as a settled sale
func (i *Item) HistoryEntry() models.HistoryEntry {
	entry := models.HistoryEntry{
		ItemID:     i.id,
		ItemName:   i.name,
		FinalPrice: i.highestBid,
	}
	if i.highestBidder != nil {
		entry.Winner = i.highestBidder.Username()
	}
	return entry
}
