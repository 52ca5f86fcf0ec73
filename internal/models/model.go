package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Outcome classifies an item at settlement time
type Outcome string

const (
	OutcomeWon           Outcome = "won"
	OutcomeNoBids        Outcome = "no_bids"
	OutcomeReserveNotMet Outcome = "reserve_not_met"
)

// Bid represents an accepted bid on an item
type Bid struct {
	BidID     string          `json:"bid_id"`
	ItemID    string          `json:"item_id"`
	ItemName  string          `json:"item_name"`
	Username  string          `json:"username"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// ItemView is a point-in-time snapshot of an active auction item.
// Index is 1-based and only set when listed from the catalog.
type ItemView struct {
	Index           int             `json:"index,omitempty"`
	ItemID          string          `json:"item_id"`
	Name            string          `json:"name"`
	StartingPrice   decimal.Decimal `json:"starting_price"`
	ReservePrice    decimal.Decimal `json:"reserve_price"`
	HighestBid      decimal.Decimal `json:"highest_bid"`
	HighestBidder   string          `json:"highest_bidder,omitempty"`
	MinBidIncrement decimal.Decimal `json:"min_bid_increment"`
	EndTime         time.Time       `json:"end_time"`
	Open            bool            `json:"open"`
}

// BidEntry is one line of a user's bid ledger
type BidEntry struct {
	ItemID   string          `json:"item_id"`
	ItemName string          `json:"item_name"`
	Amount   decimal.Decimal `json:"amount"`
}

// WatchEntry is one line of a user's watchlist, read from the live item
type WatchEntry struct {
	ItemID     string          `json:"item_id"`
	ItemName   string          `json:"item_name"`
	HighestBid decimal.Decimal `json:"highest_bid"`
	EndTime    time.Time       `json:"end_time"`
	Open       bool            `json:"open"`
}

// HistoryEntry describes a settled item
type HistoryEntry struct {
	ItemID     string          `json:"item_id"`
	ItemName   string          `json:"item_name"`
	FinalPrice decimal.Decimal `json:"final_price"`
	Winner     string          `json:"winner"`
}

// SettlementResult is the per-item outcome reported by a settlement run
type SettlementResult struct {
	ItemID   string          `json:"item_id"`
	ItemName string          `json:"item_name"`
	Outcome  Outcome         `json:"outcome"`
	Bidder   string          `json:"bidder,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
}
