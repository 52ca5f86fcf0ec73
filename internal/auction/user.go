package auction

import (
	"auction-marketplace/internal/models"

	"github.com/shopspring/decimal"
)

type ledgerEntry struct {
	item   *Item
	amount decimal.Decimal
}

// User is a registered participant. The ledger keeps only the latest amount
// per item, in the order items were first bid on. Callers outside the catalog
// treat a *User as an identity handle and read it through CatalogService.
type User struct {
	username     string
	passwordHash string
	ledger       []ledgerEntry
	ledgerIndex  map[string]int // key: itemID -> value: position in ledger
	watchlist    []*Item
}

// NewUser creates a user with an empty ledger and watchlist
func NewUser(username, passwordHash string) *User {
	return &User{
		username:     username,
		passwordHash: passwordHash,
		ledgerIndex:  make(map[string]int),
	}
}

func (u *User) Username() string     { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }

// addBid records amount as the user's latest bid on item. Only Item.PlaceBid
// calls it, after validating the bid.
func (u *User) addBid(item *Item, amount decimal.Decimal) {
	if pos, ok := u.ledgerIndex[item.ID()]; ok {
		u.ledger[pos].amount = amount
		return
	}
	u.ledgerIndex[item.ID()] = len(u.ledger)
	u.ledger = append(u.ledger, ledgerEntry{item: item, amount: amount})
}

// AddToWatchlist appends item unless it is already watched. A User is not safe
// for concurrent use; outside this package only CatalogService mutates it,
// under its lock.
func (u *User) AddToWatchlist(item *Item) bool {
	for _, w := range u.watchlist {
		if w.ID() == item.ID() {
			return false
		}
	}
	u.watchlist = append(u.watchlist, item)
	return true
}

// ListBids returns the ledger in insertion order
func (u *User) ListBids() []models.BidEntry {
	bids := make([]models.BidEntry, 0, len(u.ledger))
	for _, e := range u.ledger {
		bids = append(bids, models.BidEntry{
			ItemID:   e.item.ID(),
			ItemName: e.item.Name(),
			Amount:   e.amount,
		})
	}
	return bids
}

// ListWatchlist reads each watched item's current state
func (u *User) ListWatchlist() []models.WatchEntry {
	entries := make([]models.WatchEntry, 0, len(u.watchlist))
	for _, item := range u.watchlist {
		entries = append(entries, watchEntry(item))
	}
	return entries
}

func watchEntry(item *Item) models.WatchEntry {
	return models.WatchEntry{
		ItemID:     item.ID(),
		ItemName:   item.Name(),
		HighestBid: item.HighestBid(),
		EndTime:    item.EndTime(),
		Open:       item.IsOpen(),
	}
}

// WatchEntryFor returns the watchlist view of a single item
func WatchEntryFor(item *Item) models.WatchEntry {
	return watchEntry(item)
}
