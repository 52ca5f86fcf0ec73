package catalog

import (
	"auction-marketplace/internal/auction"
	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// CatalogService defines the business logic for the auction catalog:
// registration, listing, bidding, watchlists and settlement.
//
// Every operation holds mu for its whole duration, so item and user state
// is never touched by two operators at once.
type CatalogService struct {
	mu         sync.Mutex
	repo       repository.CatalogStore
	now        func() time.Time
	bcryptCost int
}

// Option configures a CatalogService
type Option func(*CatalogService)

// WithClock sets the time source for item end times and open checks
func WithClock(now func() time.Time) Option {
	return func(s *CatalogService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithBcryptCost sets the cost used to hash passwords
func WithBcryptCost(cost int) Option {
	return func(s *CatalogService) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(repo repository.CatalogStore, opts ...Option) *CatalogService {
	s := &CatalogService{
		repo:       repo,
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterUser creates a user with a unique, case-sensitive username
func (s *CatalogService) RegisterUser(username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return fmt.Errorf("service: %w - empty username or password", auctionerrors.ErrInvalidCredentials)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("service: failed to hash password for %s: %w", username, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.AddUser(auction.NewUser(username, string(hash))); err != nil {
		return fmt.Errorf("service: failed to register user %s: %w", username, err)
	}

	utils.Info("user registered", map[string]any{"username": username})
	return nil
}

// Authenticate returns the user matching username and password
func (s *CatalogService) Authenticate(username, password string) (*auction.User, error) {
	s.mu.Lock()
	user, err := s.repo.GetUser(username)
	s.mu.Unlock()

	if err != nil {
		if errors.Is(err, auctionerrors.ErrUserNotFound) {
			return nil, fmt.Errorf("service: %w - unknown user %s", auctionerrors.ErrInvalidCredentials, username)
		}
		return nil, fmt.Errorf("service: failed to look up user %s: %w", username, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte(password)); err != nil {
		utils.Warn("authentication failed", map[string]any{"username": username})
		return nil, fmt.Errorf("service: %w - wrong password for %s", auctionerrors.ErrInvalidCredentials, username)
	}

	return user, nil
}

// LookupUser returns a registered user by username
func (s *CatalogService) LookupUser(username string) (*auction.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.repo.GetUser(username)
	if err != nil {
		return nil, fmt.Errorf("service: failed to look up user %s: %w", username, err)
	}
	return user, nil
}

// AddItem lists a new item whose auction ends durationMinutes from now
func (s *CatalogService) AddItem(name string, startingPrice, reservePrice decimal.Decimal, durationMinutes int, minBidIncrement decimal.Decimal) (models.ItemView, error) {
	if durationMinutes < 0 {
		return models.ItemView{}, fmt.Errorf("service: %w - negative duration", auctionerrors.ErrInvalidItem)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	endTime := s.now().Add(time.Duration(durationMinutes) * time.Minute)
	item, err := auction.NewItem(name, startingPrice, reservePrice, minBidIncrement, endTime)
	if err != nil {
		return models.ItemView{}, fmt.Errorf("service: %w", err)
	}
	item.WithClock(s.now)

	if err := s.repo.AddItem(item); err != nil {
		return models.ItemView{}, fmt.Errorf("service: failed to add item %s: %w", name, err)
	}

	utils.Info("item listed", map[string]any{
		"item_id":        item.ID(),
		"name":           name,
		"starting_price": startingPrice.String(),
		"end_time":       endTime.Format(time.RFC3339),
	})
	return item.View(), nil
}

// ListActiveItems returns a snapshot of the active items with 1-based indices
func (s *CatalogService) ListActiveItems() []models.ItemView {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.repo.ActiveItems()
	views := make([]models.ItemView, 0, len(items))
	for i, item := range items {
		v := item.View()
		v.Index = i + 1
		views = append(views, v)
	}
	return views
}

// PlaceBid validates and records a bid on the active item at the 0-based index.
// The index is checked first, then the item decides: a closed auction rejects
// any amount, an open one rejects anything below its minimum (always positive).
func (s *CatalogService) PlaceBid(index int, bidder *auction.User, amount decimal.Decimal) (models.Bid, error) {
	if bidder == nil {
		return models.Bid{}, fmt.Errorf("service: %w - missing bidder", auctionerrors.ErrInvalidBid)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.repo.ActiveItem(index)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to select item: %w", err)
	}

	bid, err := item.PlaceBid(bidder, amount)
	if err != nil {
		utils.Warn("bid rejected", map[string]any{
			"item_id":     item.ID(),
			"username":    bidder.Username(),
			"amount":      amount.String(),
			"highest_bid": item.HighestBid().String(),
			"error":       err.Error(),
		})
		return models.Bid{}, fmt.Errorf("service: %w", err)
	}

	utils.Info("bid placed", map[string]any{
		"bid_id":   bid.BidID,
		"item_id":  bid.ItemID,
		"username": bid.Username,
		"amount":   amount.String(),
	})
	return bid, nil
}

// AddToWatchlist adds the active item at the 0-based index to the user's watchlist
func (s *CatalogService) AddToWatchlist(index int, user *auction.User) (models.WatchEntry, error) {
	if user == nil {
		return models.WatchEntry{}, fmt.Errorf("service: %w - missing user", auctionerrors.ErrInvalidCredentials)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.repo.ActiveItem(index)
	if err != nil {
		return models.WatchEntry{}, fmt.Errorf("service: failed to select item: %w", err)
	}

	if !user.AddToWatchlist(item) {
		return models.WatchEntry{}, fmt.Errorf("service: %w - %s", auctionerrors.ErrItemAlreadyWatchlisted, item.Name())
	}
	return auction.WatchEntryFor(item), nil
}

// ListBids returns the user's latest bid per item
func (s *CatalogService) ListBids(user *auction.User) []models.BidEntry {
	if user == nil {
		return []models.BidEntry{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return user.ListBids()
}

// ListWatchlist returns the user's watched items with their current state
func (s *CatalogService) ListWatchlist(user *auction.User) []models.WatchEntry {
	if user == nil {
		return []models.WatchEntry{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return user.ListWatchlist()
}

// DeclareWinners reports an outcome for every active item and moves items
// that have a bidder and met their reserve into history. Items without bids
// or below reserve stay active, even past their end time.
func (s *CatalogService) DeclareWinners() []models.SettlementResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.repo.ActiveItems()
	results := make([]models.SettlementResult, 0, len(items))
	var settled []string

	for _, item := range items {
		result := models.SettlementResult{
			ItemID:   item.ID(),
			ItemName: item.Name(),
			Amount:   item.HighestBid(),
		}

		bidder := item.HighestBidder()
		switch {
		case bidder == nil:
			result.Outcome = models.OutcomeNoBids
		case !item.IsReserveMet():
			result.Outcome = models.OutcomeReserveNotMet
			result.Bidder = bidder.Username()
		default:
			result.Outcome = models.OutcomeWon
			result.Bidder = bidder.Username()
			settled = append(settled, item.ID())
		}

		utils.Debug("settlement outcome", map[string]any{
			"item_id": result.ItemID,
			"outcome": string(result.Outcome),
			"bidder":  result.Bidder,
			"amount":  result.Amount.String(),
		})
		results = append(results, result)
	}

	utils.Info("winners declared", map[string]any{
		"evaluated": len(results),
		"settled":   len(settled),
	})

	if moved := s.repo.Archive(settled...); moved != len(settled) {
		utils.Error("settlement archived fewer items than expected", map[string]any{
			"expected": len(settled),
			"moved":    moved,
		})
	}

	return results
}

// AuctionHistory returns the settled items with their final price and winner
func (s *CatalogService) AuctionHistory() []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.repo.History()
	history := make([]models.HistoryEntry, 0, len(items))
	for _, item := range items {
		history = append(history, item.HistoryEntry())
	}
	return history
}
