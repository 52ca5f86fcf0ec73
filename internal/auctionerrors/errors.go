package auctionerrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Repository-level errors
var (
	ErrDuplicateUser   = errors.New("username already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrIndexOutOfRange = errors.New("item index out of range")
	ErrSessionNotFound = errors.New("session not found")
)

// business logic errors
var (
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidItem            = errors.New("invalid item")
	ErrInvalidBid             = errors.New("invalid bid")
	ErrAuctionClosed          = errors.New("auction is closed")
	ErrBidTooLow              = errors.New("bid amount too low")
	ErrItemAlreadyWatchlisted = errors.New("item already in watchlist")
)

// BidTooLowError reports the smallest amount the item would have accepted.
// It matches ErrBidTooLow with errors.Is.
type BidTooLowError struct {
	Minimum decimal.Decimal
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("%s: must be at least %s", ErrBidTooLow, e.Minimum.StringFixed(2))
}

func (e *BidTooLowError) Unwrap() error {
	return ErrBidTooLow
}
