package helpers

import "github.com/shopspring/decimal"

// Request/Response DTOs
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Amounts are validated by the service, decimal fields carry no binding tags
type AddItemRequest struct {
	Name            string          `json:"name" binding:"required"`
	StartingPrice   decimal.Decimal `json:"starting_price"`
	ReservePrice    decimal.Decimal `json:"reserve_price"`
	DurationMinutes int             `json:"duration_minutes" binding:"gte=0"`
	MinBidIncrement decimal.Decimal `json:"min_bid_increment"`
}

type PlaceBidRequest struct {
	Amount decimal.Decimal `json:"amount"`
}
