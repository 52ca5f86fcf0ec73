package handler

import (
	"net/http"
	"strings"

	"auction-marketplace/internal/auction"
	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/session"
	"auction-marketplace/services/auction/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mock_handler.go -package=handler auction-marketplace/services/auction/handler CatalogServiceInterface

type CatalogServiceInterface interface {
	RegisterUser(username, password string) error
	Authenticate(username, password string) (*auction.User, error)
	LookupUser(username string) (*auction.User, error)
	AddItem(name string, startingPrice, reservePrice decimal.Decimal, durationMinutes int, minBidIncrement decimal.Decimal) (model.ItemView, error)
	ListActiveItems() []model.ItemView
	PlaceBid(index int, bidder *auction.User, amount decimal.Decimal) (model.Bid, error)
	AddToWatchlist(index int, user *auction.User) (model.WatchEntry, error)
	ListBids(user *auction.User) []model.BidEntry
	ListWatchlist(user *auction.User) []model.WatchEntry
	DeclareWinners() []model.SettlementResult
	AuctionHistory() []model.HistoryEntry
}

const (
	ctxUserKey  = "auction.user"
	ctxTokenKey = "auction.token"
)

type AuctionHandler struct {
	service  CatalogServiceInterface
	sessions *session.Store
}

func NewAuctionHandler(service CatalogServiceInterface, sessions *session.Store) *AuctionHandler {
	return &AuctionHandler{service: service, sessions: sessions}
}

// RequireSession resolves the bearer token to a user and aborts with 401 otherwise
func (h *AuctionHandler) RequireSession(c *gin.Context) {
	token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))

	username, err := h.sessions.Resolve(token)
	if err != nil {
		helpers.RespondError(c, err)
		return
	}

	user, err := h.service.LookupUser(username)
	if err != nil {
		h.sessions.Delete(token)
		helpers.RespondError(c, err)
		return
	}

	c.Set(ctxUserKey, user)
	c.Set(ctxTokenKey, token)
	c.Next()
}

func currentUser(c *gin.Context) *auction.User {
	if v, ok := c.Get(ctxUserKey); ok {
		if u, ok := v.(*auction.User); ok {
			return u
		}
	}
	return nil
}

// RegisterHandler handles POST /users
func (h *AuctionHandler) RegisterHandler(c *gin.Context) {
	var req helpers.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	if err := h.service.RegisterUser(req.Username, req.Password); err != nil {
		helpers.RespondError(c, err)
		utils.Warn("RegisterHandler: registration failed", map[string]any{"username": req.Username, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"username": req.Username}, "user registered successfully")
	helpers.LogSuccess("RegisterHandler", "user registered successfully", map[string]any{"username": req.Username})
}

// LoginHandler handles POST /sessions
func (h *AuctionHandler) LoginHandler(c *gin.Context) {
	var req helpers.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, err := h.service.Authenticate(req.Username, req.Password)
	if err != nil {
		helpers.RespondError(c, err)
		utils.Warn("LoginHandler: login failed", map[string]any{"username": req.Username})
		return
	}

	resp := helpers.SessionResponse{
		Token:    h.sessions.Create(user.Username()),
		Username: user.Username(),
	}
	utils.JSONResponse(c, http.StatusCreated, resp, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{"username": user.Username()})
}

// LogoutHandler handles DELETE /sessions
func (h *AuctionHandler) LogoutHandler(c *gin.Context) {
	token := c.GetString(ctxTokenKey)
	h.sessions.Delete(token)

	utils.JSONResponse(c, http.StatusOK, nil, "logged out successfully")
	helpers.LogSuccess("LogoutHandler", "logged out successfully", nil)
}

// ListItemsHandler handles GET /items
func (h *AuctionHandler) ListItemsHandler(c *gin.Context) {
	items := h.service.ListActiveItems()
	if items == nil {
		items = []model.ItemView{}
	}

	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
}

// AddItemHandler handles POST /items
func (h *AuctionHandler) AddItemHandler(c *gin.Context) {
	var req helpers.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddItemHandler", err)
		return
	}

	item, err := h.service.AddItem(req.Name, req.StartingPrice, req.ReservePrice, req.DurationMinutes, req.MinBidIncrement)
	if err != nil {
		helpers.RespondError(c, err)
		utils.Warn("AddItemHandler: failed to add item", map[string]any{"name": req.Name, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, item, "item added successfully")
	helpers.LogSuccess("AddItemHandler", "item added successfully", map[string]any{
		"item_id": item.ItemID,
		"name":    item.Name,
	})
}

// PlaceBidHandler handles POST /items/:index/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	index, err := helpers.ParseItemIndex(c)
	if err != nil {
		helpers.RespondError(c, err)
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	user := currentUser(c)
	bid, err := h.service.PlaceBid(index, user, req.Amount)
	if err != nil {
		helpers.RespondError(c, err)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler": "PlaceBidHandler",
			"index":   index + 1,
			"amount":  req.Amount.String(),
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bid, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":   bid.BidID,
		"item_id":  bid.ItemID,
		"username": bid.Username,
		"amount":   bid.Amount.String(),
	})
}

// WatchHandler handles POST /items/:index/watch
func (h *AuctionHandler) WatchHandler(c *gin.Context) {
	index, err := helpers.ParseItemIndex(c)
	if err != nil {
		helpers.RespondError(c, err)
		return
	}

	entry, err := h.service.AddToWatchlist(index, currentUser(c))
	if err != nil {
		helpers.RespondError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, entry, "item added to watchlist")
}

// MyBidsHandler handles GET /me/bids
func (h *AuctionHandler) MyBidsHandler(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		helpers.RespondError(c, auctionerrors.ErrSessionNotFound)
		return
	}

	bids := h.service.ListBids(user)
	if bids == nil {
		bids = []model.BidEntry{}
	}
	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}

// MyWatchlistHandler handles GET /me/watchlist
func (h *AuctionHandler) MyWatchlistHandler(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		helpers.RespondError(c, auctionerrors.ErrSessionNotFound)
		return
	}

	entries := h.service.ListWatchlist(user)
	if entries == nil {
		entries = []model.WatchEntry{}
	}
	utils.JSONResponse(c, http.StatusOK, entries, "watchlist retrieved successfully")
}

// DeclareWinnersHandler handles POST /settlements
func (h *AuctionHandler) DeclareWinnersHandler(c *gin.Context) {
	results := h.service.DeclareWinners()
	if results == nil {
		results = []model.SettlementResult{}
	}

	won := 0
	for _, r := range results {
		if r.Outcome == model.OutcomeWon {
			won++
		}
	}

	utils.JSONResponse(c, http.StatusOK, results, "winners declared")
	helpers.LogSuccess("DeclareWinnersHandler", "winners declared", map[string]any{
		"items": len(results),
		"won":   won,
	})
}

// HistoryHandler handles GET /history
func (h *AuctionHandler) HistoryHandler(c *gin.Context) {
	history := h.service.AuctionHistory()
	if history == nil {
		history = []model.HistoryEntry{}
	}
	utils.JSONResponse(c, http.StatusOK, history, "history retrieved successfully")
}
