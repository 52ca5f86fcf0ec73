package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrInvalidItem):
		return http.StatusBadRequest, "invalid item details"
	case errors.Is(err, auctionerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, auctionerrors.ErrSessionNotFound), errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusUnauthorized, "not logged in"
	case errors.Is(err, auctionerrors.ErrIndexOutOfRange):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, auctionerrors.ErrDuplicateUser):
		return http.StatusConflict, "username already registered"
	case errors.Is(err, auctionerrors.ErrItemAlreadyWatchlisted):
		return http.StatusConflict, "item already in watchlist"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return http.StatusGone, "auction is closed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError writes the mapped error response. A rejected bid also carries
// the minimum acceptable amount.
func RespondError(c *gin.Context, err error) {
	status, message := MapErrorToHTTP(err)

	var tooLow *auctionerrors.BidTooLowError
	if errors.As(err, &tooLow) {
		utils.JSONErrorWithDetails(c, status, err, message, gin.H{"minimum_bid": tooLow.Minimum})
		return
	}
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
}

// ParseItemIndex converts the 1-based :index path parameter to a 0-based index
func ParseItemIndex(c *gin.Context) (int, error) {
	raw := c.Param("index")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("item index %q: %w", raw, auctionerrors.ErrIndexOutOfRange)
	}
	return n - 1, nil
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
