package integrationtests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserSessions(t *testing.T) {
	router := SetupTestRouter()

	creds := map[string]string{"username": "alice", "password": "secret"}
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/users", "", creds)
	require.Equal(t, http.StatusCreated, w.Code)

	tests := []struct {
		name       string
		method     string
		url        string
		body       any
		wantStatus int
	}{
		{name: "Duplicate_Username", method: http.MethodPost, url: "/users", body: creds, wantStatus: http.StatusConflict},
		{name: "Wrong_Password", method: http.MethodPost, url: "/sessions", body: map[string]string{"username": "alice", "password": "nope"}, wantStatus: http.StatusUnauthorized},
		{name: "Unknown_User", method: http.MethodPost, url: "/sessions", body: map[string]string{"username": "bob", "password": "secret"}, wantStatus: http.StatusUnauthorized},
		{name: "Invalid_JSON", method: http.MethodPost, url: "/sessions", body: []byte("{username: 'alice'}"), wantStatus: http.StatusBadRequest},
		{name: "Login", method: http.MethodPost, url: "/sessions", body: creds, wantStatus: http.StatusCreated},
		{name: "Protected_Without_Token", method: http.MethodGet, url: "/me/bids", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, w := ExecuteRequestAndParse(t, router, tt.method, tt.url, "", tt.body)
			require.Equal(t, tt.wantStatus, w.Code)
		})
	}

	t.Run("Logout_Invalidates_Token", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/sessions", "", creds)
		require.Equal(t, http.StatusCreated, w.Code)
		token := dataObject(t, resp)["token"].(string)

		_, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/me/bids", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, "/sessions", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		_, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/me/bids", token, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// Vase: starting 10, reserve 50, increment 5, one hour
func TestAuctionLifecycle(t *testing.T) {
	router := SetupTestRouter()
	seller := RegisterAndLogin(t, router, "seller", "pw")
	bob := RegisterAndLogin(t, router, "bob", "pw")

	vase := map[string]any{
		"name":              "Vase",
		"starting_price":    "10",
		"reserve_price":     "50",
		"duration_minutes":  60,
		"min_bid_increment": "5",
	}
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/items", seller, vase)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "Vase", dataObject(t, resp)["name"])

	bid := func(token, amount string) (map[string]any, int) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/items/1/bids", token, map[string]string{"amount": amount})
		return resp, w.Code
	}

	resp, code := bid(bob, "14")
	require.Equal(t, http.StatusConflict, code)
	require.Equal(t, map[string]any{"minimum_bid": "15"}, resp["details"])

	_, code = bid(bob, "15")
	require.Equal(t, http.StatusCreated, code)
	resp, code = bid(seller, "20")
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, "seller", dataObject(t, resp)["username"])

	// reserve not met: item stays active
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/settlements", seller, nil)
	require.Equal(t, http.StatusOK, w.Code)
	results := dataList(t, resp)
	require.Len(t, results, 1)
	require.Equal(t, "reserve_not_met", results[0].(map[string]any)["outcome"])

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/items", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := dataList(t, resp)
	require.Len(t, items, 1)
	require.Equal(t, "20", items[0].(map[string]any)["highest_bid"])

	_, code = bid(bob, "55")
	require.Equal(t, http.StatusCreated, code)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/settlements", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	result := dataList(t, resp)[0].(map[string]any)
	require.Equal(t, "won", result["outcome"])
	require.Equal(t, "bob", result["bidder"])
	require.Equal(t, "55", result["amount"])

	resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/items", "", nil)
	require.Empty(t, dataList(t, resp))

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/history", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	history := dataList(t, resp)
	require.Len(t, history, 1)
	entry := history[0].(map[string]any)
	require.Equal(t, "Vase", entry["item_name"])
	require.Equal(t, "55", entry["final_price"])
	require.Equal(t, "bob", entry["winner"])

	// the ledger keeps the latest bid per item after settlement
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/me/bids", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	bids := dataList(t, resp)
	require.Len(t, bids, 1)
	require.Equal(t, "55", bids[0].(map[string]any)["amount"])

	// a settled item no longer has an index
	_, code = bid(bob, "100")
	require.Equal(t, http.StatusNotFound, code)
}

func TestWatchlist(t *testing.T) {
	router := SetupTestRouter()
	carol := RegisterAndLogin(t, router, "carol", "pw")

	lamp := map[string]any{
		"name":              "Lamp",
		"starting_price":    "20",
		"reserve_price":     "35",
		"duration_minutes":  30,
		"min_bid_increment": "2",
	}
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/items", carol, lamp)
	require.Equal(t, http.StatusCreated, w.Code)

	tests := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{name: "Watch", url: "/items/1/watch", wantStatus: http.StatusCreated},
		{name: "Already_Watched", url: "/items/1/watch", wantStatus: http.StatusConflict},
		{name: "Out_Of_Range", url: "/items/2/watch", wantStatus: http.StatusNotFound},
		{name: "Not_A_Number", url: "/items/lamp/watch", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, w := ExecuteRequestAndParse(t, router, http.MethodPost, tt.url, carol, nil)
			require.Equal(t, tt.wantStatus, w.Code)
		})
	}

	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/items/1/bids", carol, map[string]string{"amount": "30"})
	require.Equal(t, http.StatusCreated, w.Code)

	// watchlist reflects the live highest bid
	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/me/watchlist", carol, nil)
	require.Equal(t, http.StatusOK, w.Code)
	entries := dataList(t, resp)
	require.Len(t, entries, 1)
	require.Equal(t, "Lamp", entries[0].(map[string]any)["item_name"])
	require.Equal(t, "30", entries[0].(map[string]any)["highest_bid"])
}
