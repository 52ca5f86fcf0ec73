package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	catalog "auction-marketplace/internal/catalogService"
	"auction-marketplace/internal/repository"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDispatcher(t *testing.T, now func() time.Time) *Dispatcher {
	t.Helper()
	svc := catalog.NewCatalogService(repository.NewMemoryRepo(),
		catalog.WithBcryptCost(bcrypt.MinCost),
		catalog.WithClock(now),
	)
	return NewDispatcher(svc)
}

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestRun_VaseScenario(t *testing.T) {
	t.Parallel()

	d := newDispatcher(t, time.Now)
	var out bytes.Buffer

	err := d.Run(context.Background(), script(
		"register bob pw",
		"login bob pw",
		"add Vase 10 50 60 5",
		"bid 1 14",
		"bid 1 15",
		"bid 1 20",
		"declare",
		"list",
		"bid 1 55",
		"declare",
		"history",
		"list",
		"exit",
	), &out)
	require.NoError(t, err)

	got := out.String()
	for _, want := range []string{
		"User bob registered successfully.",
		"Login successful.",
		"Item Vase added to the auction with a starting price of $10.00",
		"Bid amount must be at least $15.00. Please place a higher bid.",
		"bob placed a bid of $15.00 on Vase",
		"bob placed a bid of $20.00 on Vase",
		"Item: Vase did not meet the reserve price.",
		"1. Vase - Highest Bid: $20.00",
		"bob placed a bid of $55.00 on Vase",
		"Item: Vase won by bob with a bid of $55.00",
		"Item: Vase - Sold for: $55.00 to bob",
		"No items available for auction.",
		"Exiting the system. Goodbye!",
	} {
		require.Contains(t, got, want)
	}
}

func TestRun_Authentication(t *testing.T) {
	t.Parallel()

	d := newDispatcher(t, time.Now)
	var out bytes.Buffer

	err := d.Run(context.Background(), script(
		"list",
		"register alice secret",
		"register alice other",
		"login alice wrong",
		"login alice secret",
		"logout",
		"list",
	), &out)
	require.NoError(t, err)

	got := out.String()
	require.Contains(t, got, "Invalid option. Please log in or register first.")
	require.Contains(t, got, "Username already taken.")
	require.Contains(t, got, "Invalid credentials.")
	require.Contains(t, got, "Login successful.")
	require.Contains(t, got, "Logged out successfully.")
	require.Equal(t, 2, strings.Count(got, "Invalid option. Please log in or register first."))
}

func TestExecute_Commands(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	now := start
	d := newDispatcher(t, func() time.Time { return now })
	sess := &Session{}

	run := func(line string) string {
		var out bytes.Buffer
		require.NoError(t, d.Execute(sess, line, &out))
		return out.String()
	}

	run("register carol pw")
	run("login carol pw")
	require.True(t, sess.LoggedIn())

	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "empty_bids", line: "bids", want: "No bids placed."},
		{name: "empty_watchlist", line: "watchlist", want: "No items in the watchlist."},
		{name: "empty_history", line: "history", want: "No past auctions to display."},
		{name: "empty_declare", line: "declare", want: "No items to declare winners for."},
		{name: "add_usage", line: "add Lamp 10", want: "Usage: add"},
		{name: "add_bad_number", line: "add Lamp ten 20 30 1", want: "Invalid number."},
		{name: "add_zero_increment", line: "add Lamp 10 20 30 0", want: "Invalid item details."},
		{name: "add_multiword_name", line: "add Oak Desk 10 20 30 2", want: "Item Oak Desk added to the auction with a starting price of $10.00"},
		{name: "bid_out_of_range", line: "bid 2 50", want: "Invalid item selected."},
		{name: "bid_not_a_number", line: "bid one 50", want: "Invalid item selected."},
		{name: "bid_bad_amount", line: "bid 1 lots", want: "Invalid amount."},
		{name: "bid_negative", line: "bid 1 -5", want: "Bid amount must be at least $12.00."},
		{name: "bid_zero", line: "bid 1 0", want: "Bid amount must be at least $12.00."},
		{name: "bid_dollar_sign", line: "bid 1 $12.50", want: "carol placed a bid of $12.50 on Oak Desk"},
		{name: "bids_after_bid", line: "bids", want: "Item: Oak Desk - Bid: $12.50"},
		{name: "watch", line: "watch 1", want: "Oak Desk has been added to your watchlist."},
		{name: "watch_again", line: "watch 1", want: "Item is already in your watchlist."},
		{name: "watch_out_of_range", line: "watch 0", want: "Invalid item selected."},
		{name: "watchlist", line: "watchlist", want: "Item: Oak Desk - Highest Bid: $12.50"},
		{name: "unknown", line: "dance", want: "Invalid option. Please try again."},
		{name: "help", line: "HELP", want: "bid <item number> <amount>"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Contains(t, run(tc.line), tc.want)
		})
	}

	t.Run("closed_auction", func(t *testing.T) {
		now = start.Add(31 * time.Minute)
		require.Contains(t, run("bid 1 100"), "This auction is closed.")
		require.Contains(t, run("bid 1 0"), "This auction is closed.")
		require.Contains(t, run("list"), "(closed)")
	})

	t.Run("exit", func(t *testing.T) {
		var out bytes.Buffer
		require.ErrorIs(t, d.Execute(sess, "exit", &out), errExit)
	})
}

func TestRun_StopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	d := newDispatcher(t, time.Now)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := d.Run(ctx, script("register dave pw"), &out)
	require.ErrorIs(t, err, context.Canceled)
	require.NotContains(t, out.String(), "registered successfully")
}

func TestRun_CancelWhileWaitingForInput(t *testing.T) {
	t.Parallel()

	d := newDispatcher(t, time.Now)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in, feed := io.Pipe()
	defer feed.Close()

	done := make(chan error, 1)
	go func() {
		done <- d.Run(ctx, in, io.Discard)
	}()

	// one full command goes through before Run blocks on the next read
	_, err := io.WriteString(feed, "register erin pw\n")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run kept waiting for input after cancellation")
	}
}

func TestRun_ReturnsReadError(t *testing.T) {
	t.Parallel()

	d := newDispatcher(t, time.Now)
	in, feed := io.Pipe()
	readFailure := io.ErrUnexpectedEOF
	go func() {
		_, _ = io.WriteString(feed, "help\n")
		feed.CloseWithError(readFailure)
	}()

	err := d.Run(context.Background(), in, io.Discard)
	require.ErrorIs(t, err, readFailure)
}
