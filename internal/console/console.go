// Package console is a line-oriented operator interface to the catalog.
// It mirrors the register/login menu and the logged-in menu of the original
// terminal program, one command per line.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"auction-marketplace/internal/auction"
	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/utils"

	"github.com/shopspring/decimal"
)

// Catalog is the subset of the catalog service the console drives
type Catalog interface {
	RegisterUser(username, password string) error
	Authenticate(username, password string) (*auction.User, error)
	AddItem(name string, startingPrice, reservePrice decimal.Decimal, durationMinutes int, minBidIncrement decimal.Decimal) (models.ItemView, error)
	ListActiveItems() []models.ItemView
	PlaceBid(index int, bidder *auction.User, amount decimal.Decimal) (models.Bid, error)
	AddToWatchlist(index int, user *auction.User) (models.WatchEntry, error)
	ListBids(user *auction.User) []models.BidEntry
	ListWatchlist(user *auction.User) []models.WatchEntry
	DeclareWinners() []models.SettlementResult
	AuctionHistory() []models.HistoryEntry
}

// Session is the per-operator state. User is nil until login.
type Session struct {
	User *auction.User
}

// LoggedIn reports whether an operator is logged in
func (s *Session) LoggedIn() bool {
	return s.User != nil
}

// Dispatcher translates operator commands into catalog calls
type Dispatcher struct {
	catalog    Catalog
	timeLayout string
}

// NewDispatcher creates a Dispatcher rendering times with time.DateTime
func NewDispatcher(catalog Catalog) *Dispatcher {
	return &Dispatcher{catalog: catalog, timeLayout: time.DateTime}
}

var errExit = errors.New("exit requested")

const (
	guestHelp = `Commands:
  register <username> <password>
  login <username> <password>
  exit`
	memberHelp = `Commands:
  add <name> <starting price> <reserve price> <duration minutes> <min increment>
  list
  bid <item number> <amount>
  bids
  watch <item number>
  watchlist
  declare
  history
  logout
  exit`
)

// Run reads commands from in until EOF, "exit" or ctx is cancelled. Every
// outcome, including rejected commands, is written to out; only I/O failures
// and cancellation are returned. Cancellation is noticed while waiting for
// input; the reader goroutine exits once in yields its next line or EOF.
func (d *Dispatcher) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	sess := &Session{}
	lines, readErr := readLines(ctx, in)

	fmt.Fprintln(out, "Welcome to the Online Auction System! Type 'help' for commands.")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.prompt(out, sess)

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-readErr
			}
			line = l
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		err := d.Execute(sess, line, out)
		if errors.Is(err, errExit) {
			fmt.Fprintln(out, "Exiting the system. Goodbye!")
			return nil
		}
	}
}

// readLines scans in on its own goroutine. readErr receives exactly one value
// before lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
		readErr <- scanner.Err()
	}()

	return lines, readErr
}

func (d *Dispatcher) prompt(out io.Writer, sess *Session) {
	if sess.LoggedIn() {
		fmt.Fprintf(out, "%s> ", sess.User.Username())
		return
	}
	fmt.Fprint(out, "> ")
}

// Execute runs a single command line against sess
func (d *Dispatcher) Execute(sess *Session, line string, out io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	if cmd == "exit" {
		return errExit
	}
	if cmd == "help" {
		if sess.LoggedIn() {
			fmt.Fprintln(out, memberHelp)
		} else {
			fmt.Fprintln(out, guestHelp)
		}
		return nil
	}

	if !sess.LoggedIn() {
		switch cmd {
		case "register":
			d.register(out, args)
		case "login":
			d.login(out, sess, args)
		default:
			fmt.Fprintln(out, "Invalid option. Please log in or register first.")
		}
		return nil
	}

	switch cmd {
	case "add":
		d.addItem(out, args)
	case "list":
		d.listItems(out)
	case "bid":
		d.placeBid(out, sess, args)
	case "bids":
		d.listBids(out, sess)
	case "watch":
		d.watch(out, sess, args)
	case "watchlist":
		d.listWatchlist(out, sess)
	case "declare":
		d.declareWinners(out)
	case "history":
		d.history(out)
	case "logout":
		sess.User = nil
		fmt.Fprintln(out, "Logged out successfully.")
	default:
		fmt.Fprintln(out, "Invalid option. Please try again.")
	}
	return nil
}

func (d *Dispatcher) register(out io.Writer, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(out, "Usage: register <username> <password>")
		return
	}
	if err := d.catalog.RegisterUser(args[0], args[1]); err != nil {
		d.renderError(out, err)
		return
	}
	fmt.Fprintf(out, "User %s registered successfully.\n", args[0])
}

func (d *Dispatcher) login(out io.Writer, sess *Session, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(out, "Usage: login <username> <password>")
		return
	}
	user, err := d.catalog.Authenticate(args[0], args[1])
	if err != nil {
		d.renderError(out, err)
		return
	}
	sess.User = user
	fmt.Fprintln(out, "Login successful.")
}

// addItem takes the last four arguments as numbers; everything before them is the name
func (d *Dispatcher) addItem(out io.Writer, args []string) {
	if len(args) < 5 {
		fmt.Fprintln(out, "Usage: add <name> <starting price> <reserve price> <duration minutes> <min increment>")
		return
	}
	n := len(args)
	name := strings.Join(args[:n-4], " ")

	starting, err1 := utils.ParseMoney(args[n-4])
	reserve, err2 := utils.ParseMoney(args[n-3])
	minutes, err3 := strconv.Atoi(args[n-2])
	increment, err4 := utils.ParseMoney(args[n-1])
	if err := errors.Join(err1, err2, err3, err4); err != nil {
		fmt.Fprintln(out, "Invalid number. Please try again.")
		return
	}

	item, err := d.catalog.AddItem(name, starting, reserve, minutes, increment)
	if err != nil {
		d.renderError(out, err)
		return
	}
	fmt.Fprintf(out, "Item %s added to the auction with a starting price of %s\n", item.Name, utils.FormatMoney(item.StartingPrice))
}

func (d *Dispatcher) listItems(out io.Writer) {
	items := d.catalog.ListActiveItems()
	if len(items) == 0 {
		fmt.Fprintln(out, "No items available for auction.")
		return
	}
	fmt.Fprintln(out, "Items available for auction:")
	for _, item := range items {
		status := "open"
		if !item.Open {
			status = "closed"
		}
		fmt.Fprintf(out, "%d. %s - Highest Bid: %s - Auction ends at: %s (%s)\n",
			item.Index, item.Name, utils.FormatMoney(item.HighestBid), item.EndTime.Local().Format(d.timeLayout), status)
	}
}

func (d *Dispatcher) placeBid(out io.Writer, sess *Session, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(out, "Usage: bid <item number> <amount>")
		return
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(out, "Invalid item selected.")
		return
	}
	amount, err := utils.ParseMoney(args[1])
	if err != nil {
		fmt.Fprintln(out, "Invalid amount. Please try again.")
		return
	}

	bid, err := d.catalog.PlaceBid(index-1, sess.User, amount)
	if err != nil {
		d.renderError(out, err)
		return
	}
	fmt.Fprintf(out, "%s placed a bid of %s on %s\n", bid.Username, utils.FormatMoney(bid.Amount), bid.ItemName)
}

func (d *Dispatcher) listBids(out io.Writer, sess *Session) {
	fmt.Fprintf(out, "Bids placed by %s:\n", sess.User.Username())
	bids := d.catalog.ListBids(sess.User)
	if len(bids) == 0 {
		fmt.Fprintln(out, "No bids placed.")
		return
	}
	for _, b := range bids {
		fmt.Fprintf(out, "Item: %s - Bid: %s\n", b.ItemName, utils.FormatMoney(b.Amount))
	}
}

func (d *Dispatcher) watch(out io.Writer, sess *Session, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(out, "Usage: watch <item number>")
		return
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(out, "Invalid item selected.")
		return
	}

	entry, err := d.catalog.AddToWatchlist(index-1, sess.User)
	if err != nil {
		d.renderError(out, err)
		return
	}
	fmt.Fprintf(out, "%s has been added to your watchlist.\n", entry.ItemName)
}

func (d *Dispatcher) listWatchlist(out io.Writer, sess *Session) {
	fmt.Fprintf(out, "Watchlist for %s:\n", sess.User.Username())
	entries := d.catalog.ListWatchlist(sess.User)
	if len(entries) == 0 {
		fmt.Fprintln(out, "No items in the watchlist.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(out, "Item: %s - Highest Bid: %s - Auction ends at: %s\n",
			e.ItemName, utils.FormatMoney(e.HighestBid), e.EndTime.Local().Format(d.timeLayout))
	}
}

func (d *Dispatcher) declareWinners(out io.Writer) {
	results := d.catalog.DeclareWinners()
	if len(results) == 0 {
		fmt.Fprintln(out, "No items to declare winners for.")
		return
	}
	fmt.Fprintln(out, "Auction results:")
	for _, r := range results {
		switch r.Outcome {
		case models.OutcomeWon:
			fmt.Fprintf(out, "Item: %s won by %s with a bid of %s\n", r.ItemName, r.Bidder, utils.FormatMoney(r.Amount))
		case models.OutcomeNoBids:
			fmt.Fprintf(out, "Item: %s received no bids.\n", r.ItemName)
		case models.OutcomeReserveNotMet:
			fmt.Fprintf(out, "Item: %s did not meet the reserve price.\n", r.ItemName)
		}
	}
}

func (d *Dispatcher) history(out io.Writer) {
	entries := d.catalog.AuctionHistory()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No past auctions to display.")
		return
	}
	fmt.Fprintln(out, "Past auction results:")
	for _, e := range entries {
		fmt.Fprintf(out, "Item: %s - Sold for: %s to %s\n", e.ItemName, utils.FormatMoney(e.FinalPrice), e.Winner)
	}
}

func (d *Dispatcher) renderError(out io.Writer, err error) {
	var tooLow *auctionerrors.BidTooLowError
	switch {
	case errors.As(err, &tooLow):
		fmt.Fprintf(out, "Bid amount must be at least %s. Please place a higher bid.\n", utils.FormatMoney(tooLow.Minimum))
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		fmt.Fprintln(out, "This auction is closed.")
	case errors.Is(err, auctionerrors.ErrIndexOutOfRange):
		fmt.Fprintln(out, "Invalid item selected.")
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		fmt.Fprintln(out, "Invalid bid.")
	case errors.Is(err, auctionerrors.ErrItemAlreadyWatchlisted):
		fmt.Fprintln(out, "Item is already in your watchlist.")
	case errors.Is(err, auctionerrors.ErrDuplicateUser):
		fmt.Fprintln(out, "Username already taken.")
	case errors.Is(err, auctionerrors.ErrInvalidCredentials):
		fmt.Fprintln(out, "Invalid credentials.")
	case errors.Is(err, auctionerrors.ErrInvalidItem):
		fmt.Fprintln(out, "Invalid item details. Prices must be non-negative, the increment positive and the duration at least zero.")
	default:
		fmt.Fprintln(out, "Something went wrong. Please try again.")
		utils.Error("console command failed", map[string]any{"error": err.Error()})
	}
}
