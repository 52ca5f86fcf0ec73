package perftests

import (
	"fmt"
	"testing"

	"auction-marketplace/internal/auction"
	catalog "auction-marketplace/internal/catalogService"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	// per-bid info logs would dominate the measurements
	if err := utils.SetLevel("error"); err != nil {
		panic(err)
	}
}

// setupCatalog creates a catalog with numItems open items and numUsers registered bidders
func setupCatalog(tb testing.TB, numItems, numUsers int) (*catalog.CatalogService, []*auction.User) {
	tb.Helper()

	svc := catalog.NewCatalogService(repository.NewMemoryRepo(), catalog.WithBcryptCost(bcrypt.MinCost))
	for i := 0; i < numItems; i++ {
		_, err := svc.AddItem(fmt.Sprintf("item_%d", i), decimal.NewFromInt(100), decimal.NewFromInt(150), 24*60, decimal.NewFromInt(1))
		if err != nil {
			tb.Fatalf("failed to add item: %v", err)
		}
	}

	users := make([]*auction.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		name := fmt.Sprintf("user_%d", i)
		if err := svc.RegisterUser(name, "pw"); err != nil {
			tb.Fatalf("failed to register user: %v", err)
		}
		user, err := svc.LookupUser(name)
		if err != nil {
			tb.Fatalf("failed to look up user: %v", err)
		}
		users = append(users, user)
	}
	return svc, users
}
