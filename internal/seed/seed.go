// Package seed lists demo items so a fresh process has something to bid on.
package seed

import (
	catalog "auction-marketplace/internal/catalogService"

	"github.com/shopspring/decimal"
)

type demoItem struct {
	name            string
	startingPrice   int64
	reservePrice    int64
	durationMinutes int
	minBidIncrement int64
}

var demoItems = []demoItem{
	{name: "Antique Vase", startingPrice: 10, reservePrice: 50, durationMinutes: 60, minBidIncrement: 5},
	{name: "Vintage Lamp", startingPrice: 20, reservePrice: 35, durationMinutes: 120, minBidIncrement: 2},
	{name: "Oak Bookshelf", startingPrice: 75, reservePrice: 150, durationMinutes: 240, minBidIncrement: 10},
}

// Populate adds the demo items to svc and returns how many were listed
func Populate(svc *catalog.CatalogService) (int, error) {
	for i, item := range demoItems {
		_, err := svc.AddItem(item.name,
			decimal.NewFromInt(item.startingPrice),
			decimal.NewFromInt(item.reservePrice),
			item.durationMinutes,
			decimal.NewFromInt(item.minBidIncrement))
		if err != nil {
			return i, err
		}
	}
	return len(demoItems), nil
}
