package ebay

import (
	"slices"
	"strconv"

	domain "github.com/jcloud242/resale-radar/pkg/types"
)

// ToListings converts eBay API item summaries into domain listings.
func ToListings(items []ItemSummary) []domain.Listing {
	listings := make([]domain.Listing, 0, len(items))
	for i := range items {
		listings = append(listings, toListing(&items[i]))
	}
	return listings
}

func toListing(item *ItemSummary) domain.Listing {
	l := domain.Listing{
		MarketID:     item.ItemID,
		Title:        item.Title,
		Currency:     item.Price.Currency,
		Condition:    item.Condition,
		BuyingOption: parseBuyingOption(item.BuyingOptions),
		ItemURL:      item.ItemWebURL,
	}

	if p, err := strconv.ParseFloat(item.Price.Value, 64); err == nil {
		l.Price = p
	}

	if item.Image != nil && item.Image.ImageURL != "" {
		l.ImageURL = item.Image.ImageURL
	}

	if len(item.ShippingOptions) > 0 {
		if sc := item.ShippingOptions[0].ShippingCost; sc != nil {
			if cost, err := strconv.ParseFloat(sc.Value, 64); err == nil {
				l.ShippingCost = &cost
			}
		}
	}

	return l
}

func parseBuyingOption(buyingOptions []string) domain.BuyingOption {
	if slices.Contains(buyingOptions, "AUCTION") {
		return domain.BuyingAuction
	}
	if slices.Contains(buyingOptions, "BEST_OFFER") {
		return domain.BuyingBestOffer
	}
	return domain.BuyingFixedPrice
}

// PriceSamples extracts the raw price sample from listings. Auction
// listings are excluded: a live bid price is not an asking price.
// Listings without a parseable price are dropped.
func PriceSamples(listings []domain.Listing) []float64 {
	samples := make([]float64, 0, len(listings))
	for i := range listings {
		if listings[i].BuyingOption == domain.BuyingAuction {
			continue
		}
		if listings[i].Price <= 0 {
			continue
		}
		samples = append(samples, listings[i].Price)
	}
	return samples
}
