// Package domain defines the core business types for resale-radar.
package domain

import (
	"time"
)

// Category represents the resale category of an item.
type Category string

// Category constants.
const (
	CategoryVideoGame Category = "video_game"
	CategoryConsole   Category = "console"
	CategoryAccessory Category = "accessory"
	CategoryMedia     Category = "media"
	CategoryOther     Category = "other"
)

// BuyingOption represents the marketplace listing format.
type BuyingOption string

// Buying option constants.
const (
	BuyingFixedPrice BuyingOption = "fixed_price"
	BuyingAuction    BuyingOption = "auction"
	BuyingBestOffer  BuyingOption = "best_offer"
)

// Listing is a single observed marketplace listing used as a price
// observation. Listings are transient: they feed price samples and are
// not persisted individually.
type Listing struct {
	MarketID     string       `json:"market_item_id"`
	Title        string       `json:"title"`
	Price        float64      `json:"price"`
	Currency     string       `json:"currency"`
	ShippingCost *float64     `json:"shipping_cost,omitempty"`
	Condition    string       `json:"condition,omitempty"`
	BuyingOption BuyingOption `json:"buying_option"`
	ItemURL      string       `json:"item_url"`
	ImageURL     string       `json:"image_url,omitempty"`
}

// TotalPrice returns the listing price including buyer-paid shipping.
func (l *Listing) TotalPrice() float64 {
	total := l.Price
	if l.ShippingCost != nil {
		total += *l.ShippingCost
	}
	return total
}

// Collection is a user-curated group of items.
type Collection struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Item is a collected item whose resale value is tracked over time.
type Item struct {
	ID           string   `json:"id"                  db:"id"`
	CollectionID string   `json:"collection_id"       db:"collection_id"`
	Title        string   `json:"title"               db:"title"`
	Platform     string   `json:"platform,omitempty"  db:"platform"`
	Category     Category `json:"category"            db:"category"`
	UPC          string   `json:"upc,omitempty"       db:"upc"`
	Query        string   `json:"query,omitempty"     db:"query"`

	// What the user paid, if known. Drives margin calculations.
	BuyPrice *float64 `json:"buy_price,omitempty" db:"buy_price"`

	// Item-level fee overrides. Nil falls through to the category table
	// and then the global defaults.
	FeeRate          *float64 `json:"fee_rate,omitempty"          db:"fee_rate"`
	ShippingEstimate *float64 `json:"shipping_estimate,omitempty" db:"shipping_estimate"`

	// Last computed estimate summary, denormalized for list views.
	LastAvgActive   *float64   `json:"last_avg_active,omitempty"   db:"last_avg_active"`
	LastConfidence  string     `json:"last_confidence,omitempty"   db:"last_confidence"`
	LastEstimatedAt *time.Time `json:"last_estimated_at,omitempty" db:"last_estimated_at"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// EffectiveQuery returns the market search query for this item: the
// explicit query when set, otherwise title plus platform.
func (i *Item) EffectiveQuery() string {
	if i.Query != "" {
		return i.Query
	}
	if i.Platform != "" {
		return i.Title + " " + i.Platform
	}
	return i.Title
}

// SearchRecord is one entry in the user's search history.
type SearchRecord struct {
	ID         string    `json:"id"                    db:"id"`
	Query      string    `json:"query"                 db:"query"`
	Source     string    `json:"source"                db:"source"` // "text", "scan", "photo"
	SampleSize int       `json:"sample_size"           db:"sample_size"`
	AvgActive  *float64  `json:"avg_active,omitempty"  db:"avg_active"`
	Confidence string    `json:"confidence,omitempty"  db:"confidence"`
	SearchedAt time.Time `json:"searched_at"           db:"searched_at"`
}

// JobRun records one execution of a background refresh job.
type JobRun struct {
	ID           string     `json:"id"                     db:"id"`
	JobName      string     `json:"job_name"               db:"job_name"`
	StartedAt    time.Time  `json:"started_at"             db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	Status       string     `json:"status"                 db:"status"` // "running", "completed", "failed", "crashed"
	ErrorText    string     `json:"error_text,omitempty"   db:"error_text"`
	RowsAffected int        `json:"rows_affected"          db:"rows_affected"`
}

// PriceSnapshot records one estimate run for a tracked item, forming its
// value history.
type PriceSnapshot struct {
	ID           string    `json:"id"                      db:"id"`
	ItemID       string    `json:"item_id"                 db:"item_id"`
	SampleSize   int       `json:"sample_size"             db:"sample_size"`
	CleanedCount int       `json:"cleaned_count"           db:"cleaned_count"`
	AvgActive    *float64  `json:"avg_active,omitempty"    db:"avg_active"`
	MedianActive *float64  `json:"median_active,omitempty" db:"median_active"`
	Confidence   string    `json:"confidence"              db:"confidence"`
	TakenAt      time.Time `json:"taken_at"                db:"taken_at"`
}
