// Package fees resolves the marketplace fee configuration for a request
// from layered overrides: per-category table, item-level settings, and
// caller-supplied values over the global defaults.
package fees

import (
	"github.com/jcloud242/resale-radar/pkg/pricing"
	domain "github.com/jcloud242/resale-radar/pkg/types"
)

// Override holds partial fee settings. Nil fields fall through to the
// next layer down.
type Override struct {
	FeeRate          *float64 `yaml:"fee_rate"          json:"fee_rate,omitempty"`
	ShippingEstimate *float64 `yaml:"shipping_estimate" json:"shipping_estimate,omitempty"`
	ShippingPaid     *float64 `yaml:"shipping_paid"     json:"shipping_paid,omitempty"`
}

// Table resolves fee configuration by precedence:
// per-category override, then item-level override, then caller-supplied
// override, then the global defaults.
type Table struct {
	defaults   pricing.FeeConfig
	categories map[domain.Category]Override
}

// NewTable creates a fee table. A zero-value defaults config is replaced
// by pricing.DefaultFeeConfig.
func NewTable(defaults pricing.FeeConfig, categories map[domain.Category]Override) *Table {
	if defaults == (pricing.FeeConfig{}) {
		defaults = pricing.DefaultFeeConfig()
	}
	return &Table{
		defaults:   defaults,
		categories: categories,
	}
}

// Resolve returns the effective FeeConfig for a request. Any argument may
// be empty: an unknown category contributes nothing, a nil item or caller
// override is skipped.
func (t *Table) Resolve(category domain.Category, item *domain.Item, caller *Override) pricing.FeeConfig {
	fc := t.defaults

	// Weakest layer first so stronger layers overwrite.
	apply(&fc, caller)

	if item != nil {
		apply(&fc, &Override{
			FeeRate:          item.FeeRate,
			ShippingEstimate: item.ShippingEstimate,
		})
	}

	if o, ok := t.categories[category]; ok {
		apply(&fc, &o)
	}

	return fc
}

// Defaults returns the table's global fallback config.
func (t *Table) Defaults() pricing.FeeConfig {
	return t.defaults
}

func apply(fc *pricing.FeeConfig, o *Override) {
	if o == nil {
		return
	}
	if o.FeeRate != nil {
		fc.FeeRate = *o.FeeRate
	}
	if o.ShippingEstimate != nil {
		fc.ShippingEstimate = *o.ShippingEstimate
	}
	if o.ShippingPaid != nil {
		fc.ShippingPaid = *o.ShippingPaid
	}
}
