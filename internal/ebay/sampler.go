package ebay

import (
	"context"
	"fmt"
	"log/slog"

	domain "github.com/jcloud242/resale-radar/pkg/types"
)

const (
	defaultPageSize   = 50
	defaultMaxPages   = 4
	defaultSampleSize = 50
)

// Sampler pages through search results to gather a price sample for
// estimation. It stops as soon as the target sample size is reached,
// keeping API usage proportional to what an estimate actually needs.
type Sampler struct {
	client   Client
	log      *slog.Logger
	pageSize int
	maxPages int
}

// SamplerOption configures the Sampler.
type SamplerOption func(*Sampler)

// WithSamplerPageSize overrides the default page size.
func WithSamplerPageSize(size int) SamplerOption {
	return func(s *Sampler) {
		s.pageSize = size
	}
}

// WithSamplerMaxPages overrides the default max pages.
func WithSamplerMaxPages(n int) SamplerOption {
	return func(s *Sampler) {
		s.maxPages = n
	}
}

// WithSamplerLogger sets the logger.
func WithSamplerLogger(l *slog.Logger) SamplerOption {
	return func(s *Sampler) {
		s.log = l
	}
}

// NewSampler creates a new Sampler.
func NewSampler(client Client, opts ...SamplerOption) *Sampler {
	s := &Sampler{
		client:   client,
		pageSize: defaultPageSize,
		maxPages: defaultMaxPages,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SampleResult holds the outcome of a sampling run.
type SampleResult struct {
	Listings  []domain.Listing
	Prices    []float64
	Total     int // total matches reported by the marketplace
	PagesUsed int
	StoppedAt string // "sample_full", "max_pages", "no_more_results"
}

// Collect fetches listings for the query until it has sampleSize price
// observations, the marketplace runs out of results, or maxPages is hit.
// Auction listings are fetched but never counted toward the sample.
func (s *Sampler) Collect(
	ctx context.Context,
	req SearchRequest,
	sampleSize int,
) (*SampleResult, error) {
	if sampleSize <= 0 {
		sampleSize = defaultSampleSize
	}

	req.Limit = s.pageSize

	result := &SampleResult{}

	for page := range s.maxPages {
		req.Offset = page * s.pageSize

		resp, err := s.client.Search(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("searching page %d: %w", page, err)
		}

		result.PagesUsed++
		result.Total = resp.Total

		if len(resp.Items) == 0 {
			result.StoppedAt = "no_more_results"
			return result, nil
		}

		listings := ToListings(resp.Items)
		result.Listings = append(result.Listings, listings...)
		result.Prices = append(result.Prices, PriceSamples(listings)...)

		if s.log != nil {
			s.log.Debug("sample page collected",
				"page", page,
				"listings", len(listings),
				"sample", len(result.Prices),
			)
		}

		if len(result.Prices) >= sampleSize {
			result.Prices = result.Prices[:sampleSize]
			result.StoppedAt = "sample_full"
			return result, nil
		}

		if !resp.HasMore {
			result.StoppedAt = "no_more_results"
			return result, nil
		}
	}

	result.StoppedAt = "max_pages"
	return result, nil
}
