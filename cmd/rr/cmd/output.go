package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/jcloud242/resale-radar/internal/api/client"
	"github.com/jcloud242/resale-radar/pkg/pricing"
	domain "github.com/jcloud242/resale-radar/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printCollectionsTable(collections []domain.Collection) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tCREATED\n")
	for i := range collections {
		tw.writef("%s\t%s\t%s\n",
			collections[i].ID,
			collections[i].Name,
			collections[i].CreatedAt.Format("2006-01-02"),
		)
	}
	return tw.finish()
}

func printItemsTable(items []domain.Item) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tTITLE\tPLATFORM\tCATEGORY\tVALUE\tCONFIDENCE\n")
	for i := range items {
		it := &items[i]
		value := "-"
		if it.LastAvgActive != nil {
			value = fmt.Sprintf("$%.2f", *it.LastAvgActive)
		}
		confidence := it.LastConfidence
		if confidence == "" {
			confidence = "-"
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			it.ID,
			truncate(it.Title, 40),
			it.Platform,
			it.Category,
			value,
			confidence,
		)
	}
	return tw.finish()
}

func printItemDetail(it *domain.Item) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", it.ID)
	tw.writef("Collection:\t%s\n", it.CollectionID)
	tw.writef("Title:\t%s\n", it.Title)
	tw.writef("Platform:\t%s\n", it.Platform)
	tw.writef("Category:\t%s\n", it.Category)
	if it.UPC != "" {
		tw.writef("UPC:\t%s\n", it.UPC)
	}
	if it.Query != "" {
		tw.writef("Query:\t%s\n", it.Query)
	}
	if it.BuyPrice != nil {
		tw.writef("Buy Price:\t$%.2f\n", *it.BuyPrice)
	}
	if it.LastAvgActive != nil {
		tw.writef("Est. Value:\t$%.2f (%s)\n", *it.LastAvgActive, it.LastConfidence)
	}
	if it.LastEstimatedAt != nil {
		tw.writef("Estimated:\t%s\n", it.LastEstimatedAt.Format("2006-01-02 15:04:05"))
	}
	return tw.finish()
}

func printSnapshotsTable(snaps []domain.PriceSnapshot) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("TAKEN\tSAMPLES\tAVG\tMEDIAN\tCONFIDENCE\n")
	for i := range snaps {
		s := &snaps[i]
		avg, median := "-", "-"
		if s.AvgActive != nil {
			avg = fmt.Sprintf("$%.2f", *s.AvgActive)
		}
		if s.MedianActive != nil {
			median = fmt.Sprintf("$%.2f", *s.MedianActive)
		}
		tw.writef("%s\t%d\t%s\t%s\t%s\n",
			s.TakenAt.Format("2006-01-02 15:04"),
			s.SampleSize,
			avg,
			median,
			s.Confidence,
		)
	}
	return tw.finish()
}

func printListingsTable(listings []domain.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("TITLE\tPRICE\tSHIPPING\tTOTAL\tFORMAT\tCONDITION\n")
	for i := range listings {
		l := &listings[i]
		shipping := "-"
		if l.ShippingCost != nil {
			shipping = fmt.Sprintf("$%.2f", *l.ShippingCost)
		}
		tw.writef("%s\t$%.2f\t%s\t$%.2f\t%s\t%s\n",
			truncate(l.Title, 50),
			l.Price,
			shipping,
			l.TotalPrice(),
			l.BuyingOption,
			l.Condition,
		)
	}
	return tw.finish()
}

func printEstimate(result *apiclient.EstimateResult) error {
	tw := newTabWriter(os.Stdout)
	if result.Query != "" {
		tw.writef("Query:\t%s\n", result.Query)
	}
	est := &result.Estimate
	tw.writef("Samples:\t%d (%d after outlier filter)\n", est.SampleSize, est.CleanedCount)
	if est.AvgActive != nil {
		tw.writef("Avg Active:\t$%.2f\n", *est.AvgActive)
	}
	if est.MedianActive != nil {
		tw.writef("Median Active:\t$%.2f\n", *est.MedianActive)
	}
	tw.writef("Confidence:\t%s\n", est.Confidence)
	printScenario(tw, "Optimistic", &est.Scenarios.Optimistic)
	printScenario(tw, "Base", &est.Scenarios.Base)
	printScenario(tw, "Conservative", &est.Scenarios.Conservative)
	if result.Margin != nil {
		printSolutionRows(tw, result.Margin)
	}
	if result.Cached {
		tw.writef("(cached)\n")
	}
	return tw.finish()
}

func printScenario(tw *tabWriter, name string, s *pricing.Scenario) {
	if s.ExpectedSale == nil {
		return
	}
	net := "-"
	if s.NetExpected != nil {
		net = fmt.Sprintf("$%.2f", *s.NetExpected)
	}
	tw.writef("%s:\tsale $%.2f, net %s\n", name, *s.ExpectedSale, net)
}

func printSolutionRows(tw *tabWriter, sol *pricing.MarginSolution) {
	tw.writef("Target Margin:\t%.1f%%\n", sol.TargetMarginPct)
	if sol.SuggestedBuy != nil {
		tw.writef("Suggested Buy:\t$%.2f\n", *sol.SuggestedBuy)
	}
	if sol.RequiredSalePrice != nil {
		tw.writef("Required Sale:\t$%.2f\n", *sol.RequiredSalePrice)
	}
	if sol.Profit != nil {
		tw.writef("Profit:\t$%.2f\n", *sol.Profit)
	}
	if sol.ProfitPct != nil {
		tw.writef("Profit Pct:\t%.1f%%\n", *sol.ProfitPct)
	}
}

func printHistoryTable(records []domain.SearchRecord) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("SEARCHED\tQUERY\tSOURCE\tSAMPLES\tAVG\tCONFIDENCE\n")
	for i := range records {
		r := &records[i]
		avg := "-"
		if r.AvgActive != nil {
			avg = fmt.Sprintf("$%.2f", *r.AvgActive)
		}
		tw.writef("%s\t%s\t%s\t%d\t%s\t%s\n",
			r.SearchedAt.Format("2006-01-02 15:04"),
			truncate(r.Query, 40),
			r.Source,
			r.SampleSize,
			avg,
			r.Confidence,
		)
	}
	return tw.finish()
}

func printJobRunsTable(runs []domain.JobRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tITEMS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format("2006-01-02 15:04:05")
		}
		tw.writef("%s\t%s\t%s\t%s\t%d\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			completed,
			r.RowsAffected,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
