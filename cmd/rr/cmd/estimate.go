package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	apiclient "github.com/jcloud242/resale-radar/internal/api/client"
	domain "github.com/jcloud242/resale-radar/pkg/types"
)

func estimateCmd() *cobra.Command {
	var (
		category     string
		feeRate      float64
		shipping     float64
		targetMargin float64
		buyPrice     float64
	)

	cmd := &cobra.Command{
		Use:   "estimate <query>",
		Short: "Estimate what an item would sell for",
		Long: "Samples live marketplace listings for the query, filters outliers, and\n" +
			"reports the estimated value with optimistic/base/conservative scenarios.",
		Example: `  rr estimate "metroid prime gamecube"
  rr estimate "pokemon emerald gba" --category video_game --margin 20 --buy-price 25`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			req := &apiclient.EstimateRequest{
				Query:    args[0],
				Category: domain.Category(category),
			}
			if feeRate > 0 {
				req.FeeRate = &feeRate
			}
			if shipping > 0 {
				req.ShippingEstimate = &shipping
			}
			if targetMargin > 0 {
				req.TargetMarginPct = &targetMargin
			}
			if buyPrice > 0 {
				req.BuyPrice = &buyPrice
			}

			c := newClient()
			result, err := c.Estimate(context.Background(), req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(result)
			}
			return printEstimate(result)
		},
	}
	cmd.Flags().
		StringVar(&category, "category", "", "category (video_game, console, accessory, media, other)")
	cmd.Flags().Float64Var(&feeRate, "fee-rate", 0, "override the marketplace fee rate")
	cmd.Flags().Float64Var(&shipping, "shipping", 0, "override the seller shipping cost")
	cmd.Flags().Float64Var(&targetMargin, "margin", 0, "target margin percent (adds a margin solution)")
	cmd.Flags().Float64Var(&buyPrice, "buy-price", 0, "known buy price for the margin solution")

	return cmd
}

func solveCmd() *cobra.Command {
	var (
		category  string
		buyPrice  float64
		sellPrice float64
		salePrice float64
		feeRate   float64
		shipping  float64
	)

	cmd := &cobra.Command{
		Use:   "solve <target-margin-pct>",
		Short: "Solve buy/sell price points for a target margin",
		Long: "Computes the maximum buy price for a known sell price, or the required\n" +
			"sale price for a known buy price, at the given margin target. With both\n" +
			"--buy-price and --sale-price it also reports realized profit.",
		Example: `  # What can I pay if it sells for $50 and I want 20% margin?
  rr solve 20 --sell-price 50

  # What must it sell for if I paid $26.50?
  rr solve 20 --buy-price 26.50

  # What did I actually make on this flip?
  rr solve 20 --buy-price 10 --sale-price 40`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			target, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid target margin %q", args[0])
			}

			req := &apiclient.SolveRequest{
				TargetMarginPct: target,
				Category:        domain.Category(category),
			}
			if buyPrice > 0 {
				req.BuyPrice = &buyPrice
			}
			if sellPrice > 0 {
				req.SellPrice = &sellPrice
			}
			if salePrice > 0 {
				req.SalePrice = &salePrice
			}
			if feeRate > 0 {
				req.FeeRate = &feeRate
			}
			if shipping > 0 {
				req.ShippingEstimate = &shipping
			}

			c := newClient()
			result, err := c.Solve(context.Background(), req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(result)
			}

			tw := newTabWriter(os.Stdout)
			printSolutionRows(tw, &result.Solution)
			if result.Profit != nil {
				tw.writef("Realized Profit:\t$%.2f\n", *result.Profit)
			}
			if result.Net != nil {
				tw.writef("Net Proceeds:\t$%.2f\n", *result.Net)
			}
			return tw.finish()
		},
	}
	cmd.Flags().
		StringVar(&category, "category", "", "category (video_game, console, accessory, media, other)")
	cmd.Flags().Float64Var(&buyPrice, "buy-price", 0, "known buy price")
	cmd.Flags().Float64Var(&sellPrice, "sell-price", 0, "known or expected sell price")
	cmd.Flags().Float64Var(&salePrice, "sale-price", 0, "actual sale price")
	cmd.Flags().Float64Var(&feeRate, "fee-rate", 0, "override the marketplace fee rate")
	cmd.Flags().Float64Var(&shipping, "shipping", 0, "override the seller shipping cost")

	return cmd
}
