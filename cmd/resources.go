package cmd

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	filterExpr string
	seatCount  int
)

// productsCmd groups the product commands
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List products or show a single product",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the products available at a location",
	Example: `  ubergo products list --lat 37.7759792 --lng -122.41823
  ubergo products list --lat 37.77 --lng -122.41 --filter 'capacity >= 6'`,
	RunE: runProductsList,
}

var productsGetCmd = &cobra.Command{
	Use:   "get PRODUCT_ID",
	Short: "Show details of a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsGet,
}

// estimatesCmd groups the estimate commands
var estimatesCmd = &cobra.Command{
	Use:   "estimates",
	Short: "Price and pickup time estimates for a trip",
}

var estimatesPriceCmd = &cobra.Command{
	Use:   "price",
	Short: "Show price estimates for a trip",
	RunE:  runEstimatesPrice,
}

var estimatesTimeCmd = &cobra.Command{
	Use:   "time",
	Short: "Show pickup time estimates for a trip",
	RunE:  runEstimatesTime,
}

var estimatesBothCmd = &cobra.Command{
	Use:   "both",
	Short: "Fetch price and time estimates concurrently",
	RunE:  runEstimatesBoth,
}

var promotionsCmd = &cobra.Command{
	Use:   "promotions",
	Short: "Show the promotion offered to new users for a trip",
	RunE:  runPromotions,
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsGetCmd)

	rootCmd.AddCommand(estimatesCmd)
	estimatesCmd.AddCommand(estimatesPriceCmd)
	estimatesCmd.AddCommand(estimatesTimeCmd)
	estimatesCmd.AddCommand(estimatesBothCmd)

	rootCmd.AddCommand(promotionsCmd)

	productsListCmd.Flags().Float64("lat", 0, "latitude")
	productsListCmd.Flags().Float64("lng", 0, "longitude")
	productsListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to each product")

	for _, c := range []*cobra.Command{estimatesPriceCmd, estimatesTimeCmd, estimatesBothCmd, promotionsCmd} {
		addTripFlags(c)
	}
	for _, c := range []*cobra.Command{estimatesPriceCmd, estimatesTimeCmd, estimatesBothCmd} {
		c.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to each estimate")
	}
	estimatesPriceCmd.Flags().IntVar(&seatCount, "seats", 0, "seat count for shared products")
}

func addTripFlags(c *cobra.Command) {
	c.Flags().Float64("start-lat", 0, "start latitude")
	c.Flags().Float64("start-lng", 0, "start longitude")
	c.Flags().Float64("end-lat", 0, "end latitude")
	c.Flags().Float64("end-lng", 0, "end longitude")
}

// coordParams copies the coordinate flags that were set into API
// parameters. Unset flags are left out so the client reports them missing.
func coordParams(cmd *cobra.Command, mapping map[string]string) url.Values {
	params := url.Values{}
	for flag, param := range mapping {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		v, err := cmd.Flags().GetFloat64(flag)
		if err != nil {
			continue
		}
		params.Set(param, formatFloat(v))
	}
	return params
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func locationParams(cmd *cobra.Command) url.Values {
	return coordParams(cmd, map[string]string{
		"lat": "latitude",
		"lng": "longitude",
	})
}

func tripParams(cmd *cobra.Command) url.Values {
	return coordParams(cmd, map[string]string{
		"start-lat": "start_latitude",
		"start-lng": "start_longitude",
		"end-lat":   "end_latitude",
		"end-lng":   "end_longitude",
	})
}

func runProductsList(cmd *cobra.Command, args []string) error {
	body, err := uberClient.Products.List(cmd.Context(), locationParams(cmd))
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	body, err = applyFilter(body, "products", filterExpr)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), body)
}

func runProductsGet(cmd *cobra.Command, args []string) error {
	body, err := uberClient.Products.Details(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}
	return printJSON(cmd.OutOrStdout(), body)
}

func runEstimatesPrice(cmd *cobra.Command, args []string) error {
	params := tripParams(cmd)
	if seatCount > 0 {
		params.Set("seat_count", fmt.Sprint(seatCount))
	}

	body, err := uberClient.Estimates.Price(cmd.Context(), params)
	if err != nil {
		return fmt.Errorf("failed to get price estimates: %w", err)
	}

	body, err = applyFilter(body, "prices", filterExpr)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), body)
}

func runEstimatesTime(cmd *cobra.Command, args []string) error {
	body, err := uberClient.Estimates.Time(cmd.Context(), tripParams(cmd))
	if err != nil {
		return fmt.Errorf("failed to get time estimates: %w", err)
	}

	body, err = applyFilter(body, "times", filterExpr)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), body)
}

func runEstimatesBoth(cmd *cobra.Command, args []string) error {
	params := tripParams(cmd)

	var prices, times json.RawMessage
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		body, err := uberClient.Estimates.Price(ctx, params)
		if err != nil {
			return fmt.Errorf("failed to get price estimates: %w", err)
		}
		prices, err = applyFilter(body, "prices", filterExpr)
		return err
	})
	g.Go(func() error {
		body, err := uberClient.Estimates.Time(ctx, params)
		if err != nil {
			return fmt.Errorf("failed to get time estimates: %w", err)
		}
		times, err = applyFilter(body, "times", filterExpr)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	combined, err := json.Marshal(map[string]json.RawMessage{
		"price": prices,
		"time":  times,
	})
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), combined)
}

func runPromotions(cmd *cobra.Command, args []string) error {
	body, err := uberClient.Promotions.Get(cmd.Context(), tripParams(cmd))
	if err != nil {
		return fmt.Errorf("failed to get promotion: %w", err)
	}
	return printJSON(cmd.OutOrStdout(), body)
}
