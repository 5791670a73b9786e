package main

import (
	"github.com/spf13/cobra"

	"github.com/simpleshop/shop-api/internal/seed"
)

func newSeedCmd(c *cli) *cobra.Command {
	opts := seed.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill a running shop API with random data over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := seed.New(opts, c.logger, nil)
			if err != nil {
				return err
			}
			_, err = s.Run(cmd.Context())
			return err
		},
	}
	cmd.Flags().StringVar(&opts.BaseURL, "base-url", opts.BaseURL, "shop API base URL")
	cmd.Flags().IntVar(&opts.Products, "products", opts.Products, "number of products to create")
	cmd.Flags().IntVar(&opts.Customers, "customers", opts.Customers, "number of customers to create")
	cmd.Flags().IntVar(&opts.Purchases, "purchases", opts.Purchases, "number of purchases to create")
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", opts.Concurrency, "parallel purchase requests")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", opts.Timeout, "per-request HTTP timeout")
	return cmd
}
