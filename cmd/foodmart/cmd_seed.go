package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/foodmart/config"
	"github.com/shashiranjanraj/foodmart/database/seeders"
	"github.com/shashiranjanraj/foodmart/pkg/database"
)

// foodmart seed: insert the sample catalog if the store is empty.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed sample categories, products, and the test user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		store, err := database.Connect(ctx)
		if err != nil {
			return err
		}
		defer store.Disconnect(context.Background()) //nolint:errcheck

		return seeders.Run(ctx, store)
	},
}
