// Package main runs the event recorder: a consumer that appends product
// event envelopes to the expiring event log.
package main

import (
	"fmt"
	"os"

	"github.com/Sokol111/ecommerce-storefront/internal/entitystore"
	"github.com/Sokol111/ecommerce-storefront/internal/recorder"
	"github.com/Sokol111/ecommerce-storefront/pkg/core"
	kafkaconfig "github.com/Sokol111/ecommerce-storefront/pkg/messaging/kafka/config"
	"github.com/Sokol111/ecommerce-storefront/pkg/messaging/kafka/producer"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "eventrecorder",
		Short:   "Product event recorder",
		Version: version,
	}

	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the event recorder consumer",
		RunE: func(cmd *cobra.Command, args []string) error {
			newApp().Run()
			return nil
		},
	}
}

func newApp() *fx.App {
	return fx.New(
		core.NewCoreModule(),
		kafkaconfig.NewKafkaConfigModule(),
		producer.NewProducerModule(),
		entitystore.NewEntityStoreModule(),
		recorder.NewRecorderModule(),
	)
}
