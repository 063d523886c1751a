// Package main runs the storefront API service: the product catalog and
// order lifecycle surface backed by the entity store and the event
// transport.
package main

import (
	"fmt"
	"os"

	"github.com/Sokol111/ecommerce-storefront/internal/api"
	"github.com/Sokol111/ecommerce-storefront/internal/audit"
	"github.com/Sokol111/ecommerce-storefront/internal/catalog"
	"github.com/Sokol111/ecommerce-storefront/internal/entitystore"
	"github.com/Sokol111/ecommerce-storefront/internal/event/publisher"
	"github.com/Sokol111/ecommerce-storefront/internal/orders"
	"github.com/Sokol111/ecommerce-storefront/pkg/core"
	"github.com/Sokol111/ecommerce-storefront/pkg/core/health"
	"github.com/Sokol111/ecommerce-storefront/pkg/http/middleware"
	"github.com/Sokol111/ecommerce-storefront/pkg/http/server"
	kafkaconfig "github.com/Sokol111/ecommerce-storefront/pkg/messaging/kafka/config"
	"github.com/Sokol111/ecommerce-storefront/pkg/messaging/kafka/producer"
	"github.com/Sokol111/ecommerce-storefront/pkg/security/token"
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
		Use:     "storefront",
		Short:   "Storefront API service",
		Version: version,
	}

	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the storefront API service",
		RunE: func(cmd *cobra.Command, args []string) error {
			newApp().Run()
			return nil
		},
	}
}

func newApp() *fx.App {
	return fx.New(
		core.NewCoreModule(),
		middleware.NewGinModule(),
		server.NewHTTPServerModule(),
		health.NewHealthEndpointsModule(),
		token.NewTokenModule(),
		kafkaconfig.NewKafkaConfigModule(),
		producer.NewProducerModule(),
		publisher.NewPublisherModule(),
		audit.NewAuditModule(),
		entitystore.NewEntityStoreModule(),
		catalog.NewCatalogModule(),
		orders.NewOrdersModule(),
		api.NewAPIModule(),
	)
}
