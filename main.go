package main

import (
	"context"
	"log"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"

	"github.com/example/storefront-demo/modules/admin"
	"github.com/example/storefront-demo/modules/api"
	"github.com/example/storefront-demo/modules/cart"
	"github.com/example/storefront-demo/modules/catalog"
	"github.com/example/storefront-demo/modules/kvstore"
	"github.com/example/storefront-demo/modules/stockwatch"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Storefront Demo ===")

	ctx := context.Background()

	// Open the shared key-value store
	storeCfg := kvstore.LoadConfig()
	kv, err := kvstore.Open(ctx, storeCfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", storeCfg.Backend, err)
	}
	log.Printf("Using %s store backend", storeCfg.Backend)

	// Build the stores and the admin session manager
	catalogStore := catalog.NewStore(kv, catalog.NewClockIDGenerator())
	cartStore := cart.NewStore(kv)

	credentials, err := admin.DefaultCredentials()
	if err != nil {
		log.Fatalf("Failed to hash admin credentials: %v", err)
	}
	tokens := admin.NewTokenManager(admin.DefaultTokenConfig())
	sessions := admin.NewManager(kv, credentials, tokens)

	// Create mono application with configuration
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create mono application: %v", err)
	}

	// Register modules
	app.Register(stockwatch.NewModule(stockwatch.DefaultThreshold))
	app.Register(catalog.NewModule(catalogStore))
	app.Register(cart.NewModule(cartStore))
	app.Register(admin.NewModule(sessions))
	app.Register(api.NewModule())

	// Start all modules
	if err := app.Start(ctx); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Setup graceful shutdown using gelmium/graceful-shutdown
	// This handles OS signals (SIGINT, SIGTERM, etc.)
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
			"kvstore": func(_ context.Context) error {
				return kv.Close()
			},
		},
	)

	// Wait for shutdown signal and exit with appropriate code
	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("Application started successfully!")
	log.Println("Try these endpoints:")
	log.Println("  - GET  http://localhost:3000/health")
	log.Println("  - GET  http://localhost:3000/api/v1/products")
	log.Println("  - GET  http://localhost:3000/api/v1/products/stats")
	log.Println("  - POST http://localhost:3000/api/v1/auth/login")
	log.Println("  - POST http://localhost:3000/api/v1/cart/items")
	log.Println("  - GET  http://localhost:3000/api/v1/cart/summary?discountCode=SAVE10")
	log.Println("Press Ctrl+C to trigger graceful shutdown")
}
