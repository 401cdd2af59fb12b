// cmd/health-calc/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"health-calc/internal/config"
	"health-calc/internal/server"
	"health-calc/internal/storage"
)

var (
	port        = flag.Int("port", 0, "Port for HTTP transport (overrides HEALTH_CALC_PORT)")
	host        = flag.String("host", "", "Host address (overrides HEALTH_CALC_HOST)")
	address     = flag.String("address", "", "Address (alias for host)")
	dbPath      = flag.String("db-path", "", "Food catalog database path (overrides HEALTH_CALC_DB_PATH)")
	catalogPath = flag.String("food-catalog", "", "YAML food catalog replacing the built-in table")
	version     = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("%s version %s\n", server.ServerInfo.Name, server.ServerInfo.Version)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Use address if provided, otherwise use host
	if *host != "" {
		cfg.Host = *host
	}
	if *address != "" {
		cfg.Host = *address
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *catalogPath != "" {
		cfg.CatalogPath = *catalogPath
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	table, err := storage.OpenCatalog(cfg.DBPath, cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load food catalog: %v", err)
	}
	log.Printf("Loaded %d foods from %s", table.Len(), cfg.DBPath)

	srv, err := server.NewCalcServer(cfg, table)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-sigCh:
		log.Println("Received shutdown signal")
	case err := <-errCh:
		log.Printf("Server error: %v", err)
	}

	log.Println("Shutting down...")
	cancel()
	if err := srv.Stop(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}
