package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"butchermarket/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, logger)

	ctx := context.Background()
	if err := app.SeedCatalog(ctx); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	if configs.SeedDemoData {
		if err := app.SeedDemoOrders(ctx); err != nil {
			log.Fatalf("Failed to seed demo orders: %v", err)
		}
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// .env is optional; environment variables win either way
	_ = godotenv.Load(".env")

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	return cmd.Config{
		HTTPPort:     port,
		SeedDemoData: os.Getenv("SEED_DEMO_DATA") == "true",
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
