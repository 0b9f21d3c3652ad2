package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/line/line-bot-sdk-go/v7/linebot"

	"line-restaurant/bot"
	"line-restaurant/config"
	"line-restaurant/db"
	"line-restaurant/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if cfg.Line.ChannelSecret == "" || cfg.Line.ChannelAccessToken == "" {
		fmt.Fprintln(os.Stderr, "CHANNEL_SECRET / CHANNEL_ACCESS_TOKEN not set")
		os.Exit(1)
	}

	// Check for migrate subcommand (needs DATABASE_URL)
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		runMigrate(cfg)
		return
	}

	// Carts live in memory by default; DATABASE_URL swaps in the
	// Postgres store.
	var carts services.CartStore = services.NewMemoryCartStore()
	if cfg.DB.URL != "" {
		if err := db.Init(cfg.DB.URL); err != nil {
			fmt.Fprintln(os.Stderr, "db:", err)
			os.Exit(1)
		}
		defer db.Close()

		// Optional auto-migration for fresh DBs. Set AUTO_MIGRATE=1
		// (or "true") to enable.
		if v := strings.TrimSpace(os.Getenv("AUTO_MIGRATE")); v == "1" || strings.EqualFold(v, "true") {
			if err := applyMigrations(context.Background(), false); err != nil {
				fmt.Fprintln(os.Stderr, "migrate:", err)
				os.Exit(1)
			}
		}
		carts = services.NewPGCartStore(db.Pool)
	}

	sheet, err := services.NewSheetStore(context.Background(), cfg.Sheets.CredentialsFile, cfg.Sheets.SpreadsheetID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sheets:", err)
		os.Exit(1)
	}

	client, err := linebot.New(cfg.Line.ChannelSecret, cfg.Line.ChannelAccessToken,
		linebot.WithHTTPClient(&http.Client{Timeout: 10 * time.Second}))
	if err != nil {
		fmt.Fprintln(os.Stderr, "line client:", err)
		os.Exit(1)
	}

	notify := services.NewNotifyClient(cfg.Line.NotifyToken)
	orders := &services.OrderService{Carts: carts, Orders: sheet, Notify: notify}

	b := bot.New(client, carts, orders, sheet, notify)
	r := mux.NewRouter()
	b.Routes(r)

	fmt.Printf("Webhook server listening on port %d\n", cfg.Server.Port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", cfg.Server.Port), r))
}

func runMigrate(cfg *config.Config) {
	if cfg.DB.URL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL not set")
		os.Exit(1)
	}
	if err := db.Init(cfg.DB.URL); err != nil {
		fmt.Fprintln(os.Stderr, "db:", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := applyMigrations(context.Background(), true); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}
