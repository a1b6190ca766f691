package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/leads-report/auth"
	"github.com/danielhkuo/leads-report/cliparse"
	"github.com/danielhkuo/leads-report/leads"
	"github.com/danielhkuo/leads-report/router"
	"github.com/danielhkuo/leads-report/sheet"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// -hash-password prints a hash for DASHBOARD_PASSWORD_HASH and exits
	if cfg.HashPassword != "" {
		hash, err := auth.HashPassword(cfg.HashPassword)
		if err != nil {
			slog.Error("password hashing failed", "error", err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	// Column layout
	layout, err := leads.LoadLayout(cfg.LayoutPath)
	if err != nil {
		slog.Error("layout load failed", "path", cfg.LayoutPath, "error", err)
		os.Exit(1)
	}

	// Spreadsheet source
	client := sheet.NewClient(cfg.SourceURL(), cfg.FetchTimeout)
	loader := sheet.NewLoader(client, cfg.CacheTTL)
	slog.Info("Sheet source ready", "url", client.URL(), "cache_ttl", cfg.CacheTTL)

	// Create router
	mux := router.NewRouter(loader, layout, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
