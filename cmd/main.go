package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	imagesclient "teamwatch/clients/images"
	slackclient "teamwatch/clients/slack"
	"teamwatch/config"
	"teamwatch/handlers"
	"teamwatch/services/recency"
	"teamwatch/services/resolver"
	"teamwatch/terminal"
	"teamwatch/tunnel"
	"teamwatch/usecases/feed"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	slackClient := slackclient.NewSlackClient(cfg.SlackConfig.BotToken)
	imageClient := imagesclient.NewImageClient(cfg.SlackConfig.UserToken)

	resolverService := resolver.NewService(slackClient, imageClient)
	recencyService := recency.NewCache()

	printer := terminal.NewPrinter(os.Stdout)
	feedUseCase := feed.NewFeedUseCase(resolverService, recencyService, printer, cfg.IgnoreChannels)
	slackHandler := handlers.NewSlackEventsHandler(cfg.SlackConfig.SigningSecret, feedUseCase)

	router := mux.NewRouter()
	slackHandler.SetupEndpoints(router)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			log.Printf("❌ Failed to write health check response: %v", err)
		}
	}).Methods("GET")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.TunnelConfig.IsConfigured() {
		go tunnel.Run(ctx, cfg.TunnelConfig.ForwarderName, cfg.Port)
	}

	printer.HideCursor()
	defer printer.ShowCursor()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 30 * time.Second,
	}

	return serveUntilExit(server, printer)
}

// serveUntilExit runs the HTTP server until a shutdown signal or an exit
// keystroke (ctrl-c / ctrl-d in the raw-mode terminal) arrives, then shuts
// down gracefully and restores the cursor.
func serveUntilExit(server *http.Server, printer *terminal.Printer) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	// While the terminal is in raw mode, ctrl-c arrives as a keystroke
	// instead of SIGINT, so the key reader feeds the same stop channel.
	go func() {
		if err := terminal.ReadKeys(func() {
			stop <- os.Interrupt
		}); err != nil {
			log.Printf("⚠️ Keyboard input unavailable: %v", err)
		}
	}()

	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")
	printer.ShowCursor()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
		return err
	}

	log.Printf("✅ Server stopped gracefully")
	return nil
}
