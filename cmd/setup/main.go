package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"teamwatch/core"
	"teamwatch/tunnel"
)

const setupPort = "3030"

// envTemplate seeds .env with the generated forwarder name and placeholder
// tokens for the operator to fill in after installing the Slack app.
const envTemplate = `FORWARDER_NAME=%s
SLACK_OAUTH_ACCESS_TOKEN=xoxp-...
SLACK_BOT_USER_OAUTH_ACCESS_TOKEN=xoxb-...
SLACK_SIGNING_SECRET=
IGNORE_CHANNELS=#ignore_this_channel
`

// Setup bootstraps a fresh install: it generates a tunnel forwarder name,
// writes a starter .env, and answers Slack's one-time URL verification
// challenge so the Request URL can be confirmed in the app configuration.
func main() {
	forwarderName := core.NewID("stw")

	if err := os.WriteFile(".env", fmt.Appendf(nil, envTemplate, forwarderName), 0o600); err != nil {
		log.Printf("❌ Failed to write .env: %v", err)
		os.Exit(1)
	}
	fmt.Println("> Created .env")
	fmt.Println("> Waiting for forwarding tunnel...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go tunnel.Run(ctx, forwarderName, setupPort)

	router := mux.NewRouter()
	router.HandleFunc("/", handleChallenge).Methods("POST")

	fmt.Println(">")
	fmt.Printf("> Now continue with the installation instructions, and use this Request URL when asked: https://%s.serveo.net\n", forwarderName)
	fmt.Println(">")
	fmt.Println("> When Slack sends the verification message this setup will exit...")

	server := &http.Server{
		Addr:              ":" + setupPort,
		Handler:           router,
		ReadHeaderTimeout: 30 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("❌ Server error: %v", err)
		os.Exit(1)
	}
}

func handleChallenge(w http.ResponseWriter, r *http.Request) {
	var envelope struct {
		Challenge string `json:"challenge"`
	}
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil || envelope.Challenge == "" {
		w.WriteHeader(http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte(envelope.Challenge)); err != nil {
		log.Printf("❌ Failed to write challenge response: %v", err)
	}

	fmt.Println(">")
	fmt.Println("> Received verification message. Setup will now exit.")
	fmt.Println("> Continue with the rest of the installation instructions")

	// Give the response time to flush through the tunnel before exiting.
	go func() {
		time.Sleep(2 * time.Second)
		os.Exit(0)
	}()
}
