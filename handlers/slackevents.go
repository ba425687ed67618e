package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"teamwatch/models"
	"teamwatch/usecases/feed"
)

type SlackEventsHandler struct {
	signingSecret string
	feedUseCase   *feed.FeedUseCase
}

// NewSlackEventsHandler creates the webhook handler. signingSecret may be
// empty, in which case request signatures are not verified.
func NewSlackEventsHandler(signingSecret string, feedUseCase *feed.FeedUseCase) *SlackEventsHandler {
	return &SlackEventsHandler{
		signingSecret: signingSecret,
		feedUseCase:   feedUseCase,
	}
}

// verifySlackSignature verifies the authenticity of a Slack webhook request
func (h *SlackEventsHandler) verifySlackSignature(r *http.Request, body []byte) error {
	timestamp := r.Header.Get("X-Slack-Request-Timestamp")
	signature := r.Header.Get("X-Slack-Signature")

	if timestamp == "" || signature == "" {
		return fmt.Errorf("missing required headers")
	}

	// Verify timestamp freshness (within 5 minutes)
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp format: %v", err)
	}

	if time.Now().Unix()-ts > 300 {
		return fmt.Errorf("request timestamp too old")
	}

	// Signature base string: v0:timestamp:body
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, string(body))

	mac := hmac.New(sha256.New, []byte(h.signingSecret))
	mac.Write([]byte(baseString))
	expectedSignature := "v0=" + hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expectedSignature), []byte(signature)) {
		return fmt.Errorf("signature verification failed")
	}

	return nil
}

// HandleSlackEvent accepts one webhook delivery. Slack expects the response
// within a tight deadline, so the handler acknowledges immediately and all
// resolution/rendering work happens after the response is sent.
func (h *SlackEventsHandler) HandleSlackEvent(w http.ResponseWriter, r *http.Request) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("❌ Failed to read request body: %v", err)
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	if h.signingSecret != "" {
		if err := h.verifySlackSignature(r, bodyBytes); err != nil {
			log.Printf("❌ Slack signature verification failed: %v", err)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
	}

	var envelope models.EventEnvelope
	if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
		log.Printf("❌ Failed to parse JSON body: %v", err)
		http.Error(w, "failed to parse body", http.StatusBadRequest)
		return
	}

	if envelope.Type == "url_verification" {
		log.Printf("🔐 Slack URL verification challenge received")
		w.Header().Set("Content-Type", "text/plain")
		if _, err := w.Write([]byte(envelope.Challenge)); err != nil {
			log.Printf("❌ Failed to write challenge response: %v", err)
		}
		return
	}

	// Acknowledge before any rendering work so Slack never retries on a
	// rendering failure.
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		log.Printf("❌ Failed to write ack response: %v", err)
	}

	go h.processEvent(&envelope, bodyBytes)
}

// processEvent renders one delivery fire-and-forget. Panics from malformed
// payloads are recovered and logged with the offending payload; the process
// keeps serving subsequent events.
func (h *SlackEventsHandler) processEvent(envelope *models.EventEnvelope, payload []byte) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Panic while processing Slack event: %v - payload: %s", r, payload)
		}
	}()

	if err := h.feedUseCase.ProcessEvent(context.Background(), envelope); err != nil {
		log.Printf("❌ Failed to process Slack event: %v - payload: %s", err, payload)
	}
}

func (h *SlackEventsHandler) SetupEndpoints(router *mux.Router) {
	router.HandleFunc("/", h.HandleSlackEvent).Methods("POST")
	log.Printf("✅ POST / webhook endpoint registered")
}
