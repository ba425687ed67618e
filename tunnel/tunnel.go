package tunnel

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"time"
)

// restartDelay throttles the relaunch loop so a dead serveo endpoint
// does not turn into a busy spin.
const restartDelay = 2 * time.Second

// Run keeps an ssh reverse tunnel to serveo.net alive until the context is
// cancelled. Serveo closes idle connections after a while, so the process is
// relaunched whenever it exits. The public endpoint is
// https://<forwarderName>.serveo.net forwarding to localhost:<port>.
func Run(ctx context.Context, forwarderName, port string) {
	log.Printf("🚇 Starting tunnel: https://%s.serveo.net -> localhost:%s", forwarderName, port)

	for {
		if err := runOnce(ctx, forwarderName, port); err != nil {
			if ctx.Err() != nil {
				return
			}
			if IsBenignError(err) {
				log.Printf("🚇 Tunnel disconnected, restarting: %v", err)
			} else {
				log.Printf("❌ Tunnel exited with error, restarting: %v", err)
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(restartDelay):
		}
	}
}

func runOnce(ctx context.Context, forwarderName, port string) error {
	forward := fmt.Sprintf("%s:80:localhost:%s", forwarderName, port)
	cmd := exec.CommandContext(ctx, "ssh",
		"-o", "StrictHostKeyChecking=no",
		"-o", "ServerAliveInterval=60",
		"-R", forward, "serveo.net")

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to run ssh tunnel: %w (output: %s)", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// IsBenignError reports whether a tunnel failure is a known transient
// disconnect that the restart loop absorbs without operator attention.
func IsBenignError(err error) bool {
	if err == nil {
		return false
	}
	message := err.Error()
	return strings.Contains(message, "connection refused") ||
		strings.Contains(message, "tunnel server offline")
}
