package images

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"teamwatch/clients"
)

// ImageClient implements the clients.ImageClient interface over plain HTTP.
// Protected fetches (Slack-hosted private files) are authorized with the
// user OAuth token.
type ImageClient struct {
	httpClient *http.Client
	userToken  string
}

// NewImageClient creates a new image client. The user token may be empty, in
// which case protected fetches fail with a clear error.
func NewImageClient(userToken string) clients.ImageClient {
	return &ImageClient{
		httpClient: http.DefaultClient,
		userToken:  userToken,
	}
}

// FetchImage downloads a publicly reachable image
func (c *ImageClient) FetchImage(ctx context.Context, url string) ([]byte, error) {
	return c.fetch(ctx, url, "")
}

// FetchProtectedImage downloads a Slack private file URL using the user token
func (c *ImageClient) FetchProtectedImage(ctx context.Context, url string) ([]byte, error) {
	if c.userToken == "" {
		return nil, fmt.Errorf("no user OAuth token configured for private file %s", url)
	}
	return c.fetch(ctx, url, c.userToken)
}

func (c *ImageClient) fetch(ctx context.Context, url, bearerToken string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch image %s: status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image body for %s: %w", url, err)
	}
	return data, nil
}
