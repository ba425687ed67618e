package images

import "context"

// MockImageClient implements ImageClient interface for testing
type MockImageClient struct {
	MockFetchImage          func(ctx context.Context, url string) ([]byte, error)
	MockFetchProtectedImage func(ctx context.Context, url string) ([]byte, error)
}

// NewMockImageClient creates a new mock image client
func NewMockImageClient() *MockImageClient {
	return &MockImageClient{}
}

// FetchImage implements ImageClient interface for testing
func (m *MockImageClient) FetchImage(ctx context.Context, url string) ([]byte, error) {
	if m.MockFetchImage != nil {
		return m.MockFetchImage(ctx, url)
	}

	// Default mock response
	return []byte("image-bytes"), nil
}

// FetchProtectedImage implements ImageClient interface for testing
func (m *MockImageClient) FetchProtectedImage(ctx context.Context, url string) ([]byte, error) {
	if m.MockFetchProtectedImage != nil {
		return m.MockFetchProtectedImage(ctx, url)
	}

	// Default mock response
	return []byte("private-image-bytes"), nil
}
