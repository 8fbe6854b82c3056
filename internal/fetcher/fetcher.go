package fetcher

import (
	"context"
	"io"
)

// Fetcher defines the interface for downloading remote documents.
type Fetcher interface {
	// Download fetches the URL and returns the response body.
	Download(ctx context.Context, url string) (io.ReadCloser, error)

	// FetchBytes fetches the URL and returns the full response body.
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}
