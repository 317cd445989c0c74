package pdf

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// maxDocumentBytes caps how much document data is read from a remote source.
const maxDocumentBytes = 128 << 20

// Fetch retrieves raw document bytes. URLs with an http or https scheme are
// downloaded; anything else is treated as a local file path. A nil httpClient
// falls back to http.DefaultClient.
func Fetch(ctx context.Context, httpClient *http.Client, documentURL string) ([]byte, error) {
	if !strings.HasPrefix(documentURL, "http://") && !strings.HasPrefix(documentURL, "https://") {
		data, err := os.ReadFile(documentURL)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", documentURL, err)
		}
		return data, nil
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, documentURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %q: %w", documentURL, err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", documentURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %q: status %d", documentURL, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", documentURL, err)
	}
	return data, nil
}
