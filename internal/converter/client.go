// Package converter implements the image-conversion boundary: an HTTP client
// for the conversion endpoint, the rasterizer backing that endpoint, and an
// in-process converter for callers that do not want to run a server.
package converter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	internalErrors "github.com/SStephenB/pdf-highlight-oa/internal/errors"
	"github.com/SStephenB/pdf-highlight-oa/model"
)

// ConvertRequest is the conversion endpoint's wire request.
type ConvertRequest struct {
	PDFURL string `json:"pdfUrl"`
}

// errorResponse is the body the endpoint returns on failure.
type errorResponse struct {
	Error string `json:"error"`
}

// Client calls a remote image-conversion endpoint. It implements
// services.PageConverter.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a conversion client for the endpoint at baseURL. A nil
// httpClient falls back to http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Convert posts the document URL to the conversion endpoint and returns one
// image per page, in page order.
func (c *Client) Convert(ctx context.Context, pdfURL string) ([]model.PageImage, error) {
	body, err := sonic.Marshal(ConvertRequest{PDFURL: pdfURL})
	if err != nil {
		return nil, fmt.Errorf("encoding convert request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/convert", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building convert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, internalErrors.NewConversionError(pdfURL, 0, err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, internalErrors.NewConversionError(pdfURL, resp.StatusCode, err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		var body errorResponse
		if err := sonic.Unmarshal(data, &body); err == nil && body.Error != "" {
			return nil, internalErrors.NewConversionError(pdfURL, resp.StatusCode, body.Error)
		}
		return nil, internalErrors.NewConversionError(pdfURL, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var images []model.PageImage
	if err := sonic.Unmarshal(data, &images); err != nil {
		return nil, internalErrors.NewConversionError(pdfURL, resp.StatusCode, fmt.Sprintf("decoding response: %v", err))
	}
	return images, nil
}
