package uploads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"UGEM_BACK-END/internal/config"
)

// ErrNotConfigured is returned when no upload endpoint is set in the environment.
var ErrNotConfigured = errors.New("image upload is not configured")

// Client proxies candidate photos to the external image host using an
// unsigned upload preset.
type Client struct {
	cfg  *config.UploadConfig
	http *http.Client
}

// NewClient creates a new upload Client
func NewClient(cfg *config.UploadConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

type uploadResult struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the file to the image host and returns the hosted HTTPS URL.
func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	if c.cfg.URL == "" {
		return "", ErrNotConfigured
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("copy file: %w", err)
	}
	if err := writer.WriteField("upload_preset", c.cfg.UploadPreset); err != nil {
		return "", fmt.Errorf("write preset field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, &body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	defer resp.Body.Close()

	var result uploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if result.Error.Message != "" {
			return "", fmt.Errorf("image host rejected upload: %s", result.Error.Message)
		}
		return "", fmt.Errorf("image host returned status %d", resp.StatusCode)
	}

	if result.SecureURL != "" {
		return result.SecureURL, nil
	}
	if result.URL != "" {
		return result.URL, nil
	}
	return "", errors.New("image host response missing url")
}
