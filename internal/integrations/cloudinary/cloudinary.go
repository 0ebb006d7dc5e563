package cloudinary

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.cloudinary.com/v1_1"

// Config holds the Cloudinary account credentials and upload preset.
type Config struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPreset string
	BaseURL      string // overridable for tests
}

// UploadResult is the subset of the upload response the app cares
// about: the host's handle for the image and its public URL.
type UploadResult struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
}

// Client talks to the Cloudinary HTTP API. Uploads are unsigned and
// rely on the configured preset; destroys are signed with the API
// secret.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a Cloudinary client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload sends the file at path to the image upload endpoint and
// returns the stored image's public id and secure URL.
func (c *Client) Upload(path string) (*UploadResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open staged file: %w", err)
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to create multipart field: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to copy file into request: %w", err)
	}
	if err := writer.WriteField("upload_preset", c.cfg.UploadPreset); err != nil {
		return nil, fmt.Errorf("failed to write upload_preset field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/image/upload", c.cfg.BaseURL, c.cfg.CloudName)
	req, err := http.NewRequest(http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("upload rejected with status %d: %s", resp.StatusCode, detail)
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	return &result, nil
}

// Destroy deletes the remote image identified by publicID. Destroy
// calls must be signed: the signature is the SHA-1 of the sorted
// request params concatenated with the API secret.
func (c *Client) Destroy(publicID string) error {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	signature := signParams(fmt.Sprintf("public_id=%s&timestamp=%s", publicID, timestamp), c.cfg.APISecret)

	form := url.Values{}
	form.Set("public_id", publicID)
	form.Set("timestamp", timestamp)
	form.Set("api_key", c.cfg.APIKey)
	form.Set("signature", signature)

	endpoint := fmt.Sprintf("%s/%s/image/destroy", c.cfg.BaseURL, c.cfg.CloudName)
	resp, err := c.httpClient.PostForm(endpoint, form)
	if err != nil {
		return fmt.Errorf("destroy request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("destroy rejected with status %d: %s", resp.StatusCode, detail)
	}
	return nil
}

func signParams(params, secret string) string {
	sum := sha1.Sum([]byte(params + secret))
	return hex.EncodeToString(sum[:])
}
