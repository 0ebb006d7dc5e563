package cloudinary_test

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"sosmed/internal/integrations/cloudinary"

	"github.com/stretchr/testify/assert"
)

func newTestClient(baseURL string) *cloudinary.Client {
	return cloudinary.NewClient(cloudinary.Config{
		CloudName:    "demo",
		APIKey:       "key123",
		APISecret:    "secret456",
		UploadPreset: "ml_default",
		BaseURL:      baseURL,
	})
}

func TestUpload(t *testing.T) {
	var gotPreset string
	var gotFile []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/demo/image/upload", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		err := r.ParseMultipartForm(1 << 20)
		assert.NoError(t, err)
		gotPreset = r.FormValue("upload_preset")

		file, _, err := r.FormFile("file")
		assert.NoError(t, err)
		buf := make([]byte, 32)
		n, _ := file.Read(buf)
		gotFile = buf[:n]

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"public_id":"folder/abc123","secure_url":"https://res.example.com/folder/abc123.jpg"}`)
	}))
	defer server.Close()

	staged := filepath.Join(t.TempDir(), "pic.jpg")
	err := os.WriteFile(staged, []byte("fake-jpeg-bytes"), 0o600)
	assert.NoError(t, err)

	client := newTestClient(server.URL)
	result, err := client.Upload(staged)
	assert.NoError(t, err)
	assert.Equal(t, "folder/abc123", result.PublicID)
	assert.Equal(t, "https://res.example.com/folder/abc123.jpg", result.SecureURL)
	assert.Equal(t, "ml_default", gotPreset)
	assert.Equal(t, []byte("fake-jpeg-bytes"), gotFile)
}

func TestUploadRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"Upload preset not found"}}`, http.StatusBadRequest)
	}))
	defer server.Close()

	staged := filepath.Join(t.TempDir(), "pic.jpg")
	err := os.WriteFile(staged, []byte("x"), 0o600)
	assert.NoError(t, err)

	client := newTestClient(server.URL)
	_, err = client.Upload(staged)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestDestroySignsRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/demo/image/destroy", r.URL.Path)
		err := r.ParseForm()
		assert.NoError(t, err)

		assert.Equal(t, "folder/abc123", r.FormValue("public_id"))
		assert.Equal(t, "key123", r.FormValue("api_key"))

		// Recompute the expected signature from the submitted params.
		params := fmt.Sprintf("public_id=%s&timestamp=%s", r.FormValue("public_id"), r.FormValue("timestamp"))
		sum := sha1.Sum([]byte(params + "secret456"))
		assert.Equal(t, hex.EncodeToString(sum[:]), r.FormValue("signature"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"result":"ok"}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.Destroy("folder/abc123")
	assert.NoError(t, err)
}
