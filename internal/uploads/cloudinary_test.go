package uploads

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"UGEM_BACK-END/internal/config"
)

func testConfig(url string) *config.UploadConfig {
	return &config.UploadConfig{
		URL:          url,
		UploadPreset: "ugem_unsigned",
		Timeout:      5 * time.Second,
		MaxFileSize:  5 << 20,
	}
}

func TestUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))
		assert.Equal(t, "ugem_unsigned", r.FormValue("upload_preset"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "photo.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"secure_url":"https://cdn.example.com/photo.jpg"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	url, err := client.Upload(context.Background(), "photo.jpg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/photo.jpg", url)
}

func TestUploadHostRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Upload preset not found"}}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	_, err := client.Upload(context.Background(), "photo.jpg", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Upload preset not found")
}

func TestUploadNotConfigured(t *testing.T) {
	client := NewClient(testConfig(""))

	_, err := client.Upload(context.Background(), "photo.jpg", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestUploadContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Upload(ctx, "photo.jpg", strings.NewReader("x"))
	assert.Error(t, err)
}
