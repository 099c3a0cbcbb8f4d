package handlers

import (
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOGImage(t *testing.T) {
	h := NewOGHandler("UGEM", "Student Union Candidate Registry")

	rec := httptest.NewRecorder()
	h.Image(rec, httptest.NewRequest(http.MethodGet, "/api/og", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 1200, img.Bounds().Dx())
	assert.Equal(t, 630, img.Bounds().Dy())
}

func TestOGImageRejectsPost(t *testing.T) {
	h := NewOGHandler("UGEM", "")

	rec := httptest.NewRecorder()
	h.Image(rec, httptest.NewRequest(http.MethodPost, "/api/og", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
