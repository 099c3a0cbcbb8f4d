package handlers

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"net/http"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	ogWidth  = 1200
	ogHeight = 630
)

// OGHandler renders the social-preview card served to link unfurlers
type OGHandler struct {
	title    string
	subtitle string
}

// NewOGHandler creates a new OGHandler instance
func NewOGHandler(title, subtitle string) *OGHandler {
	return &OGHandler{title: title, subtitle: subtitle}
}

// Image renders the 1200x630 PNG preview card
// @Summary Social preview image
// @Description Render the fixed-size social-preview PNG for link previews
// @Tags og
// @Produce png
// @Success 200 {file} binary "PNG image"
// @Router /api/og [get]
func (h *OGHandler) Image(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	img := image.NewRGBA(image.Rect(0, 0, ogWidth, ogHeight))

	background := color.RGBA{R: 15, G: 23, B: 42, A: 255}
	accent := color.RGBA{R: 59, G: 130, B: 246, A: 255}
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	// Accent bar along the bottom edge
	bar := image.Rect(0, ogHeight-24, ogWidth, ogHeight)
	draw.Draw(img, bar, image.NewUniform(accent), image.Point{}, draw.Src)

	drawCenteredText(img, h.title, ogHeight/2-20, color.White)
	drawCenteredText(img, h.subtitle, ogHeight/2+40, color.RGBA{R: 148, G: 163, B: 184, A: 255})

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	png.Encode(w, img)
}

func drawCenteredText(img *image.RGBA, text string, y int, c color.Color) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I((ogWidth - width) / 2),
			Y: fixed.I(y),
		},
	}
	d.DrawString(text)
}
