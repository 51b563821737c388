// Package imaging normalizes uploaded photos before they are stored.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png"
	"net/http"

	"golang.org/x/image/draw"

	"github.com/heartmarshall/resale-backend/internal/domain"
)

const (
	DefaultMaxSide = 1024
	DefaultQuality = 85
)

// Pipeline sniffs, downscales and re-encodes images as JPEG.
type Pipeline struct {
	maxSide int
	quality int
}

// NewPipeline creates a Pipeline. Non-positive arguments select the defaults.
func NewPipeline(maxSide, quality int) *Pipeline {
	if maxSide <= 0 {
		maxSide = DefaultMaxSide
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	return &Pipeline{maxSide: maxSide, quality: quality}
}

// Process returns data as a JPEG whose longest side is at most the
// configured maximum. Only JPEG and PNG input is accepted; anything else is
// a validation error.
func (p *Pipeline) Process(data []byte) ([]byte, error) {
	switch ct := http.DetectContentType(data); ct {
	case "image/jpeg", "image/png":
	default:
		return nil, domain.NewValidationError("images", "unsupported image format "+ct+", only JPEG and PNG are accepted")
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, domain.NewValidationError("images", "image could not be decoded")
	}

	dst := p.resize(src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// resize scales src onto a white canvas so that transparent PNG areas do
// not turn black in the JPEG.
func (p *Pipeline) resize(src image.Image) image.Image {
	b := src.Bounds()
	w, h := fitWithin(b.Dx(), b.Dy(), p.maxSide)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// fitWithin returns w and h scaled so the longest side is at most limit,
// keeping the aspect ratio and never going below 1px.
func fitWithin(w, h, limit int) (int, int) {
	if w <= limit && h <= limit {
		return w, h
	}
	if w >= h {
		return limit, clampMin1(h * limit / w)
	}
	return clampMin1(w * limit / h), limit
}

func clampMin1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
