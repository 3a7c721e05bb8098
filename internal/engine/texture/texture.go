// Package texture decodes body texture images into RGBA pixel buffers.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

// ErrEmpty is returned when there is no image data to decode.
var ErrEmpty = errors.New("texture: empty image data")

type decoder struct {
	name   string
	match  func([]byte) bool
	decode func(io.Reader) (image.Image, error)
}

// TGA has no magic number, so it is tried last for anything else.
var decoders = []decoder{
	{"png", hasPrefix("\x89PNG\r\n\x1a\n"), png.Decode},
	{"jpeg", hasPrefix("\xff\xd8"), jpeg.Decode},
	{"bmp", hasPrefix("BM"), bmp.Decode},
	{"webp", isWebP, nativewebp.Decode},
	{"tga", func([]byte) bool { return true }, decodeTGA},
}

// tgaFooterSize is the length of the optional TGA 2.0 footer. The tga
// package seeks that far back from the end before reading pixels.
const tgaFooterSize = 26

// decodeTGA pads files shorter than the footer with zeros so tiny
// headerless images still decode. The padding never matches the footer
// signature and sits after the pixel data.
func decodeTGA(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < tgaFooterSize {
		data = append(data, make([]byte, tgaFooterSize-len(data))...)
	}
	return tga.Decode(bytes.NewReader(data))
}

func hasPrefix(magic string) func([]byte) bool {
	return func(b []byte) bool { return bytes.HasPrefix(b, []byte(magic)) }
}

func isWebP(b []byte) bool {
	return len(b) >= 12 && string(b[0:4]) == "RIFF" && string(b[8:12]) == "WEBP"
}

// Format reports which decoder Decode will use for data.
func Format(data []byte) string {
	for _, d := range decoders {
		if d.match(data) {
			return d.name
		}
	}
	return ""
}

// Decode decodes a PNG, JPEG, BMP, WebP or TGA image and returns it as
// RGBA along with the format name.
func Decode(data []byte) (*image.RGBA, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmpty
	}
	for _, d := range decoders {
		if !d.match(data) {
			continue
		}
		img, err := d.decode(bytes.NewReader(data))
		if err != nil {
			return nil, d.name, fmt.Errorf("texture: %s: %w", d.name, err)
		}
		return ToRGBA(img), d.name, nil
	}
	return nil, "", image.ErrFormat
}

// LoadFile reads and decodes an image file.
func LoadFile(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	img, _, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return img, nil
}

// ToRGBA converts any image to *image.RGBA with its origin at (0, 0).
// An RGBA image that already starts at the origin is returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// FlipVertical returns a copy of img with its rows in reverse order.
// Image files store the top row first while glTexImage2D expects the bottom row first.
func FlipVertical(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	rowSize := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		src := img.PixOffset(b.Min.X, b.Max.Y-1-y)
		dst := out.PixOffset(0, y)
		copy(out.Pix[dst:dst+rowSize], img.Pix[src:src+rowSize])
	}
	return out
}
