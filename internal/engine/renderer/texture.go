package renderer

import (
	"image"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/heliosim/internal/engine/texture"
	"github.com/Faultbox/heliosim/internal/logger"
)

// LoadTexture decodes the image at path and uploads it. A texture that cannot
// be read falls back to plain white so the body is still drawn in its color.
func (r *Renderer) LoadTexture(path string) uint32 {
	img, err := texture.LoadFile(path)
	if err != nil {
		logger.Warn("texture unavailable, using fallback",
			zap.String("path", path),
			zap.Error(err),
		)
		return r.whiteTexture
	}
	logger.Debug("texture loaded",
		zap.String("path", path),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)
	return r.UploadTexture(texture.FlipVertical(img))
}

// UploadTexture uploads img with mipmaps and repeat wrapping.
// A nil or empty image yields the white fallback texture.
func (r *Renderer) UploadTexture(img *image.RGBA) uint32 {
	if img == nil || img.Bounds().Empty() {
		return r.whiteTexture
	}
	img = texture.ToRGBA(img)

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	return texID
}

// DeleteTexture releases a texture created by LoadTexture or UploadTexture.
// The shared fallback texture is left alone.
func (r *Renderer) DeleteTexture(id uint32) {
	if id == 0 || id == r.whiteTexture {
		return
	}
	gl.DeleteTextures(1, &id)
}

func (r *Renderer) createWhiteTexture() uint32 {
	var texID uint32
	white := []uint8{255, 255, 255, 255}
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(white))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	return texID
}
