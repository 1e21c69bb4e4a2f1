package scene

import (
	"strings"

	"github.com/wippyai/scene-bridge/native"
)

// Texture is a non-owning alias of one embedded foreign texture.
type Texture struct {
	raw  *native.AiTexture
	life *life
}

func newTexture(raw *native.AiTexture, l *life) Texture {
	return Texture{raw: raw, life: l}
}

// Width returns the texture width in texels, or the compressed payload size
// in bytes when Height is zero.
func (t Texture) Width() uint32 {
	t.life.check()
	return t.raw.Width
}

// Height returns the texture height in texels. Zero means the payload is a
// compressed image; FormatHint names its format.
func (t Texture) Height() uint32 {
	t.life.check()
	return t.raw.Height
}

// FormatHint returns the format hint for compressed payloads ("png",
// "jpg", ...).
func (t Texture) FormatHint() string {
	t.life.check()
	hint := string(t.raw.FormatHint[:])
	if i := strings.IndexByte(hint, 0); i >= 0 {
		hint = hint[:i]
	}
	return hint
}
