package scene

import (
	"github.com/wippyai/scene-bridge/native"
)

// Light is a non-owning alias of one foreign light source.
type Light struct {
	raw  *native.AiLight
	life *life
}

func newLight(raw *native.AiLight, l *life) Light {
	return Light{raw: raw, life: l}
}

// Name returns the light name, matching a node in the hierarchy.
func (l Light) Name() string {
	l.life.check()
	return l.raw.Name.String()
}

// Type returns the light source type (native.LightSource* constants).
func (l Light) Type() uint32 {
	l.life.check()
	return l.raw.Type
}

// Position returns the light position in the coordinate space of its node.
func (l Light) Position() native.AiVector3D {
	l.life.check()
	return l.raw.Position
}

// Direction returns the light direction; undefined for point lights.
func (l Light) Direction() native.AiVector3D {
	l.life.check()
	return l.raw.Direction
}

// ColorDiffuse returns the diffuse color.
func (l Light) ColorDiffuse() native.AiColor3D {
	l.life.check()
	return l.raw.ColorDiffuse
}
