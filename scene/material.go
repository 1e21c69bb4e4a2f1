package scene

import (
	"github.com/wippyai/scene-bridge/native"
)

// Material is a non-owning alias of one foreign material.
type Material struct {
	raw  *native.AiMaterial
	life *life
}

func newMaterial(raw *native.AiMaterial, l *life) Material {
	return Material{raw: raw, life: l}
}

// NumProperties returns the number of properties in the material bag.
func (m Material) NumProperties() uint32 {
	m.life.check()
	return m.raw.NumProperties
}
