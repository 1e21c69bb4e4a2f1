package scene

import (
	"github.com/wippyai/scene-bridge/native"
)

// Camera is a non-owning alias of one foreign camera.
type Camera struct {
	raw  *native.AiCamera
	life *life
}

func newCamera(raw *native.AiCamera, l *life) Camera {
	return Camera{raw: raw, life: l}
}

// Name returns the camera name, matching a node in the hierarchy.
func (c Camera) Name() string {
	c.life.check()
	return c.raw.Name.String()
}

// Position returns the camera position in the coordinate space of its node.
func (c Camera) Position() native.AiVector3D {
	c.life.check()
	return c.raw.Position
}

// LookAt returns the look-at target direction.
func (c Camera) LookAt() native.AiVector3D {
	c.life.check()
	return c.raw.LookAt
}

// Up returns the up vector.
func (c Camera) Up() native.AiVector3D {
	c.life.check()
	return c.raw.Up
}

// HorizontalFOV returns the horizontal field of view in radians.
func (c Camera) HorizontalFOV() float32 {
	c.life.check()
	return c.raw.HorizontalFOV
}

// ClipPlaneNear returns the near clip plane distance.
func (c Camera) ClipPlaneNear() float32 {
	c.life.check()
	return c.raw.ClipPlaneNear
}

// ClipPlaneFar returns the far clip plane distance.
func (c Camera) ClipPlaneFar() float32 {
	c.life.check()
	return c.raw.ClipPlaneFar
}

// Aspect returns the aspect ratio, or 0 if the source did not specify one.
func (c Camera) Aspect() float32 {
	c.life.check()
	return c.raw.Aspect
}
