package scene

import (
	"github.com/wippyai/scene-bridge/native"
)

// Animation is a non-owning alias of one foreign animation.
type Animation struct {
	raw  *native.AiAnimation
	life *life
}

func newAnimation(raw *native.AiAnimation, l *life) Animation {
	return Animation{raw: raw, life: l}
}

// Name returns the animation name, which may be empty.
func (a Animation) Name() string {
	a.life.check()
	return a.raw.Name.String()
}

// Duration returns the animation length in ticks.
func (a Animation) Duration() float64 {
	a.life.check()
	return a.raw.Duration
}

// TicksPerSecond returns the tick rate, or 0 if the source did not specify
// one.
func (a Animation) TicksPerSecond() float64 {
	a.life.check()
	return a.raw.TicksPerSecond
}

// NumChannels returns the number of node animation channels.
func (a Animation) NumChannels() uint32 {
	a.life.check()
	return a.raw.NumChannels
}
