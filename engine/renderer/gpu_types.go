package renderer

import (
	"encoding/binary"
	"math"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// lightUniformSize is the byte size of GPUPointLight.
const lightUniformSize = 32

// defaultAmbient is the light level of surfaces facing away from the light.
const defaultAmbient = 0.35

// GPUPointLight mirrors the PointLight uniform block in the shader.
type GPUPointLight struct {
	Position  mgl32.Vec3 // offset  0
	Intensity float32    // offset 12, saturates at 1
	Range     float32    // offset 16
	Radius    float32    // offset 20
	Ambient   float32    // offset 24
	_pad      float32    // offset 28
}

// NewGPUPointLight converts a scene light. Intensity is clamped to [0, 1] since the
// shader treats it as a diffuse scale.
func NewGPUPointLight(l scene.Light, ambient float32) GPUPointLight {
	return GPUPointLight{
		Position:  l.Position,
		Intensity: common.Clamp(l.Intensity, 0, 1),
		Range:     l.Range,
		Radius:    l.Radius,
		Ambient:   ambient,
	}
}

// Marshal serializes the light for upload.
func (g GPUPointLight) Marshal() []byte {
	buf := make([]byte, lightUniformSize)
	putVec3(buf, g.Position)
	words := [4]float32{g.Intensity, g.Range, g.Radius, g.Ambient}
	for i, v := range words {
		binary.LittleEndian.PutUint32(buf[12+i*4:], math.Float32bits(v))
	}
	return buf
}
