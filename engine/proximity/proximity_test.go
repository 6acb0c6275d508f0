package proximity

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestHighlighter_Colour(t *testing.T) {
	h := NewHighlighter(mgl32.Vec3{0, 10, 0})

	cases := []struct {
		name     string
		position mgl32.Vec3
		want     color.RGBA
	}{
		{"start pose is far", mgl32.Vec3{0, 20, 40}, Blue},
		{"directly above", mgl32.Vec3{0, 20, 0}, Red},
		{"just inside", mgl32.Vec3{29.9, 10, 0}, Red},
		{"on the radius", mgl32.Vec3{30, 10, 0}, Blue},
		{"diagonal just outside", mgl32.Vec3{0, 20, -29}, Blue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, h.Colour(tc.position))
		})
	}
}

func TestHighlighter_Idempotent(t *testing.T) {
	h := NewHighlighter(mgl32.Vec3{})
	p := mgl32.Vec3{3, 4, 0}
	assert.Equal(t, h.Colour(p), h.Colour(p))
	assert.True(t, h.InRange(p))
}
