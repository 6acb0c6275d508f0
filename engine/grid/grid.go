// Package grid lays out the ground grid and the world bounds derived from it.
package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrInvalidInterval is returned when a line spacing is not a positive whole number.
	ErrInvalidInterval = errors.New("grid interval must be a positive whole number")

	// ErrInvalidSize is returned when an extent is negative, not finite, too large,
	// or would produce more than MaxLinesPerFamily lines.
	ErrInvalidSize = errors.New("grid size must be a finite, non-negative number")
)

const (
	// MaxExtent bounds both sizes and intervals so offsets stay inside int range.
	MaxExtent = math.MaxInt32

	// MaxLinesPerFamily caps the number of lines generated along one axis.
	MaxLinesPerFamily = 1 << 16
)

// Grid holds the world extents and line spacing. It doubles as the world bounds
// that the camera is clamped to, and is immutable once validated.
type Grid struct {
	// SizeX is the extent of the grid along the world X axis.
	SizeX float32
	// SizeY is the extent of the grid along the world Z axis (the ground plane's second axis).
	SizeY float32
	// IntervalX is the spacing between lines of the X-axis family.
	IntervalX float32
	// IntervalY is the spacing between lines of the Z-axis family.
	IntervalY float32
}

// Bounds is the horizontal rectangle the camera is allowed to occupy.
type Bounds struct {
	MinX, MaxX float32
	MinZ, MaxZ float32
}

// Default returns the grid used when nothing is configured: 100 units along X with lines
// every 10, and 1000 units along Z with lines every 10.
func Default() Grid {
	return Grid{SizeX: 100, SizeY: 1000, IntervalX: 10, IntervalY: 10}
}

// New validates the configuration and returns a Grid.
//
// Parameters:
//   - sizeX, sizeY: extents along world X and Z
//   - intervalX, intervalY: line spacing for each family (positive whole numbers)
//
// Returns:
//   - Grid: the validated grid
//   - error: wraps ErrInvalidSize or ErrInvalidInterval when the configuration is rejected
func New(sizeX, sizeY, intervalX, intervalY float32) (Grid, error) {
	g := Grid{SizeX: sizeX, SizeY: sizeY, IntervalX: intervalX, IntervalY: intervalY}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// Validate checks that both extents are usable and both intervals form a positive integer stride.
//
// Returns:
//   - error: nil when valid
func (g Grid) Validate() error {
	for _, s := range []struct {
		name string
		v    float32
	}{{"sizeX", g.SizeX}, {"sizeY", g.SizeY}} {
		if !finite(s.v) || s.v < 0 || float64(s.v) > MaxExtent {
			return fmt.Errorf("%s=%v: %w", s.name, s.v, ErrInvalidSize)
		}
	}
	for _, iv := range []struct {
		name string
		v    float32
	}{{"intervalX", g.IntervalX}, {"intervalY", g.IntervalY}} {
		if !finite(iv.v) || iv.v <= 0 || float64(iv.v) > MaxExtent || float64(iv.v) != math.Trunc(float64(iv.v)) {
			return fmt.Errorf("%s=%v: %w", iv.name, iv.v, ErrInvalidInterval)
		}
	}
	for _, f := range []struct {
		name           string
		size, interval float32
	}{{"sizeX", g.SizeX, g.IntervalX}, {"sizeY", g.SizeY, g.IntervalY}} {
		if n := lineCount(f.size, f.interval); n > MaxLinesPerFamily {
			return fmt.Errorf("%s=%v yields %d lines, limit %d: %w", f.name, f.size, n, MaxLinesPerFamily, ErrInvalidSize)
		}
	}
	return nil
}

// lineCount is the number of offsets in [ceil(-size/2), floor(size/2)] stepping by interval.
func lineCount(size, interval float32) int64 {
	lo := math.Ceil(float64(-size) / 2)
	hi := math.Floor(float64(size) / 2)
	if hi < lo {
		return 0
	}
	return int64((hi-lo)/float64(interval)) + 1
}

// Bounds returns the symmetric horizontal region covered by the grid.
//
// Returns:
//   - Bounds: [-SizeX/2, SizeX/2] x [-SizeY/2, SizeY/2]
func (g Grid) Bounds() Bounds {
	return Bounds{
		MinX: -g.SizeX / 2,
		MaxX: g.SizeX / 2,
		MinZ: -g.SizeY / 2,
		MaxZ: g.SizeY / 2,
	}
}

// Clamp limits the X and Z components of p to the bounds. Y passes through untouched.
//
// Parameters:
//   - p: a world-space position
//
// Returns:
//   - mgl32.Vec3: the clamped position
func (b Bounds) Clamp(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		common.Clamp(p[0], b.MinX, b.MaxX),
		p[1],
		common.Clamp(p[2], b.MinZ, b.MaxZ),
	}
}

// Contains reports whether the X and Z components of p lie inside the bounds.
func (b Bounds) Contains(p mgl32.Vec3) bool {
	return p[0] >= b.MinX && p[0] <= b.MaxX && p[2] >= b.MinZ && p[2] <= b.MaxZ
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
