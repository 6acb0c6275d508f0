package scene

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/mlange-42/ark/ecs"
)

// landmarkTag marks the entity recoloured by the proximity check.
type landmarkTag struct{}

// World is the host scene store. Each spawned object becomes an ECS entity carrying
// Name, Geometry, Material and Transform components. Safe for concurrent use.
type World struct {
	mu *sync.Mutex

	world ecs.World

	objects   *ecs.Map4[Name, Geometry, Material, Transform]
	materials *ecs.Map[Material]
	lights    *ecs.Map2[Name, Light]
	tags      *ecs.Map[landmarkTag]

	renderables *ecs.Filter4[Name, Geometry, Material, Transform]
	lightFilter *ecs.Filter1[Light]

	landmark    ecs.Entity
	hasLandmark bool
	count       int
}

// NewWorld creates an empty World.
func NewWorld() *World {
	w := &World{
		mu:    &sync.Mutex{},
		world: ecs.NewWorld(),
	}
	w.objects = ecs.NewMap4[Name, Geometry, Material, Transform](&w.world)
	w.materials = ecs.NewMap[Material](&w.world)
	w.lights = ecs.NewMap2[Name, Light](&w.world)
	w.tags = ecs.NewMap[landmarkTag](&w.world)
	w.renderables = ecs.NewFilter4[Name, Geometry, Material, Transform](&w.world)
	w.lightFilter = ecs.NewFilter1[Light](&w.world)
	return w
}

// Spawn creates one entity per object and light in the layout. The first object flagged as
// a landmark is registered for SetLandmarkColour.
//
// Parameters:
//   - layout: the descriptors to spawn
//
// Returns:
//   - []ecs.Entity: the object entities in layout order
func (w *World) Spawn(layout Layout) []ecs.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	entities := make([]ecs.Entity, 0, len(layout.Objects))
	for _, o := range layout.Objects {
		name := Name{Value: o.Name}
		geometry := o.Geometry
		material := o.Material
		transform := o.Transform
		e := w.objects.NewEntity(&name, &geometry, &material, &transform)
		if o.Landmark && !w.hasLandmark {
			w.tags.Add(e, &landmarkTag{})
			w.landmark = e
			w.hasLandmark = true
		}
		entities = append(entities, e)
	}
	for i, l := range layout.Lights {
		name := Name{Value: fmt.Sprintf("light-%d", i)}
		light := l
		w.lights.NewEntity(&name, &light)
	}
	w.count += len(layout.Objects)
	return entities
}

// Count returns the number of renderable entities.
func (w *World) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Landmark returns the registered landmark entity.
//
// Returns:
//   - ecs.Entity: the landmark
//   - bool: false if no landmark has been spawned
func (w *World) Landmark() (ecs.Entity, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.landmark, w.hasLandmark
}

// SetLandmarkColour recolours the landmark's material. It is a no-op without a landmark.
//
// Parameters:
//   - c: the new colour
//
// Returns:
//   - bool: true if the colour changed
func (w *World) SetLandmarkColour(c color.RGBA) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.hasLandmark {
		return false
	}
	return w.setColour(w.landmark, c)
}

// SetColour recolours an entity's material.
//
// Parameters:
//   - e: the entity
//   - c: the new colour
//
// Returns:
//   - bool: true if the colour changed
func (w *World) SetColour(e ecs.Entity, c color.RGBA) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.world.Alive(e) || !w.materials.Has(e) {
		return false
	}
	return w.setColour(e, c)
}

// Colour returns an entity's material colour.
func (w *World) Colour(e ecs.Entity) (color.RGBA, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.world.Alive(e) || !w.materials.Has(e) {
		return color.RGBA{}, false
	}
	return w.materials.Get(e).Colour, true
}

// Each visits every renderable entity. The callback must not call back into the World.
//
// Parameters:
//   - fn: receives a copy of each entity's descriptor
func (w *World) Each(fn func(e ecs.Entity, o Object)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	query := w.renderables.Query()
	for query.Next() {
		name, geometry, material, transform := query.Get()
		e := query.Entity()
		fn(e, Object{
			Name:      name.Value,
			Geometry:  *geometry,
			Material:  *material,
			Transform: *transform,
			Landmark:  w.hasLandmark && e == w.landmark,
		})
	}
}

// Lights returns every spawned light.
func (w *World) Lights() []Light {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []Light
	query := w.lightFilter.Query()
	for query.Next() {
		out = append(out, *query.Get())
	}
	return out
}

func (w *World) setColour(e ecs.Entity, c color.RGBA) bool {
	m := w.materials.Get(e)
	if m.Colour == c {
		return false
	}
	m.Colour = c
	return true
}
