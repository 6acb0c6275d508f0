// Package renderer draws the scene world through WebGPU: one instanced draw per geometry
// kind, with a camera uniform and a single point light.
package renderer

import (
	_ "embed"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/scene"
	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
	"github.com/mlange-42/ark/ecs"
	"github.com/rs/zerolog"
)

//go:embed shaders/flycam.wgsl
var sceneShader string

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backend RendererBackend
	camera  camera.Camera
	world   *scene.World
	pool    worker.DynamicWorkerPool
	logger  zerolog.Logger

	meshes  map[scene.GeometryKind]meshBuffers
	light   GPUPointLight
	objects []scene.Object
	culling bool
	stats   FrameStats

	// pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	msaa                 MSAASampleCount
	workers              int
	ambient              float32
}

// Renderer draws the scene world from the camera's point of view.
type Renderer interface {
	// Render prepares instances for every entity in the world and draws one frame.
	//
	// Returns:
	//   - error: an error if the frame could not be acquired or uploaded; the frame is skipped
	Render() error

	// Resize reconfigures the surface for a new framebuffer size.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	Resize(width, height int)

	// Stats returns the drawn and culled instance counts of the last frame.
	Stats() FrameStats

	// Release frees the GPU resources and stops the worker pool.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a WebGPU renderer drawing into the window's surface.
//
// Parameters:
//   - w: the window providing the surface descriptor and initial size
//   - cam: the camera supplying view-projection and frustum
//   - world: the scene world to draw
//   - options: functional options
//
// Returns:
//   - Renderer: the renderer
//   - error: an error if the pipeline or meshes could not be created
func NewRenderer(w window.Window, cam camera.Camera, world *scene.World, options ...RendererBuilderOption) (Renderer, error) {
	r := newRenderer(cam, world, options...)

	backend := newWGPURendererBackend(w.SurfaceDescriptor(), r.forceFallbackAdapter, r.msaa)
	backend.SetPresentMode(r.presentMode)
	backend.ConfigureSurface(w.Width(), w.Height())

	if err := r.init(backend); err != nil {
		backend.Release()
		r.pool.Stop()
		return nil, err
	}
	return r, nil
}

// newRenderer applies options without touching the GPU.
func newRenderer(cam camera.Camera, world *scene.World, options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		camera:      cam,
		world:       world,
		logger:      zerolog.Nop(),
		meshes:      make(map[scene.GeometryKind]meshBuffers),
		culling:     true,
		presentMode: PresentModeVSync,
		msaa:        MSAA4x,
		workers:     runtime.NumCPU(),
		ambient:     defaultAmbient,
	}

	for _, opt := range options {
		opt(r)
	}

	r.logger = r.logger.With().Str("component", "renderer").Logger()
	r.pool = worker.NewDynamicWorkerPool(r.workers, 256, 1*time.Second)
	return r
}

// init registers the pipeline, uploads the unit meshes and resolves the light.
func (r *renderer) init(backend RendererBackend) error {
	r.backend = backend

	if err := backend.RegisterPipeline(sceneShader); err != nil {
		return fmt.Errorf("failed to register scene pipeline: %w", err)
	}

	for _, kind := range scene.GeometryKinds() {
		mesh, err := backend.UploadMesh(kind.String(), UnitMesh(kind))
		if err != nil {
			return fmt.Errorf("failed to upload %s mesh: %w", kind, err)
		}
		r.meshes[kind] = mesh
	}

	if lights := r.world.Lights(); len(lights) > 0 {
		r.light = NewGPUPointLight(lights[0], r.ambient)
	} else {
		r.light = GPUPointLight{Ambient: 1}
	}

	r.logger.Info().
		Int("entities", r.world.Count()).
		Int("workers", r.workers).
		Uint32("msaa", uint32(r.msaa)).
		Msg("renderer ready")
	return nil
}

func (r *renderer) Render() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.objects = r.objects[:0]
	r.world.Each(func(_ ecs.Entity, o scene.Object) {
		r.objects = append(r.objects, o)
	})

	batches := r.prepare()
	r.stats = Stats(batches)

	var instances []Instance
	firsts := make([]uint32, len(batches))
	for i, b := range batches {
		firsts[i] = uint32(len(instances))
		instances = append(instances, b.Instances...)
	}

	uniform := r.camera.Uniform()
	r.backend.WriteUniforms(uniform.Marshal(), r.light.Marshal())
	if err := r.backend.WriteInstances(MarshalInstances(instances)); err != nil {
		return fmt.Errorf("failed to upload instances: %w", err)
	}

	if err := r.backend.BeginFrame(); err != nil {
		return err
	}
	for i, b := range batches {
		if mesh, ok := r.meshes[b.Kind]; ok {
			r.backend.DrawInstanced(mesh, firsts[i], uint32(len(b.Instances)))
		}
	}
	r.backend.EndFrame()
	r.backend.Present()

	return nil
}

// prepare builds the per-kind batches, culled against the camera frustum when enabled.
func (r *renderer) prepare() []Batch {
	if !r.culling {
		return PrepareBatches(r.pool, r.objects, nil)
	}
	frustum := r.camera.Frustum()
	return PrepareBatches(r.pool, r.objects, &frustum)
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.ConfigureSurface(width, height)
	r.logger.Debug().Int("width", width).Int("height", height).Msg("surface resized")
}

func (r *renderer) Stats() FrameStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pool.Stop()
	if r.backend != nil {
		r.backend.Release()
	}
}
