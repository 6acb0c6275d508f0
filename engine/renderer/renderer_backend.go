package renderer

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately. May tear.
	PresentModeUncapped
)

// MSAASampleCount is the multisample count of the main render pass.
// WebGPU guarantees 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing.
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4x multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4
)

// meshBuffers are the GPU buffers of one uploaded mesh.
type meshBuffers interface {
	indexCount() uint32
}

// RendererBackend is the GPU API the renderer draws through.
type RendererBackend interface {
	// ConfigureSurface (re)creates the swapchain and the depth/MSAA targets for a surface size.
	ConfigureSurface(width, height int)

	// SetPresentMode sets the present mode applied on the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// RegisterPipeline compiles the WGSL source and builds the scene pipeline.
	RegisterPipeline(source string) error

	// UploadMesh creates vertex and index buffers for a mesh.
	UploadMesh(label string, m Mesh) (meshBuffers, error)

	// WriteUniforms uploads the camera and light uniform blocks.
	WriteUniforms(camera, light []byte)

	// WriteInstances uploads instance data, growing the instance buffer as needed.
	WriteInstances(data []byte) error

	// BeginFrame acquires the next surface texture and begins the render pass.
	BeginFrame() error

	// DrawInstanced draws count instances of a mesh starting at instance first.
	DrawInstanced(mesh meshBuffers, first, count uint32)

	// EndFrame ends the render pass and submits it.
	EndFrame()

	// Present shows the frame and releases the surface texture.
	Present()

	// Release frees every GPU resource.
	Release()
}
