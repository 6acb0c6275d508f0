package renderer

import (
	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/rs/zerolog"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the surface present mode.
//
// Parameters:
//   - mode: PresentModeVSync (default) or PresentModeUncapped
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.presentMode = mode
	}
}

// WithMSAA sets the multisample count. The default is MSAA4x.
//
// Parameters:
//   - count: MSAAOff or MSAA4x
//
// Returns:
//   - RendererBuilderOption: a function that applies the MSAA option to a renderer
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.msaa = count
	}
}

// WithForceSoftwareRenderer requests the CPU fallback adapter. Requires a software Vulkan
// driver such as lavapipe.
//
// Parameters:
//   - force: true to force the fallback adapter
//
// Returns:
//   - RendererBuilderOption: a function that applies the option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// WithFrustumCulling toggles culling of instances outside the view frustum. Enabled by default.
func WithFrustumCulling(enabled bool) RendererBuilderOption {
	return func(r *renderer) {
		r.culling = enabled
	}
}

// WithWorkers sets the number of instance preparation workers. Values <= 0 keep the default.
func WithWorkers(n int) RendererBuilderOption {
	return func(r *renderer) {
		r.workers = common.PositiveOr(n, r.workers)
	}
}

// WithAmbient sets the light level of unlit surfaces in [0, 1].
func WithAmbient(ambient float32) RendererBuilderOption {
	return func(r *renderer) {
		r.ambient = ambient
	}
}

// WithLogger sets the renderer logger.
func WithLogger(logger zerolog.Logger) RendererBuilderOption {
	return func(r *renderer) {
		r.logger = logger
	}
}
