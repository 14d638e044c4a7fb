// Package gpu implements the pipeline-state selection and resource-binding
// engine behind the g2d API.
//
// It targets the gogpu/wgpu Pure Go WebGPU HAL (zero CGO), which supports
// Vulkan, Metal, and DX12 backends depending on the platform.
//
// # Architecture Overview
//
// The engine front-loads all GPU state creation:
//
//	NewEngine -> shader modules -> pipeline matrices -> vertex pool -> uniforms
//
// Key components:
//
//   - Engine: owns every long-lived GPU object; created once per renderer
//   - ProgramPipelines: a 4x5 matrix of pre-built render pipelines, one per
//     (clip mode, blend mode) pair, for each of the two shader programs
//   - vertexPool: two fixed-capacity vertex buffers (positions, texcoords)
//     shared by every draw and overwritten per call
//   - FrameSession: one frame's clears and draws against a target pair,
//     each its own queue submission, fenced once at End
//
// Draws never create pipelines, layouts, buffers, or samplers. Select is an
// array index; out-of-range modes fall back to the no-clip/no-blend entry.
//
// # Stencil Clipping
//
// Clip masks live in the stencil half of a Depth24PlusStencil8 attachment.
// ClipMask pipelines write the stencil reference with color writes disabled;
// ClipInside and ClipOutside test equality against it; ClipNone ignores the
// attachment. The stencil reference value rides on the render pass, not the
// pipeline, so one pipeline serves every mask value.
//
// # Execution Model
//
// Each clear and each draw is encoded and submitted on its own command
// buffer, signaling a shared fence with an increasing value. End waits for
// the last value, then frees command buffers and transient bind groups.
// Queue-ordered buffer writes make overwriting the shared vertex buffers
// between draws safe.
//
// # Error Handling
//
// Construction failures destroy partial state and name the failing stage.
// Per-draw input errors (ErrVertexCapacity) abort only that draw; the
// session and renderer remain usable.
package gpu
