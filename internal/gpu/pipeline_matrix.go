package gpu

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// posComponents is the number of float32 components per position vertex.
// Texture coordinates use the same two-component layout.
const posComponents = 2

// uvComponents is the number of float32 components per texture coordinate.
const uvComponents = 2

// vertexStride is the byte stride of one vertex in either vertex buffer.
const vertexStride = posComponents * 4

// sampleCount is the MSAA sample count for all pipelines and attachments.
// The matrix renders single-sampled; multisampling belongs to the caller's
// compositing layer.
const sampleCount = 1

// blendState returns the WebGPU blend function for a blend mode.
//
// BlendInvert relies on the blend constant being opaque white, which every
// render pass sets: color = src*constant - dst*src yields 1-dst wherever the
// source is white. BlendNone is the degenerate {One, Zero, Add} function, not
// disabled blending, so every matrix entry is created the same way.
func blendState(mode BlendMode) gputypes.BlendState {
	switch mode {
	case BlendAlpha:
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorSrcAlpha,
				DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	case BlendAdd:
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	case BlendMultiply:
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorDst,
				DstFactor: gputypes.BlendFactorZero,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorDstAlpha,
				DstFactor: gputypes.BlendFactorZero,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	case BlendInvert:
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorConstant,
				DstFactor: gputypes.BlendFactorSrc,
				Operation: gputypes.BlendOperationSubtract,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorZero,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	default: // BlendNone
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorZero,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorZero,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	}
}

// stencilFace returns the stencil face state for a clip mode. Front and back
// faces always share the same state; triangle lists arrive in both windings.
func stencilFace(mode ClipMode) hal.StencilFaceState {
	switch mode {
	case ClipMask:
		// Never pass, so only the fail op runs: it replaces the stencil
		// value with the reference everywhere the geometry covers.
		return hal.StencilFaceState{
			Compare:     gputypes.CompareFunctionNever,
			FailOp:      hal.StencilOperationReplace,
			DepthFailOp: hal.StencilOperationKeep,
			PassOp:      hal.StencilOperationKeep,
		}
	case ClipInside:
		return hal.StencilFaceState{
			Compare:     gputypes.CompareFunctionEqual,
			FailOp:      hal.StencilOperationKeep,
			DepthFailOp: hal.StencilOperationKeep,
			PassOp:      hal.StencilOperationKeep,
		}
	case ClipOutside:
		return hal.StencilFaceState{
			Compare:     gputypes.CompareFunctionNotEqual,
			FailOp:      hal.StencilOperationKeep,
			DepthFailOp: hal.StencilOperationKeep,
			PassOp:      hal.StencilOperationKeep,
		}
	default: // ClipNone
		return hal.StencilFaceState{
			Compare:     gputypes.CompareFunctionAlways,
			FailOp:      hal.StencilOperationKeep,
			DepthFailOp: hal.StencilOperationKeep,
			PassOp:      hal.StencilOperationKeep,
		}
	}
}

// colorWriteMask returns the color write mask for a clip mode. The mask row
// writes no color channels; it only populates the stencil buffer.
func colorWriteMask(mode ClipMode) gputypes.ColorWriteMask {
	if mode == ClipMask {
		return 0
	}
	return gputypes.ColorWriteMaskAll
}

// PipelineEntry is one compiled pipeline in the clip x blend matrix, together
// with the state it was compiled from. The state fields exist for logging and
// verification; the HAL pipeline is the only part used at draw time.
type PipelineEntry struct {
	pipeline hal.RenderPipeline
	clip     ClipMode
	blend    BlendMode
	blendSt  gputypes.BlendState
	stencil  hal.StencilFaceState
	mask     gputypes.ColorWriteMask
}

// Pipeline returns the compiled HAL render pipeline.
func (e *PipelineEntry) Pipeline() hal.RenderPipeline { return e.pipeline }

// ClipMode returns the clip mode this entry was compiled for.
func (e *PipelineEntry) ClipMode() ClipMode { return e.clip }

// BlendMode returns the blend mode this entry was compiled for.
func (e *PipelineEntry) BlendMode() BlendMode { return e.blend }

// ProgramPipelines holds the full clip x blend pipeline matrix for one shader
// program. The matrix is immutable after construction: selection is a pure
// array lookup and no pipeline is ever created at draw time.
type ProgramPipelines struct {
	name    string
	module  hal.ShaderModule
	entries [clipModeCount][blendModeCount]PipelineEntry
}

// programConfig describes one shader program's pipeline matrix.
type programConfig struct {
	name         string
	wgslSource   string
	dialect      ShaderDialect
	layout       hal.PipelineLayout
	vertexLayout []gputypes.VertexBufferLayout
	colorFormat  gputypes.TextureFormat
}

// newProgramPipelines compiles the shader program once and builds one render
// pipeline per (clip, blend) combination. On any failure everything already
// created is destroyed and a wrapped error names the failing stage.
func newProgramPipelines(device hal.Device, cfg *programConfig) (*ProgramPipelines, error) {
	module, err := createShaderModule(device, cfg.name, cfg.wgslSource, cfg.dialect)
	if err != nil {
		return nil, err
	}

	p := &ProgramPipelines{name: cfg.name, module: module}
	for ci := ClipMode(0); ci < clipModeCount; ci++ {
		face := stencilFace(ci)
		mask := colorWriteMask(ci)
		for bi := BlendMode(0); bi < blendModeCount; bi++ {
			blend := blendState(bi)
			pipeline, err := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
				Label:  pipelineLabel(cfg.name, ci, bi),
				Layout: cfg.layout,
				Vertex: hal.VertexState{
					Module:     module,
					EntryPoint: "vs_main",
					Buffers:    cfg.vertexLayout,
				},
				Fragment: &hal.FragmentState{
					Module:     module,
					EntryPoint: "fs_main",
					Targets: []gputypes.ColorTargetState{
						{
							Format:    cfg.colorFormat,
							Blend:     &blend,
							WriteMask: mask,
						},
					},
				},
				DepthStencil: &hal.DepthStencilState{
					Format:            gputypes.TextureFormatDepth24PlusStencil8,
					DepthWriteEnabled: false,
					DepthCompare:      gputypes.CompareFunctionAlways,
					StencilFront:      face,
					StencilBack:       face,
					StencilReadMask:   0xFF,
					StencilWriteMask:  0xFF,
				},
				Primitive: gputypes.PrimitiveState{
					Topology: gputypes.PrimitiveTopologyTriangleList,
					CullMode: gputypes.CullModeNone,
				},
				Multisample: gputypes.MultisampleState{
					Count: sampleCount,
					Mask:  0xFFFFFFFF,
				},
			})
			if err != nil {
				p.destroy(device)
				return nil, fmt.Errorf("create %s pipeline clip=%s blend=%s: %w", cfg.name, ci, bi, err)
			}
			p.entries[ci][bi] = PipelineEntry{
				pipeline: pipeline,
				clip:     ci,
				blend:    bi,
				blendSt:  blend,
				stencil:  face,
				mask:     mask,
			}
		}
	}
	return p, nil
}

// pipelineLabel builds the GPU debug label for one matrix entry,
// e.g. "colored_pipeline_inside_alpha".
func pipelineLabel(name string, clip ClipMode, blend BlendMode) string {
	return name + "_pipeline_" + strings.ToLower(clip.String()) + "_" + strings.ToLower(blend.String())
}

// Select returns the matrix entry for the clip/blend combination and the
// stencil reference value to draw with. Pure array indexing; the zero values
// of Clip and BlendMode map to the no-clip, no-blend entry. Out-of-range
// values fall back to the same entry rather than indexing past the matrix.
func (p *ProgramPipelines) Select(clip Clip, blend BlendMode) (*PipelineEntry, uint8) {
	ci := clip.Mode
	if ci >= clipModeCount {
		ci = ClipNone
	}
	bi := blend
	if bi >= blendModeCount {
		bi = BlendNone
	}
	return &p.entries[ci][bi], clip.StencilRef()
}

// destroy releases every pipeline and the shader module. Safe to call on a
// partially constructed matrix; nil entries are skipped.
func (p *ProgramPipelines) destroy(device hal.Device) {
	for ci := range p.entries {
		for bi := range p.entries[ci] {
			if p.entries[ci][bi].pipeline != nil {
				device.DestroyRenderPipeline(p.entries[ci][bi].pipeline)
				p.entries[ci][bi].pipeline = nil
			}
		}
	}
	if p.module != nil {
		device.DestroyShaderModule(p.module)
		p.module = nil
	}
}

// coloredVertexLayout returns the vertex buffer layout for the flat-color
// program: one buffer of vec2 positions at shader location 0.
func coloredVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: vertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			},
		},
	}
}

// texturedVertexLayout returns the vertex buffer layouts for the textured
// program: positions in buffer slot 0, texture coordinates in slot 1. Two
// separate buffers, so each upload overwrites only its own stream.
func texturedVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: vertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			},
		},
		{
			ArrayStride: vertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 1}, // uv
			},
		},
	}
}
