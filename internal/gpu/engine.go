package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// defaultMaxVertexCount is the default vertex capacity of the pool buffers.
const defaultMaxVertexCount = 1024

// uniformSize is the byte size of the per-draw uniform block: one vec4 color.
const uniformSize = 16

// Config configures Engine construction. The zero value selects the built-in
// shaders, WGSL dialect, BGRA8Unorm color, and the default vertex capacity.
type Config struct {
	// MaxVertexCount is the vertex capacity of each pool buffer.
	// Zero selects defaultMaxVertexCount.
	MaxVertexCount uint32

	// ColorFormat is the color attachment format every pipeline targets.
	// Zero selects BGRA8Unorm.
	ColorFormat gputypes.TextureFormat

	// Dialect selects the shader source form handed to the HAL.
	Dialect ShaderDialect

	// ColoredWGSL and TexturedWGSL override the built-in shader sources.
	// Replacements must keep the vs_main/fs_main entry points and the
	// bind group interface of the built-ins.
	ColoredWGSL  string
	TexturedWGSL string
}

// Engine owns every long-lived GPU object of the back end: both pipeline
// matrices, the vertex pool, the shared draw uniform, the texture sampler,
// and the bind group layouts. One Engine serves one device/queue pair; all
// methods must be called from a single goroutine.
type Engine struct {
	device hal.Device
	queue  hal.Queue

	colorFormat gputypes.TextureFormat

	uniformLayout  hal.BindGroupLayout // group(0): draw color
	textureLayout  hal.BindGroupLayout // group(1): texture + sampler
	coloredLayout  hal.PipelineLayout
	texturedLayout hal.PipelineLayout

	colored  *ProgramPipelines
	textured *ProgramPipelines

	pool       *VertexPool
	uniformBuf hal.Buffer
	uniformBG  hal.BindGroup
	sampler    hal.Sampler
}

// NewEngine builds all pipelines and buffers up front. After it returns, no
// GPU object is ever created on the draw path except per-batch texture bind
// groups. Construction failures destroy everything already created and
// return a wrapped error naming the failing stage.
func NewEngine(device hal.Device, queue hal.Queue, cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	capacity := cfg.MaxVertexCount
	if capacity == 0 {
		capacity = defaultMaxVertexCount
	}
	colorFormat := cfg.ColorFormat
	if colorFormat == gputypes.TextureFormat(0) {
		colorFormat = gputypes.TextureFormatBGRA8Unorm
	}
	coloredWGSL := cfg.ColoredWGSL
	if coloredWGSL == "" {
		coloredWGSL = coloredShaderSource
	}
	texturedWGSL := cfg.TexturedWGSL
	if texturedWGSL == "" {
		texturedWGSL = texturedShaderSource
	}

	e := &Engine{
		device:      device,
		queue:       queue,
		colorFormat: colorFormat,
	}

	uniformLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "draw_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create uniform layout: %w", err)
	}
	e.uniformLayout = uniformLayout

	textureLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "texture_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		e.Destroy()
		return nil, fmt.Errorf("create texture layout: %w", err)
	}
	e.textureLayout = textureLayout

	coloredLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "colored_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{e.uniformLayout},
	})
	if err != nil {
		e.Destroy()
		return nil, fmt.Errorf("create colored pipeline layout: %w", err)
	}
	e.coloredLayout = coloredLayout

	texturedLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "textured_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{e.uniformLayout, e.textureLayout},
	})
	if err != nil {
		e.Destroy()
		return nil, fmt.Errorf("create textured pipeline layout: %w", err)
	}
	e.texturedLayout = texturedLayout

	colored, err := newProgramPipelines(device, &programConfig{
		name:         "colored",
		wgslSource:   coloredWGSL,
		dialect:      cfg.Dialect,
		layout:       e.coloredLayout,
		vertexLayout: coloredVertexLayout(),
		colorFormat:  colorFormat,
	})
	if err != nil {
		e.Destroy()
		return nil, err
	}
	e.colored = colored

	textured, err := newProgramPipelines(device, &programConfig{
		name:         "textured",
		wgslSource:   texturedWGSL,
		dialect:      cfg.Dialect,
		layout:       e.texturedLayout,
		vertexLayout: texturedVertexLayout(),
		colorFormat:  colorFormat,
	})
	if err != nil {
		e.Destroy()
		return nil, err
	}
	e.textured = textured

	pool, err := newVertexPool(device, capacity)
	if err != nil {
		e.Destroy()
		return nil, err
	}
	e.pool = pool

	uniformBuf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "draw_uniform",
		Size:  uniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		e.Destroy()
		return nil, fmt.Errorf("create uniform buffer: %w", err)
	}
	e.uniformBuf = uniformBuf

	uniformBG, err := device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "draw_uniform_bind",
		Layout: e.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: uniformSize,
			}},
		},
	})
	if err != nil {
		e.Destroy()
		return nil, fmt.Errorf("create uniform bind group: %w", err)
	}
	e.uniformBG = uniformBG

	// Bilinear filtering with clamp-to-edge addressing, the fixed sampling
	// mode of the textured program.
	sampler, err := device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "texture_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		e.Destroy()
		return nil, fmt.Errorf("create sampler: %w", err)
	}
	e.sampler = sampler

	slogger().Debug("engine created",
		"max_vertex_count", capacity,
		"color_format", colorFormat,
		"dialect", cfg.Dialect.String())
	return e, nil
}

// Device returns the HAL device the engine was built on.
func (e *Engine) Device() hal.Device { return e.device }

// Queue returns the HAL queue the engine submits to.
func (e *Engine) Queue() hal.Queue { return e.queue }

// ColorFormat returns the color attachment format every pipeline targets.
func (e *Engine) ColorFormat() gputypes.TextureFormat { return e.colorFormat }

// MaxVertexCount returns the vertex capacity of the pool buffers.
func (e *Engine) MaxVertexCount() uint32 { return e.pool.Capacity() }

// Colored returns the pipeline matrix of the flat-color program.
func (e *Engine) Colored() *ProgramPipelines { return e.colored }

// Textured returns the pipeline matrix of the textured program.
func (e *Engine) Textured() *ProgramPipelines { return e.textured }

// Destroy releases every GPU object the engine owns, in reverse creation
// order. The device and queue are borrowed and stay untouched. Safe to call
// multiple times and on a partially constructed engine.
func (e *Engine) Destroy() {
	if e.device == nil {
		return
	}
	if e.sampler != nil {
		e.device.DestroySampler(e.sampler)
		e.sampler = nil
	}
	if e.uniformBG != nil {
		e.device.DestroyBindGroup(e.uniformBG)
		e.uniformBG = nil
	}
	if e.uniformBuf != nil {
		e.device.DestroyBuffer(e.uniformBuf)
		e.uniformBuf = nil
	}
	if e.pool != nil {
		e.pool.destroy(e.device)
		e.pool = nil
	}
	if e.textured != nil {
		e.textured.destroy(e.device)
		e.textured = nil
	}
	if e.colored != nil {
		e.colored.destroy(e.device)
		e.colored = nil
	}
	if e.texturedLayout != nil {
		e.device.DestroyPipelineLayout(e.texturedLayout)
		e.texturedLayout = nil
	}
	if e.coloredLayout != nil {
		e.device.DestroyPipelineLayout(e.coloredLayout)
		e.coloredLayout = nil
	}
	if e.textureLayout != nil {
		e.device.DestroyBindGroupLayout(e.textureLayout)
		e.textureLayout = nil
	}
	if e.uniformLayout != nil {
		e.device.DestroyBindGroupLayout(e.uniformLayout)
		e.uniformLayout = nil
	}
}
