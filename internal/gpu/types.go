package gpu

// BlendMode selects the color/alpha blend function a draw is rendered with.
// Each mode corresponds to one column of the precompiled pipeline matrix, so
// switching modes never triggers pipeline creation at draw time.
type BlendMode uint8

const (
	// BlendNone writes source fragments without blending. It is compiled as
	// the degenerate blend function {src=One, dst=Zero, op=Add} rather than
	// with blending disabled, so all matrix entries share one creation path.
	BlendNone BlendMode = iota

	// BlendAlpha performs standard alpha blending (source over destination).
	// Color: src*srcAlpha + dst*(1-srcAlpha). Alpha: src + dst.
	BlendAlpha

	// BlendAdd accumulates source onto destination. Formula: src + dst.
	BlendAdd

	// BlendMultiply multiplies source and destination colors.
	// Result is always darker or equal. Formula: dst * src.
	BlendMultiply

	// BlendInvert inverts the destination where the source is white.
	// Compiled as color {src=Constant, dst=Src, op=Subtract} with the blend
	// constant set to opaque white on every render pass, so a white source
	// yields 1-dst.
	BlendInvert

	// blendModeCount is the number of blend modes (matrix inner dimension).
	blendModeCount
)

// String returns a string representation of the blend mode.
func (b BlendMode) String() string {
	switch b {
	case BlendNone:
		return "None"
	case BlendAlpha:
		return "Alpha"
	case BlendAdd:
		return "Add"
	case BlendMultiply:
		return "Multiply"
	case BlendInvert:
		return "Invert"
	default:
		return "Unknown"
	}
}

// ClipMode selects how a draw interacts with the stencil buffer. Each mode
// corresponds to one row of the precompiled pipeline matrix.
type ClipMode uint8

const (
	// ClipNone ignores the stencil buffer entirely
	// (compare Always, all ops Keep, reference 0).
	ClipNone ClipMode = iota

	// ClipMask paints a clip region into the stencil buffer without touching
	// the color attachment: compare Never with fail op Replace writes the
	// reference value everywhere the geometry covers, and the pipeline's
	// color write mask is empty.
	ClipMask

	// ClipInside draws only where the stencil equals the reference value
	// (compare Equal, all ops Keep).
	ClipInside

	// ClipOutside draws only where the stencil differs from the reference
	// value (compare NotEqual, all ops Keep).
	ClipOutside

	// clipModeCount is the number of clip modes (matrix outer dimension).
	clipModeCount
)

// String returns a string representation of the clip mode.
func (c ClipMode) String() string {
	switch c {
	case ClipNone:
		return "None"
	case ClipMask:
		return "Mask"
	case ClipInside:
		return "Inside"
	case ClipOutside:
		return "Outside"
	default:
		return "Unknown"
	}
}

// Clip combines a clip mode with the stencil reference value it tests or
// writes. The zero value disables clipping. Ref is ignored for ClipNone,
// where the reference is always 0.
type Clip struct {
	Mode ClipMode
	Ref  uint8
}

// StencilRef returns the stencil reference value the clip resolves to:
// 0 for ClipNone, Ref for every other mode. The same value is used for
// both the stencil test and stencil writes.
func (c Clip) StencilRef() uint8 {
	if c.Mode == ClipNone {
		return 0
	}
	return c.Ref
}

// ShaderDialect selects the form shader sources are handed to the HAL in.
// The WGSL sources are authoritative; DialectSPIRV translates them through
// naga at pipeline-matrix construction, so malformed sources fail renderer
// construction instead of draw calls.
type ShaderDialect uint8

const (
	// DialectWGSL passes WGSL source to the HAL untranslated.
	DialectWGSL ShaderDialect = iota

	// DialectSPIRV pre-compiles the WGSL to SPIR-V words via naga. Use this
	// for backends that consume SPIR-V directly (e.g. Vulkan without a WGSL
	// front end).
	DialectSPIRV
)

// String returns a string representation of the shader dialect.
func (d ShaderDialect) String() string {
	switch d {
	case DialectWGSL:
		return "WGSL"
	case DialectSPIRV:
		return "SPIRV"
	default:
		return "Unknown"
	}
}
