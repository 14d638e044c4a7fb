// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package g2d

import (
	"github.com/gogpu/gputypes"
)

// Option configures a Renderer during creation.
// Use functional options to customize Renderer behavior.
//
// Example:
//
//	// Default configuration
//	r, err := g2d.NewRenderer(device, queue)
//
//	// Larger vertex pool, RGBA targets
//	r, err := g2d.NewRenderer(device, queue,
//	    g2d.WithMaxVertexCount(4096),
//	    g2d.WithColorFormat(gputypes.TextureFormatRGBA8Unorm))
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	maxVertexCount uint32
	colorFormat    gputypes.TextureFormat
	dialect        ShaderDialect
	coloredWGSL    string
	texturedWGSL   string
}

// WithMaxVertexCount sets the vertex capacity of the two pooled vertex
// buffers. A batch submitting more vertices than this fails with
// ErrVertexCapacity. The default is 1024.
func WithMaxVertexCount(n uint32) Option {
	return func(o *rendererOptions) {
		o.maxVertexCount = n
	}
}

// WithColorFormat sets the color attachment format every pipeline targets.
// Targets rendered through this renderer must use the same format. The
// default is BGRA8Unorm, the common swapchain format.
func WithColorFormat(format gputypes.TextureFormat) Option {
	return func(o *rendererOptions) {
		o.colorFormat = format
	}
}

// WithShaderDialect selects how shader sources reach the device. With
// DialectSPIRV the WGSL sources are compiled through naga at construction,
// so malformed source fails NewRenderer instead of the first draw.
func WithShaderDialect(d ShaderDialect) Option {
	return func(o *rendererOptions) {
		o.dialect = d
	}
}

// WithColoredShader overrides the embedded WGSL source of the flat-color
// program. The source must provide vs_main/fs_main entry points and the
// group(0) draw uniform interface.
func WithColoredShader(src string) Option {
	return func(o *rendererOptions) {
		o.coloredWGSL = src
	}
}

// WithTexturedShader overrides the embedded WGSL source of the textured
// program. The source must provide vs_main/fs_main entry points, the
// group(0) draw uniform interface, and the group(1) texture/sampler pair.
func WithTexturedShader(src string) Option {
	return func(o *rendererOptions) {
		o.texturedWGSL = src
	}
}
